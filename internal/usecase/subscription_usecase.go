package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/workflow"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrInvalidSubscriptionID     = errors.New("invalid subscription id")
	ErrInvalidSubscriptionCust   = errors.New("invalid subscription customer id")
	ErrInvalidPlanName           = errors.New("invalid plan name")
	ErrInvalidBillingCycle       = errors.New("invalid billing cycle")
	ErrInvalidSubscriptionAmount = errors.New("invalid subscription amount")
	ErrInvalidSubscriptionStatus = errors.New("invalid subscription status")
)

// BillingRunResult reports one auto-billing run. Subscriptions are billed
// independently; a failure on one records a BatchFailure and the run
// continues.
type BillingRunResult struct {
	BatchResult
	InvoiceIDs []string `json:"invoice_ids,omitempty"`
}

// ISubscriptionUseCase exposes monitoring-plan operations, including the
// auto-billing batch that mints one invoice per active subscription.
type ISubscriptionUseCase interface {
	Create(ctx context.Context, draft entities.Subscription) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	List(ctx context.Context) ([]entities.Subscription, error)
	UpdateStatus(ctx context.Context, id string, target entities.SubscriptionStatus, actor, details string) (entities.Subscription, error)
	RunAutoBilling(ctx context.Context, actor string) (BillingRunResult, error)
}

type SubscriptionUseCase struct {
	repo        interfaces.ISubscriptionRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, invoiceRepo interfaces.IInvoiceRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, invoiceRepo: invoiceRepo}
}

func (u *SubscriptionUseCase) Create(ctx context.Context, draft entities.Subscription) (entities.Subscription, error) {
	draft.CustomerID = strings.TrimSpace(draft.CustomerID)
	draft.PlanName = strings.TrimSpace(draft.PlanName)
	if draft.CustomerID == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionCust
	}
	if draft.PlanName == "" {
		return entities.Subscription{}, ErrInvalidPlanName
	}
	if !draft.BillingCycle.IsValid() {
		return entities.Subscription{}, ErrInvalidBillingCycle
	}
	if !draft.Amount.IsPositive() {
		return entities.Subscription{}, ErrInvalidSubscriptionAmount
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.SubscriptionStatusActive
	if draft.NextBillingDate.IsZero() {
		draft.NextBillingDate = draft.BillingCycle.Advance(now)
	}
	draft.History = []entities.HistoryEntry{{
		Date:    now,
		Action:  "Subscription Created",
		Actor:   "system",
		Details: fmt.Sprintf("%s plan, billed %s", draft.PlanName, draft.BillingCycle),
	}}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] created subscription_id=%s plan=%q cycle=%s", created.ID, created.PlanName, created.BillingCycle)
	return created, nil
}

func (u *SubscriptionUseCase) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return s, nil
}

func (u *SubscriptionUseCase) List(ctx context.Context) ([]entities.Subscription, error) {
	return u.repo.List(ctx)
}

func (u *SubscriptionUseCase) UpdateStatus(ctx context.Context, id string, target entities.SubscriptionStatus, actor, details string) (entities.Subscription, error) {
	if !workflow.IsKnownStatus(workflow.KindSubscription, string(target)) {
		return entities.Subscription{}, ErrInvalidSubscriptionStatus
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}

	now := time.Now().UTC()
	action := fmt.Sprintf("Status changed to %s", target)
	if err := workflow.Apply(&s, string(target), action, actor, details, now); err != nil {
		log.Printf("[subscription][usecase] transition rejected subscription_id=%s from=%s to=%s err=%v", s.ID, s.Status, target, err)
		return entities.Subscription{}, err
	}
	s.UpdatedAt = now

	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] transition subscription_id=%s to=%s actor=%s", saved.ID, saved.Status, actor)
	return saved, nil
}

// RunAutoBilling bills every Active subscription: one Sent invoice due
// immediately, next billing date advanced one cycle, last payment stamped
// successful.
func (u *SubscriptionUseCase) RunAutoBilling(ctx context.Context, actor string) (BillingRunResult, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return BillingRunResult{}, err
	}

	var res BillingRunResult
	for _, s := range all {
		if s.Status != entities.SubscriptionStatusActive {
			continue
		}
		invID, err := u.billOne(ctx, s, actor)
		if err != nil {
			log.Printf("[subscription][usecase] billing item failed subscription_id=%s err=%v", s.ID, err)
			res.Failures = append(res.Failures, BatchFailure{ID: s.ID, Err: err.Error()})
			continue
		}
		res.Succeeded++
		res.InvoiceIDs = append(res.InvoiceIDs, invID)
	}
	log.Printf("[subscription][usecase] auto-billing done succeeded=%d failed=%d", res.Succeeded, len(res.Failures))
	return res, nil
}

func (u *SubscriptionUseCase) billOne(ctx context.Context, s entities.Subscription, actor string) (string, error) {
	if !s.BillingCycle.IsValid() {
		return "", ErrInvalidBillingCycle
	}

	now := time.Now().UTC()
	items := []entities.LineItem{{
		Description: fmt.Sprintf("%s (%s)", s.PlanName, s.BillingCycle),
		Quantity:    1,
		UnitPrice:   s.Amount,
	}}
	totals := entities.ComputeTotals(items)
	inv := entities.Invoice{
		ID:             uuid.NewString(),
		CustomerID:     s.CustomerID,
		SubscriptionID: s.ID,
		Items:          items,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		TotalAmount:    totals.Total,
		Status:         entities.InvoiceStatusSent,
		DueDate:        now,
		History: []entities.HistoryEntry{{
			Date:    now,
			Action:  "Invoice Created",
			Actor:   actor,
			Details: "Auto-billing for subscription " + s.ID,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return "", err
	}

	s.NextBillingDate = s.BillingCycle.Advance(s.NextBillingDate)
	s.LastPaymentStatus = entities.PaymentOutcomeSuccess
	s.AppendHistory(entities.HistoryEntry{
		Date:    now,
		Action:  "Billed",
		Actor:   actor,
		Details: "Invoice " + created.ID,
	})
	s.UpdatedAt = now

	if _, err := u.repo.Save(ctx, s); err != nil {
		return "", err
	}
	return created.ID, nil
}
