package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/workflow"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvalidInvoiceCustomer = errors.New("invalid invoice customer id")
)

// IInvoiceUseCase exposes invoice operations.
//
// Mark-paid/mark-unpaid are reversible toggles: the unpaid target is
// recomputed from the due date (Overdue when past due, Sent otherwise)
// rather than restored from a remembered prior state.
type IInvoiceUseCase interface {
	Create(ctx context.Context, customerID string, items []entities.LineItem, dueDate time.Time, actor string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	Send(ctx context.Context, id, actor string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id, actor string) (entities.Invoice, error)
	MarkUnpaid(ctx context.Context, id, actor string) (entities.Invoice, error)
	SweepOverdue(ctx context.Context, actor string) (BatchResult, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (u *InvoiceUseCase) Create(ctx context.Context, customerID string, items []entities.LineItem, dueDate time.Time, actor string) (entities.Invoice, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceCustomer
	}
	if err := validateItems(items); err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, invoiceDueDays)
	}
	totals := entities.ComputeTotals(items)
	inv := entities.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		Status:      entities.InvoiceStatusDraft,
		DueDate:     dueDate,
		History: []entities.HistoryEntry{{
			Date:   now,
			Action: "Invoice Created",
			Actor:  actor,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created invoice_id=%s customer_id=%s total=%s", created.ID, created.CustomerID, created.TotalAmount)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}

	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (u *InvoiceUseCase) Send(ctx context.Context, id, actor string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusSent, "Invoice Sent", actor, "")
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id, actor string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusPaid, "Payment Received", actor, "")
}

// MarkUnpaid reverses a payment. The target status is derived from the due
// date at the moment of reversal.
func (u *InvoiceUseCase) MarkUnpaid(ctx context.Context, id, actor string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	target := inv.UnpaidStatus(now)
	return u.transition(ctx, id, target, "Payment Reversed", actor, "Marked unpaid, now "+string(target))
}

func (u *InvoiceUseCase) transition(ctx context.Context, id string, target entities.InvoiceStatus, action, actor, details string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	if err := workflow.Apply(&inv, string(target), action, actor, details, now); err != nil {
		log.Printf("[invoice][usecase] transition rejected invoice_id=%s from=%s to=%s err=%v", inv.ID, inv.Status, target, err)
		return entities.Invoice{}, err
	}
	inv.UpdatedAt = now

	saved, err := u.repo.Save(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] transition invoice_id=%s to=%s actor=%s", saved.ID, saved.Status, actor)
	return saved, nil
}

// SweepOverdue moves every Sent invoice whose due date has passed to
// Overdue. Invoices are processed independently; one failure never blocks
// the rest of the sweep.
func (u *InvoiceUseCase) SweepOverdue(ctx context.Context, actor string) (BatchResult, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	now := time.Now().UTC()
	var res BatchResult
	for _, inv := range all {
		if inv.Status != entities.InvoiceStatusSent || !now.After(inv.DueDate) {
			continue
		}
		if _, err := u.transition(ctx, inv.ID, entities.InvoiceStatusOverdue, "Marked Overdue", actor, "Due date passed"); err != nil {
			log.Printf("[invoice][usecase] sweep item failed invoice_id=%s err=%v", inv.ID, err)
			res.Failures = append(res.Failures, BatchFailure{ID: inv.ID, Err: err.Error()})
			continue
		}
		res.Succeeded++
	}
	log.Printf("[invoice][usecase] overdue sweep done succeeded=%d failed=%d", res.Succeeded, len(res.Failures))
	return res, nil
}
