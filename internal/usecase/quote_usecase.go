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
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteCustomer  = errors.New("invalid quote customer id")
	ErrEmptyQuoteItems       = errors.New("quote requires at least one line item")
	ErrInvalidQuoteItem      = errors.New("invalid quote line item")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrQuoteNotEditable      = errors.New("quote is not editable in its current status")
	ErrQuoteNotConvertible   = errors.New("quote must be sent or accepted before conversion")
	ErrQuoteAlreadyConverted = errors.New("quote already converted to an invoice")
)

// invoiceDueDays is the default payment term applied to invoices created
// from a quote conversion.
const invoiceDueDays = 14

// IQuoteUseCase exposes quote operations, including the quote-to-invoice
// conversion side effect.
type IQuoteUseCase interface {
	Create(ctx context.Context, customerID, title string, items []entities.LineItem, actor string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateItems(ctx context.Context, id string, items []entities.LineItem, actor string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, target entities.QuoteStatus, actor, details string) (entities.Quote, error)
	ConvertToInvoice(ctx context.Context, id, actor string) (entities.Invoice, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, invoiceRepo interfaces.IInvoiceRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, invoiceRepo: invoiceRepo}
}

func validateItems(items []entities.LineItem) error {
	if len(items) == 0 {
		return ErrEmptyQuoteItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return ErrInvalidQuoteItem
		}
	}
	return nil
}

func (u *QuoteUseCase) Create(ctx context.Context, customerID, title string, items []entities.LineItem, actor string) (entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidQuoteCustomer
	}
	if err := validateItems(items); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	totals := entities.ComputeTotals(items)
	q := entities.Quote{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Title:       strings.TrimSpace(title),
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		Status:      entities.QuoteStatusDraft,
		History: []entities.HistoryEntry{{
			Date:   now,
			Action: "Quote Created",
			Actor:  actor,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s customer_id=%s total=%s", created.ID, created.CustomerID, created.TotalAmount)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

// UpdateItems replaces the line items and recomputes totals. Editing a
// rejected quote moves it back to Draft for another round.
func (u *QuoteUseCase) UpdateItems(ctx context.Context, id string, items []entities.LineItem, actor string) (entities.Quote, error) {
	if err := validateItems(items); err != nil {
		return entities.Quote{}, err
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	switch q.Status {
	case entities.QuoteStatusDraft:
		// editable in place
	case entities.QuoteStatusRejected:
		if err := workflow.Apply(&q, string(entities.QuoteStatusDraft), "Quote Edited", actor, "Revised after rejection", now); err != nil {
			return entities.Quote{}, err
		}
	default:
		return entities.Quote{}, ErrQuoteNotEditable
	}

	totals := entities.ComputeTotals(items)
	q.Items = items
	q.Subtotal = totals.Subtotal
	q.Tax = totals.Tax
	q.TotalAmount = totals.Total
	q.UpdatedAt = now

	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] items updated quote_id=%s total=%s", saved.ID, saved.TotalAmount)
	return saved, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, target entities.QuoteStatus, actor, details string) (entities.Quote, error) {
	if !workflow.IsKnownStatus(workflow.KindQuote, string(target)) {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	action := fmt.Sprintf("Status changed to %s", target)
	if err := workflow.Apply(&q, string(target), action, actor, details, now); err != nil {
		log.Printf("[quote][usecase] transition rejected quote_id=%s from=%s to=%s err=%v", q.ID, q.Status, target, err)
		return entities.Quote{}, err
	}
	q.UpdatedAt = now

	saved, err := u.repo.Save(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] transition quote_id=%s to=%s actor=%s", saved.ID, saved.Status, actor)
	return saved, nil
}

// ConvertToInvoice creates a Draft invoice from a sent or accepted quote.
//
// Line items are copied, never shared; the new invoice is due in 14 days.
// The source quote is marked Accepted and keeps a pointer to the invoice,
// which guards against a second conversion.
func (u *QuoteUseCase) ConvertToInvoice(ctx context.Context, id, actor string) (entities.Invoice, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.ConvertedInvoiceID != "" {
		log.Printf("[quote][usecase] convert refused quote_id=%s invoice_id=%s", q.ID, q.ConvertedInvoiceID)
		return entities.Invoice{}, ErrQuoteAlreadyConverted
	}
	if q.Status != entities.QuoteStatusSent && q.Status != entities.QuoteStatusAccepted {
		return entities.Invoice{}, ErrQuoteNotConvertible
	}

	now := time.Now().UTC()
	items := make([]entities.LineItem, len(q.Items))
	copy(items, q.Items)
	totals := entities.ComputeTotals(items)

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  q.CustomerID,
		QuoteID:     q.ID,
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		TotalAmount: totals.Total,
		Status:      entities.InvoiceStatusDraft,
		DueDate:     now.AddDate(0, 0, invoiceDueDays),
		History: []entities.HistoryEntry{{
			Date:    now,
			Action:  "Invoice Created",
			Actor:   actor,
			Details: "Converted from quote " + q.ID,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	if q.Status == entities.QuoteStatusSent {
		if err := workflow.Apply(&q, string(entities.QuoteStatusAccepted), "Converted to Invoice", actor, "Invoice "+created.ID, now); err != nil {
			return entities.Invoice{}, err
		}
	} else {
		q.AppendHistory(entities.HistoryEntry{
			Date:    now,
			Action:  "Converted to Invoice",
			Actor:   actor,
			Details: "Invoice " + created.ID,
		})
	}
	q.ConvertedInvoiceID = created.ID
	q.UpdatedAt = now

	if _, err := u.repo.Save(ctx, q); err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[quote][usecase] converted quote_id=%s invoice_id=%s total=%s", q.ID, created.ID, created.TotalAmount)
	return created, nil
}
