package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice.
//
// Draft -> Sent -> Paid / Overdue. Paid is reversible: "mark unpaid" moves
// the invoice back to Sent, or to Overdue when the due date has passed. The
// unpaid target is recomputed from the due date, never remembered.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a bill issued to a customer, either converted from a quote,
// minted by the subscription billing run, or created directly.
type Invoice struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	QuoteID        string          `json:"quote_id,omitempty"`
	SubscriptionID string          `json:"subscription_id,omitempty"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         InvoiceStatus   `json:"status"`
	DueDate        time.Time       `json:"due_date"`
	History        []HistoryEntry  `json:"history"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (i Invoice) GetID() string { return i.ID }

func (i Invoice) Clone() Invoice {
	out := i
	out.Items = cloneItems(i.Items)
	out.History = cloneHistory(i.History)
	return out
}

func (i *Invoice) WorkflowKind() string         { return "invoice" }
func (i *Invoice) CurrentStatus() string        { return string(i.Status) }
func (i *Invoice) SetStatus(s string)           { i.Status = InvoiceStatus(s) }
func (i *Invoice) AppendHistory(e HistoryEntry) { i.History = append(i.History, e) }

// UnpaidStatus is the status an invoice lands on when payment is reversed:
// Overdue when the due date has passed, Sent otherwise.
func (i Invoice) UnpaidStatus(now time.Time) InvoiceStatus {
	if now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return InvoiceStatusSent
}
