package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Draft -> Sent -> Accepted / Rejected. A rejected quote may return to Draft
// when it is edited for another round. Accepted is terminal until the quote
// is converted into an invoice.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a priced proposal for a customer.
//
// Monetary fields are derived from Items via ComputeTotals and refreshed on
// every item edit. ConvertedInvoiceID is set exactly once, when the quote is
// converted; it is the guard against double conversion.
type Quote struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customer_id"`
	Title              string          `json:"title,omitempty"`
	Items              []LineItem      `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Tax                decimal.Decimal `json:"tax"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Status             QuoteStatus     `json:"status"`
	ConvertedInvoiceID string          `json:"converted_invoice_id,omitempty"`
	History            []HistoryEntry  `json:"history"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (q Quote) GetID() string { return q.ID }

func (q Quote) Clone() Quote {
	out := q
	out.Items = cloneItems(q.Items)
	out.History = cloneHistory(q.History)
	return out
}

func (q *Quote) WorkflowKind() string         { return "quote" }
func (q *Quote) CurrentStatus() string        { return string(q.Status) }
func (q *Quote) SetStatus(s string)           { q.Status = QuoteStatus(s) }
func (q *Quote) AppendHistory(e HistoryEntry) { q.History = append(q.History, e) }
