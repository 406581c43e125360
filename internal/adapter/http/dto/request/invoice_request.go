package request

import "time"

type CreateInvoiceRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required"`
	DueDate    time.Time         `json:"due_date"`
	Actor      string            `json:"actor"`
}

// InvoiceActionRequest drives the invoice toggles. Action is one of "send",
// "mark_paid", "mark_unpaid".
type InvoiceActionRequest struct {
	Action string `json:"action" binding:"required"`
	Actor  string `json:"actor"`
}

type SweepOverdueRequest struct {
	Actor string `json:"actor"`
}
