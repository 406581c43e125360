package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type InvoiceResponse struct {
	ID             string                  `json:"id"`
	CustomerID     string                  `json:"customer_id"`
	QuoteID        string                  `json:"quote_id,omitempty"`
	SubscriptionID string                  `json:"subscription_id,omitempty"`
	Items          []LineItemResponse      `json:"items"`
	Subtotal       float64                 `json:"subtotal"`
	Tax            float64                 `json:"tax"`
	TotalAmount    float64                 `json:"total_amount"`
	Status         string                  `json:"status"`
	DueDate        time.Time               `json:"due_date"`
	History        []entities.HistoryEntry `json:"history"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		CustomerID:     i.CustomerID,
		QuoteID:        i.QuoteID,
		SubscriptionID: i.SubscriptionID,
		Items:          fromItems(i.Items),
		Subtotal:       i.Subtotal.InexactFloat64(),
		Tax:            i.Tax.InexactFloat64(),
		TotalAmount:    i.TotalAmount.InexactFloat64(),
		Status:         string(i.Status),
		DueDate:        i.DueDate,
		History:        i.History,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func FromInvoices(in []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(in))
	for _, i := range in {
		out = append(out, FromInvoice(i))
	}
	return out
}
