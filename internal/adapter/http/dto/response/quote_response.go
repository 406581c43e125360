package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func fromItems(in []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(in))
	for _, it := range in {
		out = append(out, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
		})
	}
	return out
}

type QuoteResponse struct {
	ID                 string                  `json:"id"`
	CustomerID         string                  `json:"customer_id"`
	Title              string                  `json:"title,omitempty"`
	Items              []LineItemResponse      `json:"items"`
	Subtotal           float64                 `json:"subtotal"`
	Tax                float64                 `json:"tax"`
	TotalAmount        float64                 `json:"total_amount"`
	Status             string                  `json:"status"`
	ConvertedInvoiceID string                  `json:"converted_invoice_id,omitempty"`
	History            []entities.HistoryEntry `json:"history"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                 q.ID,
		CustomerID:         q.CustomerID,
		Title:              q.Title,
		Items:              fromItems(q.Items),
		Subtotal:           q.Subtotal.InexactFloat64(),
		Tax:                q.Tax.InexactFloat64(),
		TotalAmount:        q.TotalAmount.InexactFloat64(),
		Status:             string(q.Status),
		ConvertedInvoiceID: q.ConvertedInvoiceID,
		History:            q.History,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func FromQuotes(in []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(in))
	for _, q := range in {
		out = append(out, FromQuote(q))
	}
	return out
}
