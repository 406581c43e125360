package request

type CreateQuoteRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	Title      string            `json:"title"`
	Items      []LineItemRequest `json:"items" binding:"required"`
	Actor      string            `json:"actor"`
}

type UpdateQuoteItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required"`
	Actor string            `json:"actor"`
}

type QuoteStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Actor   string `json:"actor"`
	Details string `json:"details"`
}

type ConvertQuoteRequest struct {
	Actor string `json:"actor"`
}
