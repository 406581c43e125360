package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type ProductResponse struct {
	ID           string                `json:"id"`
	SKU          string                `json:"sku"`
	Name         string                `json:"name"`
	Category     string                `json:"category,omitempty"`
	UnitPrice    float64               `json:"unit_price"`
	ReorderLevel int                   `json:"reorder_level"`
	StockLevel   int                   `json:"stock_level"`
	StockHistory []entities.StockEntry `json:"stock_history"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		UnitPrice:    p.UnitPrice.InexactFloat64(),
		ReorderLevel: p.ReorderLevel,
		StockLevel:   p.StockLevel,
		StockHistory: p.StockHistory,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProducts(in []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProduct(p))
	}
	return out
}
