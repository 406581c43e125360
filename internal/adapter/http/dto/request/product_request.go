package request

import (
	"amsi_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	ReorderLevel int     `json:"reorder_level"`
	InitialStock int     `json:"initial_stock"`
}

func (r CreateProductRequest) ToEntity() entities.Product {
	return entities.Product{
		SKU:          r.SKU,
		Name:         r.Name,
		Category:     r.Category,
		UnitPrice:    decimal.NewFromFloat(r.UnitPrice),
		ReorderLevel: r.ReorderLevel,
		StockLevel:   r.InitialStock,
	}
}

// StockAdjustmentRequest is one signed ledger movement; the server computes
// the resulting stock level itself.
type StockAdjustmentRequest struct {
	Change int    `json:"change" binding:"required"`
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}
