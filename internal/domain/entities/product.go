package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is one signed movement in a product's append-only stock ledger.
//
// StockLevel is the running sum up to and including this entry. The inventory
// engine computes it; caller-supplied levels are never trusted.
type StockEntry struct {
	Date       time.Time `json:"date"`
	Change     int       `json:"change"`
	StockLevel int       `json:"stock_level"`
	Reason     string    `json:"reason,omitempty"`
	Actor      string    `json:"actor,omitempty"`
}

// Product is a stocked part or device (sensors, panels, cameras, cabling).
//
// Product is not state-based: its stock level at any point equals the sum of
// all ledger changes up to that point, and a manual adjustment is just one
// more signed entry.
type Product struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	StockLevel   int             `json:"stock_level"`
	StockHistory []StockEntry    `json:"stock_history"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (p Product) GetID() string { return p.ID }

func (p Product) Clone() Product {
	out := p
	if p.StockHistory != nil {
		out.StockHistory = make([]StockEntry, len(p.StockHistory))
		copy(out.StockHistory, p.StockHistory)
	}
	return out
}
