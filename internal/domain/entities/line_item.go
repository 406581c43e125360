package entities

import "github.com/shopspring/decimal"

// TaxRate is the fixed sales tax applied to every quote and invoice (8%).
var TaxRate = decimal.NewFromFloat(0.08)

// LineItem is a billable row on a quote or invoice. Quantities and unit
// prices are owned by the document that holds the item; converting a quote
// copies its items, it never shares them.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Totals is the derived monetary summary of a line-item list.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal/tax/total from line items.
//
// Totals are always recomputed from the items, never hand-edited: whenever a
// document's items change the stored totals must be refreshed through this
// function. An empty item list yields all-zero totals.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax,
		Total:    subtotal.Round(2).Add(tax),
	}
}

func cloneItems(in []LineItem) []LineItem {
	if in == nil {
		return nil
	}
	out := make([]LineItem, len(in))
	copy(out, in)
	return out
}
