package request

import (
	"strings"

	"amsi_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ResolveActor normalizes the acting identity sent by the presentation
// layer; mutations without an explicit actor are attributed to "system".
func ResolveActor(actor string) string {
	if v := strings.TrimSpace(actor); v != "" {
		return v
	}
	return "system"
}

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

func ToLineItems(in []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		})
	}
	return out
}
