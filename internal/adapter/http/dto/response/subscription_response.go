package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type SubscriptionResponse struct {
	ID                string                  `json:"id"`
	CustomerID        string                  `json:"customer_id"`
	PlanName          string                  `json:"plan_name"`
	BillingCycle      string                  `json:"billing_cycle"`
	Amount            float64                 `json:"amount"`
	Status            string                  `json:"status"`
	NextBillingDate   time.Time               `json:"next_billing_date"`
	LastPaymentStatus string                  `json:"last_payment_status,omitempty"`
	History           []entities.HistoryEntry `json:"history"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		PlanName:          s.PlanName,
		BillingCycle:      string(s.BillingCycle),
		Amount:            s.Amount.InexactFloat64(),
		Status:            string(s.Status),
		NextBillingDate:   s.NextBillingDate,
		LastPaymentStatus: string(s.LastPaymentStatus),
		History:           s.History,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func FromSubscriptions(in []entities.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSubscription(s))
	}
	return out
}
