package request

import (
	"time"

	"amsi_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateSubscriptionRequest struct {
	CustomerID      string    `json:"customer_id" binding:"required"`
	PlanName        string    `json:"plan_name" binding:"required"`
	BillingCycle    string    `json:"billing_cycle" binding:"required"`
	Amount          float64   `json:"amount" binding:"required"`
	NextBillingDate time.Time `json:"next_billing_date"`
}

func (r CreateSubscriptionRequest) ToEntity() entities.Subscription {
	return entities.Subscription{
		CustomerID:      r.CustomerID,
		PlanName:        r.PlanName,
		BillingCycle:    entities.BillingCycle(r.BillingCycle),
		Amount:          decimal.NewFromFloat(r.Amount),
		NextBillingDate: r.NextBillingDate,
	}
}

type SubscriptionStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Actor   string `json:"actor"`
	Details string `json:"details"`
}

type RunBillingRequest struct {
	Actor string `json:"actor"`
}
