package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus represents the billing state of a monitoring plan.
//
// Active and PastDue toggle both ways; Cancelled is terminal.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// BillingCycle is the recurrence of a subscription.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleAnnually  BillingCycle = "annually"
)

func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingCycleMonthly, BillingCycleQuarterly, BillingCycleAnnually:
		return true
	default:
		return false
	}
}

// Advance returns the next billing date one cycle after t.
func (c BillingCycle) Advance(t time.Time) time.Time {
	switch c {
	case BillingCycleQuarterly:
		return t.AddDate(0, 3, 0)
	case BillingCycleAnnually:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// PaymentOutcome is the recorded result of the latest billing attempt.
type PaymentOutcome string

const (
	PaymentOutcomeSuccess PaymentOutcome = "success"
	PaymentOutcomeFailed  PaymentOutcome = "failed"
	PaymentOutcomePending PaymentOutcome = "pending"
)

// Subscription is a recurring monitoring plan held by a customer.
type Subscription struct {
	ID                string             `json:"id"`
	CustomerID        string             `json:"customer_id"`
	PlanName          string             `json:"plan_name"`
	BillingCycle      BillingCycle       `json:"billing_cycle"`
	Amount            decimal.Decimal    `json:"amount"`
	Status            SubscriptionStatus `json:"status"`
	NextBillingDate   time.Time          `json:"next_billing_date"`
	LastPaymentStatus PaymentOutcome     `json:"last_payment_status,omitempty"`
	History           []HistoryEntry     `json:"history"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func (s Subscription) GetID() string { return s.ID }

func (s Subscription) Clone() Subscription {
	out := s
	out.History = cloneHistory(s.History)
	return out
}

func (s *Subscription) WorkflowKind() string         { return "subscription" }
func (s *Subscription) CurrentStatus() string        { return string(s.Status) }
func (s *Subscription) SetStatus(st string)          { s.Status = SubscriptionStatus(st) }
func (s *Subscription) AppendHistory(e HistoryEntry) { s.History = append(s.History, e) }
