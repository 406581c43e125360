package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

func newSubscriptionFixture() (*SubscriptionUseCase, *repository.Memory[entities.Subscription], *repository.Memory[entities.Invoice]) {
	subRepo := repository.NewSubscriptionRepository(nil)
	invoiceRepo := repository.NewInvoiceRepository(nil)
	return NewSubscriptionUseCase(subRepo, invoiceRepo), subRepo, invoiceRepo
}

func TestSubscriptionUseCase_Create(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		draft entities.Subscription
		want  error
	}{
		{"missing customer", entities.Subscription{PlanName: "Basic", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30)}, ErrInvalidSubscriptionCust},
		{"missing plan", entities.Subscription{CustomerID: "c-1", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30)}, ErrInvalidPlanName},
		{"bad cycle", entities.Subscription{CustomerID: "c-1", PlanName: "Basic", BillingCycle: "weekly", Amount: decimal.NewFromInt(30)}, ErrInvalidBillingCycle},
		{"non-positive amount", entities.Subscription{CustomerID: "c-1", PlanName: "Basic", BillingCycle: entities.BillingCycleMonthly}, ErrInvalidSubscriptionAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := newSubscriptionFixture()
			_, err := uc.Create(ctx, tc.draft)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("starts active with next billing one cycle out", func(t *testing.T) {
		uc, _, _ := newSubscriptionFixture()
		created, err := uc.Create(ctx, entities.Subscription{
			CustomerID:   "c-1",
			PlanName:     "Premium",
			BillingCycle: entities.BillingCycleMonthly,
			Amount:       decimal.NewFromInt(30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.SubscriptionStatusActive {
			t.Fatalf("expected active, got %s", created.Status)
		}
		if !created.NextBillingDate.Equal(created.CreatedAt.AddDate(0, 1, 0)) {
			t.Fatalf("expected next billing one month out, got %s", created.NextBillingDate)
		}
	})
}

func TestSubscriptionUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newSubscriptionFixture()

	created, _ := uc.Create(ctx, entities.Subscription{
		CustomerID: "c-1", PlanName: "Premium", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30),
	})

	s, err := uc.UpdateStatus(ctx, created.ID, entities.SubscriptionStatusPastDue, "billing", "payment bounced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != entities.SubscriptionStatusPastDue {
		t.Fatalf("expected past_due, got %s", s.Status)
	}

	s, err = uc.UpdateStatus(ctx, created.ID, entities.SubscriptionStatusCancelled, "billing", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.UpdateStatus(ctx, created.ID, entities.SubscriptionStatusActive, "billing", "")
	if !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("cancelled must be terminal, got %v", err)
	}
}

func TestSubscriptionUseCase_RunAutoBilling(t *testing.T) {
	ctx := context.Background()

	t.Run("bills each active subscription once", func(t *testing.T) {
		uc, subRepo, invoiceRepo := newSubscriptionFixture()

		monthly, _ := uc.Create(ctx, entities.Subscription{
			CustomerID: "c-1", PlanName: "Premium", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30),
		})
		quarterly, _ := uc.Create(ctx, entities.Subscription{
			CustomerID: "c-2", PlanName: "Standard", BillingCycle: entities.BillingCycleQuarterly, Amount: decimal.NewFromInt(90),
		})
		cancelled, _ := uc.Create(ctx, entities.Subscription{
			CustomerID: "c-3", PlanName: "Basic", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(15),
		})
		if _, err := uc.UpdateStatus(ctx, cancelled.ID, entities.SubscriptionStatusCancelled, "billing", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := uc.RunAutoBilling(ctx, "system")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Succeeded != 2 || len(res.Failures) != 0 || len(res.InvoiceIDs) != 2 {
			t.Fatalf("unexpected run result: %+v", res)
		}

		invoices, _ := invoiceRepo.List(ctx)
		if len(invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(invoices))
		}
		first := invoices[0]
		if first.Status != entities.InvoiceStatusSent {
			t.Fatalf("auto-billed invoices go out sent, got %s", first.Status)
		}
		if first.SubscriptionID != monthly.ID {
			t.Fatalf("invoice not linked to subscription: %+v", first)
		}
		if first.Items[0].Description != "Premium (monthly)" {
			t.Fatalf("unexpected line description: %q", first.Items[0].Description)
		}
		if !first.TotalAmount.Equal(decimal.NewFromFloat(32.40)) {
			t.Fatalf("expected total 32.40, got %s", first.TotalAmount)
		}
		if !first.DueDate.Equal(first.CreatedAt) {
			t.Fatalf("auto-billed invoices are due immediately: %+v", first)
		}

		after, _ := subRepo.GetByID(ctx, monthly.ID)
		if !after.NextBillingDate.Equal(monthly.NextBillingDate.AddDate(0, 1, 0)) {
			t.Fatalf("monthly next billing not advanced: %s -> %s", monthly.NextBillingDate, after.NextBillingDate)
		}
		if after.LastPaymentStatus != entities.PaymentOutcomeSuccess {
			t.Fatalf("expected success outcome, got %s", after.LastPaymentStatus)
		}

		afterQ, _ := subRepo.GetByID(ctx, quarterly.ID)
		if !afterQ.NextBillingDate.Equal(quarterly.NextBillingDate.AddDate(0, 3, 0)) {
			t.Fatalf("quarterly next billing not advanced: %s -> %s", quarterly.NextBillingDate, afterQ.NextBillingDate)
		}
	})

	t.Run("one bad subscription never blocks the rest", func(t *testing.T) {
		uc, subRepo, invoiceRepo := newSubscriptionFixture()

		// A record corrupted below the use-case validations.
		if _, err := subRepo.Create(ctx, entities.Subscription{
			ID:           "bad-1",
			CustomerID:   "c-1",
			PlanName:     "Legacy",
			BillingCycle: "weekly",
			Amount:       decimal.NewFromInt(10),
			Status:       entities.SubscriptionStatusActive,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Create(ctx, entities.Subscription{
			CustomerID: "c-2", PlanName: "Premium", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := uc.RunAutoBilling(ctx, "system")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Succeeded != 1 {
			t.Fatalf("healthy subscription should still bill: %+v", res)
		}
		if len(res.Failures) != 1 || res.Failures[0].ID != "bad-1" {
			t.Fatalf("expected one failure for bad-1: %+v", res.Failures)
		}

		invoices, _ := invoiceRepo.List(ctx)
		if len(invoices) != 1 {
			t.Fatalf("expected 1 invoice, got %d", len(invoices))
		}
	})

	t.Run("second run bills again and advances again", func(t *testing.T) {
		uc, subRepo, invoiceRepo := newSubscriptionFixture()
		created, _ := uc.Create(ctx, entities.Subscription{
			CustomerID: "c-1", PlanName: "Premium", BillingCycle: entities.BillingCycleMonthly, Amount: decimal.NewFromInt(30),
		})

		for i := 0; i < 2; i++ {
			if _, err := uc.RunAutoBilling(ctx, "system"); err != nil {
				t.Fatalf("run %d: %v", i, err)
			}
		}

		invoices, _ := invoiceRepo.List(ctx)
		if len(invoices) != 2 {
			t.Fatalf("expected 2 invoices after 2 runs, got %d", len(invoices))
		}
		after, _ := subRepo.GetByID(ctx, created.ID)
		if !after.NextBillingDate.Equal(created.NextBillingDate.AddDate(0, 2, 0)) {
			t.Fatalf("expected two cycles advanced, got %s", after.NextBillingDate)
		}
	})
}

func TestSubscriptionUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newSubscriptionFixture()

	if _, err := uc.GetByID(ctx, " "); !errors.Is(err, ErrInvalidSubscriptionID) {
		t.Fatalf("expected ErrInvalidSubscriptionID")
	}
	if _, err := uc.GetByID(ctx, "ghost"); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound")
	}

	created, _ := uc.Create(ctx, entities.Subscription{
		CustomerID: "c-1", PlanName: "Premium", BillingCycle: entities.BillingCycleAnnually, Amount: decimal.NewFromInt(300),
		NextBillingDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	got, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NextBillingDate.Equal(created.NextBillingDate) {
		t.Fatalf("explicit next billing date lost: %+v", got)
	}
}
