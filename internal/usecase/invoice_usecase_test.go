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

func newInvoiceFixture() (*InvoiceUseCase, *repository.Memory[entities.Invoice]) {
	repo := repository.NewInvoiceRepository(nil)
	return NewInvoiceUseCase(repo), repo
}

func oneItem() []entities.LineItem {
	return []entities.LineItem{{Description: "Monitoring", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}}
}

func TestInvoiceUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing customer", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		_, err := uc.Create(ctx, " ", oneItem(), time.Time{}, "billing")
		if !errors.Is(err, ErrInvalidInvoiceCustomer) {
			t.Fatalf("expected ErrInvalidInvoiceCustomer, got %v", err)
		}
	})

	t.Run("zero due date defaults to 14 days", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		created, err := uc.Create(ctx, "c-1", oneItem(), time.Time{}, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", created.Status)
		}
		if !created.DueDate.Equal(created.CreatedAt.AddDate(0, 0, 14)) {
			t.Fatalf("expected default 14-day term, got %s", created.DueDate)
		}
		if !created.TotalAmount.Equal(decimal.NewFromInt(108)) {
			t.Fatalf("expected total 108, got %s", created.TotalAmount)
		}
	})

	t.Run("explicit due date preserved", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		created, err := uc.Create(ctx, "c-1", oneItem(), due, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.DueDate.Equal(due) {
			t.Fatalf("expected %s, got %s", due, created.DueDate)
		}
	})
}

func TestInvoiceUseCase_PaymentToggles(t *testing.T) {
	ctx := context.Background()

	t.Run("draft cannot be paid directly", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		created, _ := uc.Create(ctx, "c-1", oneItem(), time.Time{}, "billing")
		_, err := uc.MarkPaid(ctx, created.ID, "billing")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reversal before due date lands on sent", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		created, _ := uc.Create(ctx, "c-1", oneItem(), time.Time{}, "billing")
		if _, err := uc.Send(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.MarkPaid(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inv, err := uc.MarkUnpaid(ctx, created.ID, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusSent {
			t.Fatalf("expected sent, got %s", inv.Status)
		}
	})

	t.Run("reversal past due date lands on overdue", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		due := time.Now().UTC().AddDate(0, 0, -3)
		created, _ := uc.Create(ctx, "c-1", oneItem(), due, "billing")
		if _, err := uc.Send(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.MarkPaid(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inv, err := uc.MarkUnpaid(ctx, created.ID, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusOverdue {
			t.Fatalf("expected overdue, got %s", inv.Status)
		}

		// The toggle stays reversible: an overdue invoice can still be paid.
		paid, err := uc.MarkPaid(ctx, created.ID, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected paid, got %s", paid.Status)
		}
	})

	t.Run("every toggle leaves a history entry", func(t *testing.T) {
		uc, _ := newInvoiceFixture()
		created, _ := uc.Create(ctx, "c-1", oneItem(), time.Time{}, "billing")
		if _, err := uc.Send(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.MarkPaid(ctx, created.ID, "billing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inv, err := uc.MarkUnpaid(ctx, created.ID, "billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		actions := make([]string, 0, len(inv.History))
		for _, h := range inv.History {
			actions = append(actions, h.Action)
		}
		want := []string{"Invoice Created", "Invoice Sent", "Payment Received", "Payment Reversed"}
		if len(actions) != len(want) {
			t.Fatalf("expected %d entries, got %v", len(want), actions)
		}
		for i := range want {
			if actions[i] != want[i] {
				t.Fatalf("history mismatch at %d: %v", i, actions)
			}
		}
	})
}

func TestInvoiceUseCase_SweepOverdue(t *testing.T) {
	ctx := context.Background()
	uc, repo := newInvoiceFixture()

	pastDue, _ := uc.Create(ctx, "c-1", oneItem(), time.Now().UTC().AddDate(0, 0, -1), "billing")
	if _, err := uc.Send(ctx, pastDue.ID, "billing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, _ := uc.Create(ctx, "c-2", oneItem(), time.Now().UTC().AddDate(0, 0, 7), "billing")
	if _, err := uc.Send(ctx, current.ID, "billing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft, _ := uc.Create(ctx, "c-3", oneItem(), time.Now().UTC().AddDate(0, 0, -1), "billing")

	res, err := uc.SweepOverdue(ctx, "system")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded != 1 || len(res.Failures) != 0 {
		t.Fatalf("unexpected batch result: %+v", res)
	}

	check := func(id string, want entities.InvoiceStatus) {
		t.Helper()
		inv, _ := repo.GetByID(ctx, id)
		if inv.Status != want {
			t.Fatalf("invoice %s: expected %s, got %s", id, want, inv.Status)
		}
	}
	check(pastDue.ID, entities.InvoiceStatusOverdue)
	check(current.ID, entities.InvoiceStatusSent)
	check(draft.ID, entities.InvoiceStatusDraft)
}
