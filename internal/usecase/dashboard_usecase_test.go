package usecase

import (
	"context"
	"testing"
	"time"

	"amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type dashboardFixture struct {
	uc           *DashboardUseCase
	invoiceRepo  *repository.Memory[entities.Invoice]
	ticketRepo   *repository.Memory[entities.Ticket]
	leadRepo     *repository.Memory[entities.Lead]
	subRepo      *repository.Memory[entities.Subscription]
	productRepo  *repository.Memory[entities.Product]
}

func newDashboardFixture() dashboardFixture {
	f := dashboardFixture{
		invoiceRepo: repository.NewInvoiceRepository(nil),
		ticketRepo:  repository.NewTicketRepository(nil),
		leadRepo:    repository.NewLeadRepository(nil),
		subRepo:     repository.NewSubscriptionRepository(nil),
		productRepo: repository.NewProductRepository(nil),
	}
	f.uc = NewDashboardUseCase(f.invoiceRepo, f.ticketRepo, f.leadRepo, f.subRepo, f.productRepo)
	return f
}

func TestDashboardUseCase_EmptyStores(t *testing.T) {
	f := newDashboardFixture()

	s, err := f.uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Revenue.IsZero() || !s.Outstanding.IsZero() || !s.MonthlyRecurringRevenue.IsZero() {
		t.Fatalf("expected zero money aggregates: %+v", s)
	}
	if s.OpenTickets != 0 || s.ActiveSubscriptions != 0 {
		t.Fatalf("expected zero counts: %+v", s)
	}
	// No invoices at all: the percentage map stays empty rather than
	// dividing by zero.
	if len(s.InvoiceStatusPercent) != 0 {
		t.Fatalf("expected empty percent map, got %+v", s.InvoiceStatusPercent)
	}
}

func TestDashboardUseCase_Aggregates(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	seedInvoice := func(id string, status entities.InvoiceStatus, total int64) {
		t.Helper()
		if _, err := f.invoiceRepo.Create(ctx, entities.Invoice{
			ID:          id,
			CustomerID:  "c-1",
			Status:      status,
			TotalAmount: decimal.NewFromInt(total),
		}); err != nil {
			t.Fatalf("seed invoice %s: %v", id, err)
		}
	}
	seedInvoice("i-1", entities.InvoiceStatusPaid, 500)
	seedInvoice("i-2", entities.InvoiceStatusPaid, 300)
	seedInvoice("i-3", entities.InvoiceStatusSent, 200)
	seedInvoice("i-4", entities.InvoiceStatusOverdue, 100)

	for i, status := range []entities.TicketStatus{entities.TicketStatusOpen, entities.TicketStatusInProgress, entities.TicketStatusResolved} {
		if _, err := f.ticketRepo.Create(ctx, entities.Ticket{ID: string(rune('a' + i)), CustomerID: "c-1", Title: "t", Status: status}); err != nil {
			t.Fatalf("seed ticket: %v", err)
		}
	}

	for i, status := range []entities.LeadStatus{entities.LeadStatusNew, entities.LeadStatusNew, entities.LeadStatusQuoteSent} {
		if _, err := f.leadRepo.Create(ctx, entities.Lead{ID: string(rune('x' + i)), CustomerName: "n", Status: status}); err != nil {
			t.Fatalf("seed lead: %v", err)
		}
	}

	seedSub := func(id string, cycle entities.BillingCycle, amount int64, status entities.SubscriptionStatus) {
		t.Helper()
		if _, err := f.subRepo.Create(ctx, entities.Subscription{
			ID: id, CustomerID: "c-1", PlanName: "p", BillingCycle: cycle,
			Amount: decimal.NewFromInt(amount), Status: status, NextBillingDate: time.Now(),
		}); err != nil {
			t.Fatalf("seed subscription %s: %v", id, err)
		}
	}
	seedSub("s-1", entities.BillingCycleMonthly, 30, entities.SubscriptionStatusActive)
	seedSub("s-2", entities.BillingCycleQuarterly, 30, entities.SubscriptionStatusActive)
	seedSub("s-3", entities.BillingCycleAnnually, 120, entities.SubscriptionStatusActive)
	seedSub("s-4", entities.BillingCycleMonthly, 99, entities.SubscriptionStatusCancelled)

	if _, err := f.productRepo.Create(ctx, entities.Product{ID: "p-1", SKU: "a", Name: "a", ReorderLevel: 5, StockLevel: 3}); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if _, err := f.productRepo.Create(ctx, entities.Product{ID: "p-2", SKU: "b", Name: "b", ReorderLevel: 5, StockLevel: 0}); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if _, err := f.productRepo.Create(ctx, entities.Product{ID: "p-3", SKU: "c", Name: "c", ReorderLevel: 5, StockLevel: 50}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	s, err := f.uc.Summary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Revenue.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected revenue 800, got %s", s.Revenue)
	}
	if !s.Outstanding.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected outstanding 300, got %s", s.Outstanding)
	}
	if s.OpenTickets != 2 {
		t.Fatalf("expected 2 open tickets, got %d", s.OpenTickets)
	}
	if s.ActiveSubscriptions != 3 {
		t.Fatalf("expected 3 active subscriptions, got %d", s.ActiveSubscriptions)
	}
	// 30 + 30/3 + 120/12 = 50 per month.
	if !s.MonthlyRecurringRevenue.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected MRR 50, got %s", s.MonthlyRecurringRevenue)
	}
	if s.LeadsByStatus["new"] != 2 || s.LeadsByStatus["quote_sent"] != 1 {
		t.Fatalf("unexpected lead counts: %+v", s.LeadsByStatus)
	}
	if got := s.InvoiceStatusPercent["paid"]; got != 50 {
		t.Fatalf("expected paid at 50%%, got %v", got)
	}
	if got := s.InvoiceStatusPercent["sent"]; got != 25 {
		t.Fatalf("expected sent at 25%%, got %v", got)
	}
	if s.LowStockProducts != 1 || s.OutOfStockProducts != 1 {
		t.Fatalf("unexpected stock buckets: %+v", s)
	}
}
