package usecase

import (
	"context"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the read-only aggregate view over all collections.
// Everything here is recomputed from the stores on each request; nothing is
// persisted.
type DashboardSummary struct {
	Revenue                 decimal.Decimal    `json:"revenue"`     // sum of paid invoice totals
	Outstanding             decimal.Decimal    `json:"outstanding"` // sum of sent + overdue invoice totals
	OpenTickets             int                `json:"open_tickets"`
	ActiveSubscriptions     int                `json:"active_subscriptions"`
	MonthlyRecurringRevenue decimal.Decimal    `json:"monthly_recurring_revenue"`
	LeadsByStatus           map[string]int     `json:"leads_by_status"`
	InvoiceStatusPercent    map[string]float64 `json:"invoice_status_percent"`
	LowStockProducts        int                `json:"low_stock_products"`
	OutOfStockProducts      int                `json:"out_of_stock_products"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	invoiceRepo      interfaces.IInvoiceRepository
	ticketRepo       interfaces.ITicketRepository
	leadRepo         interfaces.ILeadRepository
	subscriptionRepo interfaces.ISubscriptionRepository
	productRepo      interfaces.IProductRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	invoiceRepo interfaces.IInvoiceRepository,
	ticketRepo interfaces.ITicketRepository,
	leadRepo interfaces.ILeadRepository,
	subscriptionRepo interfaces.ISubscriptionRepository,
	productRepo interfaces.IProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo:      invoiceRepo,
		ticketRepo:       ticketRepo,
		leadRepo:         leadRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
	}
}

var (
	monthsPerQuarter = decimal.NewFromInt(3)
	monthsPerYear    = decimal.NewFromInt(12)
)

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	s := DashboardSummary{
		Revenue:                 decimal.Zero,
		Outstanding:             decimal.Zero,
		MonthlyRecurringRevenue: decimal.Zero,
		LeadsByStatus:           map[string]int{},
		InvoiceStatusPercent:    map[string]float64{},
	}

	invoices, err := u.invoiceRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	statusCounts := map[string]int{}
	for _, inv := range invoices {
		statusCounts[string(inv.Status)]++
		switch inv.Status {
		case entities.InvoiceStatusPaid:
			s.Revenue = s.Revenue.Add(inv.TotalAmount)
		case entities.InvoiceStatusSent, entities.InvoiceStatusOverdue:
			s.Outstanding = s.Outstanding.Add(inv.TotalAmount)
		}
	}
	// Percentage of total is 0 when there are no invoices at all.
	if total := len(invoices); total > 0 {
		for status, n := range statusCounts {
			s.InvoiceStatusPercent[status] = float64(n) / float64(total) * 100
		}
	}

	tickets, err := u.ticketRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, t := range tickets {
		if t.Status != entities.TicketStatusResolved {
			s.OpenTickets++
		}
	}

	leads, err := u.leadRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, l := range leads {
		s.LeadsByStatus[string(l.Status)]++
	}

	subs, err := u.subscriptionRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, sub := range subs {
		if sub.Status != entities.SubscriptionStatusActive {
			continue
		}
		s.ActiveSubscriptions++
		monthly := sub.Amount
		switch sub.BillingCycle {
		case entities.BillingCycleQuarterly:
			monthly = sub.Amount.Div(monthsPerQuarter)
		case entities.BillingCycleAnnually:
			monthly = sub.Amount.Div(monthsPerYear)
		}
		s.MonthlyRecurringRevenue = s.MonthlyRecurringRevenue.Add(monthly)
	}
	s.MonthlyRecurringRevenue = s.MonthlyRecurringRevenue.Round(2)

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, p := range products {
		switch {
		case p.StockLevel <= 0:
			s.OutOfStockProducts++
		case p.StockLevel <= p.ReorderLevel:
			s.LowStockProducts++
		}
	}

	return s, nil
}
