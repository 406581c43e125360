package response

import "amsi_crm/internal/usecase"

type DashboardResponse struct {
	Revenue                 float64            `json:"revenue"`
	Outstanding             float64            `json:"outstanding"`
	OpenTickets             int                `json:"open_tickets"`
	ActiveSubscriptions     int                `json:"active_subscriptions"`
	MonthlyRecurringRevenue float64            `json:"monthly_recurring_revenue"`
	LeadsByStatus           map[string]int     `json:"leads_by_status"`
	InvoiceStatusPercent    map[string]float64 `json:"invoice_status_percent"`
	LowStockProducts        int                `json:"low_stock_products"`
	OutOfStockProducts      int                `json:"out_of_stock_products"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Revenue:                 s.Revenue.InexactFloat64(),
		Outstanding:             s.Outstanding.InexactFloat64(),
		OpenTickets:             s.OpenTickets,
		ActiveSubscriptions:     s.ActiveSubscriptions,
		MonthlyRecurringRevenue: s.MonthlyRecurringRevenue.InexactFloat64(),
		LeadsByStatus:           s.LeadsByStatus,
		InvoiceStatusPercent:    s.InvoiceStatusPercent,
		LowStockProducts:        s.LowStockProducts,
		OutOfStockProducts:      s.OutOfStockProducts,
	}
}
