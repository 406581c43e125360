package routes

import (
	"amsi_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers     = "/customers"
	PathLeads         = "/leads"
	PathQuotes        = "/quotes"
	PathInvoices      = "/invoices"
	PathTickets       = "/tickets"
	PathSubscriptions = "/subscriptions"
	PathProducts      = "/products"
	PathDashboard     = "/dashboard"
)

type crmHandlers struct {
	customers     *handlers.CustomerHandler
	leads         *handlers.LeadHandler
	quotes        *handlers.QuoteHandler
	invoices      *handlers.InvoiceHandler
	tickets       *handlers.TicketHandler
	subscriptions *handlers.SubscriptionHandler
	products      *handlers.ProductHandler
	dashboard     *handlers.DashboardHandler
}

func addCRMRoutes(rg *gin.RouterGroup, h crmHandlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.customers.CreateCustomer)
		customers.GET("", h.customers.ListCustomers)
		customers.GET("/:id", h.customers.GetCustomer)
		customers.PUT("/:id", h.customers.UpdateCustomer)
		customers.POST("/:id/claim-free-service", h.customers.ClaimFreeService)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.leads.CreateLead)
		leads.GET("", h.leads.ListLeads)
		leads.PATCH("/:id/status", h.leads.UpdateLeadStatus)
		leads.POST("/:id/review", h.leads.ReviewLead)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.quotes.CreateQuote)
		quotes.GET("", h.quotes.ListQuotes)
		quotes.GET("/:id", h.quotes.GetQuote)
		quotes.PUT("/:id/items", h.quotes.UpdateQuoteItems)
		quotes.PATCH("/:id/status", h.quotes.UpdateQuoteStatus)
		quotes.POST("/:id/convert", h.quotes.ConvertQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.invoices.CreateInvoice)
		invoices.GET("", h.invoices.ListInvoices)
		invoices.GET("/:id", h.invoices.GetInvoice)
		invoices.POST("/:id/actions", h.invoices.ApplyInvoiceAction)
		invoices.GET("/:id/print", h.invoices.PrintInvoice)
		invoices.POST("/sweep-overdue", h.invoices.SweepOverdue)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", h.tickets.CreateTicket)
		tickets.GET("", h.tickets.ListTickets)
		tickets.GET("/:id", h.tickets.GetTicket)
		tickets.PATCH("/:id/status", h.tickets.UpdateTicketStatus)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", h.subscriptions.CreateSubscription)
		subscriptions.GET("", h.subscriptions.ListSubscriptions)
		subscriptions.PATCH("/:id/status", h.subscriptions.UpdateSubscriptionStatus)
		subscriptions.POST("/run-billing", h.subscriptions.RunBilling)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", h.products.CreateProduct)
		products.GET("", h.products.ListProducts)
		products.GET("/:id", h.products.GetProduct)
		products.POST("/:id/stock", h.products.AdjustStock)
	}

	rg.GET(PathDashboard, h.dashboard.GetSummary)
}
