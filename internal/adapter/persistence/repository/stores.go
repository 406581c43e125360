package repository

import (
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/usecase/interfaces"
)

// One Memory instantiation per collection, asserted against the repository
// contracts the use cases depend on.

var (
	_ interfaces.ICustomerRepository     = (*Memory[entities.Customer])(nil)
	_ interfaces.ILeadRepository         = (*Memory[entities.Lead])(nil)
	_ interfaces.IQuoteRepository        = (*Memory[entities.Quote])(nil)
	_ interfaces.IInvoiceRepository      = (*Memory[entities.Invoice])(nil)
	_ interfaces.ITicketRepository       = (*Memory[entities.Ticket])(nil)
	_ interfaces.ISubscriptionRepository = (*Memory[entities.Subscription])(nil)
	_ interfaces.IProductRepository      = (*Memory[entities.Product])(nil)
)

func NewCustomerRepository(bus *ChangeBus) *Memory[entities.Customer] {
	return NewMemory[entities.Customer](KindCustomers, bus)
}

func NewLeadRepository(bus *ChangeBus) *Memory[entities.Lead] {
	return NewMemory[entities.Lead](KindLeads, bus)
}

func NewQuoteRepository(bus *ChangeBus) *Memory[entities.Quote] {
	return NewMemory[entities.Quote](KindQuotes, bus)
}

func NewInvoiceRepository(bus *ChangeBus) *Memory[entities.Invoice] {
	return NewMemory[entities.Invoice](KindInvoices, bus)
}

func NewTicketRepository(bus *ChangeBus) *Memory[entities.Ticket] {
	return NewMemory[entities.Ticket](KindTickets, bus)
}

func NewSubscriptionRepository(bus *ChangeBus) *Memory[entities.Subscription] {
	return NewMemory[entities.Subscription](KindSubscriptions, bus)
}

func NewProductRepository(bus *ChangeBus) *Memory[entities.Product] {
	return NewMemory[entities.Product](KindProducts, bus)
}
