// Package repository provides the in-memory entity stores. Each store is a
// mutex-guarded map plus an insertion-order index; reads hand out deep copies
// so callers can never alias the authoritative record.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateID = errors.New("duplicate entity id")
	ErrNotFound    = errors.New("entity not found")
)

// Collection kind names published on the change bus.
const (
	KindCustomers     = "customers"
	KindLeads         = "leads"
	KindQuotes        = "quotes"
	KindInvoices      = "invoices"
	KindTickets       = "tickets"
	KindSubscriptions = "subscriptions"
	KindProducts      = "products"
)

// Record is the constraint every stored entity satisfies.
type Record[T any] interface {
	GetID() string
	Clone() T
}

// Memory is the authoritative in-memory collection for one entity type.
// List returns entities in insertion order; nothing is ever removed.
type Memory[T Record[T]] struct {
	mu    sync.RWMutex
	kind  string
	items map[string]T
	order []string
	bus   *ChangeBus
}

func NewMemory[T Record[T]](kind string, bus *ChangeBus) *Memory[T] {
	return &Memory[T]{
		kind:  kind,
		items: map[string]T{},
		bus:   bus,
	}
}

// Create inserts a new entity. The id must already be assigned by the use
// case (ids are generated at creation and never reused).
func (m *Memory[T]) Create(_ context.Context, e T) (T, error) {
	id := e.GetID()
	if id == "" {
		var zero T
		return zero, fmt.Errorf("%s: missing id on create", m.kind)
	}

	m.mu.Lock()
	if _, exists := m.items[id]; exists {
		m.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("%s %s: %w", m.kind, id, ErrDuplicateID)
	}
	m.items[id] = e.Clone()
	m.order = append(m.order, id)
	m.mu.Unlock()

	m.bus.publish(Change{Kind: m.kind, ID: id, Op: "created"})
	return e, nil
}

// Save replaces an existing entity with the given full record.
func (m *Memory[T]) Save(_ context.Context, e T) (T, error) {
	id := e.GetID()

	m.mu.Lock()
	if _, exists := m.items[id]; !exists {
		m.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("%s %s: %w", m.kind, id, ErrNotFound)
	}
	m.items[id] = e.Clone()
	m.mu.Unlock()

	m.bus.publish(Change{Kind: m.kind, ID: id, Op: "updated"})
	return e, nil
}

// GetByID returns a copy of the entity, or the zero value with no error when
// the id is unknown; callers check for an empty id.
func (m *Memory[T]) GetByID(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[id]
	if !ok {
		var zero T
		return zero, nil
	}
	return e.Clone(), nil
}

// List returns copies of all entities in insertion order.
func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id].Clone())
	}
	return out, nil
}
