package repository

import "sync"

// Change describes a committed mutation on a collection. Subscribers receive
// it after the store has applied the write, so a lookup from the callback
// always observes the new state.
type Change struct {
	Kind string // collection name, e.g. "invoices"
	ID   string
	Op   string // "created" or "updated"
}

// ChangeBus is the in-process "collection changed" notifier the presentation
// layer subscribes to. Callbacks run synchronously on the mutating call;
// there is exactly one logical writer at a time, so no delivery ordering
// issues arise.
type ChangeBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Change)
}

func NewChangeBus() *ChangeBus {
	return &ChangeBus{subs: map[int]func(Change){}}
}

// Subscribe registers fn and returns a cancel function that removes it.
func (b *ChangeBus) Subscribe(fn func(Change)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *ChangeBus) publish(c Change) {
	if b == nil {
		return
	}
	b.mu.RLock()
	fns := make([]func(Change), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}
