package cart

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one cart entry. Price is a unit price; the ledger keeps the
// derived total in sync with price×quantity over all entries.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Variant  string          `json:"variant,omitempty"`
}

// Snapshot is the serialized form written to the persistence slot after
// every mutation and handed to subscribers.
type Snapshot struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Ledger is the mutable cart aggregate. All mutators recompute the total
// from scratch rather than patching it incrementally, so it can never
// drift from the items, and write a snapshot through the configured
// store. Mutations are serialized behind the lock.
type Ledger struct {
	mu          sync.Mutex
	store       Store
	items       []Item
	total       decimal.Decimal
	subscribers []func(Snapshot)
}

// NewLedger builds a ledger rehydrated from the store. A missing or
// corrupt snapshot yields an empty cart; the persisted total is ignored
// and recomputed from the items.
func NewLedger(ctx context.Context, store Store) *Ledger {
	l := &Ledger{
		store: store,
		total: decimal.Zero,
	}
	if store == nil {
		return l
	}

	blob, err := store.Load(ctx)
	if err != nil || len(blob) == 0 {
		return l
	}
	var snapshot Snapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		return l
	}
	l.items = snapshot.Items
	l.total = sumItems(l.items)
	return l
}

// Subscribe registers a callback invoked with a snapshot after every
// mutation. Callbacks run outside the ledger lock.
func (l *Ledger) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// AddItem increments the quantity of an existing entry with the same id,
// or appends a new entry with quantity 1. The incoming quantity field is
// ignored. The returned error is only ever a persistence failure; the
// in-memory state is applied either way.
func (l *Ledger) AddItem(ctx context.Context, item Item) error {
	l.mu.Lock()
	found := false
	for i := range l.items {
		if l.items[i].ID == item.ID {
			l.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		l.items = append(l.items, item)
	}
	return l.commit(ctx)
}

// RemoveItem deletes the entry with the given id; unknown ids are a no-op.
func (l *Ledger) RemoveItem(ctx context.Context, id string) error {
	l.mu.Lock()
	l.removeLocked(id)
	return l.commit(ctx)
}

// UpdateQuantity sets an entry's quantity. A quantity of zero or less
// removes the entry; unknown ids are a no-op.
func (l *Ledger) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	l.mu.Lock()
	if quantity <= 0 {
		l.removeLocked(id)
		return l.commit(ctx)
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Quantity = quantity
			break
		}
	}
	return l.commit(ctx)
}

// Clear empties the cart and resets the total.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.items = nil
	return l.commit(ctx)
}

// ItemCount returns the sum of quantities across all entries.
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the current entries.
func (l *Ledger) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Total returns the derived cart total.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *Ledger) removeLocked(id string) {
	id = strings.TrimSpace(id)
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// commit recomputes the total, releases the lock, then persists and
// notifies. Callers must hold the lock when invoking it.
func (l *Ledger) commit(ctx context.Context) error {
	l.total = sumItems(l.items)
	snapshot := Snapshot{
		Items: make([]Item, len(l.items)),
		Total: l.total,
	}
	copy(snapshot.Items, l.items)
	subscribers := make([]func(Snapshot), len(l.subscribers))
	copy(subscribers, l.subscribers)
	l.mu.Unlock()

	var saveErr error
	if l.store != nil {
		if blob, err := json.Marshal(snapshot); err == nil {
			saveErr = l.store.Save(ctx, blob)
		} else {
			saveErr = err
		}
	}
	for _, fn := range subscribers {
		fn(snapshot)
	}
	return saveErr
}

func sumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
