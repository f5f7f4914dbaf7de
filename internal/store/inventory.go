package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/rs/zerolog/log"
)

// Inventory owns every catalog entry and is the only component allowed to
// mutate stock counters. Cart lines hold reservations against it; the
// checkout engine commits those reservations into permanent deductions.
type Inventory struct {
	mu      sync.RWMutex
	entries map[string]*model.Product
}

func NewInventory() *Inventory {
	return &Inventory{entries: make(map[string]*model.Product)}
}

// AddOrMerge inserts a new catalog entry or, when the ID already exists,
// adds the incoming on-hand count to the existing entry. Never fails.
// Reservations on the incoming value are ignored: reservations are created
// only through Reserve.
func (inv *Inventory) AddOrMerge(p model.Product) model.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if existing, ok := inv.entries[p.ID]; ok {
		existing.OnHand += p.OnHand
		log.Debug().Str("product_id", p.ID).Int("added", p.OnHand).
			Int("on_hand", existing.OnHand).Msg("inventory: merged stock")
		return *existing
	}

	entry := model.Product{ID: p.ID, Name: p.Name, Price: p.Price, OnHand: p.OnHand}
	inv.entries[p.ID] = &entry
	log.Debug().Str("product_id", p.ID).Int("on_hand", entry.OnHand).Msg("inventory: added product")
	return entry
}

// Get returns a copy of the entry for id.
func (inv *Inventory) Get(id string) (model.Product, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	e, ok := inv.entries[id]
	if !ok {
		return model.Product{}, false
	}
	return *e, true
}

// Adjust changes on-hand stock by delta. Positive deltas (restock, rollback)
// always succeed; negative deltas are rejected with ErrInsufficientStock when
// they would cut into reserved units or push stock below zero.
func (inv *Inventory) Adjust(id string, delta int) (model.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	e, ok := inv.entries[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	if delta < 0 && -delta > e.OnHand-e.Reserved {
		return model.Product{}, fmt.Errorf("product %q has %d available: %w", id, e.OnHand-e.Reserved, ErrInsufficientStock)
	}
	e.OnHand += delta
	log.Debug().Str("product_id", id).Int("delta", delta).Int("on_hand", e.OnHand).Msg("inventory: stock adjusted")
	return *e, nil
}

// Reserve holds qty units against an open cart line. The units stay on hand
// but are no longer available to other Reserve or negative Adjust calls.
func (inv *Inventory) Reserve(id string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	e, ok := inv.entries[id]
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	if qty > e.OnHand-e.Reserved {
		return fmt.Errorf("product %q has %d available, requested %d: %w", id, e.OnHand-e.Reserved, qty, ErrInsufficientStock)
	}
	e.Reserved += qty
	return nil
}

// Release returns qty previously reserved units to the available pool.
func (inv *Inventory) Release(id string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	e, ok := inv.entries[id]
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	if qty > e.Reserved {
		return fmt.Errorf("product %q has only %d reserved, release of %d rejected: %w", id, e.Reserved, qty, ErrInvalidQuantity)
	}
	e.Reserved -= qty
	return nil
}

// CommitAll converts the reservations backing the given cart lines into
// permanent deductions. All lines are validated before any entry is touched,
// so a failure leaves the inventory unchanged.
func (inv *Inventory) CommitAll(lines []model.CartLine) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	needed := make(map[string]int, len(lines))
	for _, l := range lines {
		needed[l.ProductID] += l.Quantity
	}
	for id, qty := range needed {
		e, ok := inv.entries[id]
		if !ok {
			return fmt.Errorf("product %q: %w", id, ErrNotFound)
		}
		if qty > e.Reserved {
			return fmt.Errorf("product %q has %d reserved, commit of %d rejected: %w", id, e.Reserved, qty, ErrInvalidQuantity)
		}
	}
	for id, qty := range needed {
		e := inv.entries[id]
		e.Reserved -= qty
		e.OnHand -= qty
		log.Debug().Str("product_id", id).Int("qty", qty).Int("on_hand", e.OnHand).Msg("inventory: reservation committed")
	}
	return nil
}

// Snapshot returns a point-in-time copy of every entry, sorted by ID.
// Calling it twice without intervening mutation yields equal slices.
func (inv *Inventory) Snapshot() []model.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]model.Product, 0, len(inv.entries))
	for _, e := range inv.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of catalog entries.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.entries)
}
