// Package cart maintains the per-session shopping cart: line items with
// add-time product snapshots and derived totals.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"JewelStore/internal/persist"
)

const slotKind = "cart"

// ProductInfo is the snapshot a caller supplies when adding to the cart.
// Fields are copied into the line item; a later catalog price change never
// touches items already in the cart.
type ProductInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image"`
	Category   string `json:"category"`
}

type LineItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
}

type state struct {
	Items []LineItem `json:"items"`
}

// Store owns the cart slot. Every mutation is a synchronous
// load-mutate-save round through the persistence layer; when a mutation
// returns nil, the new state has been persisted.
type Store struct {
	mu      sync.Mutex
	persist persist.Store
	log     *zap.Logger
}

func NewStore(p persist.Store, log *zap.Logger) *Store {
	return &Store{persist: p, log: log}
}

// Add merges the product into the cart: an existing line item's quantity is
// incremented, otherwise a new line item with quantity 1 is appended.
func (s *Store) Add(ctx context.Context, sessionID string, p ProductInfo) error {
	return s.update(ctx, sessionID, func(st *state) {
		for i := range st.Items {
			if st.Items[i].ID == p.ID {
				st.Items[i].Quantity++
				return
			}
		}
		st.Items = append(st.Items, LineItem{
			ID:         p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Image:      p.Image,
			Category:   p.Category,
			Quantity:   1,
		})
	})
}

// Remove deletes the line item with the given id; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, sessionID, id string) error {
	return s.update(ctx, sessionID, func(st *state) {
		st.Items = deleteItem(st.Items, id)
	})
}

// SetQuantity sets a line item's quantity directly. A non-positive quantity
// removes the item: a zero or negative row must never exist.
func (s *Store) SetQuantity(ctx context.Context, sessionID, id string, quantity int) error {
	return s.update(ctx, sessionID, func(st *state) {
		if quantity <= 0 {
			st.Items = deleteItem(st.Items, id)
			return
		}
		for i := range st.Items {
			if st.Items[i].ID == id {
				st.Items[i].Quantity = quantity
				return
			}
		}
	})
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		st.Items = nil
	})
}

func (s *Store) Items(ctx context.Context, sessionID string) ([]LineItem, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Items, nil
}

// TotalItems is the sum of all quantities, not the count of distinct lines.
func (s *Store) TotalItems(ctx context.Context, sessionID string) (int, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return totalItems(st.Items), nil
}

func (s *Store) TotalCents(ctx context.Context, sessionID string) (int64, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return totalCents(st.Items), nil
}

func totalItems(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func totalCents(items []LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.PriceCents * int64(it.Quantity)
	}
	return sum
}

func deleteItem(items []LineItem, id string) []LineItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) update(ctx context.Context, sessionID string, fn func(*state)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	fn(&st)
	return s.save(ctx, sessionID, st)
}

func (s *Store) load(ctx context.Context, sessionID string) (state, error) {
	doc, ok, err := s.persist.Load(ctx, persist.SlotKey(slotKind, sessionID))
	if err != nil {
		return state{}, err
	}
	if !ok {
		return state{}, nil
	}

	var st state
	if err := json.Unmarshal(doc, &st); err != nil {
		// Malformed slot: start over from the empty state.
		if s.log != nil {
			s.log.Warn("cart slot malformed, resetting", zap.String("session_id", sessionID), zap.Error(err))
		}
		return state{}, nil
	}
	return st, nil
}

func (s *Store) save(ctx context.Context, sessionID string, st state) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.persist.Save(ctx, persist.SlotKey(slotKind, sessionID), doc)
}
