// Package wishlist maintains the per-session set of liked product
// references. Entries hold only the product id and insertion time; product
// data is resolved through the catalog at read time.
package wishlist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
)

const slotKind = "wishlist"

type Entry struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Resolved pairs a wishlist entry with its current catalog product.
type Resolved struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

type state struct {
	Entries []Entry `json:"entries"`
}

type Store struct {
	mu      sync.Mutex
	persist persist.Store
	catalog catalog.Store
	log     *zap.Logger
	now     func() time.Time
}

func NewStore(p persist.Store, c catalog.Store, log *zap.Logger) *Store {
	return &Store{
		persist: p,
		catalog: c,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add is idempotent: an already-present product id leaves the wishlist
// unchanged.
func (s *Store) Add(ctx context.Context, sessionID, productID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		for _, e := range st.Entries {
			if e.ProductID == productID {
				return
			}
		}
		st.Entries = append(st.Entries, Entry{ProductID: productID, AddedAt: s.now()})
	})
}

func (s *Store) Remove(ctx context.Context, sessionID, productID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		out := st.Entries[:0]
		for _, e := range st.Entries {
			if e.ProductID != productID {
				out = append(out, e)
			}
		}
		st.Entries = out
	})
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		st.Entries = nil
	})
}

func (s *Store) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, e := range st.Entries {
		if e.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Entries, nil
}

// Resolved returns the wishlist with full product data. Entries whose
// product no longer exists in the catalog are silently dropped, never an
// error.
func (s *Store) Resolved(ctx context.Context, sessionID string) ([]Resolved, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]Resolved, 0, len(st.Entries))
	for _, e := range st.Entries {
		p, ok, err := s.catalog.ByID(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, Resolved{Product: p, AddedAt: e.AddedAt})
	}
	return out, nil
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
		if s.log != nil {
			s.log.Warn("wishlist slot malformed, resetting", zap.String("session_id", sessionID), zap.Error(err))
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
