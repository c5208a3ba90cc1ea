// Package compare holds up to three full product snapshots per session for
// side-by-side viewing. The store only guarantees the snapshots are stable
// and capacity-bounded; callers derive the comparison table themselves.
package compare

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
)

const (
	slotKind = "compare"

	// MaxProducts is the hard capacity cap. Adds beyond it are rejected,
	// never evicted.
	MaxProducts = 3
)

type state struct {
	Products []catalog.Product `json:"products"`
}

type Store struct {
	mu      sync.Mutex
	persist persist.Store
	log     *zap.Logger
}

func NewStore(p persist.Store, log *zap.Logger) *Store {
	return &Store{persist: p, log: log}
}

// Add appends a snapshot unless the set is full or the product id is
// already present; both cases are silent no-ops, matching the UI which
// disables the action when the precondition fails.
func (s *Store) Add(ctx context.Context, sessionID string, p catalog.Product) error {
	return s.update(ctx, sessionID, func(st *state) {
		if len(st.Products) >= MaxProducts {
			return
		}
		for _, existing := range st.Products {
			if existing.ID == p.ID {
				return
			}
		}
		st.Products = append(st.Products, p)
	})
}

func (s *Store) Remove(ctx context.Context, sessionID, id string) error {
	return s.update(ctx, sessionID, func(st *state) {
		out := st.Products[:0]
		for _, p := range st.Products {
			if p.ID != id {
				out = append(out, p)
			}
		}
		st.Products = out
	})
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		st.Products = nil
	})
}

func (s *Store) Products(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Products, nil
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
			s.log.Warn("compare slot malformed, resetting", zap.String("session_id", sessionID), zap.Error(err))
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
