// Package recent tracks the last products a session viewed, newest first.
package recent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
)

const (
	slotKind = "recent"

	// MaxEntries matches the original storefront's recently-viewed strip.
	MaxEntries = 6
)

type Entry struct {
	ProductID string    `json:"product_id"`
	ViewedAt  time.Time `json:"viewed_at"`
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

// Record notes a product view. A re-viewed product moves to the front; the
// list is capped at MaxEntries, dropping the oldest.
func (s *Store) Record(ctx context.Context, sessionID, productID string) error {
	return s.update(ctx, sessionID, func(st *state) {
		entries := make([]Entry, 0, MaxEntries)
		entries = append(entries, Entry{ProductID: productID, ViewedAt: s.now()})

		for _, e := range st.Entries {
			if e.ProductID == productID {
				continue
			}
			if len(entries) == MaxEntries {
				break
			}
			entries = append(entries, e)
		}

		st.Entries = entries
	})
}

// Products resolves the view history through the catalog, newest first.
// Dangling product ids are dropped.
func (s *Store) Products(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(st.Entries))
	for _, e := range st.Entries {
		p, ok, err := s.catalog.ByID(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, p)
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
			s.log.Warn("recent slot malformed, resetting", zap.String("session_id", sessionID), zap.Error(err))
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
