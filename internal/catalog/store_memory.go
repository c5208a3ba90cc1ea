package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// MemStore serves the catalog from a declaration-ordered in-memory list.
// Queries are linear scans; at two dozen products an index would be noise.
type MemStore struct {
	mu       sync.Mutex
	rng      *rand.Rand
	products []Product
	byID     map[string]int
}

// NewMemStore returns a store seeded with the built-in jewelry catalog.
func NewMemStore() *MemStore {
	s, _ := NewMemStoreWith(defaultCatalog(), nil)
	return s
}

// NewMemStoreWith builds a store over the given products, validating catalog
// invariants first. A nil rng means a time-seeded source; tests pass a fixed
// seed to make Random deterministic.
func NewMemStoreWith(products []Product, rng *rand.Rand) (*MemStore, error) {
	if err := ValidateProducts(products); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &MemStore{
		rng:      rng,
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) All(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

func (s *MemStore) ByCategory(ctx context.Context, c Category) ([]Product, error) {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Featured(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) ByID(ctx context.Context, id string) (Product, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.products[i], true, nil
}

func (s *MemStore) Random(ctx context.Context, c Category) (Product, bool, error) {
	pool := s.products
	if c != "" {
		pool, _ = s.ByCategory(ctx, c)
	}
	if len(pool) == 0 {
		return Product{}, false, nil
	}

	s.mu.Lock()
	i := s.rng.Intn(len(pool))
	s.mu.Unlock()

	return pool[i], true, nil
}
