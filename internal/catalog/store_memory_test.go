package catalog

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_ByCategoryKeepsCatalogOrder(t *testing.T) {
	s := NewMemStore()

	gold, err := s.ByCategory(context.Background(), CategoryGold)
	require.NoError(t, err)
	require.Len(t, gold, 6)

	for i, p := range gold {
		assert.Equal(t, CategoryGold, p.Category)
		if i > 0 {
			assert.Less(t, gold[i-1].ID, p.ID, "seed declares gold products in id order")
		}
	}
}

func TestMemStore_UnknownCategoryIsEmptyNotError(t *testing.T) {
	s := NewMemStore()

	got, err := s.ByCategory(context.Background(), Category("platinum"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemStore_Featured(t *testing.T) {
	s := NewMemStore()

	featured, err := s.Featured(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, featured)

	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestMemStore_ByID(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	p, ok, err := s.ByID(ctx, "gold-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Royal Gold Necklace", p.Name)

	_, ok, err = s.ByID(ctx, "no-such-product")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_RandomIsSeedable(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "A", Category: CategoryGold},
		{ID: "p2", Name: "B", Category: CategoryGold},
		{ID: "p3", Name: "C", Category: CategorySilver},
	}

	a, err := NewMemStoreWith(products, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := NewMemStoreWith(products, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		pa, ok, err := a.Random(ctx, "")
		require.NoError(t, err)
		require.True(t, ok)

		pb, _, _ := b.Random(ctx, "")
		assert.Equal(t, pa.ID, pb.ID, "same seed must yield the same sequence")
	}

	p, ok, err := a.Random(ctx, CategorySilver)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "p3", p.ID)
}

func TestMemStore_RandomEmptyPool(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Random(context.Background(), Category("unknown"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewMemStoreWith_RejectsInvalidCatalogs(t *testing.T) {
	cases := map[string][]Product{
		"duplicate id": {
			{ID: "p1", Category: CategoryGold},
			{ID: "p1", Category: CategoryGold},
		},
		"unknown category": {
			{ID: "p1", Category: Category("bronze")},
		},
		"negative price": {
			{ID: "p1", Category: CategoryGold, PriceCents: -1},
		},
		"empty id": {
			{Category: CategoryGold},
		},
	}

	for name, products := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMemStoreWith(products, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadProducts(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.json")
	doc := `[
		{"id": "g-1", "name": "Ring", "price_cents": 1000, "image": "x", "description": "d", "category": "gold"},
		{"id": "g-2", "name": "Band", "price_cents": 2000, "image": "y", "description": "d", "category": "gems", "gem_type": "Opal"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	products, err := LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Opal", products[1].GemType)
}

func TestLoadProducts_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.json")
	doc := `[{"id": "g-1", "name": "Ring", "price_cents": 1000, "category": "gold", "stock": 5}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := LoadProducts(path)
	assert.Error(t, err)
}
