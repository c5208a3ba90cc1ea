package recent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
)

const sid = "v_test"

func newTestStore() (*Store, *persist.MemStore) {
	p := persist.NewMemStore()
	return NewStore(p, catalog.NewMemStore(), zap.NewNop()), p
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ProductID
	}
	return out
}

func TestRecord_NewestFirst(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sid, "gold-1"))
	require.NoError(t, s.Record(ctx, sid, "gold-2"))
	require.NoError(t, s.Record(ctx, sid, "gold-3"))

	st, err := s.load(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"gold-3", "gold-2", "gold-1"}, ids(st.Entries))
}

func TestRecord_ReviewMovesToFront(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sid, "gold-1"))
	require.NoError(t, s.Record(ctx, sid, "gold-2"))
	require.NoError(t, s.Record(ctx, sid, "gold-1"))

	st, err := s.load(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"gold-1", "gold-2"}, ids(st.Entries))
}

func TestRecord_CapDropsOldest(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for i := 1; i <= MaxEntries+2; i++ {
		require.NoError(t, s.Record(ctx, sid, fmt.Sprintf("p%d", i)))
	}

	st, err := s.load(ctx, sid)
	require.NoError(t, err)
	require.Len(t, st.Entries, MaxEntries)
	assert.Equal(t, "p8", st.Entries[0].ProductID)
	assert.Equal(t, "p3", st.Entries[MaxEntries-1].ProductID)
}

func TestProducts_SkipsDanglingIDs(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sid, "gold-1"))
	require.NoError(t, s.Record(ctx, sid, "removed-product"))
	require.NoError(t, s.Record(ctx, sid, "silver-1"))

	products, err := s.Products(ctx, sid)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "silver-1", products[0].ID)
	assert.Equal(t, "gold-1", products[1].ID)
}

func TestReload_ReproducesState(t *testing.T) {
	s, backing := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sid, "gold-1"))
	require.NoError(t, s.Record(ctx, sid, "gems-2"))

	reloaded := NewStore(backing, catalog.NewMemStore(), zap.NewNop())

	products, err := reloaded.Products(ctx, sid)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "gems-2", products[0].ID)
}
