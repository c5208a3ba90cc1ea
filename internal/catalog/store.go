package catalog

import "context"

// Store answers read-only catalog queries. The catalog is fixed data; no
// implementation exposes mutations.
//
// List queries return products in catalog declaration order. ByID and Random
// report not-found as (Product{}, false, nil), never as an error. An unknown
// category yields an empty list.
type Store interface {
	Ping(ctx context.Context) error
	All(ctx context.Context) ([]Product, error)
	ByCategory(ctx context.Context, c Category) ([]Product, error)
	Featured(ctx context.Context) ([]Product, error)
	ByID(ctx context.Context, id string) (Product, bool, error)

	// Random picks uniformly from the category subset, or from the whole
	// catalog when c is empty.
	Random(ctx context.Context, c Category) (Product, bool, error)
}
