// Package persist is the generic slot persistence layer. Each session-scoped
// store (cart, wishlist, compare, recent, loyalty) owns a slot kind and is
// the sole writer of its keys; a slot holds one serialized JSON document
// representing the store's entire state.
package persist

import "context"

// Store is the key-value persistence contract. Load reports a missing slot
// as (nil, false, nil); owners treat malformed documents as the empty state,
// so a Load error only ever means the backend itself failed.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// SlotKey builds the persisted key for a session-scoped slot.
func SlotKey(kind, sessionID string) string {
	return kind + "/" + sessionID
}
