package kvstore

import "context"

// Store is the keyed persistence capability every portal store is built on.
// Keys are namespaced by the caller (per-tenant suffixes); values are JSON
// documents serialized by the stores themselves.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key. Used by the danger-zone full wipe, which is
	// deliberately not tenant-scoped.
	Clear(ctx context.Context) error
}
