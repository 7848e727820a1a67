package store

import "context"

// KV is the synchronous string-keyed persistent map every collection lives
// in. Writes are durable before SetItem returns; there is no buffering or
// batching. Implementations must be safe for use from concurrent handlers.
type KV interface {
	// GetItem returns the raw value stored under key. The boolean reports
	// whether the key exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, fully replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes the key. Removing an absent key is a no-op.
	RemoveItem(ctx context.Context, key string) error
}
