package ports

import "context"

// KV is the durable key-value store every collection is persisted in. Keys
// are collection names, values are raw JSON. Writes replace the whole value;
// there are no partial updates at this layer.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
