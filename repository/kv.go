package repository

import "context"

// KeyValueStore is the external key-value persistence provider.
// Get reports ok=false when the key has never been set.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
