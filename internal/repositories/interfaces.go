package repositories

import (
	"context"
)

// KVStore is the string key-value persistence port behind the prediction store.
// Get returns "" with a nil error when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
