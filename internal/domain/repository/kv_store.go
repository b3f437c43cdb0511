package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value store backing local client state.
// Values are opaque bytes; the repositories above it own the encoding.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store
	Close() error
}
