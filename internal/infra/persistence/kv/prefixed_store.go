package kv

import (
	"context"

	"storefront/internal/domain/repository"
)

// prefixedStore namespaces every key of the wrapped store.
type prefixedStore struct {
	prefix string
	next   repository.KVStore
}

// WithPrefix returns store with prefix prepended to every key. An empty prefix returns store unchanged.
func WithPrefix(prefix string, store repository.KVStore) repository.KVStore {
	if prefix == "" {
		return store
	}

	return &prefixedStore{prefix: prefix, next: store}
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.next.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, s.prefix+key)
}

func (s *prefixedStore) Close() error {
	return s.next.Close()
}
