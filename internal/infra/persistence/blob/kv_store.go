// Package blob stores client state as objects in a gocloud.dev bucket.
// file:// keeps state on local disk; mem:// is used in tests.
package blob

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

type kvStore struct {
	bucket *blob.Bucket
}

// Open opens the bucket at bucketURL as a KVStore
func Open(ctx context.Context, bucketURL string) (repository.KVStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &kvStore{bucket: bucket}, nil
}

// Get returns the object stored under key
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read object %s", key)
	}

	return data, nil
}

// Set writes the object stored under key
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "write object %s", key)
	}

	return nil
}

// Delete removes the object stored under key
func (s *kvStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

// Close closes the bucket
func (s *kvStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
