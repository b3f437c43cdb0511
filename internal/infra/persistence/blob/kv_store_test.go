package blob

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_MemBucket(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "guest_cart")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "guest_cart", []byte(`{"items":[]}`)))
	data, err := store.Get(ctx, "guest_cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))

	require.NoError(t, store.Set(ctx, "guest_cart", []byte(`{"items":[1]}`)))
	data, err = store.Get(ctx, "guest_cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[1]}`, string(data))

	require.NoError(t, store.Delete(ctx, "guest_cart"))
	_, err = store.Get(ctx, "guest_cart")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Delete(ctx, "user"))
}

func TestKVStore_FileBucketSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	url := "file://" + filepath.ToSlash(t.TempDir())

	store, err := Open(ctx, url)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user", []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, url)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c"}`, string(data))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
