package kv

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blob"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStore(t *testing.T) repository.KVStore {
	t.Helper()

	store, err := blob.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestGuestCartRepository_MissingReadsEmpty(t *testing.T) {
	repo := NewGuestCartRepository(newMemStore(t), newDiscardLogger())

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.CartKindGuest, cart.Kind)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalAmount.IsZero())
	assert.Zero(t, cart.TotalItems)
}

func TestGuestCartRepository_CorruptReadsEmpty(t *testing.T) {
	store := newMemStore(t)
	require.NoError(t, store.Set(context.Background(), constants.GuestCartKey, []byte("{not json")))
	repo := NewGuestCartRepository(store, newDiscardLogger())

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestGuestCartRepository_RoundTripRecomputesTotals(t *testing.T) {
	store := newMemStore(t)
	repo := NewGuestCartRepository(store, newDiscardLogger())
	ctx := context.Background()

	cart := entity.NewGuestCart()
	item := entity.LineItem{
		ID:        "guest_1",
		ProductID: 7,
		UnitPrice: decimal.NewFromInt(125000),
		AddedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	item.SetQuantity(2)
	cart.Items = append(cart.Items, item)
	cart.Recalculate()
	require.NoError(t, repo.Save(ctx, cart))

	// tamper with stored totals; they must be rebuilt from items
	require.NoError(t, store.Set(ctx, constants.GuestCartKey,
		[]byte(`{"items":[{"id":"guest_1","productId":7,"quantity":2,"unitPrice":125000,"totalPrice":250000}],"totalAmount":1,"totalItems":99}`)))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "guest_1", loaded.Items[0].ID)
	assert.True(t, decimal.NewFromInt(250000).Equal(loaded.TotalAmount))
	assert.Equal(t, 2, loaded.TotalItems)
}

func TestGuestCartRepository_StoredShape(t *testing.T) {
	store := newMemStore(t)
	repo := NewGuestCartRepository(store, newDiscardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.NewGuestCart()))

	data, err := store.Get(ctx, constants.GuestCartKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"totalAmount":"0","totalItems":0}`, string(data))

	require.NoError(t, repo.Delete(ctx))
	_, err = store.Get(ctx, constants.GuestCartKey)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSessionRepository_User(t *testing.T) {
	store := newMemStore(t)
	repo := NewSessionRepository(store, newDiscardLogger())
	ctx := context.Background()

	user, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.SaveUser(ctx, &entity.User{FullName: "Lan Nguyen", Email: "lan@example.com"}))
	user, err = repo.LoadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "lan@example.com", user.Email)

	require.NoError(t, store.Set(ctx, constants.UserKey, []byte("garbage")))
	user, err = repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user, "corrupt record means logged out")

	require.NoError(t, repo.DeleteUser(ctx))
	user, err = repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepository_Cookies(t *testing.T) {
	repo := NewSessionRepository(newMemStore(t), newDiscardLogger())
	ctx := context.Background()

	data, err := repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, repo.SaveCookies(ctx, []byte(`[]`)))
	data, err = repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	require.NoError(t, repo.DeleteCookies(ctx))
	data, err = repo.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestWithPrefix(t *testing.T) {
	base := newMemStore(t)
	ctx := context.Background()

	assert.Same(t, base, WithPrefix("", base))

	prefixed := WithPrefix("shop1/", base)
	require.NoError(t, prefixed.Set(ctx, constants.UserKey, []byte("{}")))

	_, err := base.Get(ctx, "shop1/"+constants.UserKey)
	require.NoError(t, err)
	_, err = base.Get(ctx, constants.UserKey)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, prefixed.Delete(ctx, constants.UserKey))
	_, err = prefixed.Get(ctx, constants.UserKey)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}
