package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestCartForTest(t *testing.T) (*guestCartService, *testStore) {
	t.Helper()

	store := newTestStore(t)
	srv := NewGuestCartService(store.carts, newTestConfig(), newDiscardLogger())

	return srv.(*guestCartService), store
}

func TestGuestCartService_AddComputesTotals(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()

	_, err := srv.Add(ctx, testProduct(1, 125000), 2, nil)
	require.NoError(t, err)
	cart, err := srv.Add(ctx, testProduct(2, 80000), 1, nil)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.True(t, decimal.NewFromInt(330000).Equal(cart.TotalAmount))
	assert.Equal(t, 3, cart.TotalItems)
	for _, item := range cart.Items {
		assert.True(t, strings.HasPrefix(item.ID, constants.GuestItemIDPrefix), item.ID)
		assert.Equal(t, testPlaceholder, item.ProductImage)
		assert.False(t, item.AddedAt.IsZero())
	}
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)

	stored, err := srv.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cart.TotalAmount.Equal(stored.TotalAmount))
	assert.Equal(t, cart.TotalItems, stored.TotalItems)
}

func TestGuestCartService_AddSameProductAndVariantIncrements(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()
	product := testProduct(1, 100000)

	_, err := srv.Add(ctx, product, 1, int64Ptr(10))
	require.NoError(t, err)
	cart, err := srv.Add(ctx, product, 2, int64Ptr(10))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(300000).Equal(cart.Items[0].TotalPrice))
	assert.Equal(t, &entity.VariantInfo{Color: "Đỏ", Size: "M"}, cart.Items[0].VariantInfo)

	cart, err = srv.Add(ctx, product, 1, int64Ptr(11))
	require.NoError(t, err)
	cart, err = srv.Add(ctx, product, 1, nil)
	require.NoError(t, err)

	assert.Len(t, cart.Items, 3, "other variant and no variant are separate lines")
	assert.Equal(t, 5, cart.TotalItems)
}

func TestGuestCartService_AddRejectsInvalidInput(t *testing.T) {
	srv, store := newGuestCartForTest(t)
	ctx := context.Background()

	_, err := srv.Add(ctx, testProduct(1, 100000), 0, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = srv.Add(ctx, nil, 1, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.False(t, store.hasKey(t, constants.GuestCartKey))
}

func TestGuestCartService_UpdateToZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	fill := func(srv *guestCartService) string {
		_, err := srv.Add(ctx, testProduct(1, 100000), 2, nil)
		require.NoError(t, err)
		cart, err := srv.Add(ctx, testProduct(2, 50000), 1, nil)
		require.NoError(t, err)

		return cart.Items[0].ID
	}

	updated, _ := newGuestCartForTest(t)
	id := fill(updated)
	afterUpdate, err := updated.Update(ctx, id, 0)
	require.NoError(t, err)

	removed, _ := newGuestCartForTest(t)
	id = fill(removed)
	afterRemove, err := removed.Remove(ctx, id)
	require.NoError(t, err)

	require.Len(t, afterUpdate.Items, 1)
	require.Len(t, afterRemove.Items, 1)
	assert.Equal(t, afterRemove.Items[0].ProductID, afterUpdate.Items[0].ProductID)
	assert.True(t, afterRemove.TotalAmount.Equal(afterUpdate.TotalAmount))
	assert.Equal(t, afterRemove.TotalItems, afterUpdate.TotalItems)
}

func TestGuestCartService_UpdateSetsQuantity(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()

	cart, err := srv.Add(ctx, testProduct(1, 100000), 1, nil)
	require.NoError(t, err)

	cart, err = srv.Update(ctx, cart.Items[0].ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.TotalItems)
	assert.True(t, decimal.NewFromInt(400000).Equal(cart.TotalAmount))
}

func TestGuestCartService_UnknownItemIsNoop(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()

	before, err := srv.Add(ctx, testProduct(1, 100000), 1, nil)
	require.NoError(t, err)

	after, err := srv.Update(ctx, "guest_missing", 5)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.Equal(t, before.Items[0].ID, after.Items[0].ID)
	assert.Equal(t, 1, after.Items[0].Quantity)

	after, err = srv.Remove(ctx, "guest_missing")
	require.NoError(t, err)
	assert.Len(t, after.Items, 1)
}

func TestGuestCartService_ClearDeletesKey(t *testing.T) {
	srv, store := newGuestCartForTest(t)
	ctx := context.Background()

	_, err := srv.Add(ctx, testProduct(1, 100000), 1, nil)
	require.NoError(t, err)
	require.True(t, store.hasKey(t, constants.GuestCartKey))

	cart, err := srv.Clear(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.TotalAmount.IsZero())
	assert.False(t, store.hasKey(t, constants.GuestCartKey))
}

func TestGuestCartService_Snapshot(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()

	_, err := srv.Add(ctx, testProduct(1, 100000), 2, int64Ptr(10))
	require.NoError(t, err)
	_, err = srv.Add(ctx, testProduct(2, 50000), 1, nil)
	require.NoError(t, err)

	items, err := srv.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TransferItem{
		{ProductID: 1, Quantity: 2, VariantID: int64Ptr(10)},
		{ProductID: 2, Quantity: 1},
	}, items)
}

func TestGuestCartService_ConcurrentAddsAreSerialized(t *testing.T) {
	srv, _ := newGuestCartForTest(t)
	ctx := context.Background()
	product := testProduct(1, 1000)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.Add(ctx, product, 1, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := srv.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 20, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(20000).Equal(cart.TotalAmount))
}
