package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mergeFixture struct {
	store  *testStore
	guest  usecase.GuestCartUsecase
	user   *mockUsecase.MockUserCartUsecase
	bus    service.EventBus
	events *eventRecorder
	merge  usecase.CartMergeUsecase
}

func newMergeFixture(t *testing.T) *mergeFixture {
	t.Helper()

	store := newTestStore(t)
	bus := newTestBus()
	f := &mergeFixture{
		store:  store,
		guest:  NewGuestCartService(store.carts, newTestConfig(), newDiscardLogger()),
		user:   mockUsecase.NewMockUserCartUsecase(t),
		bus:    bus,
		events: recordEvents(bus, service.EventCartChanged),
	}
	f.merge = NewCartMergeService(f.guest, f.user, bus, newDiscardLogger())

	return f
}

func (f *mergeFixture) addGuest(t *testing.T, productID int64, quantity int, variantID *int64) {
	t.Helper()

	_, err := f.guest.Add(context.Background(), testProduct(productID, 100000), quantity, variantID)
	require.NoError(t, err)
}

func TestCartMergeService_ReplaysInOrderAndClearsGuestCart(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()
	f.addGuest(t, 1, 2, int64Ptr(10))
	f.addGuest(t, 2, 1, nil)

	var replayed []int64
	f.user.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("*usecase.AddCartItemInput")).
		Run(func(_ context.Context, input *usecase.AddCartItemInput) {
			replayed = append(replayed, input.ProductID)
		}).
		Return(userCart(), nil).
		Twice()
	merged := userCart(userLine("501", 1, 100000, 2), userLine("502", 2, 100000, 1))
	f.user.EXPECT().Get(mock.Anything).Return(merged, nil).Once()

	cart, report, err := f.merge.MergeGuestCart(ctx)
	require.NoError(t, err)

	assert.Same(t, merged, cart)
	assert.Equal(t, &usecase.MergeReport{Replayed: 2}, report)
	assert.Equal(t, []int64{1, 2}, replayed)
	assert.False(t, f.store.hasKey(t, constants.GuestCartKey))

	events := f.events.all()
	require.Len(t, events, 1)
	assert.True(t, events[0].LoggedIn)
	assert.Equal(t, 3, events[0].TotalItems)
}

func TestCartMergeService_PartialFailureStillClears(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()
	f.addGuest(t, 1, 1, nil)
	f.addGuest(t, 2, 1, nil)
	f.addGuest(t, 3, 1, nil)

	f.user.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(in *usecase.AddCartItemInput) bool { return in.ProductID == 2 })).
		Return(nil, domainerrors.ErrInternalError).
		Once()
	f.user.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(in *usecase.AddCartItemInput) bool { return in.ProductID != 2 })).
		Return(userCart(), nil).
		Twice()
	f.user.EXPECT().Get(mock.Anything).Return(userCart(), nil).Once()

	_, report, err := f.merge.MergeGuestCart(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Replayed)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, f.store.hasKey(t, constants.GuestCartKey))
}

func TestCartMergeService_SecondRunIsSkipped(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()
	f.addGuest(t, 1, 2, nil)

	f.user.EXPECT().Add(mock.Anything, mock.Anything).Return(userCart(), nil).Once()
	f.user.EXPECT().Get(mock.Anything).Return(userCart(userLine("501", 1, 100000, 2)), nil).Twice()

	_, first, err := f.merge.MergeGuestCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Replayed)

	cart, second, err := f.merge.MergeGuestCart(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, 0, second.Replayed)
	assert.Equal(t, 2, cart.TotalItems, "re-running the merge does not duplicate lines")
	assert.Len(t, f.events.all(), 1)
}

func TestCartMergeService_UserCartFetchFailure(t *testing.T) {
	f := newMergeFixture(t)
	f.addGuest(t, 1, 1, nil)

	f.user.EXPECT().Add(mock.Anything, mock.Anything).Return(userCart(), nil).Once()
	f.user.EXPECT().Get(mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()

	cart, report, err := f.merge.MergeGuestCart(context.Background())

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.Equal(t, 1, report.Replayed)
	assert.False(t, f.store.hasKey(t, constants.GuestCartKey))
}

func TestCartMergeService_OverlappingMergesReplayOnce(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()
	f.addGuest(t, 1, 1, nil)

	var adds atomic.Int32
	entered := make(chan struct{})
	proceed := make(chan struct{})
	f.user.EXPECT().
		Add(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *usecase.AddCartItemInput) (*entity.Cart, error) {
			if adds.Add(1) == 1 {
				close(entered)
				<-proceed
			}

			return userCart(), nil
		})
	f.user.EXPECT().Get(mock.Anything).Return(userCart(userLine("501", 1, 100000, 1)), nil).Twice()

	reports := make([]*usecase.MergeReport, 2)
	var wg sync.WaitGroup
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, report, err := f.merge.MergeGuestCart(ctx)
			assert.NoError(t, err)
			reports[i] = report
		}()
		if i == 0 {
			<-entered
		}
	}

	assert.Never(t, func() bool { return adds.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	close(proceed)
	wg.Wait()

	assert.Equal(t, int32(1), adds.Load())
	assert.Equal(t, 1, reports[0].Replayed)
	assert.True(t, reports[1].Skipped)
	assert.False(t, f.store.hasKey(t, constants.GuestCartKey))
}

func TestSubscribeCartMerge_MergesOnLoginOnly(t *testing.T) {
	bus := newTestBus()
	merge := mockUsecase.NewMockCartMergeUsecase(t)
	SubscribeCartMerge(bus, merge, newDiscardLogger())
	ctx := context.Background()

	merge.EXPECT().MergeGuestCart(mock.Anything).Return(userCart(), &usecase.MergeReport{}, nil).Once()

	bus.Publish(ctx, &service.Event{Type: service.EventUserChanged, LoggedIn: true})
	bus.Publish(ctx, &service.Event{Type: service.EventUserChanged, LoggedIn: false})
	bus.Publish(ctx, &service.Event{Type: service.EventCartChanged, LoggedIn: true})
}
