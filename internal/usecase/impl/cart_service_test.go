package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartRouterFixture struct {
	srv     usecase.CartUsecase
	store   *testStore
	user    *mockUsecase.MockUserCartUsecase
	catalog *mockService.MockCatalogGateway
	events  *eventRecorder
}

func newCartRouterFixture(t *testing.T) *cartRouterFixture {
	t.Helper()

	store := newTestStore(t)
	bus := newTestBus()
	f := &cartRouterFixture{
		store:   store,
		user:    mockUsecase.NewMockUserCartUsecase(t),
		catalog: mockService.NewMockCatalogGateway(t),
		events:  recordEvents(bus, service.EventCartChanged),
	}
	f.srv = NewCartService(CartServiceParams{
		Sessions: store.sessions,
		Guest:    NewGuestCartService(store.carts, newTestConfig(), newDiscardLogger()),
		User:     f.user,
		Catalog:  f.catalog,
		Events:   bus,
		Logger:   newDiscardLogger(),
	})

	return f
}

func TestCartService_GuestAddLooksUpProductAndPublishes(t *testing.T) {
	f := newCartRouterFixture(t)
	ctx := context.Background()

	f.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(testProduct(1, 125000), nil).Once()

	cart, err := f.srv.AddToCart(ctx, &usecase.AddToCartInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, decimal.NewFromInt(250000).Equal(cart.TotalAmount))

	events := f.events.all()
	require.Len(t, events, 1)
	assert.False(t, events[0].LoggedIn)
	assert.Equal(t, 2, events[0].TotalItems)
}

func TestCartService_GuestAddUsesGivenProduct(t *testing.T) {
	f := newCartRouterFixture(t)

	_, err := f.srv.AddToCart(context.Background(), &usecase.AddToCartInput{
		ProductID: 1,
		Quantity:  1,
		Product:   testProduct(1, 100000),
	})
	require.NoError(t, err)
	f.catalog.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestCartService_LoggedInRoutesToUserCart(t *testing.T) {
	f := newCartRouterFixture(t)
	f.store.login(t)
	ctx := context.Background()
	serverCart := userCart(userLine("501", 7, 125000, 2))

	f.user.EXPECT().
		Add(mock.Anything, &usecase.AddCartItemInput{ProductID: 7, Quantity: 2}).
		Return(serverCart, nil).
		Once()

	cart, err := f.srv.AddToCart(ctx, &usecase.AddToCartInput{ProductID: 7, Quantity: 2})
	require.NoError(t, err)
	assert.Same(t, serverCart, cart)

	events := f.events.all()
	require.Len(t, events, 1)
	assert.True(t, events[0].LoggedIn)
}

func TestCartService_ReadsLoginStatePerCall(t *testing.T) {
	f := newCartRouterFixture(t)
	ctx := context.Background()

	guestCart, err := f.srv.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "guest", string(guestCart.Kind))

	f.store.login(t)
	serverCart := userCart()
	f.user.EXPECT().Get(mock.Anything).Return(serverCart, nil).Once()

	cart, err := f.srv.GetCart(ctx)
	require.NoError(t, err)
	assert.Same(t, serverCart, cart)
}

func TestCartService_UserErrorsDoNotFallBackToGuest(t *testing.T) {
	f := newCartRouterFixture(t)
	f.store.login(t)
	gwErr := domainerrors.NewGatewayError(http.MethodPut, "ShoppingCart/items/501", http.StatusInternalServerError, "")

	f.user.EXPECT().Update(mock.Anything, "501", 3).Return(nil, gwErr).Once()

	cart, err := f.srv.UpdateItem(context.Background(), "501", 3)

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, gwErr)
	assert.Empty(t, f.events.all(), "failed mutations publish nothing")
}

func TestCartService_GuestUpdateRemoveClear(t *testing.T) {
	f := newCartRouterFixture(t)
	ctx := context.Background()

	cart, err := f.srv.AddToCart(ctx, &usecase.AddToCartInput{ProductID: 1, Quantity: 1, Product: testProduct(1, 100000)})
	require.NoError(t, err)
	id := cart.Items[0].ID

	cart, err = f.srv.UpdateItem(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems)

	cart, err = f.srv.RemoveItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = f.srv.ClearCart(ctx)
	require.NoError(t, err)

	assert.Len(t, f.events.all(), 4)
}

func TestCartService_ItemCountAndTotalSwallowErrors(t *testing.T) {
	f := newCartRouterFixture(t)
	f.store.login(t)
	ctx := context.Background()

	f.user.EXPECT().Get(mock.Anything).Return(nil, domainerrors.ErrInternalError).Twice()

	assert.Equal(t, 0, f.srv.ItemCount(ctx))
	assert.True(t, f.srv.Total(ctx).IsZero())
}

func TestCartService_ItemCountAndTotal(t *testing.T) {
	f := newCartRouterFixture(t)
	ctx := context.Background()

	_, err := f.srv.AddToCart(ctx, &usecase.AddToCartInput{ProductID: 1, Quantity: 2, Product: testProduct(1, 125000)})
	require.NoError(t, err)

	assert.Equal(t, 2, f.srv.ItemCount(ctx))
	assert.True(t, decimal.NewFromInt(250000).Equal(f.srv.Total(ctx)))
}

func TestCartService_AddRejectsInvalidQuantity(t *testing.T) {
	f := newCartRouterFixture(t)

	_, err := f.srv.AddToCart(context.Background(), &usecase.AddToCartInput{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}
