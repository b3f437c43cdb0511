package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	srv       usecase.CheckoutUsecase
	store     *testStore
	carts     *mockUsecase.MockUserCartUsecase
	summaries *mockUsecase.MockOrderSummaryUsecase
	addresses *mockService.MockAddressGateway
	payments  *mockUsecase.MockPaymentUsecase
	orders    *mockService.MockOrderGateway
	events    *eventRecorder
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	bus := newTestBus()
	f := &checkoutFixture{
		store:     newTestStore(t),
		carts:     mockUsecase.NewMockUserCartUsecase(t),
		summaries: mockUsecase.NewMockOrderSummaryUsecase(t),
		addresses: mockService.NewMockAddressGateway(t),
		payments:  mockUsecase.NewMockPaymentUsecase(t),
		orders:    mockService.NewMockOrderGateway(t),
		events:    recordEvents(bus, service.EventCartChanged),
	}
	f.srv = NewCheckoutService(CheckoutServiceParams{
		Sessions:  f.store.sessions,
		Carts:     f.carts,
		Summaries: f.summaries,
		Addresses: f.addresses,
		Payments:  f.payments,
		Orders:    f.orders,
		Events:    bus,
		Logger:    newDiscardLogger(),
	})

	return f
}

func testSummary(items []entity.LineItem, addressID int64, code string) *entity.OrderSummary {
	return &entity.OrderSummary{
		Items:       items,
		Subtotal:    decimal.NewFromInt(250000),
		ShippingFee: decimal.NewFromInt(30000),
		Total:       decimal.NewFromInt(280000),
		Source:      entity.SummarySourceFallback,
		AddressID:   addressID,
		Fingerprint: summaryFingerprint(items, addressID, code),
	}
}

// beginWithDefaultAddress starts a checkout of two lines with address 9 as the default.
func (f *checkoutFixture) beginWithDefaultAddress(t *testing.T) *entity.Checkout {
	t.Helper()

	f.store.login(t)
	cart := userCart(userLine("501", 1, 125000, 2), userLine("502", 2, 50000, 1))
	f.carts.EXPECT().Get(mock.Anything).Return(cart, nil).Once()
	f.payments.EXPECT().ListMethods(mock.Anything).Return(defaultPaymentMethods()).Once()
	f.addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{
		{ID: 8, City: "Hà Nội"},
		{ID: 9, City: "Hồ Chí Minh", IsDefault: true},
	}, nil).Once()
	f.summaries.EXPECT().
		Calculate(mock.Anything, mock.Anything, int64(9), "").
		RunAndReturn(func(_ context.Context, items []entity.LineItem, addressID int64, code string) *entity.OrderSummary {
			return testSummary(items, addressID, code)
		}).
		Once()

	checkout, err := f.srv.Begin(context.Background(), &usecase.BeginCheckoutInput{})
	require.NoError(t, err)

	return checkout
}

func TestCheckoutService_BeginRequiresLogin(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout, err := f.srv.Begin(context.Background(), &usecase.BeginCheckoutInput{})

	assert.Nil(t, checkout)
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)
}

func TestCheckoutService_BeginEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.login(t)

	f.carts.EXPECT().Get(mock.Anything).Return(userCart(), nil).Once()

	_, err := f.srv.Begin(context.Background(), &usecase.BeginCheckoutInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCheckout)
}

func TestCheckoutService_BeginUnknownCartItem(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.login(t)

	f.carts.EXPECT().Get(mock.Anything).Return(userCart(userLine("501", 1, 125000, 2)), nil).Once()

	_, err := f.srv.Begin(context.Background(), &usecase.BeginCheckoutInput{CartItemIDs: []string{"777"}})
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCheckoutService_BeginWithDefaultAddress(t *testing.T) {
	f := newCheckoutFixture(t)

	checkout := f.beginWithDefaultAddress(t)

	assert.Equal(t, entity.CheckoutStepPayment, checkout.Step)
	assert.Equal(t, int64(9), checkout.AddressID())
	assert.Equal(t, []string{"501", "502"}, checkout.CartItemIDs)
	require.NotNil(t, checkout.Summary)
	assert.True(t, decimal.NewFromInt(280000).Equal(checkout.Summary.Total))
	assert.Len(t, checkout.PaymentMethods, 2)
}

func TestCheckoutService_BeginSelectedItemsWithoutAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.login(t)

	cart := userCart(userLine("501", 1, 125000, 2), userLine("502", 2, 50000, 1), userLine("503", 3, 10000, 5))
	f.carts.EXPECT().Get(mock.Anything).Return(cart, nil).Once()
	f.payments.EXPECT().ListMethods(mock.Anything).Return(defaultPaymentMethods()).Once()
	f.addresses.EXPECT().ListAddresses(mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()

	checkout, err := f.srv.Begin(context.Background(), &usecase.BeginCheckoutInput{CartItemIDs: []string{"503", "501"}})
	require.NoError(t, err)

	assert.Equal(t, entity.CheckoutStepAddress, checkout.Step)
	assert.Nil(t, checkout.Summary)
	assert.Equal(t, []string{"501", "503"}, checkout.CartItemIDs, "selected lines keep cart order")
}

func TestCheckoutService_StepsAndPlaceOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)

	_, err := f.srv.SelectPaymentMethod(ctx, begun.ID, "momo")
	require.ErrorIs(t, err, domainerrors.ErrPaymentMethodUnavailable)

	checkout, err := f.srv.SelectPaymentMethod(ctx, begun.ID, entity.PaymentMethodBankTransfer)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepReview, checkout.Step)

	order := &entity.Order{ID: 77, OrderNumber: "ORD-77", Status: entity.OrderStatusPending}
	f.orders.EXPECT().
		CreateOrder(mock.Anything, &service.CreateOrderRequest{
			ShippingAddressID: 9,
			PaymentMethod:     entity.PaymentMethodBankTransfer,
			CartItemIDs:       []int64{501, 502},
			Notes:             "Giao giờ hành chính",
		}).
		Return(order, nil).
		Once()

	placed, err := f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{Notes: "Giao giờ hành chính"})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepCompleted, placed.Step)
	assert.Same(t, order, placed.Order)

	events := f.events.all()
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].TotalItems)

	_, err = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutCompleted)

	stored, err := f.srv.Get(ctx, begun.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed())
}

func TestCheckoutService_PlaceOrderRequiresAddressAndPayment(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)

	_, err := f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodRequired)
}

func TestCheckoutService_DiscountCodeRepricesAndStaleSummaryIsRecomputed(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)

	// The returned summary deliberately ignores the code, so its fingerprint goes stale.
	f.summaries.EXPECT().
		Calculate(mock.Anything, mock.Anything, int64(9), "SALE10").
		RunAndReturn(func(_ context.Context, items []entity.LineItem, addressID int64, _ string) *entity.OrderSummary {
			return testSummary(items, addressID, "")
		}).
		Twice()

	checkout, err := f.srv.ApplyDiscountCode(ctx, begun.ID, " SALE10 ")
	require.NoError(t, err)
	assert.Equal(t, "SALE10", checkout.DiscountCode)

	_, err = f.srv.SelectPaymentMethod(ctx, begun.ID, entity.PaymentMethodCashOnDelivery)
	require.NoError(t, err)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.Order{OrderNumber: "ORD-1"}, nil).Once()

	_, err = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	require.NoError(t, err)
}

func TestCheckoutService_SelectAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)

	f.addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{{ID: 8}, {ID: 9}}, nil).Twice()
	f.summaries.EXPECT().
		Calculate(mock.Anything, mock.Anything, int64(8), "").
		Return(testSummary(begun.Items, 8, "")).
		Once()

	_, err := f.srv.SelectAddress(ctx, begun.ID, 42)
	require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)

	checkout, err := f.srv.SelectAddress(ctx, begun.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), checkout.AddressID())
	assert.Equal(t, entity.CheckoutStepPayment, checkout.Step)
}

func TestCheckoutService_UnknownCheckout(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.login(t)

	_, err := f.srv.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)

	_, err = f.srv.SelectPaymentMethod(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodRequired)
}

func TestCheckoutService_ReturnedCopiesDoNotLeak(t *testing.T) {
	f := newCheckoutFixture(t)
	begun := f.beginWithDefaultAddress(t)

	begun.Items[0].Quantity = 99
	begun.Step = entity.CheckoutStepCompleted

	stored, err := f.srv.Get(context.Background(), begun.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, entity.CheckoutStepPayment, stored.Step)
}

func TestCheckoutService_PlaceOrderOnceWhileRequestInFlight(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)
	_, err := f.srv.SelectPaymentMethod(ctx, begun.ID, entity.PaymentMethodBankTransfer)
	require.NoError(t, err)

	entered := make(chan struct{})
	proceed := make(chan struct{})
	f.orders.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.CreateOrderRequest) (*entity.Order, error) {
			close(entered)
			<-proceed

			return &entity.Order{ID: 77, OrderNumber: "ORD-77"}, nil
		}).
		Once()

	var (
		wg       sync.WaitGroup
		placed   *entity.Checkout
		placeErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		placed, placeErr = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	}()
	<-entered

	_, err = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	require.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
	_, err = f.srv.ApplyDiscountCode(ctx, begun.ID, "SALE10")
	require.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)

	close(proceed)
	wg.Wait()

	require.NoError(t, placeErr)
	assert.True(t, placed.Completed())

	_, err = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutCompleted)
	assert.Len(t, f.events.all(), 1)
}

func TestCheckoutService_FailedPlaceOrderCanBeRetried(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	begun := f.beginWithDefaultAddress(t)
	_, err := f.srv.SelectPaymentMethod(ctx, begun.ID, entity.PaymentMethodCashOnDelivery)
	require.NoError(t, err)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()
	_, err = f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	require.ErrorIs(t, err, domainerrors.ErrInternalError)

	stored, err := f.srv.Get(ctx, begun.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepReview, stored.Step)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.Order{OrderNumber: "ORD-2"}, nil).Once()
	placed, err := f.srv.PlaceOrder(ctx, begun.ID, &usecase.PlaceOrderInput{})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2", placed.Order.OrderNumber)
}

func TestCheckoutService_EvictsIdleCheckouts(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	f.srv.(*checkoutService).now = func() time.Time { return clock }

	abandoned := f.beginWithDefaultAddress(t)
	completed := f.beginWithDefaultAddress(t)
	_, err := f.srv.SelectPaymentMethod(ctx, completed.ID, entity.PaymentMethodCashOnDelivery)
	require.NoError(t, err)
	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.Order{OrderNumber: "ORD-3"}, nil).Once()
	_, err = f.srv.PlaceOrder(ctx, completed.ID, &usecase.PlaceOrderInput{})
	require.NoError(t, err)

	clock = clock.Add(completedCheckoutTTL + time.Minute)

	_, err = f.srv.Get(ctx, completed.ID)
	require.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
	_, err = f.srv.Get(ctx, abandoned.ID)
	require.NoError(t, err, "open checkouts outlive completed ones")

	clock = clock.Add(abandonedCheckoutTTL)

	_, err = f.srv.Get(ctx, abandoned.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
}
