package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCheckoutUsecase) {
	t.Helper()

	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/checkout", h.BeginCheckout)
	e.GET("/checkout/:id", h.GetCheckout)
	e.PUT("/checkout/:id/address", h.SelectAddress)
	e.PUT("/checkout/:id/payment-method", h.SelectPaymentMethod)
	e.PUT("/checkout/:id/discount", h.ApplyDiscount)
	e.POST("/checkout/:id/order", h.PlaceOrder)

	return e, checkoutUC
}

func TestCheckoutHandler_Begin(t *testing.T) {
	e, checkoutUC := newCheckoutTestEcho(t)
	checkoutUC.EXPECT().
		Begin(mock.Anything, &usecase.BeginCheckoutInput{CartItemIDs: []string{"501"}}).
		Return(&entity.Checkout{ID: uuid.New(), Step: entity.CheckoutStepAddress}, nil).
		Once()
	checkoutUC.EXPECT().
		Begin(mock.Anything, &usecase.BeginCheckoutInput{}).
		Return(nil, domainerrors.ErrLoginRequired).
		Once()

	requireStatus(t, serve(e, http.MethodPost, "/checkout", `{"cartItemIds":["501"]}`), http.StatusCreated)

	rec := serve(e, http.MethodPost, "/checkout", "")
	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "LOGIN_REQUIRED", decodeEnvelope(t, rec).Error.Code)
}

func TestCheckoutHandler_RejectsBadID(t *testing.T) {
	e, _ := newCheckoutTestEcho(t)

	rec := serve(e, http.MethodGet, "/checkout/not-a-uuid", "")

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestCheckoutHandler_Steps(t *testing.T) {
	e, checkoutUC := newCheckoutTestEcho(t)
	id := uuid.New()
	checkout := &entity.Checkout{ID: id, Step: entity.CheckoutStepReview}

	checkoutUC.EXPECT().SelectAddress(mock.Anything, id, int64(9)).Return(checkout, nil).Once()
	checkoutUC.EXPECT().SelectPaymentMethod(mock.Anything, id, entity.PaymentMethodBankTransfer).Return(checkout, nil).Once()
	checkoutUC.EXPECT().ApplyDiscountCode(mock.Anything, id, "SALE10").Return(checkout, nil).Once()
	checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, id, &usecase.PlaceOrderInput{Notes: "Gọi trước khi giao"}).
		Return(&entity.Checkout{ID: id, Step: entity.CheckoutStepCompleted}, nil).
		Once()

	base := "/checkout/" + id.String()
	requireStatus(t, serve(e, http.MethodPut, base+"/address", `{"addressId":9}`), http.StatusOK)
	requireStatus(t, serve(e, http.MethodPut, base+"/payment-method", `{"paymentMethod":"bank_transfer"}`), http.StatusOK)
	requireStatus(t, serve(e, http.MethodPut, base+"/discount", `{"code":"SALE10"}`), http.StatusOK)
	requireStatus(t, serve(e, http.MethodPost, base+"/order", `{"notes":"Gọi trước khi giao"}`), http.StatusCreated)
}

func TestCheckoutHandler_SelectAddressValidation(t *testing.T) {
	e, _ := newCheckoutTestEcho(t)

	rec := serve(e, http.MethodPut, "/checkout/"+uuid.NewString()+"/address", `{"addressId":0}`)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestCheckoutHandler_CompletedConflict(t *testing.T) {
	e, checkoutUC := newCheckoutTestEcho(t)
	id := uuid.New()
	checkoutUC.EXPECT().PlaceOrder(mock.Anything, id, mock.Anything).Return(nil, domainerrors.ErrCheckoutCompleted).Once()

	rec := serve(e, http.MethodPost, "/checkout/"+id.String()+"/order", "")

	requireStatus(t, rec, http.StatusConflict)
}
