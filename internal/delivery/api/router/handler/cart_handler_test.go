package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCartUsecase) {
	t.Helper()

	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/cart", h.GetCart)
	e.DELETE("/cart", h.ClearCart)
	e.POST("/cart/items", h.AddItem)
	e.PUT("/cart/items/:id", h.UpdateItem)
	e.DELETE("/cart/items/:id", h.RemoveItem)

	return e, cartUC
}

func testGuestCart() *entity.Cart {
	item := entity.LineItem{ID: "guest_1", ProductID: 7, ProductName: "Áo thun", UnitPrice: decimal.NewFromInt(125000)}
	item.SetQuantity(2)
	cart := &entity.Cart{Kind: entity.CartKindGuest, Items: []entity.LineItem{item}}
	cart.Recalculate()

	return cart
}

func TestCartHandler_GetCart(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	cartUC.EXPECT().GetCart(mock.Anything).Return(testGuestCart(), nil).Once()

	rec := serve(e, http.MethodGet, "/cart", "")

	requireStatus(t, rec, http.StatusOK)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "req-1", env.Meta.RequestID)

	var cart entity.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, decimal.NewFromInt(250000).Equal(cart.TotalAmount))
}

func TestCartHandler_AddItem(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	cartUC.EXPECT().
		AddToCart(mock.Anything, &usecase.AddToCartInput{ProductID: 7, Quantity: 2}).
		Return(testGuestCart(), nil).
		Once()

	rec := serve(e, http.MethodPost, "/cart/items", `{"productId":7,"quantity":2}`)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCartHandler_AddItemValidation(t *testing.T) {
	e, _ := newCartTestEcho(t)

	rec := serve(e, http.MethodPost, "/cart/items", `{"productId":7,"quantity":0}`)
	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec = serve(e, http.MethodPost, "/cart/items", `{"productId":"x"`)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_UpdateItemMapsDomainErrors(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	cartUC.EXPECT().
		UpdateItem(mock.Anything, "abc", 3).
		Return(nil, domainerrors.ErrInvalidCartItemID.WithDetails("abc")).
		Once()

	rec := serve(e, http.MethodPut, "/cart/items/abc", `{"quantity":3}`)

	requireStatus(t, rec, domainerrors.ErrInvalidCartItemID.HTTPCode())
	env := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidCartItemID.ErrorCode(), env.Error.Code)
	assert.Equal(t, "abc", env.Error.Details)
}

func TestCartHandler_UpdateItemNonPositiveQuantityReachesRouter(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	cartUC.EXPECT().UpdateItem(mock.Anything, "guest_1", -1).Return(entity.NewGuestCart(), nil).Once()
	cartUC.EXPECT().
		UpdateItem(mock.Anything, "501", 0).
		Return(nil, domainerrors.ErrInvalidQuantity).
		Once()

	requireStatus(t, serve(e, http.MethodPut, "/cart/items/guest_1", `{"quantity":-1}`), http.StatusOK)

	rec := serve(e, http.MethodPut, "/cart/items/501", `{"quantity":0}`)
	requireStatus(t, rec, domainerrors.ErrInvalidQuantity.HTTPCode())
	assert.Equal(t, domainerrors.ErrInvalidQuantity.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	empty := entity.NewGuestCart()
	cartUC.EXPECT().RemoveItem(mock.Anything, "guest_1").Return(empty, nil).Once()
	cartUC.EXPECT().ClearCart(mock.Anything).Return(empty, nil).Once()

	requireStatus(t, serve(e, http.MethodDelete, "/cart/items/guest_1", ""), http.StatusOK)
	requireStatus(t, serve(e, http.MethodDelete, "/cart", ""), http.StatusOK)
}

func TestCartHandler_GatewayFailureIsBadGateway(t *testing.T) {
	e, cartUC := newCartTestEcho(t)
	cartUC.EXPECT().
		GetCart(mock.Anything).
		Return(nil, domainerrors.NewGatewayError(http.MethodGet, "ShoppingCart", http.StatusInternalServerError, "")).
		Once()

	rec := serve(e, http.MethodGet, "/cart", "")

	requireStatus(t, rec, http.StatusBadGateway)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "GATEWAY_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details, "5xx responses carry no details")
}
