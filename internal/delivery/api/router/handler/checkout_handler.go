package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the checkout steps
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// SelectAddressRequest represents the request body for choosing the shipping address
type SelectAddressRequest struct {
	AddressID int64 `json:"addressId" validate:"required,gt=0"`
}

// SelectPaymentMethodRequest represents the request body for choosing the payment method
type SelectPaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// ApplyDiscountRequest represents the request body for setting a discount code; empty clears it
type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"max=50"`
}

// BeginCheckout handles starting a checkout from the authenticated cart
func (h *CheckoutHandler) BeginCheckout(c echo.Context) error {
	var req usecase.BeginCheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout input")
	}

	checkout, err := h.checkoutUC.Begin(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkout)
}

// GetCheckout handles reading a checkout
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkout ID")
	}

	checkout, err := h.checkoutUC.Get(c.Request().Context(), checkoutID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// SelectAddress handles choosing the shipping address
func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkout ID")
	}

	var req SelectAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkout, err := h.checkoutUC.SelectAddress(c.Request().Context(), checkoutID, req.AddressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// SelectPaymentMethod handles choosing the payment method
func (h *CheckoutHandler) SelectPaymentMethod(c echo.Context) error {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkout ID")
	}

	var req SelectPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment method selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkout, err := h.checkoutUC.SelectPaymentMethod(c.Request().Context(), checkoutID, req.PaymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// ApplyDiscount handles setting the discount code
func (h *CheckoutHandler) ApplyDiscount(c echo.Context) error {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkout ID")
	}

	var req ApplyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkout, err := h.checkoutUC.ApplyDiscountCode(c.Request().Context(), checkoutID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// PlaceOrder handles placing the order of a checkout
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkout ID")
	}

	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkout, err := h.checkoutUC.PlaceOrder(c.Request().Context(), checkoutID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkout)
}
