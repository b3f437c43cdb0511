package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment options and bank transfer details
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// ListMethods handles listing the payment methods
func (h *PaymentHandler) ListMethods(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.paymentUC.ListMethods(c.Request().Context()))
}

// BankTransferInfo handles reading the transfer account, filled in for ?order= when given
func (h *PaymentHandler) BankTransferInfo(c echo.Context) error {
	info := h.paymentUC.BankTransferInfo(c.Request().Context(), c.QueryParam("order"))

	return response.Success(c, http.StatusOK, info)
}

// BankTransferQR handles rendering the transfer QR code of ?order= as a PNG
func (h *PaymentHandler) BankTransferQR(c echo.Context) error {
	png, err := h.paymentUC.BankTransferQR(c.Request().Context(), c.QueryParam("order"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ShippingFee handles quoting the shipping rates of a cart
func (h *PaymentHandler) ShippingFee(c echo.Context) error {
	var req usecase.ShippingFeeInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipping request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fee, err := h.paymentUC.ShippingFee(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fee)
}
