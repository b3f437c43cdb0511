package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order history
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles reading one page of orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, ok := queryInt(c, "page")
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid page")
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid limit")
	}

	orders, err := h.orderUC.List(c.Request().Context(), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// CancelOrder handles cancelling an order
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req usecase.CancelOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.Cancel(c.Request().Context(), orderID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order cancelled"})
}

// ConfirmPayment handles reporting a completed bank transfer
func (h *OrderHandler) ConfirmPayment(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req usecase.ConfirmPaymentInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment confirmation")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.ConfirmPayment(c.Request().Context(), orderID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment confirmation sent"})
}

// UpdatePaymentStatus handles setting the payment state of an order
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req usecase.UpdatePaymentStatusInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment status")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), orderID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment status updated"})
}

// GenerateInvoice handles issuing the invoice of an order
func (h *OrderHandler) GenerateInvoice(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	invoice, err := h.orderUC.GenerateInvoice(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invoice)
}

// GetInvoice handles reading the invoice of an order
func (h *OrderHandler) GetInvoice(c echo.Context) error {
	orderID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	invoice, err := h.orderUC.GetInvoice(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}
