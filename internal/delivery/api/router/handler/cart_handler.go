package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the active cart, guest or authenticated.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateCartItemRequest represents the request body for changing a line quantity.
// A guest line with quantity <= 0 is removed; a signed-in cart rejects it.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles reading the active cart
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem handles adding a product line
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddToCartInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cart)
}

// UpdateItem handles changing the quantity of a line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles dropping a line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart handles emptying the active cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	cart, err := h.cartUC.ClearCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
