package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address book handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses handles reading the address book
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// CreateAddress handles adding an address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req usecase.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.addressUC.Add(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Address added successfully"})
}

// UpdateAddress handles replacing an address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	addressID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req usecase.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.Update(c.Request().Context(), addressID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress handles removing an address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.Delete(c.Request().Context(), addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted successfully"})
}

// SetDefaultAddress handles flagging the default address
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	addressID, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.SetDefault(c.Request().Context(), addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default address updated"})
}
