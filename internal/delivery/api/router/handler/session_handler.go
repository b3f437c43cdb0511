package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CartUC    usecase.CartUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for login state handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	cartUC    usecase.CartUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		cartUC:    params.CartUC,
		logger:    params.Logger,
	}
}

// SessionResponse describes the current login state.
type SessionResponse struct {
	LoggedIn      bool         `json:"loggedIn"`
	User          *entity.User `json:"user,omitempty"`
	CartItemCount int          `json:"cartItemCount"`
}

// Login handles signing in; the guest cart is merged before the response is sent
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.sessionUC.Login(ctx, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		LoggedIn:      true,
		User:          user,
		CartItemCount: h.cartUC.ItemCount(ctx),
	})
}

// Register handles account creation
func (h *SessionHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.sessionUC.Register(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Account created, please log in"})
}

// Logout handles signing out
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{})
}

// Current handles reading the login state
func (h *SessionHandler) Current(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.sessionUC.CurrentUser(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		LoggedIn:      user != nil,
		User:          user,
		CartItemCount: h.cartUC.ItemCount(ctx),
	})
}
