package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockCartUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "1KB"

	cartUC := mockUsecase.NewMockCartUsecase(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	e := newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, CartUC: cartUC, Logger: logger}),
		AddressHandler:  handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: mockUsecase.NewMockAddressUsecase(t), Logger: logger}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t), Logger: logger}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t), Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t), Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: mockUsecase.NewMockPaymentUsecase(t), Logger: logger}),
	}).RegisterRoutes(e)

	return e, cartUC
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, requestID)

	var body struct {
		Data map[string]string `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, requestID, body.Meta.RequestID)
}

func TestServer_CartRoute(t *testing.T) {
	e, cartUC := newTestServer(t)
	cart := entity.NewGuestCart()
	cartUC.EXPECT().GetCart(mock.Anything).Return(cart, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ROUTE_NOT_FOUND"`)
}

func TestServer_BodyLimit(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"productId":1,"quantity":1,"pad":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCORSMiddleware_ConfiguredOrigins(t *testing.T) {
	e := echo.New()
	e.Use(corsMiddleware([]string{"http://shop.local"}))
	e.GET("/cart", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(echo.HeaderOrigin, "http://shop.local")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "http://shop.local", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.local")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
