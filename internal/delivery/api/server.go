package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// storefrontAPI serves the local shopping API that front ends and cartctl talk to.
type storefrontAPI struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the local storefront API on echo.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	api := &storefrontAPI{
		addr:   net.JoinHostPort(params.Cfg.HTTP.Host, strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger.With(slog.String("component", "storefront-api")),
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: api.shutdown})

	return api, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	// Request ids must exist before the logger reads them.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		corsMiddleware(cfg.HTTP.AllowOrigins),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	return e
}

// corsMiddleware allows the configured shop front ends, or any origin when none are listed.
func corsMiddleware(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		return echomiddleware.CORS()
	}

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
	})
}

func (s *storefrontAPI) Serve(_ context.Context) error {
	s.logger.Info("Storefront API listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "serve storefront api on %s", s.addr)
	}

	return nil
}

func (s *storefrontAPI) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Storefront API shutting down")
	if err := s.echo.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown storefront api")
	}

	return nil
}
