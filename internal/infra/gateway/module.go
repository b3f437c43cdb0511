package gateway

import (
	"context"
	"log/slog"
	"net/url"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Sessions repository.SessionRepository
}

// ClientResult exposes the client and its cookie jar
type ClientResult struct {
	fx.Out

	Client      *Client
	Jar         *PersistentJar
	Credentials service.CredentialStore
}

// NewClient builds the backend client with a cookie jar restored from the session store
func NewClient(params ClientParams) (ClientResult, error) {
	cfg := params.Config.Gateway
	if cfg == nil || cfg.BaseURL == "" {
		return ClientResult{}, errors.New("gateway.baseUrl is required")
	}

	origin, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return ClientResult{}, errors.Wrap(err, "parse gateway.baseUrl")
	}

	jar, err := NewPersistentJar(origin, params.Sessions, params.Logger)
	if err != nil {
		return ClientResult{}, err
	}

	client, err := New(Options{
		BaseURL:          cfg.BaseURL,
		APIPrefix:        cfg.APIPrefix,
		Timeout:          cfg.Timeout,
		Breaker:          cfg.Breaker,
		PlaceholderImage: params.Config.Checkout.PlaceholderImage,
		Jar:              jar,
		Logger:           params.Logger,
	})
	if err != nil {
		return ClientResult{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := jar.Load(ctx); err != nil {
				return errors.Wrap(err, "restore session cookies")
			}
			params.Logger.Info("Gateway client ready", slog.String("base_url", client.BaseURL().String()))

			return nil
		},
	})

	return ClientResult{Client: client, Jar: jar, Credentials: jar}, nil
}

// Module provides the gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewCartGateway,
		NewOrderGateway,
		NewAddressGateway,
		NewPaymentGateway,
		NewCatalogGateway,
		NewAuthGateway,
	),
)
