package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ForwarderParams holds dependencies for EventForwarder, injected by Fx
type ForwarderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventForwarder provides the configured forwarder, or nil when cart and user
// events should stay inside the process.
func NewEventForwarder(params ForwarderParams) (service.EventForwarder, error) {
	forwarder, err := openForwarder(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil || forwarder == nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(forwarder.Close(), "close event forwarder")
		},
	})

	return forwarder, nil
}

func openForwarder(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventForwarder, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Debug("Event forwarding disabled")

		return nil, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: localEndpoint is required for the local provider")
		}
		logger.Info("Forwarding storefront events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPForwarder(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
		}

		return NewGooglePubSubForwarder(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
}

// BusParams holds dependencies for EventBus, injected by Fx
type BusParams struct {
	fx.In

	Forwarder service.EventForwarder `optional:"true"`
	Logger    *slog.Logger
}

func NewEventBus(params BusParams) service.EventBus {
	return NewInProcessEventBus(params.Forwarder, params.Logger)
}

// Module provides the event bus and its optional forwarder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventForwarder, NewEventBus),
)
