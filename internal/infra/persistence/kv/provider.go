// Package kv provides the durable client-state store and the repositories built on it.
package kv

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for KVStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore opens the KVStore selected by storage.provider
func NewKVStore(params StoreParams) (repository.KVStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store repository.KVStore
	var err error

	switch cfg.Provider {
	case config.StorageProviderBlob:
		store, err = blob.Open(params.Ctx, cfg.BlobURL)
		if err != nil {
			return nil, err
		}

	case config.StorageProviderRedis:
		store, err = redis.Open(params.Lc, params.Config.Redis, logger)
		if err != nil {
			return nil, err
		}

	case config.StorageProviderPostgres:
		db, err := postgres.Open(params.Lc, params.Config, logger)
		if err != nil {
			return nil, err
		}
		store = postgres.NewKVStore(db)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	logger.Info("Client state store ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return WithPrefix(cfg.KeyPrefix, store), nil
}

// Module provides the durable store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKVStore,
		NewGuestCartRepository,
		NewSessionRepository,
	),
)
