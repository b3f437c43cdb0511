package redis

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type kvStore struct {
	client *goredis.Client
}

// NewKVStore creates a KVStore over an existing redis client.
// Values are stored without expiry, matching browser storage semantics.
func NewKVStore(client *goredis.Client) repository.KVStore {
	return &kvStore{client: client}
}

// Open connects to redis and ties the connection check to lc
func Open(lc fx.Lifecycle, cfg *config.RedisConfig, logger *slog.Logger) (repository.KVStore, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis storage provider")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("Redis store connected", slog.String("addr", cfg.Addr))

			return nil
		},
	})

	return NewKVStore(client), nil
}

// Get returns the value stored under key
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

// Set stores value under key
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

// Delete removes key
func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis delete %s", key)
	}

	return nil
}

// Close closes the redis client
func (s *kvStore) Close() error {
	return errors.WithStack(s.client.Close())
}
