// Package postgres is the PostgreSQL provider of the durable client-state store.
package postgres

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Open creates the PostgreSQL client and ties its lifetime to lc.
// The client_state table is migrated on start; pool usage is reported on stop.
func Open(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres storage provider")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Each client-state write is a single upsert.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.ClientStateModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate client_state")
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stats := sqlDB.Stats()
			logger.LogAttrs(ctx, slog.LevelDebug, "Closing PostgreSQL client",
				slog.Int("openConns", stats.OpenConnections),
				slog.Int64("waitCount", stats.WaitCount),
				slog.Duration("waitDuration", stats.WaitDuration),
			)

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL client")
		},
	})

	return db, nil
}
