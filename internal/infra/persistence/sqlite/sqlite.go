// Package sqlite contains the durable session store implemented with GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"jobboard/config"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const memoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the session database and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open creates the database file if needed and migrates the slot table.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	path := memoryPath
	if cfg != nil && cfg.TokenStore != nil && cfg.TokenStore.Path != "" {
		path = cfg.TokenStore.Path
	}

	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.Wrapf(err, "failed to create session store directory for %s", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Multi-slot writes use explicit transactions in the repository.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite session store")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// A single connection serialises writers and keeps in-memory databases shared.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.SessionSlotModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate session store")
	}

	return db, nil
}
