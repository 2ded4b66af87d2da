// Package sqlite contains the concrete implementation of the persistence layer
// using GORM over a local SQLite file. The whole household state lives in one
// file next to the binary; there is no remote database.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"canteen/config"
	"canteen/internal/domain/lifecycle"
	"canteen/internal/errors"
	"canteen/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the local SQLite file and prepares the records table.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config)
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{
		// Single-statement record writes need no implicit wrapping; multi-record
		// mutations go through the transaction manager explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

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

// Open creates the SQLite connection and migrates the records table. Split
// from New so tests can open a throwaway file without an fx lifecycle.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}

	db, err := gorm.Open(sqlite.Open(cfg.Storage.Path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// SQLite reliability tuning for a single shared family device.
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")

	if err := db.AutoMigrate(&model.RecordModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate records table")
	}

	return db, nil
}
