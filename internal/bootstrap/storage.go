package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CardHeist_Go/internal/config"
	"github.com/osse101/CardHeist_Go/internal/database"
	"github.com/osse101/CardHeist_Go/internal/database/memory"
	"github.com/osse101/CardHeist_Go/internal/database/postgres"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// Storage is the persistence backend selected by STORAGE_DRIVER
type Storage interface {
	repository.Economy
	repository.Catalog
	CheckHealth(ctx context.Context) error
}

// OpenStorage connects and migrates Postgres, or creates an empty in-process
// store for the memory driver. close releases the backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (store Storage, closeFn func(), err error) {
	slog.Info(LogMsgStorageSelected, "driver", cfg.StorageDriver)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return memory.NewStore(), func() {}, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDatabaseURL(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgOpenStorage, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf(ErrMsgMigrate, err)
		}
		return postgres.NewRepository(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StorageDriver)
	}
}
