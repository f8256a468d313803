package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/config"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

// SyncCatalog loads the card seed (CATALOG_PATH, or the embedded default),
// validates it against CATALOG_SCHEMA_PATH when set, and writes it to storage.
func SyncCatalog(ctx context.Context, repo repository.Catalog, cfg *config.Config) (*catalog.Catalog, error) {
	slog.Info(LogMsgSyncingCatalog, "path", cfg.CatalogPath, "schema", cfg.CatalogSchemaPath)

	var (
		loader *catalog.Loader
		err    error
	)
	if cfg.CatalogSchemaPath != "" {
		schema, rerr := os.ReadFile(cfg.CatalogSchemaPath)
		if rerr != nil {
			return nil, fmt.Errorf(ErrMsgReadSchema, rerr)
		}
		loader, err = catalog.NewLoaderWithSchema(schema)
	} else {
		loader, err = catalog.NewLoader()
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalog, err)
	}

	seed, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalog, err)
	}

	c, err := catalog.Sync(ctx, repo, seed)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSyncCatalog, err)
	}
	return c, nil
}
