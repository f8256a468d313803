package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/bootstrap"
	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/database"
	"github.com/osse101/CardHeist_Go/internal/database/postgres"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/user"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

// demoUsers are registered by `seed demo` so a fresh database has theft victims
var demoUsers = []string{"alice", "bob", "carol"}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with data (catalog, demo)"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: catalog, demo")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	PrintInfo("Connecting to database: %s", redactPassword(cfg.GetDatabaseURL()))

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	repo := postgres.NewRepository(pool)

	cat, err := bootstrap.SyncCatalog(ctx, repo, cfg)
	if err != nil {
		return err
	}
	PrintSuccess("Catalog synced (%d cards)", cat.Len())

	switch args[0] {
	case "catalog":
		return nil
	case "demo":
		return c.runDemoSeed(ctx, repo, cat, cfg.StarterPackSize)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *SeedCommand) runDemoSeed(ctx context.Context, repo *postgres.Repository, cat *catalog.Catalog, packSize int) error {
	PrintInfo("Registering demo users...")

	cfg := user.DefaultConfig()
	cfg.StarterPackSize = packSize
	users := user.NewService(repo, ledger.New(cat), cat, utils.NewSampler(), cfg)

	for _, name := range demoUsers {
		reg, err := users.Register(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				PrintWarning("%s already registered", name)
				continue
			}
			return fmt.Errorf("failed to register %s: %w", name, err)
		}
		PrintSuccess("%s registered (id %s, %d starter cards)", name, reg.User.ID, len(reg.StarterPack))
	}
	return nil
}
