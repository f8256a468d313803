package main

import (
	"context"
	"fmt"

	"github.com/osse101/CardHeist_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
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

	switch args[0] {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations rolled back")
	case "status":
		statuses, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			fmt.Printf("  %05d  %-10s  %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
	return nil
}
