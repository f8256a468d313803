package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CardHeist_Go/internal/bootstrap"
	"github.com/osse101/CardHeist_Go/internal/config"
)

// @title           CardHeist API
// @version         1.0
// @description     Collectible card economy: drops, forging, vaults and theft.
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	slog.Info("Server listening", "addr", app.Server.Addr())
	if err := app.Run(ctx, cfg.ShutdownTimeout); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
