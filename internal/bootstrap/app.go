package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/CardHeist_Go/internal/config"
	"github.com/osse101/CardHeist_Go/internal/cooldown"
	"github.com/osse101/CardHeist_Go/internal/drop"
	"github.com/osse101/CardHeist_Go/internal/forge"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/notification"
	"github.com/osse101/CardHeist_Go/internal/server"
	"github.com/osse101/CardHeist_Go/internal/sse"
	"github.com/osse101/CardHeist_Go/internal/theft"
	"github.com/osse101/CardHeist_Go/internal/user"
	"github.com/osse101/CardHeist_Go/internal/utils"
	"github.com/osse101/CardHeist_Go/internal/vault"
	"github.com/osse101/CardHeist_Go/internal/worker"
)

// App is the fully wired process: storage, services, notification fan-out and HTTP server
type App struct {
	Server   *server.Server
	Hub      *sse.Hub
	Pool     *worker.Pool
	Services server.Services

	closeStorage func()
}

// Build opens storage, syncs the catalog and wires every service.
// The notification pool is started; the HTTP server is not.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	store, closeStorage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cat, err := SyncCatalog(ctx, store, cfg)
	if err != nil {
		closeStorage()
		return nil, err
	}

	sampler := utils.NewSampler()
	clock := cooldown.NewClock(cooldown.Config{
		DevMode:       cfg.DevMode,
		DropCooldown:  cfg.DropCooldown,
		TheftCooldown: cfg.TheftCooldown,
	}, time.Now)
	l := ledger.New(cat)

	users := user.NewService(store, l, cat, sampler, user.Config{
		StarterPackSize: cfg.StarterPackSize,
		CacheSize:       cfg.UsernameCacheSize,
		CacheTTL:        cfg.UsernameCacheTTL,
	})
	theftLog := theft.NewLog(store, cat, users)

	hub := sse.NewHub()
	pool := worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize)
	pool.Start()
	dispatcher := notification.NewDispatcher(pool, theftLog, hub)

	svc := server.Services{
		Users:    users,
		Cards:    ledger.NewService(store, l),
		Forge:    forge.NewService(store, l, cat, sampler),
		Vault:    vault.NewService(store, l, cat),
		Drops:    drop.NewService(store, l, cat, clock, sampler),
		Thefts:   theft.NewService(store, l, cat, clock, sampler, dispatcher),
		TheftLog: theftLog,
		Catalog:  cat,
		Health:   store,
		Events:   hub,
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, svc)

	return &App{
		Server:       srv,
		Hub:          hub,
		Pool:         pool,
		Services:     svc,
		closeStorage: closeStorage,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// everything down within shutdownTimeout
func (a *App) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Server.Start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info(LogMsgSignalReceived)
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf(ErrMsgServerFailed, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Shutdown(shutdownCtx)
	return runErr
}

// Shutdown releases every component; see GracefulShutdown for ordering
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:       a.Server,
		Hub:          a.Hub,
		Pool:         a.Pool,
		CloseStorage: a.closeStorage,
	})
}
