package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CardHeist_Go/internal/server"
	"github.com/osse101/CardHeist_Go/internal/sse"
	"github.com/osse101/CardHeist_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Hub          *sse.Hub
	Pool         *worker.Pool
	CloseStorage func()
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests; in-flight thefts may still enqueue)
// 2. Notification pool (drain queued pushes)
// 3. SSE hub (close the streams the pushes were written to)
// 4. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Pool != nil {
		slog.Info(LogMsgStoppingNotifier)
		c.Pool.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.CloseStorage != nil {
		c.CloseStorage()
	}

	slog.Info(LogMsgServerStopped)
}
