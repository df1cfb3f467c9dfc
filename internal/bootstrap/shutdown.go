package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InventoryApp_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Background   *Background
	Repositories *Repositories
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Background rate feed
// 3. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedStop, "error", err)
		}
	}

	if components.Background != nil {
		components.Background.Stop()
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
