package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ChainBot_Go/internal/database"
	"github.com/osse101/ChainBot_Go/internal/event"
)

// Stopper is anything that drains in-flight work before returning
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             Stopper
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Event publisher (flush pending events to the dead-letter file)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
