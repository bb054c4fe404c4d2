package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ChainBot_Go/internal/agent"
	"github.com/osse101/ChainBot_Go/internal/analysis"
	"github.com/osse101/ChainBot_Go/internal/bootstrap"
	"github.com/osse101/ChainBot_Go/internal/chat"
	"github.com/osse101/ChainBot_Go/internal/config"
	"github.com/osse101/ChainBot_Go/internal/database"
	"github.com/osse101/ChainBot_Go/internal/handler"
	"github.com/osse101/ChainBot_Go/internal/server"

	_ "github.com/osse101/ChainBot_Go/docs"
)

// @title          ChainBot API
// @version        1.0
// @description    Chat-intent service: classifies a chat message and extracts its swap, bridge, and transfer parameters.
// @BasePath       /
// @securityDefinitions.apikey ApiKeyAuth
// @in             header
// @name           X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Version == config.DefaultVersion && handler.Version != "dev" {
		cfg.Version = handler.Version
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DBEnabled {
		if err := config.ValidateEnv(); err != nil {
			slog.Warn("Environment validation failed", "error", err)
		}
	}

	dbPool, err := bootstrap.InitializeDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	// Typed nils must not leak into the interfaces below
	var (
		pool  database.Pool
		chats chat.Service
	)
	if dbPool != nil {
		repos := bootstrap.InitializeRepositories(dbPool)
		pool = dbPool
		chats = chat.NewService(repos.Chat)
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return err
	}
	if err := bootstrap.RegisterEventHandlers(publisher); err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			ResilientPublisher: publisher,
			DBPool:             pool,
		})
		return err
	}

	agentHandle := agent.NewHandle(agent.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	slog.Info("Agent handle ready", "status", agentHandle.Status(), "model", agentHandle.Model())

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		CORSOrigin:      cfg.CORSOrigin,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, server.Dependencies{
		DBPool:   pool,
		Analysis: analysis.NewService(publisher),
		Chats:    chats,
		Agent:    agentHandle,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DBPool:             pool,
	})
	return nil
}
