package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/InventoryApp_Go/internal/bootstrap"
	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/handler"
	"github.com/osse101/InventoryApp_Go/internal/server"
)

// @title Inventory API
// @version 1.0
// @description Player accounts, a two-currency wallet and an item catalog.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.SeedStorage(ctx, cfg, repos); err != nil {
		repos.Close()
		return err
	}

	svc := bootstrap.InitializeServices(repos)
	if err := bootstrap.EnsureAdmin(ctx, cfg, svc.Users); err != nil {
		repos.Close()
		return err
	}

	feed, background := bootstrap.StartRateFeed(ctx, cfg)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RequestLimit:   cfg.RequestLimit,
	}, server.Services{
		DB:      repos.Pinger,
		Users:   svc.Users,
		Ledger:  svc.Ledger,
		Catalog: svc.Catalog,
		Rates:   feed,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Background:   background,
		Repositories: repos,
	})
	return err
}
