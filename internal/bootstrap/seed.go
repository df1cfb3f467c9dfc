package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/seed"
	"github.com/osse101/InventoryApp_Go/internal/user"
)

// SeedStorage applies the starter data to an empty catalog. cfg.SeedFile
// replaces the built-in data when set.
func SeedStorage(ctx context.Context, cfg *config.Config, repos *Repositories) error {
	loader, err := seed.NewLoader()
	if err != nil {
		return fmt.Errorf(ErrMsgSeedLoaderFailed, err)
	}
	data, err := loader.Load(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf(ErrMsgSeedLoadFailed, err)
	}
	result, err := seed.Apply(ctx, data, repos.Catalog, repos.User)
	if err != nil {
		return fmt.Errorf(ErrMsgSeedApplyFailed, err)
	}

	slog.Info(LogMsgSeedApplied,
		"source", cfg.SeedFile,
		"items", result.ItemsInserted,
		"players", result.PlayersInserted,
		"skipped", result.Skipped)
	return nil
}

// EnsureAdmin creates or promotes the configured administrator. It is a no-op
// when no administrator is configured.
func EnsureAdmin(ctx context.Context, cfg *config.Config, users user.Service) error {
	if cfg.AdminName == "" {
		return nil
	}
	if _, err := users.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminPassword); err != nil {
		return fmt.Errorf(ErrMsgEnsureAdminFailed, cfg.AdminName, err)
	}
	slog.Info(LogMsgAdminEnsured, "name", cfg.AdminName)
	return nil
}
