package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/database"
	"github.com/osse101/InventoryApp_Go/internal/database/memory"
	"github.com/osse101/InventoryApp_Go/internal/database/postgres"
	"github.com/osse101/InventoryApp_Go/internal/handler"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// Repositories holds the repository implementations for the selected storage
// driver together with its readiness check and shutdown hook.
type Repositories struct {
	Ledger  repository.Ledger
	Catalog repository.Catalog
	User    repository.User

	Pinger handler.Pinger
	close  func()
}

// Close releases the underlying storage
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// InitializeRepositories opens the storage selected by cfg. For PostgreSQL it
// connects, applies pending migrations and returns pool-backed repositories.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		store := memory.NewStore()
		slog.Info(LogMsgStorageReady, "driver", config.StorageDriverMemory)
		return &Repositories{
			Ledger:  store.Ledger(),
			Catalog: store.Catalog(),
			User:    store.Users(),
			Pinger:  store,
			close:   store.Close,
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolSettings{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectFailed, err)
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf(ErrMsgMigrateFailed, err)
	}
	slog.Info(LogMsgStorageReady, "driver", config.StorageDriverPostgres, "max_conns", cfg.DBMaxConns)

	return &Repositories{
		Ledger:  postgres.NewLedgerRepository(pool),
		Catalog: postgres.NewCatalogRepository(pool),
		User:    postgres.NewUserRepository(pool),
		Pinger:  pool,
		close:   pool.Close,
	}, nil
}
