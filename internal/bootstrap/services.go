package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InventoryApp_Go/internal/catalog"
	"github.com/osse101/InventoryApp_Go/internal/concurrency"
	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/ledger"
	"github.com/osse101/InventoryApp_Go/internal/rates"
	"github.com/osse101/InventoryApp_Go/internal/scheduler"
	"github.com/osse101/InventoryApp_Go/internal/user"
	"github.com/osse101/InventoryApp_Go/internal/worker"
)

// Services bundles the application services built on top of the repositories
type Services struct {
	Users   user.Service
	Ledger  ledger.Service
	Catalog catalog.Service
}

// InitializeServices builds the services. Ledger and catalog share one lock
// manager so per-player operations serialize across both.
func InitializeServices(repos *Repositories) Services {
	locks := concurrency.NewLockManager()
	return Services{
		Users:   user.NewService(repos.User),
		Ledger:  ledger.NewService(repos.Ledger, ledger.WithLockManager(locks)),
		Catalog: catalog.NewService(repos.Catalog, catalog.WithLockManager(locks)),
	}
}

// Background holds the worker pool and scheduler that keep the rate feed fresh
type Background struct {
	Workers   *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Stop halts the scheduler before draining the pool so no job is enqueued late
func (b *Background) Stop() {
	b.Scheduler.Stop()
	b.Workers.Stop()
}

// StartRateFeed creates the cached exchange rate feed and schedules its
// refresh. The first refresh runs immediately.
func StartRateFeed(ctx context.Context, cfg *config.Config) (*rates.CachedFeed, *Background) {
	client := rates.NewClient(cfg.RateFeedURL, rates.WithFallback(cfg.RateFallback))
	feed := rates.NewCachedFeed(client)

	pool := worker.NewPool(ctx, cfg.WorkerCount, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.RateRefreshInterval, feed, true)
	slog.Info(LogMsgRateFeedScheduled, "url", cfg.RateFeedURL, "interval", cfg.RateRefreshInterval)

	return feed, &Background{Workers: pool, Scheduler: sched}
}
