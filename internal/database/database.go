package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings sizes the connection pool. Every buy, sell, grind, exchange
// and admin write holds one connection from BEGIN until COMMIT while it has
// the player's row locked, so MaxConns is also the number of ledger
// transactions that can be in flight at once. Requests beyond it wait in
// pgxpool.Acquire until their context expires.
type PoolSettings struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// connBounds returns the pool ceiling and how many connections to keep warm.
// The warm count never exceeds the ceiling, so one-connection maintenance pools work.
func (s PoolSettings) connBounds() (int32, int32) {
	maxConns := s.MaxConns
	if maxConns < 1 {
		maxConns = 1
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	return int32(maxConns), min(DefaultMinConnections, int32(maxConns))
}

// NewPool opens the pool behind the player, item and inventory repositories
// and pings it once so a wrong DSN fails at startup instead of on the first trade.
func NewPool(ctx context.Context, connString string, settings PoolSettings) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	config.MaxConns, config.MinConns = settings.connBounds()
	config.MaxConnIdleTime = settings.MaxConnIdleTime
	config.MaxConnLifetime = settings.MaxConnLifetime
	config.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgLedgerPoolReady, "max_conns", config.MaxConns, "min_conns", config.MinConns)
	return pool, nil
}
