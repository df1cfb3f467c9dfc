package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// scanPlayer returns (nil, nil) for no rows
func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Name, &p.PasswordHash, &p.Gold, &p.Gems, &p.IsAdmin, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	var currency string
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &currency); err != nil {
		return nil, err
	}
	item.Currency = domain.Currency(currency)
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// pgTx adapts pgx.Tx to repository.Tx, reporting a finished transaction as domain.ErrTxClosed
type pgTx struct {
	tx pgx.Tx
	q  *Queries
}

func beginTx(ctx context.Context, db *pgxpool.Pool, q *Queries) (pgTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return pgTx{}, fmt.Errorf(ErrMsgFailedToBeginTransaction, err)
	}
	return pgTx{tx: tx, q: q.WithTx(tx)}, nil
}

// Commit commits the transaction. A unique violation raised at commit keeps
// its domain meaning.
func (t pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapTxErr(err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		return mapTxErr(err)
	}
	return nil
}

func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", domain.ErrTxClosed, err)
	}
	return err
}
