package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
	q  *Queries
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		q:  NewQueries(db),
	}
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	pgTx
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &LedgerTx{pgTx: t}, nil
}

// GetPlayerByName reads a player without locking
func (r *LedgerRepository) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return r.q.GetPlayerByName(ctx, name)
}

// GetInventory lists the player's slots joined with their items
func (r *LedgerRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	return r.q.GetInventory(ctx, playerID)
}

// GetPlayerForUpdate locks the player row
func (t *LedgerTx) GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error) {
	return t.q.GetPlayerByNameForUpdate(ctx, name)
}

// GetPlayerByName reads a player inside the transaction without locking
func (t *LedgerTx) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return t.q.GetPlayerByName(ctx, name)
}

func (t *LedgerTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return t.q.GetItemByName(ctx, name)
}

// GetSlotForUpdate locks the slot row when it exists
func (t *LedgerTx) GetSlotForUpdate(ctx context.Context, playerID string, itemID int) (*domain.InventorySlot, error) {
	return t.q.GetSlotForUpdate(ctx, playerID, itemID)
}

func (t *LedgerTx) SetSlotAmount(ctx context.Context, playerID string, itemID, amount int) error {
	return t.q.SetSlotAmount(ctx, playerID, itemID, amount)
}

func (t *LedgerTx) UpdateBalances(ctx context.Context, playerID string, gold, gems int) error {
	return t.q.UpdateBalances(ctx, playerID, gold, gems)
}

var (
	_ repository.Ledger   = (*LedgerRepository)(nil)
	_ repository.LedgerTx = (*LedgerTx)(nil)
)
