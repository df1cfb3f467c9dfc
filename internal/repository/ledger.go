package repository

import (
	"context"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// Ledger defines persistence for player balances and inventories.
// Lookups return (nil, nil) when the row does not exist.
type Ledger interface {
	GetPlayerByName(ctx context.Context, name string) (*domain.Player, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is a unit of work over one player's economic state
type LedgerTx interface {
	Tx
	// GetPlayerForUpdate loads the player and locks the row until the transaction ends
	GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error)
	// GetPlayerByName reads a player without locking the row
	GetPlayerByName(ctx context.Context, name string) (*domain.Player, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	// GetSlotForUpdate returns nil when the player owns none of the item
	GetSlotForUpdate(ctx context.Context, playerID string, itemID int) (*domain.InventorySlot, error)
	// SetSlotAmount upserts the slot, deleting it when amount is zero
	SetSlotAmount(ctx context.Context, playerID string, itemID, amount int) error
	UpdateBalances(ctx context.Context, playerID string, gold, gems int) error
}
