package repository

import (
	"context"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// User defines persistence for player accounts
type User interface {
	GetPlayerByName(ctx context.Context, name string) (*domain.Player, error)
	// CreatePlayer assigns player.ID and returns domain.ErrDuplicatePlayer on a name collision
	CreatePlayer(ctx context.Context, player *domain.Player) error
	BeginTx(ctx context.Context) (UserTx, error)
}

// UserTx changes account flags under a row lock
type UserTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error)
	SetAdmin(ctx context.Context, playerID string, isAdmin bool) error
}
