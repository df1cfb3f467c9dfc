package repository

import (
	"context"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// Catalog defines persistence for catalog items
type Catalog interface {
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	// ListItems returns items in insertion order
	ListItems(ctx context.Context) ([]domain.Item, error)
	CountItems(ctx context.Context) (int, error)
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx inserts items after checking the acting player
type CatalogTx interface {
	Tx
	GetPlayerByName(ctx context.Context, name string) (*domain.Player, error)
	// InsertItem assigns item.ID and returns domain.ErrDuplicateItem on a name collision
	InsertItem(ctx context.Context, item *domain.Item) error
}
