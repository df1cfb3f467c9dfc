package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
	q  *Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		q:  NewQueries(db),
	}
}

// CatalogTx implements repository.CatalogTx
type CatalogTx struct {
	pgTx
}

// BeginTx starts a new transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &CatalogTx{pgTx: t}, nil
}

func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return r.q.GetItemByName(ctx, name)
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	return r.q.ListItems(ctx)
}

func (r *CatalogRepository) CountItems(ctx context.Context) (int, error) {
	return r.q.CountItems(ctx)
}

func (t *CatalogTx) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return t.q.GetPlayerByName(ctx, name)
}

// InsertItem relies on the UNIQUE constraint on items.name; a concurrent
// insert of the same name waits for the first transaction and then fails.
func (t *CatalogTx) InsertItem(ctx context.Context, item *domain.Item) error {
	return t.q.InsertItem(ctx, item)
}

var (
	_ repository.Catalog   = (*CatalogRepository)(nil)
	_ repository.CatalogTx = (*CatalogTx)(nil)
)
