package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
	q  *Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		q:  NewQueries(db),
	}
}

// UserTx implements repository.UserTx
type UserTx struct {
	pgTx
}

// BeginTx starts a new transaction
func (r *UserRepository) BeginTx(ctx context.Context) (repository.UserTx, error) {
	t, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &UserTx{pgTx: t}, nil
}

func (r *UserRepository) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return r.q.GetPlayerByName(ctx, name)
}

// CreatePlayer inserts the player and fills in ID and CreatedAt
func (r *UserRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	return r.q.InsertPlayer(ctx, player)
}

func (t *UserTx) GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error) {
	return t.q.GetPlayerByNameForUpdate(ctx, name)
}

func (t *UserTx) SetAdmin(ctx context.Context, playerID string, isAdmin bool) error {
	return t.q.SetAdmin(ctx, playerID, isAdmin)
}

var (
	_ repository.User   = (*UserRepository)(nil)
	_ repository.UserTx = (*UserTx)(nil)
)
