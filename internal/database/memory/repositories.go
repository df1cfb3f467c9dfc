package memory

import (
	"context"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

type ledgerRepo struct{ s *Store }

func (r ledgerRepo) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return r.s.playerByName(name)
}

func (r ledgerRepo) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	if err := r.s.fault("GetInventory"); err != nil {
		return nil, err
	}
	return r.s.inventory(playerID), nil
}

func (r ledgerRepo) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	t, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

type catalogRepo struct{ s *Store }

func (r catalogRepo) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	if err := r.s.fault("GetItemByName"); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if item, ok := r.s.itemByNameLocked(name); ok {
		return item, nil
	}
	return nil, nil
}

func (r catalogRepo) ListItems(ctx context.Context) ([]domain.Item, error) {
	if err := r.s.fault("ListItems"); err != nil {
		return nil, err
	}
	return r.s.listItems(), nil
}

func (r catalogRepo) CountItems(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

func (r catalogRepo) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	t, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

type userRepo struct{ s *Store }

func (r userRepo) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	return r.s.playerByName(name)
}

func (r userRepo) CreatePlayer(ctx context.Context, player *domain.Player) error {
	return r.s.createPlayer(ctx, player)
}

func (r userRepo) BeginTx(ctx context.Context) (repository.UserTx, error) {
	t, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var (
	_ repository.LedgerTx  = (*tx)(nil)
	_ repository.CatalogTx = (*tx)(nil)
	_ repository.UserTx    = (*tx)(nil)
)
