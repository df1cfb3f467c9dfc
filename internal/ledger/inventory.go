package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// GetPlayerWithInventory returns a display snapshot. It takes no locks and may
// be slightly stale.
func (s *service) GetPlayerWithInventory(ctx context.Context, playerName string) (*domain.PlayerInventory, error) {
	logger.FromContext(ctx).Debug(LogMsgGetInventoryCalled, "player", playerName)

	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayerByName(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf(ErrMsgPlayerNotFoundFmt, playerName, domain.ErrPlayerNotFound)
	}

	items, err := s.repo.GetInventory(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if items == nil {
		items = []domain.InventoryEntry{}
	}

	return &domain.PlayerInventory{Player: *player, Items: items}, nil
}
