package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// SetBalance overwrites a player's balances. Values outside [0, Max] are
// clamped. The acting player is checked for admin rights in the same
// transaction as the write.
func (s *service) SetBalance(ctx context.Context, adminName, playerName string, gold, gems int) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSetBalanceCalled, "admin", adminName, "player", playerName, "gold", gold, "gems", gems)

	if err := validateName(ArgAdminName, adminName); err != nil {
		return nil, err
	}
	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}

	player, err := withPlayerLock(s, playerName, func() (*domain.Player, error) {
		return s.setBalance(ctx, adminName, playerName, gold, gems)
	})
	if err != nil {
		metrics.RecordRejection(OperationSetBalance, err)
		return nil, err
	}

	log.Info(LogMsgBalanceSet, "admin", adminName, "player", playerName, "gold", player.Gold, "gems", player.Gems)
	return player, nil
}

func (s *service) setBalance(ctx context.Context, adminName, playerName string, gold, gems int) (*domain.Player, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := requireAdmin(ctx, tx, adminName); err != nil {
		return nil, err
	}

	player, err := lockPlayer(ctx, tx, playerName)
	if err != nil {
		return nil, err
	}

	player.Gold = domain.CurrencyGold.Clamp(int64(gold))
	player.Gems = domain.CurrencyGems.Clamp(int64(gems))

	if err := tx.UpdateBalances(ctx, player.ID, player.Gold, player.Gems); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalancesFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return player, nil
}
