package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// ProcessGrind credits a random reward. Gains are clamped at the wallet limit,
// so the reported amounts are what was actually added and may be smaller than
// the roll, or zero.
func (s *service) ProcessGrind(ctx context.Context, playerName string) (*domain.GrindResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrindCalled, "player", playerName)

	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}

	result, err := withPlayerLock(s, playerName, func() (*domain.GrindResult, error) {
		return s.processGrind(ctx, playerName)
	})
	if err != nil {
		metrics.RecordRejection(OperationGrind, err)
		return nil, err
	}

	metrics.RecordGrind(result.GoldGained, result.GemsGained)
	log.Info(LogMsgGrindRewarded, "player", playerName, "gold", result.GoldGained, "gems", result.GemsGained)
	return result, nil
}

func (s *service) processGrind(ctx context.Context, playerName string) (*domain.GrindResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := lockPlayer(ctx, tx, playerName)
	if err != nil {
		return nil, err
	}

	rolledGold := uniform(s.rnd, domain.GrindGoldMin, domain.GrindGoldMax)
	rolledGems := uniform(s.rnd, domain.GrindGemsMin, domain.GrindGemsMax)

	var goldGained, gemsGained int
	player.Gold, goldGained = domain.CurrencyGold.ClampAdd(player.Gold, int64(rolledGold))
	player.Gems, gemsGained = domain.CurrencyGems.ClampAdd(player.Gems, int64(rolledGems))

	if goldGained < rolledGold || gemsGained < rolledGems {
		logger.FromContext(ctx).Debug(LogMsgGrindCapped, "player", playerName,
			"rolled_gold", rolledGold, "gold", goldGained, "rolled_gems", rolledGems, "gems", gemsGained)
	}

	if err := tx.UpdateBalances(ctx, player.ID, player.Gold, player.Gems); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalancesFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.GrindResult{
		GoldGained: goldGained,
		GemsGained: gemsGained,
		Gold:       player.Gold,
		Gems:       player.Gems,
	}, nil
}
