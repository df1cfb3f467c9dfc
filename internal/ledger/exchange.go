package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// ExchangeGems trades gems against gold at goldRate gold per gem. Gold moves
// opposite to gems. Both balances change together or not at all.
func (s *service) ExchangeGems(ctx context.Context, playerName string, gemsDelta, goldRate int) (*domain.ExchangeResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgExchangeCalled, "player", playerName, "gems_delta", gemsDelta, "rate", goldRate)

	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}
	if err := validateExchange(gemsDelta, goldRate); err != nil {
		return nil, err
	}

	result, err := withPlayerLock(s, playerName, func() (*domain.ExchangeResult, error) {
		return s.exchangeGems(ctx, playerName, gemsDelta, goldRate)
	})
	if err != nil {
		metrics.RecordRejection(OperationExchange, err)
		return nil, err
	}

	metrics.RecordExchange(result.GemsDelta, result.GoldDelta)
	log.Info(LogMsgExchanged, "player", playerName, "gems_delta", result.GemsDelta, "gold_delta", result.GoldDelta)
	return result, nil
}

func (s *service) exchangeGems(ctx context.Context, playerName string, gemsDelta, goldRate int) (*domain.ExchangeResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := lockPlayer(ctx, tx, playerName)
	if err != nil {
		return nil, err
	}

	goldDelta := goldForGems(gemsDelta, goldRate)
	nextGems, gemsErr := domain.CurrencyGems.TryAdd(player.Gems, int64(gemsDelta))
	nextGold, goldErr := domain.CurrencyGold.TryAdd(player.Gold, goldDelta)

	if errors.Is(gemsErr, domain.ErrBalanceUnderflow) || errors.Is(goldErr, domain.ErrBalanceUnderflow) {
		return nil, fmt.Errorf(ErrMsgExchangeMismatchFmt, gemsDelta, goldRate, errors.Join(domain.ErrMismatch, gemsErr, goldErr))
	}
	if gemsErr != nil || goldErr != nil {
		return nil, fmt.Errorf(ErrMsgExchangeOverflowFmt, gemsDelta, goldRate, errors.Join(domain.ErrWalletOverflow, gemsErr, goldErr))
	}

	if err := tx.UpdateBalances(ctx, player.ID, nextGold, nextGems); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalancesFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.ExchangeResult{
		GemsDelta: gemsDelta,
		GoldDelta: int(goldDelta),
		Rate:      goldRate,
		Gold:      nextGold,
		Gems:      nextGems,
	}, nil
}
