package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// SellItem removes one unit from the inventory and credits half the price.
// A credit that would push the wallet past its limit is refused, not clamped.
func (s *service) SellItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "player", playerName, "item", itemName)

	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}
	if err := validateName(ArgItemName, itemName); err != nil {
		return nil, err
	}

	receipt, err := withPlayerLock(s, playerName, func() (*domain.Receipt, error) {
		return s.sellItem(ctx, playerName, itemName)
	})
	if err != nil {
		metrics.RecordRejection(OperationSell, err)
		return nil, err
	}

	metrics.RecordSale(receipt.ItemName, receipt.Currency, receipt.Price)
	log.Info(LogMsgItemSold, "player", playerName, "item", itemName, "credited", receipt.Price, "currency", receipt.Currency)
	return receipt, nil
}

func (s *service) sellItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := lockPlayer(ctx, tx, playerName)
	if err != nil {
		return nil, err
	}

	item, err := tx.GetItemByName(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgNotInInventoryFmt, playerName, itemName, domain.ErrNotInInventory)
	}

	slot, err := tx.GetSlotForUpdate(ctx, player.ID, item.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSlotFailed, err)
	}
	if slot == nil || slot.Amount < 1 {
		return nil, fmt.Errorf(ErrMsgNotInInventoryFmt, playerName, itemName, domain.ErrNotInInventory)
	}

	credit := item.SellPrice()
	next, err := item.Currency.TryAdd(player.Balance(item.Currency), int64(credit))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSellOverflowFmt, item.Name, item.Currency, domain.ErrWalletOverflow, err)
	}
	player.SetBalance(item.Currency, next)
	remaining := slot.Amount - 1

	if err := tx.UpdateBalances(ctx, player.ID, player.Gold, player.Gems); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalancesFailed, err)
	}
	if err := tx.SetSlotAmount(ctx, player.ID, item.ID, remaining); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateSlotFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.Receipt{
		PlayerName: player.Name,
		ItemName:   item.Name,
		Price:      credit,
		Currency:   item.Currency,
		Owned:      remaining,
		Gold:       player.Gold,
		Gems:       player.Gems,
	}, nil
}
