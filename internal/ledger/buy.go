package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// BuyItem debits the item's price and adds one unit to the player's inventory
func (s *service) BuyItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyItemCalled, "player", playerName, "item", itemName)

	if err := validateName(ArgPlayerName, playerName); err != nil {
		return nil, err
	}
	if err := validateName(ArgItemName, itemName); err != nil {
		return nil, err
	}

	receipt, err := withPlayerLock(s, playerName, func() (*domain.Receipt, error) {
		return s.buyItem(ctx, playerName, itemName)
	})
	if err != nil {
		metrics.RecordRejection(OperationBuy, err)
		return nil, err
	}

	metrics.RecordPurchase(receipt.ItemName, receipt.Currency, receipt.Price)
	log.Info(LogMsgItemPurchased, "player", playerName, "item", itemName, "price", receipt.Price, "currency", receipt.Currency)
	return receipt, nil
}

func (s *service) buyItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
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
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, itemName, domain.ErrItemNotFound)
	}

	balance := player.Balance(item.Currency)
	if balance < item.Price {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, item.Name, item.Price, item.Currency, balance, domain.ErrInsufficientFunds)
	}
	next, err := item.Currency.TryAdd(balance, -int64(item.Price))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, item.Name, item.Price, item.Currency, balance, domain.ErrInsufficientFunds)
	}
	player.SetBalance(item.Currency, next)

	slot, err := tx.GetSlotForUpdate(ctx, player.ID, item.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSlotFailed, err)
	}
	owned := 1
	if slot != nil {
		owned = slot.Amount + 1
	}

	if err := tx.UpdateBalances(ctx, player.ID, player.Gold, player.Gems); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalancesFailed, err)
	}
	if err := tx.SetSlotAmount(ctx, player.ID, item.ID, owned); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateSlotFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	return &domain.Receipt{
		PlayerName: player.Name,
		ItemName:   item.Name,
		Price:      item.Price,
		Currency:   item.Currency,
		Owned:      owned,
		Gold:       player.Gold,
		Gems:       player.Gems,
	}, nil
}
