package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryApp_Go/internal/database/memory"
	"github.com/osse101/InventoryApp_Go/internal/domain"
)

type fixture struct {
	store *memory.Store
	svc   Service
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{store: store, svc: NewService(store.Ledger(), opts...)}
}

func (f *fixture) player(t *testing.T, name string, gold, gems int) *domain.Player {
	t.Helper()
	p := &domain.Player{Name: name, Gold: gold, Gems: gems}
	require.NoError(t, f.store.Users().CreatePlayer(context.Background(), p))
	return p
}

func (f *fixture) admin(t *testing.T, name string) *domain.Player {
	t.Helper()
	p := &domain.Player{Name: name, IsAdmin: true}
	require.NoError(t, f.store.Users().CreatePlayer(context.Background(), p))
	return p
}

func (f *fixture) item(t *testing.T, name string, price int, currency domain.Currency) *domain.Item {
	t.Helper()
	ctx := context.Background()
	tx, err := f.store.Catalog().BeginTx(ctx)
	require.NoError(t, err)
	item := &domain.Item{Name: name, Price: price, Currency: currency}
	require.NoError(t, tx.InsertItem(ctx, item))
	require.NoError(t, tx.Commit(ctx))
	return item
}

func (f *fixture) snapshot(t *testing.T, name string) *domain.PlayerInventory {
	t.Helper()
	inv, err := f.svc.GetPlayerWithInventory(context.Background(), name)
	require.NoError(t, err)
	return inv
}

func amountOf(inv *domain.PlayerInventory, itemName string) int {
	for _, e := range inv.Items {
		if e.Item.Name == itemName {
			return e.Amount
		}
	}
	return 0
}

func TestBuyItem_Success(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 4)
	f.item(t, "Rusty Fork", 3, domain.CurrencyGold)

	receipt, err := f.svc.BuyItem(context.Background(), "hero", "Rusty Fork")

	require.NoError(t, err)
	assert.Equal(t, 3, receipt.Price)
	assert.Equal(t, domain.CurrencyGold, receipt.Currency)
	assert.Equal(t, 1, receipt.Owned)
	assert.Equal(t, 7, receipt.Gold)
	assert.Equal(t, 4, receipt.Gems)

	inv := f.snapshot(t, "hero")
	assert.Equal(t, 7, inv.Player.Gold)
	assert.Equal(t, 1, amountOf(inv, "Rusty Fork"))
}

func TestBuyItem_StacksExistingSlot(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 0)
	f.item(t, "Cord", 1, domain.CurrencyGold)

	_, err := f.svc.BuyItem(context.Background(), "hero", "Cord")
	require.NoError(t, err)
	receipt, err := f.svc.BuyItem(context.Background(), "hero", "Cord")
	require.NoError(t, err)

	assert.Equal(t, 2, receipt.Owned)
	assert.Equal(t, 8, receipt.Gold)
	inv := f.snapshot(t, "hero")
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 2, inv.Items[0].Amount)
}

func TestBuyItem_GemsCurrency(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 4)
	f.item(t, "Random Potion", 4, domain.CurrencyGems)

	receipt, err := f.svc.BuyItem(context.Background(), "hero", "Random Potion")

	require.NoError(t, err)
	assert.Equal(t, 10, receipt.Gold)
	assert.Equal(t, 0, receipt.Gems)
}

func TestBuyItem_ExactBalanceAndFreeItem(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 3, 0)
	f.item(t, "Rusty Fork", 3, domain.CurrencyGold)
	f.item(t, "Stick", 0, domain.CurrencyGold)

	_, err := f.svc.BuyItem(context.Background(), "hero", "Rusty Fork")
	require.NoError(t, err)

	receipt, err := f.svc.BuyItem(context.Background(), "hero", "Stick")
	require.NoError(t, err)
	assert.Equal(t, 0, receipt.Gold)
	assert.Equal(t, 1, receipt.Owned)
}

func TestBuyItem_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		item    string
		wantErr error
	}{
		{"insufficient funds", "hero", "Rusty Fork", domain.ErrInsufficientFunds},
		{"unknown player", "ghost", "Rusty Fork", domain.ErrPlayerNotFound},
		{"unknown item", "hero", "Excalibur", domain.ErrItemNotFound},
		{"empty player", "", "Rusty Fork", domain.ErrInvalidInput},
		{"blank item", "hero", "   ", domain.ErrInvalidInput},
		{"names are case sensitive", "hero", "rusty fork", domain.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.player(t, "hero", 2, 0)
			f.item(t, "Rusty Fork", 3, domain.CurrencyGold)

			_, err := f.svc.BuyItem(context.Background(), tt.player, tt.item)

			assert.ErrorIs(t, err, tt.wantErr)
			inv := f.snapshot(t, "hero")
			assert.Equal(t, 2, inv.Player.Gold)
			assert.Empty(t, inv.Items)
		})
	}
}

func TestSellItem_Success(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 0)
	f.item(t, "Rusty Fork", 3, domain.CurrencyGold)
	_, err := f.svc.BuyItem(context.Background(), "hero", "Rusty Fork")
	require.NoError(t, err)

	receipt, err := f.svc.SellItem(context.Background(), "hero", "Rusty Fork")

	require.NoError(t, err)
	// half of 3, rounded down
	assert.Equal(t, 1, receipt.Price)
	assert.Equal(t, 0, receipt.Owned)
	assert.Equal(t, 8, receipt.Gold)

	inv := f.snapshot(t, "hero")
	assert.Empty(t, inv.Items, "slot with zero amount must be removed")
}

func TestSellItem_NotOwned(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 0)
	f.item(t, "Rusty Fork", 3, domain.CurrencyGold)

	_, err := f.svc.SellItem(context.Background(), "hero", "Rusty Fork")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)

	_, err = f.svc.SellItem(context.Background(), "hero", "Excalibur")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)

	assert.Equal(t, 10, f.snapshot(t, "hero").Player.Gold)
}

func TestSellItem_OverflowRefused(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, "hero", 10, 0)
	item := f.item(t, "Cord", 2, domain.CurrencyGold)
	_, err := f.svc.BuyItem(context.Background(), "hero", "Cord")
	require.NoError(t, err)

	// raise gold to the limit directly
	ctx := context.Background()
	tx, err := f.store.Ledger().BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateBalances(ctx, p.ID, domain.MaxGold, 0))
	require.NoError(t, tx.Commit(ctx))

	_, err = f.svc.SellItem(ctx, "hero", item.Name)

	assert.ErrorIs(t, err, domain.ErrWalletOverflow)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)
	inv := f.snapshot(t, "hero")
	assert.Equal(t, domain.MaxGold, inv.Player.Gold)
	assert.Equal(t, 1, amountOf(inv, "Cord"))
}

func TestBuyThenSell_NetCost(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 100, 0)
	f.item(t, "Shield", 7, domain.CurrencyGold)

	_, err := f.svc.BuyItem(context.Background(), "hero", "Shield")
	require.NoError(t, err)
	_, err = f.svc.SellItem(context.Background(), "hero", "Shield")
	require.NoError(t, err)

	inv := f.snapshot(t, "hero")
	assert.Equal(t, 100-7+3, inv.Player.Gold)
	assert.Empty(t, inv.Items)
}

func TestBuyItem_StepFailureRollsBack(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	tx := new(MockTx)
	svc := NewService(repo)
	ctx := context.Background()
	player := &domain.Player{ID: "p1", Name: "hero", Gold: 10}
	item := &domain.Item{ID: 1, Name: "Cord", Price: 1, Currency: domain.CurrencyGold}
	dbErr := errors.New("disk full")

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlayerForUpdate", ctx, "hero").Return(player, nil)
	tx.On("GetItemByName", ctx, "Cord").Return(item, nil)
	tx.On("GetSlotForUpdate", ctx, "p1", 1).Return(nil, nil)
	tx.On("UpdateBalances", ctx, "p1", 9, 0).Return(nil)
	tx.On("SetSlotAmount", ctx, "p1", 1, 1).Return(dbErr)
	tx.On("Rollback", ctx).Return(nil)

	// ACT
	_, err := svc.BuyItem(ctx, "hero", "Cord")

	// ASSERT
	assert.ErrorIs(t, err, dbErr)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", ctx)
}

func TestSellItem_CommitFailureReported(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	tx := new(MockTx)
	svc := NewService(repo)
	ctx := context.Background()
	player := &domain.Player{ID: "p1", Name: "hero", Gold: 10}
	item := &domain.Item{ID: 1, Name: "Cord", Price: 4, Currency: domain.CurrencyGold}
	commitErr := errors.New("connection reset")

	repo.On("BeginTx", ctx).Return(tx, nil)
	tx.On("GetPlayerForUpdate", ctx, "hero").Return(player, nil)
	tx.On("GetItemByName", ctx, "Cord").Return(item, nil)
	tx.On("GetSlotForUpdate", ctx, "p1", 1).Return(&domain.InventorySlot{PlayerID: "p1", ItemID: 1, Amount: 3}, nil)
	tx.On("UpdateBalances", ctx, "p1", 12, 0).Return(nil)
	tx.On("SetSlotAmount", ctx, "p1", 1, 2).Return(nil)
	tx.On("Commit", ctx).Return(commitErr)
	tx.On("Rollback", ctx).Return(domain.ErrTxClosed)

	// ACT
	receipt, err := svc.SellItem(ctx, "hero", "Cord")

	// ASSERT
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, commitErr)
	tx.AssertExpectations(t)
}

func TestBuyItem_MemoryStoreFaultLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.player(t, "hero", 10, 0)
	f.item(t, "Cord", 1, domain.CurrencyGold)
	fault := errors.New("injected")
	f.store.FailOn("SetSlotAmount", fault)

	_, err := f.svc.BuyItem(context.Background(), "hero", "Cord")

	assert.ErrorIs(t, err, fault)
	inv := f.snapshot(t, "hero")
	assert.Equal(t, 10, inv.Player.Gold)
	assert.Empty(t, inv.Items)
}
