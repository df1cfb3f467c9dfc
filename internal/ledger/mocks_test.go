package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// MockRepository is a mock implementation of repository.Ledger
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockTx is a mock implementation of repository.LedgerTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockTx) GetSlotForUpdate(ctx context.Context, playerID string, itemID int) (*domain.InventorySlot, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySlot), args.Error(1)
}

func (m *MockTx) SetSlotAmount(ctx context.Context, playerID string, itemID, amount int) error {
	return m.Called(ctx, playerID, itemID, amount).Error(0)
}

func (m *MockTx) UpdateBalances(ctx context.Context, playerID string, gold, gems int) error {
	return m.Called(ctx, playerID, gold, gems).Error(0)
}

// fixedSource always returns the same offset, capped to the range
type fixedSource struct {
	n int
}

func (f fixedSource) IntN(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}
