package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/InventoryApp_Go/internal/catalog"
	"github.com/osse101/InventoryApp_Go/internal/domain"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, password string) (*domain.Player, error) {
	args := m.Called(ctx, name, password)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockUserService) SignIn(ctx context.Context, name, password string) (*domain.Player, error) {
	args := m.Called(ctx, name, password)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockUserService) GrantAdmin(ctx context.Context, actorName, actorPassword, targetName string) error {
	args := m.Called(ctx, actorName, actorPassword, targetName)
	return args.Error(0)
}

func (m *MockUserService) GetPlayer(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, name, password string) (*domain.Player, error) {
	args := m.Called(ctx, name, password)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) BuyItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
	args := m.Called(ctx, playerName, itemName)
	r, _ := args.Get(0).(*domain.Receipt)
	return r, args.Error(1)
}

func (m *MockLedgerService) SellItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error) {
	args := m.Called(ctx, playerName, itemName)
	r, _ := args.Get(0).(*domain.Receipt)
	return r, args.Error(1)
}

func (m *MockLedgerService) ProcessGrind(ctx context.Context, playerName string) (*domain.GrindResult, error) {
	args := m.Called(ctx, playerName)
	r, _ := args.Get(0).(*domain.GrindResult)
	return r, args.Error(1)
}

func (m *MockLedgerService) ExchangeGems(ctx context.Context, playerName string, gemsDelta, goldRate int) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, playerName, gemsDelta, goldRate)
	r, _ := args.Get(0).(*domain.ExchangeResult)
	return r, args.Error(1)
}

func (m *MockLedgerService) SetBalance(ctx context.Context, adminName, playerName string, gold, gems int) (*domain.Player, error) {
	args := m.Called(ctx, adminName, playerName, gold, gems)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockLedgerService) GetPlayerWithInventory(ctx context.Context, playerName string) (*domain.PlayerInventory, error) {
	args := m.Called(ctx, playerName)
	p, _ := args.Get(0).(*domain.PlayerInventory)
	return p, args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetItem(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	i, _ := args.Get(0).(*domain.Item)
	return i, args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *MockCatalogService) CreateItem(ctx context.Context, actorName string, req catalog.CreateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, actorName, req)
	i, _ := args.Get(0).(*domain.Item)
	return i, args.Error(1)
}

func (m *MockCatalogService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	s, _ := args.Get(0).([]string)
	return s, args.Error(1)
}

type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetGemPriceInGold(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}
