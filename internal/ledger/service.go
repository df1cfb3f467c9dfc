package ledger

import (
	"context"

	"github.com/osse101/InventoryApp_Go/internal/concurrency"
	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// Service is the transactional player-economy engine. Every mutation runs in
// a single transaction and either applies completely or not at all.
type Service interface {
	BuyItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error)
	SellItem(ctx context.Context, playerName, itemName string) (*domain.Receipt, error)
	ProcessGrind(ctx context.Context, playerName string) (*domain.GrindResult, error)
	// ExchangeGems buys gems with gold when gemsDelta > 0 and sells them when gemsDelta < 0
	ExchangeGems(ctx context.Context, playerName string, gemsDelta, goldRate int) (*domain.ExchangeResult, error)
	// SetBalance overwrites both balances, clamped to their bounds. adminName must be an administrator.
	SetBalance(ctx context.Context, adminName, playerName string, gold, gems int) (*domain.Player, error)
	GetPlayerWithInventory(ctx context.Context, playerName string) (*domain.PlayerInventory, error)
}

type service struct {
	repo  repository.Ledger
	locks *concurrency.LockManager
	rnd   RandomSource
}

// Option configures the ledger service
type Option func(*service)

// WithRandomSource replaces the grind reward generator
func WithRandomSource(src RandomSource) Option {
	return func(s *service) {
		s.rnd = src
	}
}

// WithLockManager shares a lock manager with other services
func WithLockManager(lm *concurrency.LockManager) Option {
	return func(s *service) {
		s.locks = lm
	}
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger, opts ...Option) Service {
	s := &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		rnd:   DefaultRandomSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// withPlayerLock serializes mutations of one player within this process.
// The row lock taken by GetPlayerForUpdate covers other processes.
func withPlayerLock[T any](s *service, playerName string, fn func() (T, error)) (T, error) {
	var result T
	err := s.locks.Do(playerKey(playerName), func() error {
		var err error
		result, err = fn()
		return err
	})
	return result, err
}

func playerKey(name string) string {
	return "player:" + name
}
