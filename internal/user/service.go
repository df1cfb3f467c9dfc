// Package user manages player accounts: registration, sign-in and admin grants.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// Service defines account operations
type Service interface {
	// Register creates a player with the starting balances
	Register(ctx context.Context, name, password string) (*domain.Player, error)
	SignIn(ctx context.Context, name, password string) (*domain.Player, error)
	// GrantAdmin makes target an administrator. The acting admin must
	// re-enter their password.
	GrantAdmin(ctx context.Context, actorName, actorPassword, targetName string) error
	GetPlayer(ctx context.Context, name string) (*domain.Player, error)
	// EnsureAdmin registers name as an administrator, or promotes an existing
	// player. It bootstraps the first admin, so no actor is checked.
	EnsureAdmin(ctx context.Context, name, password string) (*domain.Player, error)
}

type service struct {
	repo       repository.User
	bcryptCost int
}

// Option configures the user service
type Option func(*service)

// WithBcryptCost sets the hashing cost; tests use bcrypt.MinCost
func WithBcryptCost(cost int) Option {
	return func(s *service) {
		s.bcryptCost = cost
	}
}

// NewService creates a new user service
func NewService(repo repository.User, opts ...Option) Service {
	s := &service{
		repo:       repo,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Register(ctx context.Context, name, password string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "name", name)

	if err := requireField(FieldName, name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) != name {
		return nil, fmt.Errorf(ErrMsgPaddedNameFmt, name, domain.ErrInvalidInput)
	}
	if err := requireField(FieldPassword, password); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, domain.MaxNameLength, domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHashPasswordFailed, err)
	}

	player := &domain.Player{
		Name:         name,
		PasswordHash: string(hash),
		Gold:         domain.StartingGold,
		Gems:         domain.StartingGems,
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, domain.ErrDuplicatePlayer) {
			return nil, fmt.Errorf(ErrMsgDuplicatePlayerFmt, name, domain.ErrDuplicatePlayer)
		}
		return nil, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}

	log.Info(LogMsgPlayerRegistered, "player_id", player.ID, "name", name)
	return player, nil
}

// SignIn returns ErrInvalidCredentials for an unknown name and a wrong
// password alike.
func (s *service) SignIn(ctx context.Context, name, password string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSignInCalled, "name", name)

	if err := requireField(FieldName, name); err != nil {
		return nil, err
	}
	if err := requireField(FieldPassword, password); err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil || !passwordMatches(player, password) {
		log.Info(LogMsgSignInFailed, "name", name)
		return nil, fmt.Errorf(ErrMsgWrongPasswordFmt, name, domain.ErrInvalidCredentials)
	}
	return player, nil
}

func (s *service) GrantAdmin(ctx context.Context, actorName, actorPassword, targetName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrantAdminCalled, "admin", actorName, "target", targetName)

	if err := requireField(FieldName, actorName); err != nil {
		return err
	}
	if err := requireField(FieldPassword, actorPassword); err != nil {
		return err
	}
	if err := requireField(FieldTarget, targetName); err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	actor, target, err := lockPair(ctx, tx, actorName, targetName)
	if err != nil {
		return err
	}
	if actor == nil {
		return fmt.Errorf(ErrMsgPlayerNotFoundFmt, actorName, domain.ErrPlayerNotFound)
	}
	if target == nil {
		return fmt.Errorf(ErrMsgPlayerNotFoundFmt, targetName, domain.ErrPlayerNotFound)
	}
	if !passwordMatches(actor, actorPassword) {
		return fmt.Errorf(ErrMsgWrongPasswordFmt, actorName, domain.ErrInvalidCredentials)
	}
	if !actor.IsAdmin {
		return fmt.Errorf(ErrMsgNotAdminFmt, actorName, domain.ErrAccessDenied)
	}

	if !target.IsAdmin {
		if err := tx.SetAdmin(ctx, target.ID, true); err != nil {
			return fmt.Errorf(ErrMsgSetAdminFailed, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgAdminGranted, "admin", actorName, "target", targetName)
	return nil
}

func (s *service) GetPlayer(ctx context.Context, name string) (*domain.Player, error) {
	if err := requireField(FieldName, name); err != nil {
		return nil, err
	}
	player, err := s.repo.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf(ErrMsgPlayerNotFoundFmt, name, domain.ErrPlayerNotFound)
	}
	return player, nil
}

func (s *service) EnsureAdmin(ctx context.Context, name, password string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEnsureAdminCalled, "name", name)

	if _, err := s.Register(ctx, name, password); err != nil && !errors.Is(err, domain.ErrDuplicatePlayer) {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, fmt.Errorf(ErrMsgPlayerNotFoundFmt, name, domain.ErrPlayerNotFound)
	}
	if !player.IsAdmin {
		if err := tx.SetAdmin(ctx, player.ID, true); err != nil {
			return nil, fmt.Errorf(ErrMsgSetAdminFailed, err)
		}
		player.IsAdmin = true
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgAdminGranted, "target", player.Name)
	return player, nil
}

// lockPair locks both rows in name order so two opposing grants can't deadlock
func lockPair(ctx context.Context, tx repository.UserTx, actorName, targetName string) (actor, target *domain.Player, err error) {
	first, second := actorName, targetName
	if second < first {
		first, second = second, first
	}

	a, err := tx.GetPlayerForUpdate(ctx, first)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	b := a
	if second != first {
		if b, err = tx.GetPlayerForUpdate(ctx, second); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
		}
	}

	if first == actorName {
		return a, b, nil
	}
	return b, a, nil
}

func passwordMatches(player *domain.Player, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)) == nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf(ErrMsgEmptyFieldFmt, field, domain.ErrInvalidInput)
	}
	return nil
}
