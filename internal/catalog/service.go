// Package catalog is the name-addressable item registry with an admin-gated
// insertion path.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/osse101/InventoryApp_Go/internal/concurrency"
	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/metrics"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

// Service defines catalog operations
type Service interface {
	// GetItem looks an item up by exact, case-sensitive name
	GetItem(ctx context.Context, name string) (*domain.Item, error)
	// ListItems returns the whole catalog in insertion order
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, actorName string, req CreateItemRequest) (*domain.Item, error)
	// Suggest returns item names close to query, best match first
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

// CreateItemRequest describes a new catalog item
type CreateItemRequest struct {
	Name        string
	Description string
	Price       int
	Currency    domain.Currency
}

type service struct {
	repo  repository.Catalog
	locks *concurrency.LockManager
	cache *itemCache
}

// Option configures the catalog service
type Option func(*service)

// WithCache overrides the item cache size and TTL
func WithCache(size int, ttl time.Duration) Option {
	return func(s *service) {
		s.cache = newItemCache(size, ttl)
	}
}

// WithLockManager shares a lock manager with other services
func WithLockManager(lm *concurrency.LockManager) Option {
	return func(s *service) {
		s.locks = lm
	}
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, opts ...Option) Service {
	s := &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		cache: newItemCache(DefaultCacheSize, DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetItem(ctx context.Context, name string) (*domain.Item, error) {
	if item, ok := s.cache.Get(name); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "item", name)
		return item, nil
	}

	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, name, domain.ErrItemNotFound)
	}
	s.cache.Set(item)
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// CreateItem inserts a new item. Creations of the same name are serialized
// in-process; the storage uniqueness constraint settles races between processes.
func (s *service) CreateItem(ctx context.Context, actorName string, req CreateItemRequest) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateItemCalled, "admin", actorName, "item", req.Name, "price", req.Price, "currency", req.Currency)

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	var created *domain.Item
	err := s.locks.Do("item:"+req.Name, func() error {
		var err error
		created, err = s.createItem(ctx, actorName, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(created.Name)
	metrics.ItemsCreated.Inc()
	log.Info(LogMsgItemCreated, "admin", actorName, "item", created.Name, "id", created.ID)
	return created, nil
}

func (s *service) createItem(ctx context.Context, actorName string, req CreateItemRequest) (*domain.Item, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	actor, err := tx.GetPlayerByName(ctx, actorName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	if actor == nil {
		return nil, fmt.Errorf(ErrMsgActorNotFoundFmt, actorName, domain.ErrAccessDenied)
	}
	if !actor.IsAdmin {
		return nil, fmt.Errorf(ErrMsgNotAdminFmt, actorName, domain.ErrAccessDenied)
	}

	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
	}
	if err := tx.InsertItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateItem) {
			return nil, fmt.Errorf(ErrMsgDuplicateItemFmt, req.Name, domain.ErrDuplicateItem)
		}
		return nil, fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		if errors.Is(err, domain.ErrDuplicateItem) {
			return nil, fmt.Errorf(ErrMsgDuplicateItemFmt, req.Name, domain.ErrDuplicateItem)
		}
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return item, nil
}

func (s *service) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	matches := fuzzy.FindFrom(query, itemNames(items))
	names := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(names) == limit {
			break
		}
		names = append(names, m.Str)
	}
	return names, nil
}

func validateCreate(req CreateItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf(ErrMsgEmptyNameFmt, domain.ErrInvalidInput)
	}
	// Lookups are exact, so a padded name would be unreachable by its trimmed form
	if strings.TrimSpace(req.Name) != req.Name {
		return fmt.Errorf(ErrMsgPaddedNameFmt, req.Name, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf(ErrMsgNameTooLongFmt, domain.MaxNameLength, domain.ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf(ErrMsgNegativePriceFmt, req.Price, domain.ErrInvalidInput)
	}
	if req.Price > domain.MaxItemPrice {
		return fmt.Errorf(ErrMsgPriceTooHighFmt, req.Price, domain.MaxItemPrice, domain.ErrInvalidInput)
	}
	if !req.Currency.Valid() {
		return fmt.Errorf(ErrMsgInvalidCurrencyFmt, req.Currency, domain.ErrInvalidInput)
	}
	return nil
}
