// Package memory is a process-local store implementing the repository
// interfaces with all-or-nothing transactions. Writes are staged on the
// transaction and applied on Commit; only one transaction is open at a time.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/repository"
)

type slotKey struct {
	playerID string
	itemID   int
}

// Store holds players, items and inventory slots in memory
type Store struct {
	txMu sync.Mutex   // held for the lifetime of a transaction
	mu   sync.RWMutex // guards the maps below

	players    map[string]domain.Player // keyed by name
	playerIDs  map[string]string        // id -> name
	items      []domain.Item            // insertion order
	itemByName map[string]int           // name -> index into items
	slots      map[slotKey]int
	nextItemID int

	faultMu sync.Mutex
	faults  map[string]error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		players:    make(map[string]domain.Player),
		playerIDs:  make(map[string]string),
		itemByName: make(map[string]int),
		slots:      make(map[slotKey]int),
		nextItemID: 1,
		faults:     make(map[string]error),
	}
}

// FailOn makes the next call to the named operation return err.
// Operation names match the method names, e.g. "SetSlotAmount" or "Commit".
func (s *Store) FailOn(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)
		return err
	}
	return nil
}

// Ledger returns the store as a repository.Ledger
func (s *Store) Ledger() repository.Ledger { return ledgerRepo{s} }

// Catalog returns the store as a repository.Catalog
func (s *Store) Catalog() repository.Catalog { return catalogRepo{s} }

// Users returns the store as a repository.User
func (s *Store) Users() repository.User { return userRepo{s} }

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close() {}

func (s *Store) begin(ctx context.Context) (*tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := s.fault("BeginTx"); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	return &tx{
		s:       s,
		players: make(map[string]domain.Player),
		slots:   make(map[slotKey]int),
	}, nil
}

func (s *Store) playerByName(name string) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) itemByNameLocked(name string) (*domain.Item, bool) {
	idx, ok := s.itemByName[name]
	if !ok {
		return nil, false
	}
	item := s.items[idx]
	return &item, true
}

func (s *Store) createPlayer(ctx context.Context, player *domain.Player) error {
	if err := s.fault("CreatePlayer"); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[player.Name]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePlayer, player.Name)
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	s.players[player.Name] = *player
	s.playerIDs[player.ID] = player.Name
	return nil
}

func (s *Store) inventory(playerID string) []domain.InventoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.InventoryEntry, 0)
	for _, item := range s.items {
		if amount := s.slots[slotKey{playerID, item.ID}]; amount > 0 {
			entries = append(entries, domain.InventoryEntry{Item: item, Amount: amount})
		}
	}
	return entries
}

func (s *Store) listItems() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	return items
}
