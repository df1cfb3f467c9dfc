package memory

import (
	"context"
	"fmt"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// tx stages writes until Commit. It implements LedgerTx, CatalogTx and UserTx.
type tx struct {
	s      *Store
	closed bool

	players  map[string]domain.Player // staged player rows keyed by name
	newItems []domain.Item
	slots    map[slotKey]int
}

func (t *tx) check(op string) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return t.s.fault(op)
}

// Commit applies all staged writes
func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	if err := t.s.fault("Commit"); err != nil {
		t.release()
		return err
	}

	t.s.mu.Lock()
	for name, p := range t.players {
		t.s.players[name] = p
		t.s.playerIDs[p.ID] = name
	}
	for _, item := range t.newItems {
		t.s.items = append(t.s.items, item)
		t.s.itemByName[item.Name] = len(t.s.items) - 1
	}
	for key, amount := range t.slots {
		if amount <= 0 {
			delete(t.s.slots, key)
			continue
		}
		t.s.slots[key] = amount
	}
	t.s.mu.Unlock()

	t.release()
	return nil
}

// Rollback discards all staged writes
func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.release()
	return nil
}

func (t *tx) release() {
	t.closed = true
	t.players = nil
	t.newItems = nil
	t.slots = nil
	t.s.txMu.Unlock()
}

func (t *tx) lookupPlayer(name string) (*domain.Player, error) {
	if p, ok := t.players[name]; ok {
		return &p, nil
	}
	return t.s.playerByName(name)
}

// GetPlayerForUpdate loads a player; the open transaction already excludes other writers
func (t *tx) GetPlayerForUpdate(ctx context.Context, name string) (*domain.Player, error) {
	if err := t.check("GetPlayerForUpdate"); err != nil {
		return nil, err
	}
	return t.lookupPlayer(name)
}

// GetPlayerByName loads a player inside the transaction
func (t *tx) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	if err := t.check("GetPlayerByName"); err != nil {
		return nil, err
	}
	return t.lookupPlayer(name)
}

// GetItemByName finds committed or staged items by exact name
func (t *tx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	if err := t.check("GetItemByName"); err != nil {
		return nil, err
	}
	for _, item := range t.newItems {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if item, ok := t.s.itemByNameLocked(name); ok {
		return item, nil
	}
	return nil, nil
}

// GetSlotForUpdate returns the player's slot for the item, or nil
func (t *tx) GetSlotForUpdate(ctx context.Context, playerID string, itemID int) (*domain.InventorySlot, error) {
	if err := t.check("GetSlotForUpdate"); err != nil {
		return nil, err
	}
	key := slotKey{playerID, itemID}
	amount, staged := t.slots[key]
	if !staged {
		t.s.mu.RLock()
		amount = t.s.slots[key]
		t.s.mu.RUnlock()
	}
	if amount <= 0 {
		return nil, nil
	}
	return &domain.InventorySlot{PlayerID: playerID, ItemID: itemID, Amount: amount}, nil
}

// SetSlotAmount stages a slot write; zero deletes the slot
func (t *tx) SetSlotAmount(ctx context.Context, playerID string, itemID, amount int) error {
	if err := t.check("SetSlotAmount"); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: negative slot amount %d", domain.ErrInvalidInput, amount)
	}
	t.slots[slotKey{playerID, itemID}] = amount
	return nil
}

// UpdateBalances stages new balances for the player
func (t *tx) UpdateBalances(ctx context.Context, playerID string, gold, gems int) error {
	if err := t.check("UpdateBalances"); err != nil {
		return err
	}
	p, err := t.playerByID(playerID)
	if err != nil {
		return err
	}
	p.Gold = gold
	p.Gems = gems
	t.players[p.Name] = *p
	return nil
}

// SetAdmin stages the admin flag for the player
func (t *tx) SetAdmin(ctx context.Context, playerID string, isAdmin bool) error {
	if err := t.check("SetAdmin"); err != nil {
		return err
	}
	p, err := t.playerByID(playerID)
	if err != nil {
		return err
	}
	p.IsAdmin = isAdmin
	t.players[p.Name] = *p
	return nil
}

// InsertItem stages a new catalog item
func (t *tx) InsertItem(ctx context.Context, item *domain.Item) error {
	if err := t.check("InsertItem"); err != nil {
		return err
	}
	existing, err := t.GetItemByName(ctx, item.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.Name)
	}

	t.s.mu.Lock()
	item.ID = t.s.nextItemID
	t.s.nextItemID++
	t.s.mu.Unlock()

	t.newItems = append(t.newItems, *item)
	return nil
}

func (t *tx) playerByID(playerID string) (*domain.Player, error) {
	for _, p := range t.players {
		if p.ID == playerID {
			found := p
			return &found, nil
		}
	}
	t.s.mu.RLock()
	name, ok := t.s.playerIDs[playerID]
	t.s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: id %s", domain.ErrPlayerNotFound, playerID)
	}
	p, err := t.s.playerByName(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrPlayerNotFound, playerID)
	}
	return p, nil
}
