package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries holds the SQL shared by all repositories
type Queries struct {
	db DBTX
}

// NewQueries creates a Queries bound to db
func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries bound to tx
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const playerColumns = `player_id::text, name, password_hash, gold, gems, is_admin, created_at`

const getPlayerByName = `SELECT ` + playerColumns + ` FROM players WHERE name = $1`

const getPlayerByNameForUpdate = getPlayerByName + ` FOR UPDATE`

const insertPlayer = `
	INSERT INTO players (name, password_hash, gold, gems, is_admin)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING player_id::text, created_at`

const updateBalances = `UPDATE players SET gold = $2, gems = $3 WHERE player_id = $1::uuid`

const setAdmin = `UPDATE players SET is_admin = $2 WHERE player_id = $1::uuid`

const itemColumns = `item_id, name, description, price, currency`

const getItemByName = `SELECT ` + itemColumns + ` FROM items WHERE name = $1`

const listItems = `SELECT ` + itemColumns + ` FROM items ORDER BY item_id`

const countItems = `SELECT COUNT(*) FROM items`

const insertItem = `
	INSERT INTO items (name, description, price, currency)
	VALUES ($1, $2, $3, $4)
	RETURNING item_id`

const getSlotForUpdate = `
	SELECT amount FROM inventory_slots
	WHERE player_id = $1::uuid AND item_id = $2
	FOR UPDATE`

const upsertSlot = `
	INSERT INTO inventory_slots (player_id, item_id, amount)
	VALUES ($1::uuid, $2, $3)
	ON CONFLICT (player_id, item_id) DO UPDATE SET amount = EXCLUDED.amount`

const deleteSlot = `DELETE FROM inventory_slots WHERE player_id = $1::uuid AND item_id = $2`

const getInventory = `
	SELECT i.item_id, i.name, i.description, i.price, i.currency, s.amount
	FROM inventory_slots s
	JOIN items i ON i.item_id = s.item_id
	WHERE s.player_id = $1::uuid
	ORDER BY i.item_id`

// GetPlayerByName returns nil when no player has that name
func (q *Queries) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	p, err := scanPlayer(q.db.QueryRow(ctx, getPlayerByName, name))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, name, err)
	}
	return p, nil
}

// GetPlayerByNameForUpdate locks the player row until the transaction ends
func (q *Queries) GetPlayerByNameForUpdate(ctx context.Context, name string) (*domain.Player, error) {
	p, err := scanPlayer(q.db.QueryRow(ctx, getPlayerByNameForUpdate, name))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockPlayerFailed, name, err)
	}
	return p, nil
}

func (q *Queries) InsertPlayer(ctx context.Context, p *domain.Player) error {
	err := q.db.QueryRow(ctx, insertPlayer, p.Name, p.PasswordHash, p.Gold, p.Gems, p.IsAdmin).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePlayer, p.Name)
		}
		return fmt.Errorf(ErrMsgInsertPlayerFailed, err)
	}
	return nil
}

func (q *Queries) UpdateBalances(ctx context.Context, playerID string, gold, gems int) error {
	tag, err := q.db.Exec(ctx, updateBalances, playerID, gold, gems)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgNoSuchPlayerIDFmt, playerID, domain.ErrPlayerNotFound)
	}
	return nil
}

func (q *Queries) SetAdmin(ctx context.Context, playerID string, isAdmin bool) error {
	tag, err := q.db.Exec(ctx, setAdmin, playerID, isAdmin)
	if err != nil {
		return fmt.Errorf(ErrMsgSetAdminFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgNoSuchPlayerIDFmt, playerID, domain.ErrPlayerNotFound)
	}
	return nil
}

// GetItemByName returns nil when no item has that exact name
func (q *Queries) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	item, err := scanItem(q.db.QueryRow(ctx, getItemByName, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, name, err)
	}
	return item, nil
}

// ListItems returns items in insertion order (serial id order)
func (q *Queries) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := q.db.Query(ctx, listItems)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanItemFailed, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

func (q *Queries) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRow(ctx, countItems).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgCountItemsFailed, err)
	}
	return n, nil
}

// InsertItem sets item.ID on success
func (q *Queries) InsertItem(ctx context.Context, item *domain.Item) error {
	err := q.db.QueryRow(ctx, insertItem, item.Name, item.Description, item.Price, string(item.Currency)).
		Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.Name)
		}
		return fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	return nil
}

// GetSlotForUpdate returns nil when the player owns none of the item
func (q *Queries) GetSlotForUpdate(ctx context.Context, playerID string, itemID int) (*domain.InventorySlot, error) {
	var amount int
	err := q.db.QueryRow(ctx, getSlotForUpdate, playerID, itemID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetSlotFailed, err)
	}
	return &domain.InventorySlot{PlayerID: playerID, ItemID: itemID, Amount: amount}, nil
}

// SetSlotAmount upserts the slot, or deletes it when amount is zero
func (q *Queries) SetSlotAmount(ctx context.Context, playerID string, itemID, amount int) error {
	switch {
	case amount < 0:
		return fmt.Errorf(ErrMsgNegativeSlotFmt, amount, domain.ErrInvalidInput)
	case amount == 0:
		if _, err := q.db.Exec(ctx, deleteSlot, playerID, itemID); err != nil {
			return fmt.Errorf(ErrMsgDeleteSlotFailed, err)
		}
	default:
		if _, err := q.db.Exec(ctx, upsertSlot, playerID, itemID, amount); err != nil {
			return fmt.Errorf(ErrMsgUpsertSlotFailed, err)
		}
	}
	return nil
}

func (q *Queries) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	rows, err := q.db.Query(ctx, getInventory, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	defer rows.Close()

	entries := make([]domain.InventoryEntry, 0)
	for rows.Next() {
		var e domain.InventoryEntry
		var currency string
		if err := rows.Scan(&e.Item.ID, &e.Item.Name, &e.Item.Description, &e.Item.Price, &currency, &e.Amount); err != nil {
			return nil, fmt.Errorf(ErrMsgScanInventoryFailed, err)
		}
		e.Item.Currency = domain.Currency(currency)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return entries, nil
}
