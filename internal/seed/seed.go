// Package seed fills an empty catalog with starter items and players.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
	"github.com/osse101/InventoryApp_Go/internal/repository"
	"github.com/osse101/InventoryApp_Go/internal/validation"
)

//go:embed items.schema.json
var schemaJSON []byte

//go:embed starter.json
var starterJSON []byte

// ErrInvalidSeed marks seed data that passed the schema but is still unusable
var ErrInvalidSeed = errors.New("invalid seed data")

// Config is the starter data file
type Config struct {
	Version string      `json:"version"`
	Items   []ItemDef   `json:"items"`
	Players []PlayerDef `json:"players"`
}

// ItemDef describes one catalog item
type ItemDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	Currency    domain.Currency `json:"currency"`
}

// PlayerDef describes a starter player. Starter players have no password
// and can't sign in until one is set.
type PlayerDef struct {
	Name string `json:"name"`
	Gold int    `json:"gold"`
	Gems int    `json:"gems"`
}

// Result reports what Apply wrote
type Result struct {
	ItemsInserted   int
	PlayersInserted int
	Skipped         bool
}

// Loader reads and validates seed files
type Loader struct {
	schemas validation.SchemaValidator
}

// NewLoader creates a loader with the seed schema registered
func NewLoader() (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, schemaJSON); err != nil {
		return nil, err
	}
	return &Loader{schemas: v}, nil
}

// Load reads path, or the built-in starter data when path is empty
func (l *Loader) Load(path string) (*Config, error) {
	data := starterJSON
	source := "built-in starter data"
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
		}
		source = path
	}
	return l.Parse(data, source)
}

// Parse validates and decodes seed data
func (l *Loader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemas.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, source, err)
	}

	seen := make(map[string]bool, len(cfg.Items))
	for _, item := range cfg.Items {
		if seen[item.Name] {
			return nil, fmt.Errorf(ErrMsgDuplicateNameFmt, ErrInvalidSeed, item.Name)
		}
		seen[item.Name] = true
	}
	return &cfg, nil
}

// Apply inserts the items and players, but only when the catalog is empty.
// Items go in with one transaction; players that already exist are left alone.
func Apply(ctx context.Context, cfg *Config, items repository.Catalog, users repository.User) (*Result, error) {
	log := logger.FromContext(ctx)

	count, err := items.CountItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountItemsFailed, err)
	}
	if count > 0 {
		log.Info(LogMsgCatalogNotEmpty, "items", count)
		return &Result{Skipped: true}, nil
	}

	result := &Result{}
	if err := insertItems(ctx, cfg.Items, items); err != nil {
		return nil, err
	}
	result.ItemsInserted = len(cfg.Items)
	log.Info(LogMsgItemsSeeded, "count", result.ItemsInserted)

	for _, def := range cfg.Players {
		created, err := ensurePlayer(ctx, def, users)
		if err != nil {
			return nil, err
		}
		if created {
			result.PlayersInserted++
			log.Info(LogMsgPlayerSeeded, "name", def.Name)
		}
	}
	return result, nil
}

func insertItems(ctx context.Context, defs []ItemDef, items repository.Catalog) error {
	tx, err := items.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	for _, def := range defs {
		item := &domain.Item{
			Name:        def.Name,
			Description: def.Description,
			Price:       def.Price,
			Currency:    def.Currency,
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, def.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return nil
}

func ensurePlayer(ctx context.Context, def PlayerDef, users repository.User) (bool, error) {
	existing, err := users.GetPlayerByName(ctx, def.Name)
	if err != nil {
		return false, fmt.Errorf(ErrMsgGetPlayerFailed, def.Name, err)
	}
	if existing != nil {
		return false, nil
	}

	player := &domain.Player{
		Name: def.Name,
		Gold: domain.CurrencyGold.Clamp(int64(def.Gold)),
		Gems: domain.CurrencyGems.Clamp(int64(def.Gems)),
	}
	if err := users.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, domain.ErrDuplicatePlayer) {
			return false, nil
		}
		return false, fmt.Errorf(ErrMsgCreatePlayerFailed, def.Name, err)
	}
	return true, nil
}
