package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryApp_Go/internal/database/memory"
	"github.com/osse101/InventoryApp_Go/internal/domain"
)

func newLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestLoad_BuiltInStarterData(t *testing.T) {
	cfg, err := newLoader(t).Load("")

	require.NoError(t, err)
	require.Len(t, cfg.Items, 4)
	assert.Equal(t, "Ржавая вилка", cfg.Items[0].Name)
	assert.Equal(t, 3, cfg.Items[0].Price)
	assert.Equal(t, domain.CurrencyGems, cfg.Items[2].Currency)
	assert.Equal(t, 0, cfg.Items[3].Price)
	require.Len(t, cfg.Players, 1)
	assert.Equal(t, "Player_01", cfg.Players[0].Name)
	assert.Equal(t, 4, cfg.Players[0].Gems)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"name":"Anvil","price":50,"currency":"gold"}]}`), 0o644))

	cfg, err := newLoader(t).Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Items, 1)
	assert.Empty(t, cfg.Players)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative price", `{"items":[{"name":"A","price":-1,"currency":"gold"}]}`},
		{"unknown currency", `{"items":[{"name":"A","price":1,"currency":"silver"}]}`},
		{"missing items", `{"players":[]}`},
		{"empty name", `{"items":[{"name":"","price":1,"currency":"gold"}]}`},
		{"unknown field", `{"items":[{"name":"A","price":1,"currency":"gold","tier":2}]}`},
		{"player over cap", `{"items":[],"players":[{"name":"p","gold":100000}]}`},
		{"not json", `items:`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Parse([]byte(tt.data), "test")
			assert.Error(t, err)
		})
	}
}

func TestParse_DuplicateItem(t *testing.T) {
	data := `{"items":[{"name":"A","price":1,"currency":"gold"},{"name":"A","price":2,"currency":"gems"}]}`

	_, err := newLoader(t).Parse([]byte(data), "test")

	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestApply_EmptyCatalog(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)

	res, err := Apply(ctx, cfg, store.Catalog(), store.Users())

	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 4, res.ItemsInserted)
	assert.Equal(t, 1, res.PlayersInserted)

	items, err := store.Catalog().ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Палка", items[3].Name)

	p, err := store.Users().GetPlayerByName(ctx, "Player_01")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 10, p.Gold)
	assert.Equal(t, 4, p.Gems)
	assert.False(t, p.IsAdmin)
}

func TestApply_SkipsPopulatedCatalog(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	_, err = Apply(ctx, cfg, store.Catalog(), store.Users())
	require.NoError(t, err)

	res, err := Apply(ctx, cfg, store.Catalog(), store.Users())

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	n, err := store.Catalog().CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestApply_KeepsExistingPlayer(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Users().CreatePlayer(ctx, &domain.Player{Name: "Player_01", Gold: 500}))
	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)

	res, err := Apply(ctx, cfg, store.Catalog(), store.Users())

	require.NoError(t, err)
	assert.Zero(t, res.PlayersInserted)
	p, err := store.Users().GetPlayerByName(ctx, "Player_01")
	require.NoError(t, err)
	assert.Equal(t, 500, p.Gold)
}

func TestApply_InsertFailureLeavesCatalogEmpty(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	store.FailOn("Commit", errors.New("injected"))

	_, err = Apply(ctx, cfg, store.Catalog(), store.Users())

	require.Error(t, err)
	n, err := store.Catalog().CountItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
