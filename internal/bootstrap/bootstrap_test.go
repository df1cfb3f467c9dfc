package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryApp_Go/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StorageDriver:       config.StorageDriverMemory,
		LogLevel:            "error",
		LogFormat:           "text",
		Environment:         "test",
		RateFeedURL:         "http://127.0.0.1:0/ticker",
		RateRefreshInterval: time.Hour,
		RateFallback:        80,
		WorkerCount:         1,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
		"notes.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), LogFilePermission))
	}

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
		"notes.txt",
	}, left)
}

func TestSetupLogger_SessionFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogger(cfg, "test")
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	matches, err := filepath.Glob(filepath.Join(cfg.LogDir, "session_*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	f, err := SetupLogger(memoryConfig(), "test")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestInitializeRepositories_Memory(t *testing.T) {
	ctx := context.Background()

	repos, err := InitializeRepositories(ctx, memoryConfig())
	require.NoError(t, err)
	defer repos.Close()

	require.NotNil(t, repos.Pinger)
	assert.NoError(t, repos.Pinger.Ping(ctx))
	assert.NotNil(t, repos.Ledger)
	assert.NotNil(t, repos.Catalog)
	assert.NotNil(t, repos.User)
}

func TestSeedStorage_BuiltInData(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, SeedStorage(ctx, cfg, repos))
	count, err := repos.Catalog.CountItems(ctx)
	require.NoError(t, err)
	assert.Positive(t, count)

	// second run leaves a populated catalog alone
	require.NoError(t, SeedStorage(ctx, cfg, repos))
	again, err := repos.Catalog.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, again)
}

func TestSeedStorage_MissingFile(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.json")
	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)

	assert.Error(t, SeedStorage(ctx, cfg, repos))
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)
	svc := InitializeServices(repos)

	t.Run("no administrator configured", func(t *testing.T) {
		assert.NoError(t, EnsureAdmin(ctx, cfg, svc.Users))
	})

	t.Run("creates administrator", func(t *testing.T) {
		cfg.AdminName = "root"
		cfg.AdminPassword = "rootpw"
		require.NoError(t, EnsureAdmin(ctx, cfg, svc.Users))

		player, err := svc.Users.GetPlayer(ctx, "root")
		require.NoError(t, err)
		assert.True(t, player.IsAdmin)
	})
}

func TestStartRateFeed_ServesFallback(t *testing.T) {
	cfg := memoryConfig()
	feed, background := StartRateFeed(context.Background(), cfg)
	defer background.Stop()

	assert.Equal(t, cfg.RateFallback, feed.GetGemPriceInGold(context.Background()))
}

func TestGracefulShutdown(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)
	_, background := StartRateFeed(ctx, cfg)

	assert.NotPanics(t, func() {
		GracefulShutdown(ctx, ShutdownComponents{Background: background, Repositories: repos})
	})
	assert.NotPanics(t, func() {
		GracefulShutdown(ctx, ShutdownComponents{})
	})
}
