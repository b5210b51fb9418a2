package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/delve-engine/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Kind)
	assert.Equal(t, 1, cfg.Delve.Depth)
	assert.Equal(t, 6, cfg.Delve.LightUnits)
	assert.Equal(t, 5, cfg.Delve.Rations)
	assert.False(t, cfg.Delve.LairMode)
	assert.Equal(t, int64(0), cfg.Delve.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DELVE_STORAGE", config.StorageSQLite)
	t.Setenv("DELVE_SQLITE_PATH", "/tmp/underhalls.db")
	t.Setenv("DELVE_DEPTH", "3")
	t.Setenv("DELVE_LAIR", "true")
	t.Setenv("DELVE_SEED", "1337")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageSQLite, cfg.Storage.Kind)
	assert.Equal(t, "/tmp/underhalls.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 3, cfg.Delve.Depth)
	assert.True(t, cfg.Delve.LairMode)
	assert.Equal(t, int64(1337), cfg.Delve.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("DELVE_STORAGE", "carrier-pigeon")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RejectsShallowDepth(t *testing.T) {
	t.Setenv("DELVE_DEPTH", "0")
	_, err := config.Load()
	assert.Error(t, err)
}
