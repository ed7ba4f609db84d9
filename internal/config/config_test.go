package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	require.True(t, cfg.MoveCacheEnabled)
	require.Equal(t, 256, cfg.HistoryInitialCapacity)
	require.False(t, cfg.PerftCache.Enabled)
	require.Equal(t, "./perft-cache", cfg.PerftCache.Dir)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	contents := `
move_cache_enabled = false
history_initial_capacity = 1024

[perft_cache]
enabled = true
dir = "/tmp/perft-nodes"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.False(t, cfg.MoveCacheEnabled)
	require.Equal(t, 1024, cfg.HistoryInitialCapacity)
	require.True(t, cfg.PerftCache.Enabled)
	require.Equal(t, "/tmp/perft-nodes", cfg.PerftCache.Dir)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("move_cache_enabled = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.False(t, cfg.MoveCacheEnabled)
	require.Equal(t, 256, cfg.HistoryInitialCapacity)
}
