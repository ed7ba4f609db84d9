// Package config loads the engine's TOML configuration file: the knobs
// governing the move cache, history pre-allocation, and the perft node
// cache. Unset fields fall back to Default.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// PerftCacheConfig controls the optional badger-backed perft node-count
// cache (internal/perftcache).
type PerftCacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// EngineConfig is the full set of engine-level tunables outside the rules
// themselves.
type EngineConfig struct {
	MoveCacheEnabled       bool             `toml:"move_cache_enabled"`
	HistoryInitialCapacity int              `toml:"history_initial_capacity"`
	PerftCache             PerftCacheConfig `toml:"perft_cache"`
}

// Default returns the configuration the engine runs with when no file is
// supplied.
func Default() EngineConfig {
	return EngineConfig{
		MoveCacheEnabled:       true,
		HistoryInitialCapacity: 256,
		PerftCache: PerftCacheConfig{
			Enabled: false,
			Dir:     "./perft-cache",
		},
	}
}

// Load reads and parses a TOML configuration file at path, starting from
// Default and overwriting whatever fields the file sets.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}
