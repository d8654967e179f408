// Package config loads solver settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Cache backends for the opening-guess cache.
const (
	CacheFile   = "file"
	CacheSQLite = "sqlite"
	CacheMemory = "memory"
	CacheNone   = "none"
)

// Config holds environment-driven settings. Command-line flags in main
// override the matching fields.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	WordsFile    string `env:"WORDS_FILE"`
	CacheBackend string `env:"OPENERS_CACHE" envDefault:"file"`
	CacheDir     string `env:"OPENERS_CACHE_DIR"`
	CacheDB      string `env:"OPENERS_CACHE_DB" envDefault:"./data/openers.db"`
	Port         string `env:"PORT" envDefault:"5176"`
	Workers      int    `env:"SOLVER_WORKERS" envDefault:"0"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config and validates it.
// userCacheDir supplies the default cache directory when OPENERS_CACHE_DIR is unset.
func Load(userCacheDir func() (string, error)) (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	switch c.CacheBackend {
	case CacheFile, CacheSQLite, CacheMemory, CacheNone:
	default:
		return c, fmt.Errorf("OPENERS_CACHE: unknown backend %q", c.CacheBackend)
	}
	if c.CacheBackend == CacheFile && c.CacheDir == "" {
		base, err := userCacheDir()
		if err != nil {
			// No home cache dir; fall back to the working directory.
			base = "."
		}
		c.CacheDir = filepath.Join(base, "wordle-solver")
	}
	return c, nil
}
