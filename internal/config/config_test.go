package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDir(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "WORDS_FILE", "OPENERS_CACHE", "OPENERS_CACHE_DIR", "OPENERS_CACHE_DB", "PORT", "SOLVER_WORKERS", "CLIENT_ORIGIN"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c, err := Load(fixedDir("/home/x/.cache"))
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, CacheFile, c.CacheBackend)
	assert.Equal(t, filepath.Join("/home/x/.cache", "wordle-solver"), c.CacheDir)
	assert.Equal(t, "5176", c.Port)
	assert.Equal(t, 0, c.Workers)
	assert.Equal(t, "http://localhost:5173", c.ClientOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENERS_CACHE", "sqlite")
	t.Setenv("OPENERS_CACHE_DB", "/tmp/o.db")
	t.Setenv("SOLVER_WORKERS", "3")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("CLIENT_ORIGIN", "https://wordle.example.com")

	c, err := Load(fixedDir("/unused"))
	require.NoError(t, err)
	assert.Equal(t, CacheSQLite, c.CacheBackend)
	assert.Equal(t, "/tmp/o.db", c.CacheDB)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, "/tmp/words.txt", c.WordsFile)
	assert.Equal(t, "https://wordle.example.com", c.ClientOrigin)
}

func TestLoadCacheDirFallback(t *testing.T) {
	t.Setenv("OPENERS_CACHE", "file")
	t.Setenv("OPENERS_CACHE_DIR", "")
	c, err := Load(func() (string, error) { return "", errors.New("no home") })
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "wordle-solver"), c.CacheDir)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("OPENERS_CACHE", "redis")
	_, err := Load(fixedDir("/tmp"))
	assert.ErrorContains(t, err, "unknown backend")
}

func TestLoadRejectsBadWorkers(t *testing.T) {
	t.Setenv("SOLVER_WORKERS", "many")
	_, err := Load(fixedDir("/tmp"))
	assert.Error(t, err)
}
