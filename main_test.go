package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tui"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		backend string
		wantNil bool
		wantRef string
	}{
		{config.CacheFile, false, filepath.Join(dir, "cache", "openers-0123456789abcdef.txt")},
		{config.CacheSQLite, false, filepath.Join(dir, "openers.db")},
		{config.CacheMemory, false, ""},
		{config.CacheNone, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.backend, func(t *testing.T) {
			cfg := config.Config{
				CacheBackend: tc.backend,
				CacheDir:     filepath.Join(dir, "cache"),
				CacheDB:      filepath.Join(dir, "openers.db"),
			}
			st, ref, closeStore, err := openStore(cfg, "0123456789abcdef0123")
			require.NoError(t, err)
			defer closeStore()
			assert.Equal(t, tc.wantRef, ref)
			if tc.wantNil {
				assert.Nil(t, st)
				return
			}
			require.NoError(t, st.Put(context.Background(), "k", []solver.Word{"CRANE"}))
		})
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	cfg := config.Config{CacheBackend: config.CacheNone}
	err := run(context.Background(), cfg, "gui", "", "0", 1, strings.NewReader(""), io.Discard)
	assert.ErrorContains(t, err, "unknown mode")
}

func writeWords(t *testing.T, ws ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(ws, "\n")+"\n"), 0o644))
	return path
}

func TestRunTUIFallsBackToLineMode(t *testing.T) {
	prev := newFullScreen
	newFullScreen = func() (*tui.UI, error) { return nil, errors.New("no terminal") }
	t.Cleanup(func() { newFullScreen = prev })

	cfg := config.Config{CacheBackend: config.CacheMemory}
	var out strings.Builder
	path := writeWords(t, "crane", "slate", "plate")
	err := run(context.Background(), cfg, "tui", path, "0", 1, strings.NewReader("exit\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Computing optimal starting words, please wait...")
	assert.Contains(t, out.String(), "Optimal starting words:")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting.\n"))
}

func TestRunLineModeSolves(t *testing.T) {
	cfg := config.Config{CacheBackend: config.CacheNone}
	var out strings.Builder
	path := writeWords(t, "crane", "slate", "plate")
	err := run(context.Background(), cfg, "cli", path, "0", 1, strings.NewReader("plate\nggggg\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Solution found: PLATE")
}
