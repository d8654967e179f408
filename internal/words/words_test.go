package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestLoadEmbedded(t *testing.T) {
	u, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, u.Source)
	assert.Greater(t, len(u.Words), 500)
	for _, w := range u.Words {
		assert.True(t, solver.IsWord(string(w)), w)
	}
	assert.Contains(t, u.Words, solver.Word("CRANE"))
}

func TestLoadFileFiltersMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	data := "apple\n  Grape \nlemon\n# comment\nmelon\ncranes\nab1de\n\nAPPLE\nkiwi\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	u, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []solver.Word{"APPLE", "GRAPE", "LEMON", "MELON"}, u.Words)
	assert.Equal(t, 4, u.Dropped)
	assert.Equal(t, path, u.Source)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("toolong\nxyz\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, solver.ErrEmptyUniverse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHash(t *testing.T) {
	a := FromStrings([]string{"crane", "slate"})
	b := FromStrings([]string{"CRANE", "SLATE"})
	c := FromStrings([]string{"slate", "crane"})

	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(c))
	assert.Len(t, Hash(a), 64)
}
