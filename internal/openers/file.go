// internal/openers/file.go
//
// File-backed Store: one text file per universe under Dir, named
// openers-<first 16 hex of key>.txt, one uppercase word per line.

package openers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// FileStore keeps openers as small text files in Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{Dir: dir} }

// Path returns the cache file used for key.
func (s *FileStore) Path(key string) string {
	if len(key) > 16 {
		key = key[:16]
	}
	return filepath.Join(s.Dir, "openers-"+key+".txt")
}

// Get reads the file for key. A missing file, or one holding anything but
// 1–5 valid words, is ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) ([]solver.Word, error) {
	f, err := os.Open(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || len(lines) > solver.TopOpeners {
		return nil, ErrNotFound
	}
	out := make([]solver.Word, 0, len(lines))
	for _, l := range lines {
		w, err := solver.ParseWord(l)
		if err != nil {
			return nil, ErrNotFound
		}
		out = append(out, w)
	}
	return out, nil
}

// Put writes ws to a temp file and renames it over the cache file.
func (s *FileStore) Put(ctx context.Context, key string, ws []solver.Word) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.Dir, err)
	}
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(string(w))
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(s.Dir, ".openers-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path(key))
}
