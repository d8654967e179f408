// internal/words/words.go
//
// Provides word list management for the solver.
//
// Responsibilities:
//   - Load the word universe from a user-supplied file or fall back to the
//     embedded default word bank.
//   - Normalize to uppercase and keep only valid 5-letter alphabetic words,
//     so malformed lines never reach the solver.
//   - Compute a content hash of the universe for keying cached results.
//
// Constraints:
//   • Words must be 5 alphabetic letters (A–Z after upper-casing).
//   • Order is preserved; duplicates keep their first occurrence.

package words

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// EmbeddedSource is the Source reported for the built-in word bank.
const EmbeddedSource = "embedded"

// Universe is a loaded, validated word list.
type Universe struct {
	Words   []solver.Word
	Source  string // file path, or EmbeddedSource
	Dropped int    // lines rejected as malformed or duplicate
}

// Load reads the word universe from path, or the embedded default when path
// is empty. Returns solver.ErrEmptyUniverse if no valid word remains.
func Load(path string) (Universe, error) {
	var (
		lines []string
		err   error
	)
	src := path
	if path == "" {
		src = EmbeddedSource
		lines, err = assets.Wordbank()
	} else {
		lines, err = readWordFile(path)
	}
	if err != nil {
		return Universe{}, fmt.Errorf("words: read %s: %w", src, err)
	}

	u := Universe{Source: src}
	u.Words, u.Dropped = normalizeLines(lines)
	if len(u.Words) == 0 {
		return u, fmt.Errorf("words: %s: %w", src, solver.ErrEmptyUniverse)
	}
	log.Debug().Str("source", src).Int("words", len(u.Words)).Int("dropped", u.Dropped).Msg("word list loaded")
	return u, nil
}

// FromStrings normalizes an in-memory list the same way Load does.
func FromStrings(lines []string) []solver.Word {
	out, _ := normalizeLines(lines)
	return out
}

// readWordFile loads one entry per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalizeLines upper-cases and trims each line, keeping valid 5-letter
// words in order and skipping repeats. Returns the words and the number of
// lines dropped.
func normalizeLines(lines []string) ([]solver.Word, int) {
	out := make([]solver.Word, 0, len(lines))
	seen := make(map[solver.Word]struct{}, len(lines))
	dropped := 0
	for _, line := range lines {
		w, err := solver.ParseWord(line)
		if err != nil {
			dropped++
			continue
		}
		if _, dup := seen[w]; dup {
			dropped++
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, dropped
}

// Hash returns a hex BLAKE2b-256 digest of the ordered word list.
// Two universes share a hash only if they hold the same words in the same order.
func Hash(ws []solver.Word) string {
	h, _ := blake2b.New256(nil)
	for _, w := range ws {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
