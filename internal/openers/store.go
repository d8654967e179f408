// internal/openers/store.go
//
// Opening-guess cache.
// Computing the best opening guesses scores every word against every other,
// so the result is persisted and reused. Entries are keyed by the content
// hash of the word universe (words.Hash), so a different word list never
// reads another list's openers.
//
// Backends:
//   - FileStore:   one small text file per universe (one word per line).
//   - SQLStore:    SQLite table, migrations embedded in the binary.
//   - MemoryStore: process-local map, for the HTTP server and tests.

package openers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrNotFound is returned by Store.Get when no valid entry exists for a key.
var ErrNotFound = errors.New("openers: not found")

// Store defines the persistence interface for opening guesses.
type Store interface {
	// Get returns the openers saved under key, best first.
	// Returns ErrNotFound on a miss or an unreadable entry.
	Get(ctx context.Context, key string) ([]solver.Word, error)

	// Put replaces the openers saved under key.
	Put(ctx context.Context, key string, ws []solver.Word) error
}

// Result is what LoadOrCompute hands back to the front end.
type Result struct {
	Words     []solver.Word
	FromCache bool
	Saved     bool   // a freshly computed result was written to the store
	Key       string // universe hash

	// Best is the recommendation while the whole universe is still possible:
	// the top opener, scored against the universe.
	Best solver.Recommendation
}

// LoadOrCompute returns the cached openers for universe, or computes them
// with solver.BestOpeners and saves them. A nil store always computes.
// Cache read and write failures are logged and otherwise ignored.
func LoadOrCompute(ctx context.Context, st Store, universe []solver.Word, opts ...solver.Option) (Result, error) {
	key := words.Hash(universe)
	res := Result{Key: key}

	if st != nil {
		ws, err := st.Get(ctx, key)
		switch {
		case err == nil && valid(ws, universe):
			res.Words, res.FromCache = ws, true
			res.Best = solver.Recommendation{Word: ws[0], Score: solver.Score(ws[0], universe), IsCandidate: true}
			log.Debug().Str("key", key[:16]).Msg("openers loaded from cache")
			return res, nil
		case err == nil:
			log.Warn().Str("key", key[:16]).Msg("cached openers do not match word list; recomputing")
		case !errors.Is(err, ErrNotFound):
			log.Warn().Err(err).Msg("read openers cache")
		}
	}

	scored, err := solver.BestOpeners(universe, opts...)
	if err != nil {
		return res, fmt.Errorf("openers: compute: %w", err)
	}
	res.Words = solver.WordsOf(scored)
	res.Best = solver.Recommendation{Word: scored[0].Word, Score: scored[0].Score, IsCandidate: true}
	log.Info().Str("best", string(res.Words[0])).Float64("score", scored[0].Score).Msg("openers computed")

	if st != nil {
		if err := st.Put(ctx, key, res.Words); err != nil {
			log.Warn().Err(err).Msg("write openers cache")
		} else {
			res.Saved = true
		}
	}
	return res, nil
}

// valid reports whether ws looks like a BestOpeners result for universe:
// the expected count and every word drawn from universe.
func valid(ws, universe []solver.Word) bool {
	if len(ws) != min(solver.TopOpeners, len(universe)) {
		return false
	}
	set := make(map[solver.Word]struct{}, len(universe))
	for _, w := range universe {
		set[w] = struct{}{}
	}
	for _, w := range ws {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
