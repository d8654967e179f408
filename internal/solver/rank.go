// internal/solver/rank.go
//
// Guess ranker: scores every allowed guess by the expected size of the
// candidate pool after it is played, and picks the best.
//
// Notes:
//   - Scoring is split across goroutines (errgroup, bounded by Workers);
//     each worker writes only its own slots of the score slice.
//   - The winner is chosen in a sequential pass afterwards, so ties always
//     go to the earliest word in the universe regardless of scheduling.

package solver

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Option tunes Rank and BestOpeners.
type Option func(*options)

type options struct {
	workers  int
	progress func(done, total int)
}

// WithWorkers bounds the number of scoring goroutines. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress registers fn to be called after each guess is scored.
// Calls are serialized; done counts up to total.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) { o.progress = fn }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Score is the expected number of candidates left after playing guess when
// the solution is drawn uniformly from pool: sum of squared partition sizes
// divided by the pool size. pool must be non-empty.
func Score(guess Word, pool []Word) float64 {
	var counts [numPatterns]int
	for _, s := range pool {
		counts[Classify(guess, s).Code()]++
	}
	sum := 0
	for _, c := range counts {
		sum += c * c
	}
	return float64(sum) / float64(len(pool))
}

// Rank picks the guess from universe with the lowest Score against pool.
// Ties go to the guess that appears first in universe.
func Rank(universe, pool []Word, opts ...Option) (Recommendation, error) {
	if len(universe) == 0 {
		return Recommendation{}, ErrEmptyUniverse
	}
	if len(pool) == 0 {
		return Recommendation{}, ErrEmptyPool
	}

	scores := scoreAll(universe, pool, buildOptions(opts))

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return Recommendation{
		Word:        universe[best],
		Score:       scores[best],
		IsCandidate: contains(pool, universe[best]),
	}, nil
}

// scoreAll returns Score(universe[i], pool) in slot i.
func scoreAll(universe, pool []Word, o options) []float64 {
	scores := make([]float64, len(universe))

	var (
		done atomic.Int64
		mu   sync.Mutex
	)
	report := func() {
		if o.progress == nil {
			return
		}
		n := int(done.Add(1))
		mu.Lock()
		o.progress(n, len(universe))
		mu.Unlock()
	}

	chunk := (len(universe) + o.workers - 1) / o.workers
	var g errgroup.Group
	g.SetLimit(o.workers)
	for start := 0; start < len(universe); start += chunk {
		lo, hi := start, min(start+chunk, len(universe))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				scores[i] = Score(universe[i], pool)
				report()
			}
			return nil
		})
	}
	_ = g.Wait()
	return scores
}

func contains(pool []Word, w Word) bool {
	for _, p := range pool {
		if p == w {
			return true
		}
	}
	return false
}
