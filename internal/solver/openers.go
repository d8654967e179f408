// internal/solver/openers.go
//
// Opening-guess precomputation: every word scored against the whole
// universe, as if nothing were known yet. Quadratic in the universe size,
// so callers cache the result (see package openers).

package solver

import "sort"

// TopOpeners is how many opening guesses BestOpeners keeps.
const TopOpeners = 5

// BestOpeners scores every word of universe against universe itself and
// returns the best TopOpeners, lowest expected pool size first. Equal scores
// keep universe order.
func BestOpeners(universe []Word, opts ...Option) ([]Scored, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	scores := scoreAll(universe, universe, buildOptions(opts))

	ranked := make([]Scored, len(universe))
	for i, w := range universe {
		ranked[i] = Scored{Word: w, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score < ranked[j].Score })

	if len(ranked) > TopOpeners {
		ranked = ranked[:TopOpeners]
	}
	return ranked, nil
}

// WordsOf strips scores, keeping order.
func WordsOf(scored []Scored) []Word {
	out := make([]Word, len(scored))
	for i, s := range scored {
		out[i] = s.Word
	}
	return out
}
