// internal/solver/filter.go
//
// Candidate filter: narrows a pool to the words consistent with one
// guess/pattern observation.

package solver

// Filter returns the words w in pool for which Classify(guess, w) == pattern,
// in their original order. The input slice is never modified; the result is
// always a fresh slice (possibly empty, meaning no word fits the feedback).
func Filter(pool []Word, guess Word, pattern Pattern) []Word {
	out := make([]Word, 0, len(pool)/4+1)
	for _, w := range pool {
		if consistent(w, guess, pattern) {
			out = append(out, w)
		}
	}
	return out
}

// consistent reports whether w, had it been the solution, would have produced pattern.
func consistent(w, guess Word, pattern Pattern) bool {
	// Cheap positional rejection first: Exact positions must agree and
	// every other position must differ, or Classify would disagree anyway.
	for i := 0; i < WordLen; i++ {
		if (pattern[i] == Exact) != (w[i] == guess[i]) {
			return false
		}
	}
	return Classify(guess, w) == pattern
}
