// internal/solver/classify.go
//
// Result classifier: compares a guess against a solution.

package solver

// Classify implements the two-pass evaluation of guess against solution.
//
// Pass 1:
//   - Mark exact matches as Exact.
//   - Count remaining (non-exact) solution letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise leave Absent.
//
// A letter can never be claimed more times than it occurs in the solution.
func Classify(guess, solution Word) Pattern {
	var p Pattern
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == solution[i] {
			p[i] = Exact
		} else {
			counts[solution[i]-'A']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == Exact {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			p[i] = Present
			counts[j]--
		}
	}
	return p
}
