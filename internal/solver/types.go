// internal/solver/types.go
//
// Core type definitions for the solving engine.
// Defines:
//   - Word: a five-letter uppercase guess or solution.
//   - Outcome: per-letter result of a guess (exact/present/absent).
//   - Pattern: the five outcomes for one guess, the unit passed between
//     Classify, Filter and the ranker.
//   - Recommendation: the ranker's suggested next guess.

package solver

import (
	"errors"
	"strings"
)

// WordLen is the number of letters in every Word.
const WordLen = 5

// numPatterns is 3^WordLen, the number of distinct Patterns.
const numPatterns = 243

var (
	// ErrMalformedWord is returned by ParseWord for input that is not five ASCII letters.
	ErrMalformedWord = errors.New("solver: word must be 5 letters")
	// ErrMalformedPattern is returned by ParsePattern for input that is not five of G/Y/X.
	ErrMalformedPattern = errors.New("solver: pattern must be 5 of G, Y, X")
	// ErrEmptyPool is returned when ranking against zero candidates.
	ErrEmptyPool = errors.New("solver: candidate pool is empty")
	// ErrEmptyUniverse is returned when there are no allowed guesses to rank.
	ErrEmptyUniverse = errors.New("solver: word universe is empty")
)

// Word is an uppercase five-letter word. Functions in this package assume
// the shape has already been checked (see ParseWord).
type Word string

// ParseWord trims and upper-cases s, then checks it is exactly five ASCII letters.
func ParseWord(s string) (Word, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !IsWord(s) {
		return "", ErrMalformedWord
	}
	return Word(s), nil
}

// IsWord reports whether s is exactly five uppercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Outcome is the evaluation result for a single letter of a guess.
type Outcome uint8

const (
	Absent  Outcome = iota // letter not in the solution, or all occurrences already claimed
	Present                // letter in the solution at another position
	Exact                  // letter in the correct position
)

// Letter renders the outcome as the feedback letter a player types: X, Y or G.
func (o Outcome) Letter() byte {
	switch o {
	case Exact:
		return 'G'
	case Present:
		return 'Y'
	default:
		return 'X'
	}
}

// Pattern is the outcome for each letter position of one guess.
// It is comparable and can be used as a map key.
type Pattern [WordLen]Outcome

// ParsePattern reads feedback such as "GYXXG" (case-insensitive).
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLen {
		return p, ErrMalformedPattern
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'G':
			p[i] = Exact
		case 'Y':
			p[i] = Present
		case 'X':
			p[i] = Absent
		default:
			return Pattern{}, ErrMalformedPattern
		}
	}
	return p, nil
}

// String renders the pattern using G/Y/X letters.
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, o := range p {
		b[i] = o.Letter()
	}
	return string(b[:])
}

// Solved reports whether every position is Exact.
func (p Pattern) Solved() bool {
	for _, o := range p {
		if o != Exact {
			return false
		}
	}
	return true
}

// Code packs the pattern into a base-3 integer in [0, 243).
func (p Pattern) Code() int {
	c := 0
	for _, o := range p {
		c = c*3 + int(o)
	}
	return c
}

// Recommendation is the ranker's suggested next guess.
type Recommendation struct {
	Word        Word    `json:"word"`
	Score       float64 `json:"score"`       // expected remaining pool size
	IsCandidate bool    `json:"isCandidate"` // Word itself may still be the solution
}

// Scored pairs a word with its expected remaining pool size.
type Scored struct {
	Word  Word    `json:"word"`
	Score float64 `json:"score"`
}
