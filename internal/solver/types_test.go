package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	w, err := ParseWord("  crane ")
	require.NoError(t, err)
	assert.Equal(t, Word("CRANE"), w)

	for _, bad := range []string{"", "CRAN", "CRANES", "CR4NE", "CRÄNE"} {
		_, err := ParseWord(bad)
		assert.ErrorIs(t, err, ErrMalformedWord, bad)
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("gyxXG")
	require.NoError(t, err)
	assert.Equal(t, Pattern{Exact, Present, Absent, Absent, Exact}, p)
	assert.Equal(t, "GYXXG", p.String())
	assert.False(t, p.Solved())

	for _, bad := range []string{"", "GGG", "GGGGGG", "GGZGG"} {
		_, err := ParsePattern(bad)
		assert.ErrorIs(t, err, ErrMalformedPattern, bad)
	}
}

func TestPatternCode(t *testing.T) {
	assert.Equal(t, 0, Pattern{}.Code())
	assert.Equal(t, numPatterns-1, Pattern{Exact, Exact, Exact, Exact, Exact}.Code())

	seen := map[int]bool{}
	for _, g := range sample {
		for _, s := range sample {
			p := Classify(g, s)
			c := p.Code()
			assert.GreaterOrEqual(t, c, 0)
			assert.Less(t, c, numPatterns)
			seen[c] = true
		}
	}
	assert.NotEmpty(t, seen)
}
