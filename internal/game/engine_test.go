package game

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func ws(ss ...string) []solver.Word {
	out := make([]solver.Word, len(ss))
	for i, s := range ss {
		out[i] = solver.Word(s)
	}
	return out
}

// scripted replays guesses and outcomes and records what was shown.
type scripted struct {
	guesses []Action
	outcome []string
	err     error // returned once input runs out; io.EOF when nil

	openers  int
	pools    [][]solver.Word
	recs     []solver.Recommendation
	solved   solver.Word
	noCands  bool
	newGames []int
	exited   bool
}

func (f *scripted) ShowOpeners(OpenersInfo) { f.openers++ }

func (f *scripted) ReadGuess() (Action, error) {
	if len(f.guesses) == 0 {
		if f.err != nil {
			return Action{}, f.err
		}
		return Action{}, io.EOF
	}
	a := f.guesses[0]
	f.guesses = f.guesses[1:]
	return a, nil
}

func (f *scripted) ReadOutcome(solver.Word) (solver.Pattern, bool, error) {
	if len(f.outcome) == 0 {
		return solver.Pattern{}, false, io.EOF
	}
	s := f.outcome[0]
	f.outcome = f.outcome[1:]
	p, err := solver.ParsePattern(s)
	if err != nil {
		return solver.Pattern{}, false, nil
	}
	return p, true, nil
}

func (f *scripted) ShowCandidates(pool []solver.Word) { f.pools = append(f.pools, pool) }

func (f *scripted) ShowComputing() {}

func (f *scripted) ShowRecommendation(r solver.Recommendation) { f.recs = append(f.recs, r) }

func (f *scripted) ShowNoCandidates() { f.noCands = true }

func (f *scripted) ShowSolved(w solver.Word) { f.solved = w }

func (f *scripted) ShowNewGame(n int) { f.newGames = append(f.newGames, n) }

func (f *scripted) ShowExit() { f.exited = true }

func guess(w string) Action { return Action{Kind: ActionGuess, Guess: solver.Word(w)} }

var universe = ws("CRANE", "SLATE", "TRACE", "PLACE", "GRACE")

func TestApply(t *testing.T) {
	s := New(universe, OpenersInfo{})
	assert.Equal(t, AwaitingGuess, s.State)
	assert.Equal(t, universe, s.Pool)
	assert.Len(t, s.ID, 16)

	st, err := s.Apply("CRANE", solver.Classify("CRANE", "SLATE"))
	require.NoError(t, err)
	assert.Equal(t, GameOver, st)

	w, ok := s.Solution()
	assert.True(t, ok)
	assert.Equal(t, solver.Word("SLATE"), w)

	_, err = s.Apply("SLATE", solver.Classify("SLATE", "SLATE"))
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestApplyKeepsUniverse(t *testing.T) {
	s := New(universe, OpenersInfo{})
	st, err := s.Apply("PLACE", solver.Classify("PLACE", "GRACE"))
	require.NoError(t, err)
	assert.Equal(t, Computing, st)
	assert.Equal(t, ws("TRACE", "GRACE"), s.Pool)
	assert.Len(t, s.Universe, 5)
	assert.Len(t, s.Turns, 1)

	s.Reset()
	assert.Equal(t, universe, s.Pool)
	assert.Empty(t, s.Turns)
	assert.Equal(t, AwaitingGuess, s.State)
}

func TestRunSolves(t *testing.T) {
	ui := &scripted{
		guesses: []Action{guess("PLACE"), guess("TRACE")},
		outcome: []string{solver.Classify("PLACE", "GRACE").String(), solver.Classify("TRACE", "GRACE").String()},
	}
	s := New(universe, OpenersInfo{Words: ws("TRACE")})
	require.NoError(t, s.Run(context.Background(), ui))

	assert.Equal(t, 1, ui.openers)
	require.Len(t, ui.recs, 1)
	assert.Equal(t, solver.Word("SLATE"), ui.recs[0].Word)
	assert.Equal(t, 1.0, ui.recs[0].Score)
	assert.False(t, ui.recs[0].IsCandidate)
	assert.Equal(t, solver.Word("GRACE"), ui.solved)
	assert.False(t, ui.exited)
	assert.Equal(t, GameOver, s.State)
}

func TestRunNoCandidates(t *testing.T) {
	ui := &scripted{
		guesses: []Action{guess("CRANE")},
		outcome: []string{"XXXXX"},
	}
	s := New(ws("CRANE", "SLATE"), OpenersInfo{})
	require.NoError(t, s.Run(context.Background(), ui))
	assert.True(t, ui.noCands)
	assert.Empty(t, ui.pools[0])
	assert.Empty(t, ui.recs)
}

func TestRunInvalidAndNewGame(t *testing.T) {
	ui := &scripted{
		guesses: []Action{
			{Kind: ActionInvalid},
			guess("CRANE"), // outcome unreadable, discarded
			guess("PLACE"),
			{Kind: ActionNewGame},
			{Kind: ActionQuit},
		},
		outcome: []string{"GGZ", solver.Classify("PLACE", "GRACE").String()},
	}
	s := New(universe, OpenersInfo{})
	require.NoError(t, s.Run(context.Background(), ui))

	assert.True(t, ui.exited)
	assert.Equal(t, []int{5}, ui.newGames)
	assert.Equal(t, 2, ui.openers)
	require.Len(t, ui.pools, 1)
	assert.Len(t, ui.pools[0], 2)
	assert.Equal(t, universe, s.Pool)
}

func TestRunEOF(t *testing.T) {
	ui := &scripted{}
	s := New(universe, OpenersInfo{})
	require.NoError(t, s.Run(context.Background(), ui))
	assert.True(t, ui.exited)
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &scripted{err: boom}
	s := New(universe, OpenersInfo{})
	assert.ErrorIs(t, s.Run(context.Background(), ui), boom)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(universe, OpenersInfo{})
	assert.ErrorIs(t, s.Run(ctx, &scripted{}), context.Canceled)
}

func TestRecommendCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(universe, OpenersInfo{})
	_, err := s.Recommend(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendUsesOpenerForFullPool(t *testing.T) {
	// A deliberately wrong score shows the value came from the opener, not a ranking pass.
	best := solver.Recommendation{Word: "GRACE", Score: 9.5, IsCandidate: true}
	s := New(universe, OpenersInfo{Words: ws("GRACE"), Best: best})

	rec, err := s.Recommend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, best, rec)

	_, err = s.Apply("PLACE", solver.Classify("PLACE", "GRACE"))
	require.NoError(t, err)
	rec, err = s.Recommend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, solver.Word("SLATE"), rec.Word)
	assert.Equal(t, 1.0, rec.Score)
}

func TestCacheNote(t *testing.T) {
	assert.Empty(t, OpenersInfo{FromCache: true}.CacheNote())
	assert.Equal(t, "Loaded from cache: db", OpenersInfo{FromCache: true, CacheRef: "db"}.CacheNote())
	assert.Equal(t, "Computed and cached to: db", OpenersInfo{Saved: true, CacheRef: "db"}.CacheNote())
	assert.Equal(t, "Computed; could not write cache: db", OpenersInfo{CacheRef: "db"}.CacheNote())
}
