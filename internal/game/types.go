// internal/game/types.go
//
// Type definitions for the solving session.
// Defines:
//   - State: where the turn loop is (awaiting guess/outcome, computing, over).
//   - Action: what the player asked for at the guess prompt.
//   - Interface: the display/read capabilities a front end provides.
//   - Session: state for one solving session over a fixed word universe.

package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrGameOver is returned by Apply once the pool is solved or empty.
var ErrGameOver = errors.New("game over")

// State is the turn loop's current step.
type State int

const (
	AwaitingGuess State = iota
	AwaitingOutcome
	Computing
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting_guess"
	case AwaitingOutcome:
		return "awaiting_outcome"
	case Computing:
		return "computing"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// ActionKind classifies input read at the guess prompt.
type ActionKind int

const (
	ActionInvalid ActionKind = iota // unreadable input; the front end already told the player
	ActionGuess
	ActionNewGame
	ActionQuit
)

// Action is one player request at the guess prompt.
type Action struct {
	Kind  ActionKind
	Guess solver.Word // set for ActionGuess
}

// OpenersInfo describes the opening suggestions shown at the start of a game.
type OpenersInfo struct {
	Words     []solver.Word
	FromCache bool
	Saved     bool   // computed this run and written to the cache
	CacheRef  string // where the cache lives (path or backend), empty when uncached

	// Best answers Recommend while the pool is still the whole universe.
	// Zero when unknown.
	Best solver.Recommendation
}

// CacheNote says where the openers came from, or "" when no cache is in use.
func (i OpenersInfo) CacheNote() string {
	switch {
	case i.CacheRef == "":
		return ""
	case i.FromCache:
		return "Loaded from cache: " + i.CacheRef
	case i.Saved:
		return "Computed and cached to: " + i.CacheRef
	}
	return "Computed; could not write cache: " + i.CacheRef
}

// Interface is what a front end must provide to drive a Session.
// Read methods return io.EOF when input is exhausted.
type Interface interface {
	ShowOpeners(info OpenersInfo)
	ReadGuess() (Action, error)
	// ReadOutcome returns ok=false for unreadable feedback; the guess is then discarded.
	ReadOutcome(guess solver.Word) (p solver.Pattern, ok bool, err error)
	ShowCandidates(pool []solver.Word)
	ShowComputing()
	ShowRecommendation(rec solver.Recommendation)
	ShowNoCandidates()
	ShowSolved(solution solver.Word)
	ShowNewGame(poolSize int)
	ShowExit()
}

// Turn is one observed guess and its feedback.
type Turn struct {
	Guess   solver.Word
	Pattern solver.Pattern
}

// Session holds the state of one solving session.
type Session struct {
	ID       string        // Unique session identifier (random hex string).
	Universe []solver.Word // Allowed guesses; never shrinks.
	Openers  OpenersInfo   // Precomputed opening suggestions.
	Pool     []solver.Word // Remaining candidates for the current game.
	Turns    []Turn        // Observations for the current game.
	State    State

	pending solver.Word // guess awaiting its outcome
	opts    []solver.Option
}
