// internal/game/engine.go
//
// Turn loop for a solving session.
// Responsibilities:
//   - Start games with the full universe as the candidate pool.
//   - Apply guess/outcome observations by filtering the pool.
//   - Ask the ranker for the next guess while the game is open.
//   - Track state transitions: awaiting guess → awaiting outcome →
//     computing → awaiting guess, or → game over when the pool is
//     down to one word (solved) or none (inconsistent feedback).
//
// Notes:
//   - Presentation lives behind Interface; this file never prints.
//   - The pool is replaced on every step, never modified in place, so a
//     ranking goroutine can read it without locks.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// New constructs a session over universe and starts the first game.
// opts are passed to solver.Rank.
func New(universe []solver.Word, openers OpenersInfo, opts ...solver.Option) *Session {
	s := &Session{
		ID:       randomID(),
		Universe: universe,
		Openers:  openers,
		opts:     opts,
	}
	s.Reset()
	return s
}

// Reset starts a new game: fresh pool clone, no turns.
func (s *Session) Reset() {
	s.Pool = append([]solver.Word(nil), s.Universe...)
	s.Turns = nil
	s.pending = ""
	s.State = AwaitingGuess
}

// Apply records guess/pattern and narrows the pool.
// Returns the new state: GameOver when at most one candidate remains,
// Computing otherwise.
func (s *Session) Apply(guess solver.Word, p solver.Pattern) (State, error) {
	if s.State == GameOver {
		return s.State, ErrGameOver
	}
	before := len(s.Pool)
	s.Pool = solver.Filter(s.Pool, guess, p)
	s.Turns = append(s.Turns, Turn{Guess: guess, Pattern: p})
	s.pending = ""

	if len(s.Pool) <= 1 {
		s.State = GameOver
	} else {
		s.State = Computing
	}
	log.Debug().
		Str("session", s.ID).
		Str("guess", string(guess)).
		Str("pattern", p.String()).
		Int("before", before).
		Int("after", len(s.Pool)).
		Str("state", s.State.String()).
		Msg("turn applied")
	return s.State, nil
}

// Solution returns the answer once the game is solved.
func (s *Session) Solution() (solver.Word, bool) {
	if s.State == GameOver && len(s.Pool) == 1 {
		return s.Pool[0], true
	}
	return "", false
}

// Recommend ranks the universe against the current pool on a separate
// goroutine and waits for it. If ctx ends first, ctx.Err() is returned and
// the ranking finishes in the background; its result is dropped.
// While no word has been ruled out the precomputed opener is returned.
func (s *Session) Recommend(ctx context.Context) (solver.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return solver.Recommendation{}, err
	}
	if len(s.Pool) == len(s.Universe) && s.Openers.Best.Word != "" {
		return s.Openers.Best, nil
	}

	type result struct {
		rec solver.Recommendation
		err error
	}
	done := make(chan result, 1)
	universe, pool := s.Universe, s.Pool
	start := time.Now()
	go func() {
		rec, err := solver.Rank(universe, pool, s.opts...)
		done <- result{rec, err}
	}()

	select {
	case <-ctx.Done():
		return solver.Recommendation{}, ctx.Err()
	case r := <-done:
		if r.err == nil {
			log.Debug().
				Str("session", s.ID).
				Str("word", string(r.rec.Word)).
				Float64("score", r.rec.Score).
				Bool("candidate", r.rec.IsCandidate).
				Dur("took", time.Since(start)).
				Msg("recommendation")
		}
		return r.rec, r.err
	}
}

// Run drives the turn loop through ui until the player quits, input ends,
// or the game is over. End of input is a normal exit.
func (s *Session) Run(ctx context.Context, ui Interface) error {
	ui.ShowOpeners(s.Openers)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch s.State {
		case AwaitingGuess:
			act, err := ui.ReadGuess()
			if err != nil {
				return s.endOfInput(ui, err)
			}
			switch act.Kind {
			case ActionQuit:
				ui.ShowExit()
				return nil
			case ActionNewGame:
				s.Reset()
				log.Info().Str("session", s.ID).Int("pool", len(s.Pool)).Msg("new game")
				ui.ShowNewGame(len(s.Pool))
				again := s.Openers
				again.FromCache = true
				ui.ShowOpeners(again)
			case ActionGuess:
				s.pending = act.Guess
				s.State = AwaitingOutcome
			}

		case AwaitingOutcome:
			p, ok, err := ui.ReadOutcome(s.pending)
			if err != nil {
				return s.endOfInput(ui, err)
			}
			if !ok {
				s.pending = ""
				s.State = AwaitingGuess
				continue
			}
			if _, err := s.Apply(s.pending, p); err != nil {
				return err
			}
			ui.ShowCandidates(s.Pool)

		case Computing:
			ui.ShowComputing()
			rec, err := s.Recommend(ctx)
			if err != nil {
				return err
			}
			ui.ShowRecommendation(rec)
			s.State = AwaitingGuess

		case GameOver:
			if w, ok := s.Solution(); ok {
				log.Info().Str("session", s.ID).Str("solution", string(w)).Int("turns", len(s.Turns)).Msg("solved")
				ui.ShowSolved(w)
			} else {
				log.Info().Str("session", s.ID).Int("turns", len(s.Turns)).Msg("no candidates remain")
				ui.ShowNoCandidates()
			}
			return nil
		}
	}
}

func (s *Session) endOfInput(ui Interface, err error) error {
	if errors.Is(err, io.EOF) {
		ui.ShowExit()
		return nil
	}
	return err
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
