// internal/cli/cli.go
//
// Line-based front end for the solving session.
// Reads guesses and G/Y/X feedback one line at a time and prints the
// candidate pool and recommendations. Implements game.Interface.
//
// Commands at the guess prompt:
//   exit   quit
//   next   start a new game with the full word list

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// shownCandidates caps how many candidates are printed after each turn.
const shownCandidates = 5

// maxLine is the longest input line kept; longer lines are read to the end
// and treated as unreadable input.
const maxLine = 256

// Prompter implements game.Interface over a reader and writer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading lines from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReaderSize(r, maxLine), out: w}
}

var _ game.Interface = (*Prompter)(nil)

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// readLine returns the next trimmed, upper-cased line, or io.EOF.
// A line longer than maxLine is consumed and returned as "", which no
// prompt accepts.
func (p *Prompter) readLine() (string, error) {
	line, isPrefix, err := p.in.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return strings.ToUpper(strings.TrimSpace(string(line))), nil
	}
	for isPrefix {
		if _, isPrefix, err = p.in.ReadLine(); err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
	}
	return "", nil
}

func (p *Prompter) ShowOpeners(info game.OpenersInfo) {
	p.printf("Optimal starting words:\n")
	for i, w := range info.Words {
		p.printf("%d. %s\n", i+1, w)
	}
	if note := info.CacheNote(); note != "" {
		p.printf("(%s.)\n", note)
	}
	if len(info.Words) > 0 {
		p.printf("Suggested starting word: %s\n", info.Words[0])
	}
}

func (p *Prompter) ReadGuess() (game.Action, error) {
	p.printf("\nEnter your guess (5 letters, or 'exit' to quit, or 'next' to start a new game):\n")
	line, err := p.readLine()
	if err != nil {
		return game.Action{}, err
	}
	switch line {
	case "EXIT":
		return game.Action{Kind: game.ActionQuit}, nil
	case "NEXT":
		return game.Action{Kind: game.ActionNewGame}, nil
	}
	w, err := solver.ParseWord(line)
	if err != nil {
		p.printf("Invalid guess. Please enter 5 letters.\n")
		return game.Action{Kind: game.ActionInvalid}, nil
	}
	return game.Action{Kind: game.ActionGuess, Guess: w}, nil
}

func (p *Prompter) ReadOutcome(guess solver.Word) (solver.Pattern, bool, error) {
	p.printf("Enter feedback for %s (G=green, Y=yellow, X=gray, e.g. GYXXG):\n", guess)
	line, err := p.readLine()
	if err != nil {
		return solver.Pattern{}, false, err
	}
	pat, err := solver.ParsePattern(line)
	if err != nil {
		p.printf("Invalid feedback. Please enter 5 characters using G, Y, or X.\n")
		return solver.Pattern{}, false, nil
	}
	return pat, true, nil
}

func (p *Prompter) ShowCandidates(pool []solver.Word) {
	p.printf("Possible candidates (%d)\n", len(pool))
	for i, w := range pool {
		if i == shownCandidates {
			p.printf("...\n")
			break
		}
		p.printf("%s\n", w)
	}
}

func (p *Prompter) ShowComputing() {
	p.printf("Computing optimal guess, please wait...\n")
}

func (p *Prompter) ShowRecommendation(rec solver.Recommendation) {
	category := "information-gathering"
	if rec.IsCandidate {
		category = "solution candidate"
	}
	p.printf("Recommended guess: %s (expected pool size %.2f) [%s]\n", rec.Word, rec.Score, category)
}

func (p *Prompter) ShowNoCandidates() {
	p.printf("No candidates remain. Check your inputs.\n")
}

func (p *Prompter) ShowSolved(solution solver.Word) {
	p.printf("Solution found: %s\n", solution)
}

func (p *Prompter) ShowNewGame(poolSize int) {
	p.printf("New game started. Loaded %d words.\n", poolSize)
}

func (p *Prompter) ShowExit() {
	p.printf("Exiting.\n")
}
