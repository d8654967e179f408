// internal/tui/tui.go
//
// Full-screen front end for the solving session, drawn with tcell.
// Implements game.Interface: guesses are typed onto the board and their
// feedback is marked tile by tile instead of typed as a G/Y/X string.
//
// Keys while entering a guess:
//   letters     type the guess        Backspace  delete a letter
//   Enter       submit                Tab        fill in the suggestion
//   Ctrl-N      start a new game      Esc/Ctrl-C quit
//
// Keys while marking feedback:
//   g / y / x   mark the tile under the cursor and move right
//   Space       cycle the tile        Left/Right move the cursor
//   Backspace   move left             Enter      confirm
//   Esc         discard the guess     Ctrl-C     quit
//
// Marking the fifth tile so that the row is all green confirms at once.

package tui

import (
	"fmt"
	"io"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// shownCandidates caps the candidate panel.
const shownCandidates = 10

// Layout, in cells.
const (
	boardX     = 2
	boardY     = 2
	tileWidth  = 4 // three-cell tile plus a gap
	panelX     = boardX + solver.WordLen*tileWidth + 3
	footerRows = 4
)

type mode int

const (
	modeGuess mode = iota
	modeMark
	modeOver
)

type row struct {
	word    solver.Word
	pattern solver.Pattern
}

// UI implements game.Interface on a tcell screen.
type UI struct {
	scr tcell.Screen

	mode   mode
	rows   []row
	entry  []rune
	marks  solver.Pattern
	cursor int

	openers   []solver.Word
	cacheNote string
	pool      []solver.Word
	poolKnown bool
	rec       *solver.Recommendation
	status    string
}

var _ game.Interface = (*UI)(nil)

// New opens the terminal and returns a UI drawing on it.
// Close must be called to restore the terminal.
func New() (*UI, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return NewWithScreen(scr)
}

// NewWithScreen initializes scr and returns a UI drawing on it.
func NewWithScreen(scr tcell.Screen) (*UI, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	scr.SetStyle(tcell.StyleDefault)
	scr.HideCursor()
	scr.Clear()
	return &UI{scr: scr}, nil
}

// Close restores the terminal.
func (u *UI) Close() { u.scr.Fini() }

// ------------------------------- input -------------------------------------

// nextKey blocks for the next key press, redrawing on resize.
// Returns io.EOF once the screen has been finalized.
func (u *UI) nextKey() (*tcell.EventKey, error) {
	for {
		switch ev := u.scr.PollEvent().(type) {
		case nil:
			return nil, io.EOF
		case *tcell.EventResize:
			u.scr.Sync()
			u.draw()
		case *tcell.EventKey:
			return ev, nil
		}
	}
}

func (u *UI) ReadGuess() (game.Action, error) {
	u.mode = modeGuess
	for {
		u.draw()
		ev, err := u.nextKey()
		if err != nil {
			return game.Action{}, err
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.Action{Kind: game.ActionQuit}, nil
		case tcell.KeyCtrlN:
			u.entry = u.entry[:0]
			return game.Action{Kind: game.ActionNewGame}, nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(u.entry) > 0 {
				u.entry = u.entry[:len(u.entry)-1]
			}
		case tcell.KeyTab:
			if w := u.suggestion(); w != "" {
				u.entry = []rune(string(w))
			}
		case tcell.KeyEnter:
			w, err := solver.ParseWord(string(u.entry))
			if err != nil {
				u.status = "Invalid guess. Please enter 5 letters."
				return game.Action{Kind: game.ActionInvalid}, nil
			}
			u.status = ""
			return game.Action{Kind: game.ActionGuess, Guess: w}, nil
		case tcell.KeyRune:
			r := unicode.ToUpper(ev.Rune())
			if r >= 'A' && r <= 'Z' && len(u.entry) < solver.WordLen {
				u.entry = append(u.entry, r)
			}
		}
	}
}

func (u *UI) ReadOutcome(guess solver.Word) (solver.Pattern, bool, error) {
	u.mode = modeMark
	u.entry = []rune(string(guess))
	u.marks = solver.Pattern{}
	u.cursor = 0
	u.status = fmt.Sprintf("Mark the feedback for %s.", guess)
	for {
		u.draw()
		ev, err := u.nextKey()
		if err != nil {
			return solver.Pattern{}, false, err
		}
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return solver.Pattern{}, false, io.EOF
		case tcell.KeyEscape:
			u.entry = u.entry[:0]
			u.status = "Guess discarded."
			return solver.Pattern{}, false, nil
		case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
			u.cursor = max(u.cursor-1, 0)
		case tcell.KeyRight:
			u.cursor = min(u.cursor+1, solver.WordLen-1)
		case tcell.KeyEnter:
			return u.confirm(guess), true, nil
		case tcell.KeyRune:
			var o solver.Outcome
			switch unicode.ToUpper(ev.Rune()) {
			case 'G':
				o = solver.Exact
			case 'Y':
				o = solver.Present
			case 'X':
				o = solver.Absent
			case ' ':
				u.marks[u.cursor] = (u.marks[u.cursor] + 1) % 3
				continue
			default:
				continue
			}
			u.marks[u.cursor] = o
			if u.cursor == solver.WordLen-1 && u.marks.Solved() {
				return u.confirm(guess), true, nil
			}
			u.cursor = min(u.cursor+1, solver.WordLen-1)
		}
	}
}

// confirm moves the marked guess onto the board.
func (u *UI) confirm(guess solver.Word) solver.Pattern {
	u.rows = append(u.rows, row{word: guess, pattern: u.marks})
	u.entry = u.entry[:0]
	u.status = ""
	return u.marks
}

func (u *UI) suggestion() solver.Word {
	if u.rec != nil {
		return u.rec.Word
	}
	if len(u.openers) > 0 {
		return u.openers[0]
	}
	return ""
}

// waitAnyKey shows msg and blocks until a key is pressed or input ends.
func (u *UI) waitAnyKey(msg string) {
	u.mode = modeOver
	u.status = msg
	u.draw()
	_, _ = u.nextKey()
}

// ------------------------------- output ------------------------------------

func (u *UI) ShowOpeners(info game.OpenersInfo) {
	u.openers = info.Words
	u.cacheNote = info.CacheNote()
}

func (u *UI) ShowCandidates(pool []solver.Word) {
	u.pool = pool
	u.poolKnown = true
	u.rec = nil
}

func (u *UI) ShowComputing() {
	u.status = "Computing optimal guess, please wait..."
	u.draw()
}

func (u *UI) ShowRecommendation(rec solver.Recommendation) {
	u.rec = &rec
	u.status = ""
}

func (u *UI) ShowNoCandidates() {
	u.waitAnyKey("No candidates remain. Check your inputs.")
}

func (u *UI) ShowSolved(solution solver.Word) {
	u.waitAnyKey(fmt.Sprintf("Solution found: %s", solution))
}

func (u *UI) ShowNewGame(poolSize int) {
	u.rows = nil
	u.entry = u.entry[:0]
	u.pool = nil
	u.poolKnown = false
	u.rec = nil
	u.status = fmt.Sprintf("New game started. Loaded %d words.", poolSize)
}

func (u *UI) ShowExit() {
	u.status = "Exiting."
	u.draw()
}

// ------------------------------- drawing -----------------------------------

var (
	styleText    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty   = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleAbsent  = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite).Bold(true)
	stylePresent = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorWhite).Bold(true)
	styleExact   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
)

func tileStyle(o solver.Outcome) tcell.Style {
	switch o {
	case solver.Exact:
		return styleExact
	case solver.Present:
		return stylePresent
	}
	return styleAbsent
}

func (u *UI) draw() {
	u.scr.Clear()
	_, h := u.scr.Size()

	u.text(boardX, 0, styleTitle, "WORDLE SOLVER")

	// Board: finished rows, then the row being typed or marked. When the
	// board outgrows the screen the oldest rows scroll off.
	maxRows := max(h-boardY-footerRows-3, 1)
	rows := u.rows
	if len(rows) >= maxRows {
		rows = rows[len(rows)-maxRows+1:]
	}
	y := boardY
	for _, r := range rows {
		for i := 0; i < solver.WordLen; i++ {
			u.tile(i, y, rune(r.word[i]), tileStyle(r.pattern[i]))
		}
		y++
	}
	if u.mode != modeOver {
		for i := 0; i < solver.WordLen; i++ {
			ch, st := ' ', styleEmpty
			if i < len(u.entry) {
				ch = u.entry[i]
			}
			if u.mode == modeMark {
				st = tileStyle(u.marks[i])
				if i == u.cursor {
					st = st.Underline(true).Reverse(true)
				}
			}
			u.tile(i, y, ch, st)
		}
	}

	// Side panel.
	py := boardY
	u.text(panelX, py, styleTitle, "Starting words")
	py++
	line := ""
	for i, o := range u.openers {
		if i > 0 {
			line += " "
		}
		line += string(o)
	}
	u.text(panelX, py, styleText, line)
	py++
	if u.cacheNote != "" {
		u.text(panelX, py, styleDim, u.cacheNote)
		py++
	}
	if u.poolKnown {
		py++
		u.text(panelX, py, styleTitle, fmt.Sprintf("Possible candidates (%d)", len(u.pool)))
		py++
		for i, c := range u.pool {
			if i == shownCandidates {
				u.text(panelX, py, styleDim, "...")
				break
			}
			u.text(panelX, py, styleText, string(c))
			py++
		}
	}

	// Footer: recommendation, status, key help.
	if u.rec != nil {
		category := "information-gathering"
		if u.rec.IsCandidate {
			category = "solution candidate"
		}
		u.text(boardX, h-footerRows, styleText,
			fmt.Sprintf("Recommended guess: %s (expected pool size %.2f) [%s]", u.rec.Word, u.rec.Score, category))
	}
	u.text(boardX, h-footerRows+1, styleTitle, u.status)
	u.text(boardX, h-1, styleDim, u.help())

	u.scr.Show()
}

func (u *UI) help() string {
	switch u.mode {
	case modeMark:
		return "g/y/x mark  Space cycle  Left/Right move  Enter confirm  Esc discard"
	case modeOver:
		return "press any key to exit"
	}
	return "type a guess  Enter submit  Tab suggestion  Ctrl-N new game  Esc quit"
}

// tile draws letter ch as tile i of the board row at y.
func (u *UI) tile(i, y int, ch rune, st tcell.Style) {
	x := boardX + i*tileWidth
	u.scr.SetContent(x, y, ' ', nil, st)
	u.scr.SetContent(x+1, y, ch, nil, st)
	u.scr.SetContent(x+2, y, ' ', nil, st)
}

// text draws s from (x, y), clipped at the right edge.
func (u *UI) text(x, y int, st tcell.Style, s string) {
	w, _ := u.scr.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		u.scr.SetContent(x, y, r, nil, st)
		x++
	}
}
