package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
)

// ANSI sequences used when color is enabled.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[1;1H"
	reset       = "\x1b[0m"
)

var colors = map[game.Validity]string{
	game.Correct:       "\x1b[92m", // light green
	game.WrongPosition: "\x1b[93m", // light yellow
	game.Incorrect:     "\x1b[97m", // light white
}

// Plain-text marks, printed after the word when color is off.
var marks = map[game.Validity]byte{
	game.Correct:       '+',
	game.WrongPosition: '?',
	game.Incorrect:     '-',
}

// placeholder fills each unused row, one per letter.
const placeholder = "·"

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner prints the startup summary.
func Banner(w io.Writer, source string, words, maxGuesses int) error {
	_, err := fmt.Fprintf(w, "Using word file: %s (%d words)\nMax guesses: %d\n", source, words, maxGuesses)
	return err
}

// board writes one row per accepted guess, then a placeholder row for
// every guess left in the budget.
func board(w io.Writer, s *game.Session, color bool) error {
	def := s.Definition()
	for _, g := range s.History() {
		if err := row(w, g, color); err != nil {
			return err
		}
	}
	for i := 0; i < s.Remaining(); i++ {
		if _, err := fmt.Fprintln(w, strings.Repeat(placeholder, def.WordLength)); err != nil {
			return err
		}
	}
	return nil
}

func row(w io.Writer, g game.GuessRecord, color bool) error {
	var b strings.Builder
	if color {
		i := 0
		for _, r := range g.Word {
			b.WriteString(colors[g.Letters[i]])
			b.WriteRune(r)
			i++
		}
		b.WriteString(reset)
	} else {
		b.WriteString(g.Word)
		b.WriteByte(' ')
		for _, v := range g.Letters {
			b.WriteByte(marks[v])
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
