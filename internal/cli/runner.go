// Package cli drives one game session on a terminal.
//
// The runner owns no game logic: it draws the board, reads a line,
// submits it to the session and reports rejections until the session
// reaches a terminal state.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termwordle/internal/game"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Options controls terminal output.
type Options struct {
	// Color enables ANSI colors and clears the screen before each redraw.
	Color bool
}

// Runner plays a session over a reader/writer pair.
type Runner struct {
	session *game.Session
	in      *bufio.Reader
	out     io.Writer
	opts    Options
}

// New constructs a Runner for session.
func New(session *game.Session, in io.Reader, out io.Writer, opts Options) *Runner {
	return &Runner{session: session, in: bufio.NewReader(in), out: out, opts: opts}
}

// Run loops until the game is won or lost, returning the final state.
func (r *Runner) Run() (game.State, error) {
	var last error
	for {
		if err := r.prompt(last); err != nil {
			return r.session.State(), err
		}
		word, err := r.readWord()
		if err != nil {
			return r.session.State(), err
		}

		state, err := r.session.Guess(word)
		if err != nil {
			log.Debug().Str("guess", word).Err(err).Msg("guess rejected")
			last = err
			continue
		}
		log.Debug().Str("guess", word).Str("state", string(state)).Msg("guess accepted")
		last = nil

		if state.Terminal() {
			return state, r.end(state)
		}
	}
}

// prompt redraws the board, the previous rejection (if any) and the prompt.
func (r *Runner) prompt(rejected error) error {
	if err := r.head(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, message(rejected)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, "Enter your word:")
	return err
}

func (r *Runner) head() error {
	if r.opts.Color {
		if _, err := io.WriteString(r.out, clearScreen+cursorHome); err != nil {
			return err
		}
	}
	return board(r.out, r.session, r.opts.Color)
}

// readWord reads one line and trims it. A final unterminated line is
// still submitted; EOF with nothing read ends the game.
func (r *Runner) readWord() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (r *Runner) end(state game.State) error {
	if err := r.head(); err != nil {
		return err
	}
	var msg string
	switch state {
	case game.StateWon:
		msg = "You win!"
	case game.StateLost:
		msg = fmt.Sprintf("Game over: out of guesses. The word was %q.", r.session.Definition().Target)
	}
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

// message maps a guess rejection to the line shown above the prompt.
func message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrAlreadyGuessed):
		return "You've already used that word!"
	case errors.Is(err, game.ErrWrongLength):
		return "Invalid word."
	case errors.Is(err, game.ErrNotInDictionary):
		return "That word doesn't exist."
	default:
		return err.Error()
	}
}
