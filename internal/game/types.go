// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Validity: per-letter result of a guess (correct/wrong_position/incorrect).
//   - State: coarse session state (in_progress/won/lost).
//   - Definition: immutable starting conditions of one game.
//   - GuessRecord: an accepted guess with its per-letter validity.
//   - Session: the mutable state of a single game.

package game

// Validity represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":        letter is in the target at this position.
//   - "wrong_position": letter is in the target, but not at this position.
//   - "incorrect":      letter is not in the target (or all its occurrences
//     are already accounted for).
type Validity string

const (
	Correct       Validity = "correct"
	WrongPosition Validity = "wrong_position"
	Incorrect     Validity = "incorrect"
)

// State is the outcome of a session after a guess.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Terminal reports whether no more guesses can be made.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Definition holds the starting conditions of a game. It is not modified
// after NewDefinition returns.
type Definition struct {
	Target     string   // The secret word.
	Dictionary []string // Accepted guesses, sorted ascending. Contains Target.
	WordLength int      // Letters per word, taken from Dictionary[0].
	MaxGuesses int      // Guess budget (> 0).
}

// GuessRecord is one accepted guess.
type GuessRecord struct {
	Word    string     `json:"word"`
	Letters []Validity `json:"letters"`
}

// Session holds the state of a single game.
type Session struct {
	def     Definition
	history []GuessRecord
	state   State
}
