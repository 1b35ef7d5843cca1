// internal/game/engine.go
//
// Session engine for a single game.
// Responsibilities:
//   - Validate guesses (length, repeat, dictionary membership).
//   - Score guesses using the two-pass letter reconciliation algorithm.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - A rejected guess never changes the session.
//   - Letters are compared rune by rune; no case folding or normalization.
package game

import (
	"errors"
	"unicode/utf8"
)

// Guess rejections. The session is unchanged when one of these is returned.
var (
	ErrWrongLength     = errors.New("wrong length")
	ErrAlreadyGuessed  = errors.New("already guessed")
	ErrNotInDictionary = errors.New("not in dictionary")
	ErrGameOver        = errors.New("game over")
)

// NewSession starts a game in progress with an empty history.
func NewSession(def Definition) *Session {
	return &Session{def: def, state: StateInProgress}
}

// Guess validates and scores word, recording it when accepted.
// Returns the new state, or one of the rejection errors above.
//
// Rejections are checked in order: length, repeat, dictionary.
// State transitions after an accepted guess:
//   - word equals the target → won.
//   - else history reached MaxGuesses → lost.
func (s *Session) Guess(word string) (State, error) {
	if s.state.Terminal() {
		return s.state, ErrGameOver
	}
	letters, err := s.Evaluate(word)
	if err != nil {
		return s.state, err
	}

	s.history = append(s.history, GuessRecord{Word: word, Letters: letters})

	switch {
	case word == s.def.Target:
		s.state = StateWon
	case len(s.history) == s.def.MaxGuesses:
		s.state = StateLost
	}
	return s.state, nil
}

// Evaluate scores word against the target without recording it.
func (s *Session) Evaluate(word string) ([]Validity, error) {
	if utf8.RuneCountInString(word) != s.def.WordLength {
		return nil, ErrWrongLength
	}
	for _, g := range s.history {
		if g.Word == word {
			return nil, ErrAlreadyGuessed
		}
	}
	if !s.def.Contains(word) {
		return nil, ErrNotInDictionary
	}
	return score(s.def.Target, word), nil
}

// score implements the two-pass reconciliation.
//
// Pass 1:
//   - Count every target letter.
//   - Mark exact matches Correct and consume one count each.
//
// Pass 2:
//   - Left to right, a non-Correct letter with a remaining count becomes
//     WrongPosition and consumes it; otherwise it stays Incorrect.
//
// Correct matches are consumed first so a wrong-position letter earlier in
// the word can never take the count an exact match needs.
func score(target, guess string) []Validity {
	t := []rune(target)
	g := []rune(guess)
	res := make([]Validity, len(g))

	remaining := make(map[rune]int, len(t))
	for _, r := range t {
		remaining[r]++
	}

	for i := range g {
		if i < len(t) && g[i] == t[i] {
			res[i] = Correct
			remaining[g[i]]--
		} else {
			res[i] = Incorrect
		}
	}

	for i, r := range g {
		if res[i] == Correct {
			continue
		}
		if remaining[r] > 0 {
			res[i] = WrongPosition
			remaining[r]--
		}
	}
	return res
}

// State reports the current session state.
func (s *Session) State() State { return s.state }

// Definition returns the game's starting conditions.
func (s *Session) Definition() Definition { return s.def }

// Remaining is the number of guesses left in the budget.
func (s *Session) Remaining() int { return s.def.MaxGuesses - len(s.history) }

// History returns a copy of the accepted guesses in submission order.
func (s *Session) History() []GuessRecord {
	out := make([]GuessRecord, len(s.history))
	for i, g := range s.history {
		out[i] = GuessRecord{Word: g.Word, Letters: append([]Validity(nil), g.Letters...)}
	}
	return out
}
