package game

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// fixedRand always picks the same index.
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func newTestSession(t *testing.T, target string, words []string, maxGuesses int) *Session {
	t.Helper()
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	def := Definition{
		Target:     target,
		Dictionary: sorted,
		WordLength: len([]rune(target)),
		MaxGuesses: maxGuesses,
	}
	return NewSession(def)
}

func TestEvaluateExamples(t *testing.T) {
	tests := []struct {
		target, guess string
		want          []Validity
	}{
		{"apple", "grape", []Validity{Incorrect, Incorrect, WrongPosition, WrongPosition, Correct}},
		{"ababa", "babab", []Validity{WrongPosition, WrongPosition, WrongPosition, WrongPosition, Incorrect}},
		{"aaaaa", "bbbbb", []Validity{Incorrect, Incorrect, Incorrect, Incorrect, Incorrect}},
		{"apple", "apple", []Validity{Correct, Correct, Correct, Correct, Correct}},
		// The exact 'e' at the end keeps the target's only 'e'.
		{"crane", "eerie", []Validity{Incorrect, Incorrect, WrongPosition, Incorrect, Correct}},
		{"hello", "lolly", []Validity{Incorrect, WrongPosition, Correct, Correct, Incorrect}},
		{"crane", "llama", []Validity{Incorrect, Incorrect, Correct, Incorrect, Incorrect}},
		{"abbey", "kebab", []Validity{Incorrect, WrongPosition, Correct, WrongPosition, WrongPosition}},
	}
	for _, tt := range tests {
		s := newTestSession(t, tt.target, []string{tt.target, tt.guess}, 6)
		got, err := s.Evaluate(tt.guess)
		if err != nil {
			t.Fatalf("Evaluate(%q) against %q: unexpected error %v", tt.guess, tt.target, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("Evaluate(%q) against %q = %v, want %v", tt.guess, tt.target, got, tt.want)
		}
	}
}

func TestEvaluateLengthAndLetterBudget(t *testing.T) {
	words := []string{"abbey", "babes", "ebbed", "kebab", "sable", "bleed", "eerie"}
	for _, target := range words {
		s := newTestSession(t, target, words, 6)
		for _, guess := range words {
			got, err := s.Evaluate(guess)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", guess, err)
			}
			if len(got) != s.Definition().WordLength {
				t.Fatalf("len(Evaluate(%q)) = %d, want %d", guess, len(got), s.Definition().WordLength)
			}
			marked := map[rune]int{}
			for i, r := range guess {
				if got[i] != Incorrect {
					marked[r]++
				}
				if got[i] == Correct && target[i] != guess[i] {
					t.Fatalf("%q vs %q: position %d marked correct", guess, target, i)
				}
			}
			for r, n := range marked {
				if c := strings.Count(target, string(r)); n > c {
					t.Fatalf("%q vs %q: %d marks for %q, target has %d", guess, target, n, r, c)
				}
			}
		}
	}
}

func TestGuessRejections(t *testing.T) {
	s := newTestSession(t, "aaaaa", []string{"aaaaa", "bbbbb"}, 3)

	if _, err := s.Guess("x"); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("short guess: err = %v, want %v", err, ErrWrongLength)
	}
	// Length is checked before membership.
	if _, err := s.Guess("bbbbbb"); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("long guess: err = %v, want %v", err, ErrWrongLength)
	}
	if _, err := s.Guess("ccccc"); !errors.Is(err, ErrNotInDictionary) {
		t.Fatalf("unknown word: err = %v, want %v", err, ErrNotInDictionary)
	}
	if len(s.History()) != 0 {
		t.Fatalf("history after rejections = %d, want 0", len(s.History()))
	}

	if st, err := s.Guess("bbbbb"); err != nil || st != StateInProgress {
		t.Fatalf("first guess = (%v, %v), want (%v, nil)", st, err, StateInProgress)
	}
	if _, err := s.Guess("bbbbb"); !errors.Is(err, ErrAlreadyGuessed) {
		t.Fatalf("repeat guess: err = %v, want %v", err, ErrAlreadyGuessed)
	}
	if n := len(s.History()); n != 1 {
		t.Fatalf("history after repeat = %d, want 1", n)
	}
	if s.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", s.Remaining())
	}
}

func TestGuessRecordsHistory(t *testing.T) {
	s := newTestSession(t, "aaaaa", []string{"aaaaa", "bbbbb"}, 2)
	if _, err := s.Guess("bbbbb"); err != nil {
		t.Fatalf("guess: %v", err)
	}
	h := s.History()
	want := []Validity{Incorrect, Incorrect, Incorrect, Incorrect, Incorrect}
	if len(h) != 1 || h[0].Word != "bbbbb" || !slices.Equal(h[0].Letters, want) {
		t.Fatalf("history = %+v, want [{bbbbb %v}]", h, want)
	}

	// Mutating the returned copy must not leak into the session.
	h[0].Letters[0] = Correct
	if s.History()[0].Letters[0] != Incorrect {
		t.Fatal("History returned shared storage")
	}
}

func TestGuessWin(t *testing.T) {
	s := newTestSession(t, "apple", []string{"apple", "grape"}, 2)
	st, err := s.Guess("apple")
	if err != nil {
		t.Fatalf("guess: %v", err)
	}
	if st != StateWon || s.State() != StateWon {
		t.Fatalf("state = %v, want %v", st, StateWon)
	}
	for i, v := range s.History()[0].Letters {
		if v != Correct {
			t.Fatalf("letter %d = %v, want %v", i, v, Correct)
		}
	}
}

func TestGuessWinOnLastAttemptIsWin(t *testing.T) {
	s := newTestSession(t, "apple", []string{"apple", "grape"}, 2)
	if _, err := s.Guess("grape"); err != nil {
		t.Fatalf("guess: %v", err)
	}
	if st, _ := s.Guess("apple"); st != StateWon {
		t.Fatalf("state = %v, want %v", st, StateWon)
	}
}

func TestGuessLoss(t *testing.T) {
	words := []string{"cigar", "rebut", "sissy", "humph", "awake"}
	s := newTestSession(t, "awake", words, 3)
	for i, w := range []string{"cigar", "rebut"} {
		st, err := s.Guess(w)
		if err != nil || st != StateInProgress {
			t.Fatalf("guess %d = (%v, %v), want in progress", i, st, err)
		}
	}
	st, err := s.Guess("sissy")
	if err != nil || st != StateLost {
		t.Fatalf("final guess = (%v, %v), want (%v, nil)", st, err, StateLost)
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", s.Remaining())
	}

	if _, err := s.Guess("humph"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("guess after loss: err = %v, want %v", err, ErrGameOver)
	}
	if len(s.History()) != 3 {
		t.Fatalf("history after game over = %d, want 3", len(s.History()))
	}
}

func TestGuessIsCaseSensitive(t *testing.T) {
	s := newTestSession(t, "apple", []string{"apple", "Apple"}, 6)
	st, err := s.Guess("Apple")
	if err != nil {
		t.Fatalf("guess: %v", err)
	}
	if st != StateInProgress {
		t.Fatalf("state = %v, want %v", st, StateInProgress)
	}
}
