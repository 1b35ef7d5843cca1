// internal/game/definition.go
//
// Construction of game definitions from a word list or a word Source.
// The dictionary is sorted so the session can test membership by binary
// search, and the target is drawn through an injected Rand so callers
// (tests, daily mode) control the selection.

package game

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	// ErrEmptyDictionary is returned when the word source yields no words.
	ErrEmptyDictionary = errors.New("dictionary is empty")
	// ErrSourceUnavailable wraps any failure to read the word source.
	ErrSourceUnavailable = errors.New("word source unavailable")
	// ErrInvalidMaxGuesses is returned for a guess budget below one.
	ErrInvalidMaxGuesses = errors.New("max guesses must be positive")
)

// Rand picks an index in [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Source supplies the dictionary, one word per entry.
type Source interface {
	Words() ([]string, error)
}

// NewDefinition builds a Definition from words, picking the target with rng.
// The input slice is not modified.
func NewDefinition(words []string, maxGuesses int, rng Rand) (Definition, error) {
	if len(words) == 0 {
		return Definition{}, ErrEmptyDictionary
	}
	if maxGuesses < 1 {
		return Definition{}, fmt.Errorf("%w: got %d", ErrInvalidMaxGuesses, maxGuesses)
	}

	dict := slices.Clone(words)
	slices.Sort(dict)

	return Definition{
		Target:     dict[rng.Intn(len(dict))],
		Dictionary: dict,
		WordLength: utf8.RuneCountInString(dict[0]),
		MaxGuesses: maxGuesses,
	}, nil
}

// FromSource reads the dictionary from src and calls NewDefinition.
// Read failures satisfy errors.Is(err, ErrSourceUnavailable) and still
// unwrap to the underlying cause.
func FromSource(src Source, maxGuesses int, rng Rand) (Definition, error) {
	words, err := src.Words()
	if err != nil {
		return Definition{}, &sourceError{err: err}
	}
	return NewDefinition(words, maxGuesses, rng)
}

// Contains reports whether word is in the dictionary.
func (d Definition) Contains(word string) bool {
	_, ok := slices.BinarySearch(d.Dictionary, word)
	return ok
}

// sourceError ties a source failure to ErrSourceUnavailable.
type sourceError struct{ err error }

func (e *sourceError) Error() string { return ErrSourceUnavailable.Error() + ": " + e.err.Error() }

func (e *sourceError) Unwrap() []error { return []error{ErrSourceUnavailable, e.err} }
