package game

import (
	"errors"
	"io/fs"
	"math/rand"
	"slices"
	"testing"
)

type sliceSource []string

func (s sliceSource) Words() ([]string, error) { return s, nil }

type failingSource struct{ err error }

func (f failingSource) Words() ([]string, error) { return nil, f.err }

func TestNewDefinitionSortsAndPicks(t *testing.T) {
	in := []string{"pear", "apple", "fig"}
	def, err := NewDefinition(in, 6, fixedRand(1))
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}
	want := []string{"apple", "fig", "pear"}
	if !slices.Equal(def.Dictionary, want) {
		t.Fatalf("dictionary = %v, want %v", def.Dictionary, want)
	}
	if def.Target != "fig" {
		t.Fatalf("target = %q, want %q", def.Target, "fig")
	}
	// Length comes from the smallest word, not the first input word.
	if def.WordLength != 5 {
		t.Fatalf("word length = %d, want 5", def.WordLength)
	}
	if def.MaxGuesses != 6 {
		t.Fatalf("max guesses = %d, want 6", def.MaxGuesses)
	}
	if in[0] != "pear" {
		t.Fatalf("input slice was reordered: %v", in)
	}
}

func TestNewDefinitionTargetInDictionary(t *testing.T) {
	words := []string{"cigar", "rebut", "sissy", "humph", "awake"}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		def, err := NewDefinition(words, 6, rng)
		if err != nil {
			t.Fatalf("NewDefinition: %v", err)
		}
		if !def.Contains(def.Target) {
			t.Fatalf("target %q not in dictionary", def.Target)
		}
	}
}

func TestNewDefinitionErrors(t *testing.T) {
	if _, err := NewDefinition(nil, 6, fixedRand(0)); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("empty: err = %v, want %v", err, ErrEmptyDictionary)
	}
	if _, err := NewDefinition([]string{"apple"}, 0, fixedRand(0)); !errors.Is(err, ErrInvalidMaxGuesses) {
		t.Fatalf("zero guesses: err = %v, want %v", err, ErrInvalidMaxGuesses)
	}
}

func TestFromSource(t *testing.T) {
	def, err := FromSource(sliceSource{"bbbbb", "aaaaa"}, 2, fixedRand(0))
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	if def.Target != "aaaaa" {
		t.Fatalf("target = %q, want %q", def.Target, "aaaaa")
	}

	if _, err := FromSource(sliceSource{}, 2, fixedRand(0)); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("empty source: err = %v, want %v", err, ErrEmptyDictionary)
	}

	_, err = FromSource(failingSource{err: fs.ErrNotExist}, 2, fixedRand(0))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("failing source: err = %v, want %v", err, ErrSourceUnavailable)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("failing source: err = %v does not wrap the cause", err)
	}
}

func TestContains(t *testing.T) {
	def, err := NewDefinition([]string{"grape", "apple", "lemon"}, 6, fixedRand(0))
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}
	for _, w := range []string{"apple", "grape", "lemon"} {
		if !def.Contains(w) {
			t.Fatalf("Contains(%q) = false, want true", w)
		}
	}
	if def.Contains("melon") {
		t.Fatal(`Contains("melon") = true, want false`)
	}
}
