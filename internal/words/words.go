// internal/words/words.go
//
// Word sources for building a game dictionary.
//
// Responsibilities:
//   - Read newline-delimited word lists from a file or the embedded default.
//   - Trim whitespace and skip blank and '#' comment lines.
//
// Words are otherwise taken as-is: no case folding and no length filtering.
// An empty result is not an error here; game.NewDefinition rejects it.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/termwordle/assets"
)

// File reads words from a file on disk, one per line.
type File struct {
	Path string
}

// Words opens and reads the file.
func (f File) Words() ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	out, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return out, nil
}

// Name is the label shown to the player.
func (f File) Name() string { return f.Path }

// Embedded reads the dictionary compiled into the binary.
type Embedded struct{}

// Words reads the embedded list.
func (Embedded) Words() ([]string, error) {
	rc, err := assets.OpenDefaultWords()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Name is the label shown to the player.
func (Embedded) Name() string { return "(built-in) " + assets.DefaultWordsName }

// Read scans r and returns one word per non-blank, non-comment line.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Named is a source that can describe itself.
type Named interface {
	Words() ([]string, error)
	Name() string
}

// Pick returns a File source for path, or the embedded list when path is empty.
func Pick(path string) Named {
	if path == "" {
		return Embedded{}
	}
	return File{Path: path}
}
