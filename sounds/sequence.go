package sounds

import (
	"errors"
	"fmt"
	"strings"
)

type Sequence []Sound

func stripRight(chord string) string {
	if chord != "-" {
		return strings.TrimPrefix(chord, "-")
	}
	return chord
}

// Stroke assembles the chords of the sequence in written order.
func (s Sequence) Stroke() string {
	var b strings.Builder
	for _, sound := range s {
		if c, ok := sound.(chorded); ok {
			b.WriteString(stripRight(c.chord()))
		}
	}
	return b.String()
}

func (s Sequence) IsMisstroke() bool {
	for _, sound := range s {
		if sound.Category() == CategoryMisstroke {
			return true
		}
	}
	return false
}

func (s Sequence) Junk() (ret []string) {
	for _, sound := range s {
		if junk, ok := sound.(Junk); ok {
			ret = append(ret, junk.Text)
		}
	}
	return
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, sound := range s {
		parts[i] = sound.String()
	}
	return strings.Join(parts, " ")
}

type Cell struct {
	Category Category
	Text     string
	// more than one key letter
	Multi bool
}

type Rendering struct {
	StrokeRow  []Cell
	PhonemeRow []Cell
}

func (s Sequence) Render() Rendering {
	var ret Rendering
	for _, sound := range s {
		cell := Cell{
			Category: sound.Category(),
		}
		if c, ok := sound.(chorded); ok {
			cell.Text = stripRight(c.chord())
		}
		cell.Multi = len(cell.Text) > 1
		ret.StrokeRow = append(ret.StrokeRow, cell)
	}
	for _, sound := range s {
		cell := Cell{
			Category: sound.Category(),
		}
		switch sound := sound.(type) {
		case Phoneme:
			cell.Text = strings.TrimPrefix(strings.ReplaceAll(sound.Mnemonic, "*", ""), "-")
		case BeginInversion, EndInversion, Junk:
			cell.Text = sound.String()
		}
		ret.PhonemeRow = append(ret.PhonemeRow, cell)
	}
	return ret
}

var ErrEmptyAnnotation = errors.New("annotation has no keys")

type JunkError struct {
	Tokens []string
}

func (e *JunkError) Error() string {
	return fmt.Sprintf("unknown phonemes: %s", strings.Join(e.Tokens, ", "))
}

type MismatchError struct {
	Got  string
	Want string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("annotation is for stroke %s, not %s", e.Got, e.Want)
}

// Check validates the sequence as the annotation of the target stroke text.
func (s Sequence) Check(target string) error {
	if junk := s.Junk(); len(junk) > 0 {
		return &JunkError{
			Tokens: junk,
		}
	}
	stroke := s.Stroke()
	if stroke == "" {
		return ErrEmptyAnnotation
	}
	if stroke != target {
		return &MismatchError{
			Got:  stroke,
			Want: target,
		}
	}
	return nil
}
