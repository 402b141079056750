package translations

import "github.com/reusee/stenowiki/strokes"

// Edit is one translator response, Deletes apply before Appends.
type Edit struct {
	// Deletes are rune counts removed from the end of the buffer.
	Deletes []int
	Appends []string
}

func (e Edit) IsEmpty() bool {
	return len(e.Deletes) == 0 && len(e.Appends) == 0
}

// Translator turns strokes fed in order into edits of the output text.
type Translator interface {
	Reset()
	Translate(stroke strokes.Stroke) Edit
}

type ReverseLookuper interface {
	ReverseLookup(word string) []strokes.Sequence
}
