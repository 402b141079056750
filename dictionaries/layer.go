package dictionaries

import (
	"github.com/reusee/stenowiki/strokes"
)

// Layer is one loaded dictionary.
type Layer struct {
	Name string
	// Skipped counts keys that failed normalization.
	Skipped int

	entries map[string]string
	reverse map[string][]strokes.Sequence
	longest int
}

func NewLayer(name string) *Layer {
	return &Layer{
		Name:    name,
		entries: make(map[string]string),
		reverse: make(map[string][]strokes.Sequence),
	}
}

// Add normalizes key and maps it to translation, a later Add for the same strokes wins.
func (l *Layer) Add(key string, translation string) error {
	seq, err := strokes.Normalize(key)
	if err != nil {
		return err
	}
	l.set(seq, translation)
	return nil
}

// add is Add for loaders, failures are counted.
func (l *Layer) add(key string, translation string) {
	if err := l.Add(key, translation); err != nil {
		l.Skipped++
	}
}

func (l *Layer) set(seq strokes.Sequence, translation string) {
	k := seq.String()
	if old, ok := l.entries[k]; ok {
		if old == translation {
			return
		}
		l.reverse[old] = removeSequence(l.reverse[old], seq)
		if len(l.reverse[old]) == 0 {
			delete(l.reverse, old)
		}
	}
	l.entries[k] = translation
	l.reverse[translation] = append(l.reverse[translation], seq)
	l.longest = max(l.longest, len(seq))
}

func removeSequence(seqs []strokes.Sequence, seq strokes.Sequence) []strokes.Sequence {
	ret := seqs[:0]
	for _, s := range seqs {
		if !s.Equal(seq) {
			ret = append(ret, s)
		}
	}
	return ret
}

func (l *Layer) Lookup(seq strokes.Sequence) (string, bool) {
	translation, ok := l.entries[seq.String()]
	return translation, ok
}

func (l *Layer) Len() int {
	return len(l.entries)
}

func (l *Layer) LongestKey() int {
	return l.longest
}
