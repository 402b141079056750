package dictionaries

import (
	"github.com/reusee/stenowiki/strokes"
	"github.com/reusee/stenowiki/translations"
	"github.com/samber/lo"
)

// Dictionary stacks layers, earlier layers take precedence.
// It is safe for concurrent reads once loading is done.
type Dictionary struct {
	layers []*Layer
	user   *Layer
}

var _ translations.ReverseLookuper = new(Dictionary)

func NewDictionary(layers ...*Layer) *Dictionary {
	return &Dictionary{
		layers: layers,
	}
}

func (d *Dictionary) Layers() []*Layer {
	return d.layers
}

// Add puts an entry above every loaded layer.
func (d *Dictionary) Add(key string, translation string) error {
	if d.user == nil {
		d.user = NewLayer("user")
		d.layers = append([]*Layer{d.user}, d.layers...)
	}
	return d.user.Add(key, translation)
}

func (d *Dictionary) Lookup(seq strokes.Sequence) (string, bool) {
	for _, layer := range d.layers {
		if translation, ok := layer.Lookup(seq); ok {
			return translation, true
		}
	}
	return "", false
}

func (d *Dictionary) LongestKey() (n int) {
	for _, layer := range d.layers {
		n = max(n, layer.LongestKey())
	}
	return
}

func (d *Dictionary) Len() (n int) {
	for _, layer := range d.layers {
		n += layer.Len()
	}
	return
}

// ReverseLookup lists the stroke sequences translating to word, shadowed entries excluded.
func (d *Dictionary) ReverseLookup(word string) []strokes.Sequence {
	var candidates []strokes.Sequence
	for _, layer := range d.layers {
		candidates = append(candidates, layer.reverse[word]...)
	}
	candidates = lo.UniqBy(candidates, strokes.Sequence.String)
	return lo.Filter(candidates, func(seq strokes.Sequence, _ int) bool {
		translation, _ := d.Lookup(seq)
		return translation == word
	})
}
