package dictionaries

import (
	"unicode/utf8"

	"github.com/reusee/stenowiki/strokes"
	"github.com/reusee/stenowiki/translations"
)

const DefaultUndoLength = 10

var undoStroke = strokes.MustNormalize("*")[0]

type translation struct {
	strokes  strokes.Sequence
	output   string
	before   formatState
	after    formatState
	replaced []*translation
}

// Translator matches the longest dictionary entry ending at each stroke.
// A lone asterisk undoes the last translation.
type Translator struct {
	dict       *Dictionary
	undoLength int
	history    []*translation
	state      formatState
}

var _ translations.Translator = new(Translator)

func NewTranslator(dict *Dictionary, undoLength int) *Translator {
	if undoLength < 1 {
		undoLength = DefaultUndoLength
	}
	return &Translator{
		dict:       dict,
		undoLength: undoLength,
	}
}

func (t *Translator) Reset() {
	t.history = nil
	t.state = formatState{}
}

func (t *Translator) Translate(stroke strokes.Stroke) (edit translations.Edit) {
	if stroke == undoStroke {
		return t.undo()
	}

	replaced, text := t.match(stroke)

	before := t.state
	if len(replaced) > 0 {
		before = replaced[0].before
	}
	var seq strokes.Sequence
	for i := len(replaced) - 1; i >= 0; i-- {
		edit.Deletes = appendDelete(edit.Deletes, replaced[i].output)
	}
	for _, r := range replaced {
		seq = append(seq, r.strokes...)
	}
	seq = append(seq, stroke)
	t.history = t.history[:len(t.history)-len(replaced)]

	output, after := format(text, before)
	t.push(&translation{
		strokes:  seq,
		output:   output,
		before:   before,
		after:    after,
		replaced: replaced,
	})
	t.state = after
	if output != "" {
		edit.Appends = append(edit.Appends, output)
	}
	return
}

// match tries the translations in history that may combine with stroke, the longest match wins.
func (t *Translator) match(stroke strokes.Stroke) ([]*translation, string) {
	longest := t.dict.LongestKey()
	for i := range t.history {
		var seq strokes.Sequence
		for _, tr := range t.history[i:] {
			seq = append(seq, tr.strokes...)
		}
		seq = append(seq, stroke)
		if len(seq) > longest {
			continue
		}
		if text, ok := t.dict.Lookup(seq); ok {
			return append([]*translation(nil), t.history[i:]...), text
		}
	}
	if text, ok := t.dict.Lookup(strokes.Sequence{stroke}); ok {
		return nil, text
	}
	return nil, stroke.String()
}

func (t *Translator) push(tr *translation) {
	t.history = append(t.history, tr)
	if len(t.history) > t.undoLength {
		t.history = append(t.history[:0:0], t.history[len(t.history)-t.undoLength:]...)
	}
}

func (t *Translator) undo() (edit translations.Edit) {
	if len(t.history) == 0 {
		return
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	edit.Deletes = appendDelete(edit.Deletes, last.output)
	t.state = last.before
	for _, r := range last.replaced {
		t.push(r)
		if r.output != "" {
			edit.Appends = append(edit.Appends, r.output)
		}
		t.state = r.after
	}
	return
}

func appendDelete(deletes []int, output string) []int {
	if n := utf8.RuneCountInString(output); n > 0 {
		deletes = append(deletes, n)
	}
	return deletes
}
