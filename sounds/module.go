package sounds

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

// ExtraPhonemes are user declared entries appended to the default table.
type ExtraPhonemes []Entry

func (Module) ExtraPhonemes(
	loader configs.Loader,
) (ret ExtraPhonemes) {
	for entries := range configs.All[[]Entry](loader, "phonemes") {
		ret = append(ret, entries...)
	}
	return
}

func (Module) Table(
	extra ExtraPhonemes,
) *Table {
	if len(extra) == 0 {
		return Default
	}
	table, err := Default.With(extra...)
	if err != nil {
		panic(err)
	}
	return table
}

type ParseAnnotation func(text string) Sequence

func (Module) ParseAnnotation(
	table *Table,
) ParseAnnotation {
	return func(text string) Sequence {
		return Parse(table, text)
	}
}

type GuessAnnotation func(chord string) Sequence

func (Module) GuessAnnotation(
	table *Table,
) GuessAnnotation {
	return func(chord string) Sequence {
		return Guess(table, chord)
	}
}
