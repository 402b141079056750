package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/stenowiki/cmds"
	"github.com/reusee/stenowiki/sounds"
	"github.com/reusee/stenowiki/strokes"
	"github.com/samber/lo"
)

type action func(e *env) error

var actions []action

func define(name string, desc string, fn any) {
	cmds.Define(name, cmds.Func(fn).Desc(desc))
}

func init() {
	define("normalize", "print the canonical form of strokes, like HAT/-T", func(text string) {
		actions = append(actions, func(e *env) error {
			return e.normalize(text)
		})
	})
	define("parse", "parse a phoneme annotation", func(text string) {
		actions = append(actions, func(e *env) error {
			return e.parseAnnotation(text)
		})
	})
	define("render", "print the stroke and phoneme rows of an annotation", func(text string) {
		actions = append(actions, func(e *env) error {
			return e.render(text)
		})
	})
	define("check", "check an annotation against a stroke", func(stroke string, text string) {
		actions = append(actions, func(e *env) error {
			return e.check(stroke, text)
		})
	})
	define("guess", "guess an annotation for a stroke", func(stroke string) {
		actions = append(actions, func(e *env) error {
			return e.guessAnnotation(stroke)
		})
	})
	define("translate", "translate strokes with the dictionaries", func(text string) {
		actions = append(actions, func(e *env) error {
			return e.translate(text)
		})
	})
	define("lookup", "list strokes of a word", func(word string) {
		actions = append(actions, func(e *env) error {
			return e.lookup(word)
		})
	})
	define("verify", "check that strokes translate to a word", func(text string, word string) {
		actions = append(actions, func(e *env) error {
			return e.verify(text, word)
		})
	})
	define("phonemes", "list the phoneme table", func() {
		actions = append(actions, func(e *env) error {
			return e.phonemes()
		})
	})
	define("theory", "describe the annotation model", func() {
		actions = append(actions, func(e *env) error {
			_, err := fmt.Fprint(e.out, strings.TrimLeft(sounds.Theory, "\n"))
			return err
		})
	})
	define("repl", "start a starlark session", func() {
		actions = append(actions, func(e *env) error {
			e.repl()
			return nil
		})
	})
}

func (e *env) normalize(text string) error {
	seq, err := strokes.Normalize(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, seq.String())
	for _, stroke := range seq {
		fmt.Fprintf(e.out, "  %s\t%s\n", stroke, strings.Join(stroke.Keys(), " "))
	}
	return nil
}

func (e *env) parseAnnotation(text string) error {
	seq := e.parse(text)
	for _, sound := range seq {
		fmt.Fprintf(e.out, "%s\t%s\n", sound.Category(), sound)
	}
	fmt.Fprintf(e.out, "stroke\t%s\n", seq.Stroke())
	if seq.IsMisstroke() {
		fmt.Fprintln(e.out, "misstroke")
	}
	if junk := seq.Junk(); len(junk) > 0 {
		return &sounds.JunkError{
			Tokens: junk,
		}
	}
	return nil
}

func (e *env) render(text string) error {
	rendering := e.parse(text).Render()
	row := func(cells []sounds.Cell) string {
		return strings.Join(lo.Map(cells, func(cell sounds.Cell, _ int) string {
			return fmt.Sprintf("%s:%s", cell.Category, cell.Text)
		}), "\t")
	}
	fmt.Fprintln(e.out, row(rendering.StrokeRow))
	fmt.Fprintln(e.out, row(rendering.PhonemeRow))
	return nil
}

func (e *env) check(text string, annotation string) error {
	seq, err := strokes.Normalize(text)
	if err != nil {
		return err
	}
	if err := e.parse(annotation).Check(seq.String()); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "ok")
	return nil
}

func (e *env) guessAnnotation(text string) error {
	seq, err := strokes.Normalize(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, e.guess(seq.String()).String())
	return nil
}

func (e *env) translateText(text string) (string, error) {
	seq, err := strokes.Normalize(text)
	if err != nil {
		return "", err
	}
	session, err := e.newSession()
	if err != nil {
		return "", err
	}
	return session.Translate(seq), nil
}

func (e *env) translate(text string) error {
	translated, err := e.translateText(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, translated)
	return nil
}

func (e *env) lookup(word string) error {
	session, err := e.newSession()
	if err != nil {
		return err
	}
	for _, seq := range session.ReverseLookup(word) {
		fmt.Fprintln(e.out, seq.String())
	}
	return nil
}

var ErrWrongWord = errors.New("strokes do not make the word")

func (e *env) verify(text string, word string) error {
	translated, err := e.translateText(text)
	if err != nil {
		return err
	}
	if translated != word {
		return fmt.Errorf("%w: got %q, want %q", ErrWrongWord, translated, word)
	}
	fmt.Fprintln(e.out, "ok")
	return nil
}

func (e *env) phonemes() error {
	for _, entry := range e.table.Entries() {
		fmt.Fprintf(e.out, "%s\t%s\n", entry.Mnemonic, entry.Chord)
	}
	return nil
}

func (e *env) globals() map[string]any {
	return map[string]any{
		"normalize": func(text string) (string, error) {
			seq, err := strokes.Normalize(text)
			if err != nil {
				return "", err
			}
			return seq.String(), nil
		},
		"stroke": func(annotation string) string {
			return e.parse(annotation).Stroke()
		},
		"annotate": func(annotation string) string {
			return e.parse(annotation).String()
		},
		"guess": func(chord string) string {
			return e.guess(chord).String()
		},
		"translate": e.translateText,
	}
}

func (e *env) repl() {
	e.tap(e.ctx, "stenowiki", e.globals())
}
