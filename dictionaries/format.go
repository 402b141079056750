package dictionaries

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type formatState struct {
	// attach suppresses the space before the next word.
	attach     bool
	capitalize bool
}

const (
	attachedPunctuation = ".,?!:;"
	sentenceEnds        = ".?!"
)

// format renders a dictionary translation, words are emitted with a leading space.
func format(text string, state formatState) (string, formatState) {
	b := new(strings.Builder)

	emit := func(word string, attached bool) {
		if word == "" {
			return
		}
		if !attached && !state.attach {
			b.WriteByte(' ')
		}
		if state.capitalize {
			word = capitalize(word)
		}
		b.WriteString(word)
		state.attach = false
		state.capitalize = false
	}

	for _, atom := range splitAtoms(text) {
		meta, ok := cutMeta(atom)
		if !ok {
			emit(strings.Join(strings.Fields(atom), " "), false)
			continue
		}

		switch {
		case meta == "":

		case meta == "-|":
			state.capitalize = true

		case len(meta) == 1 && strings.Contains(attachedPunctuation, meta):
			b.WriteString(meta)
			state.attach = false
			state.capitalize = strings.Contains(sentenceEnds, meta)

		default:
			prefixAttach := strings.HasPrefix(meta, "^")
			suffixAttach := strings.HasSuffix(meta, "^")
			word := strings.TrimSuffix(strings.TrimPrefix(meta, "^"), "^")
			emit(word, prefixAttach)
			if suffixAttach {
				state.attach = true
			}
		}
	}

	return b.String(), state
}

// splitAtoms separates {meta} groups from literal text, an unclosed brace is literal.
func splitAtoms(text string) (atoms []string) {
	for text != "" {
		start := strings.IndexByte(text, '{')
		if start < 0 {
			atoms = append(atoms, text)
			break
		}
		end := strings.IndexByte(text[start:], '}')
		if end < 0 {
			atoms = append(atoms, text)
			break
		}
		end += start
		if start > 0 {
			atoms = append(atoms, text[:start])
		}
		atoms = append(atoms, text[start:end+1])
		text = text[end+1:]
	}
	return
}

func cutMeta(atom string) (string, bool) {
	if len(atom) >= 2 && atom[0] == '{' && atom[len(atom)-1] == '}' {
		return atom[1 : len(atom)-1], true
	}
	return "", false
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
