package strokes

import (
	"regexp"
	"strings"
)

const strokePattern = `S?T?K?P?W?H?R?(A?O?\*?-?E?U?|-)F?R?P?B?L?G?T?S?D?Z?`

// The hyphen alternative keeps "H-AT" out: a plain key-set grammar would accept it as
// a stroke with "-A".
var (
	strokeRe   = regexp.MustCompile(`^` + strokePattern + `$`)
	sequenceRe = regexp.MustCompile(`^(` + strokePattern + `)(/` + strokePattern + `)*$`)
)

// Valid reports whether chord is written in board order, without building keys.
func Valid(chord string) bool {
	return strokeRe.MatchString(chord)
}

func Normalize(text string) (Sequence, error) {
	text = strings.TrimSpace(text)
	if !sequenceRe.MatchString(text) {
		return nil, &NormalizationError{
			Text:   text,
			Reason: "keys out of steno order",
		}
	}
	parts := strings.Split(text, "/")
	ret := make(Sequence, 0, len(parts))
	for _, part := range parts {
		stroke, err := normalizeStroke(part)
		if err != nil {
			return nil, err
		}
		ret = append(ret, stroke)
	}
	return ret, nil
}

func MustNormalize(text string) Sequence {
	seq, err := Normalize(text)
	if err != nil {
		panic(err)
	}
	return seq
}

func normalizeStroke(text string) (Stroke, error) {
	var keys []string
	state := initialSide
	for _, r := range text {
		var key string
		var ok bool
		key, ok, state = state.next(r)
		if ok {
			keys = append(keys, key)
		}
	}
	stroke, err := NewStroke(keys...)
	if err != nil {
		return 0, &NormalizationError{
			Text:   text,
			Reason: err.Error(),
		}
	}
	if stroke.IsEmpty() {
		return 0, &NormalizationError{
			Text:   text,
			Reason: "empty stroke",
		}
	}
	return stroke, nil
}

// side is the fold state of the per-character canonicalization.
type side struct {
	onLeft    bool
	seenVowel bool
}

var initialSide = side{
	onLeft: true,
}

// next consumes one character and returns the key it names, if any.
func (s side) next(r rune) (key string, ok bool, _ side) {
	if strings.ContainsRune("EU*-", r) {
		s.onLeft = false
	}
	if strings.ContainsRune("AOEU", r) {
		s.seenVowel = true
	} else if s.seenVowel {
		s.onLeft = false
	}
	switch {
	case r == '-':
		return "", false, s
	case r == '*':
		return "*", true, s
	case s.onLeft:
		return string(r) + "-", true, s
	}
	return "-" + string(r), true, s
}
