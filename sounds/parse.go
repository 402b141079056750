package sounds

import (
	"regexp"
	"strings"
)

// parseState is threaded through the tokens of one annotation.
type parseState struct {
	// bare mnemonics resolve to their right-bank variants
	inRight bool
}

type parseRule struct {
	name  string
	match func(token string, state parseState) bool
	build func(table *Table, token string, state parseState) (Sound, parseState)
}

var (
	misstrokeRe = regexp.MustCompile(`^![A-Z*\-]+$`)
	phonemeRe   = regexp.MustCompile(`^(!?)(-?[a-z]+\*?)(:([A-Z*\-]+))?`)
)

func literal(text string) func(string, parseState) bool {
	return func(token string, _ parseState) bool {
		return token == text
	}
}

func matchRe(re *regexp.Regexp) func(string, parseState) bool {
	return func(token string, _ parseState) bool {
		return re.MatchString(token)
	}
}

// parseRules are tried top to bottom, the first match classifies the token.
var parseRules = []parseRule{
	{
		name:  "begin-inversion",
		match: literal("["),
		build: func(_ *Table, _ string, state parseState) (Sound, parseState) {
			return BeginInversion{}, state
		},
	},
	{
		name:  "end-inversion",
		match: literal("]"),
		build: func(_ *Table, _ string, state parseState) (Sound, parseState) {
			return EndInversion{}, state
		},
	},
	{
		name:  "hyphen",
		match: literal("-"),
		build: func(_ *Table, _ string, state parseState) (Sound, parseState) {
			state.inRight = true
			return Hyphen{}, state
		},
	},
	{
		name:  "asterisk",
		match: literal("*"),
		build: func(_ *Table, _ string, state parseState) (Sound, parseState) {
			state.inRight = true
			return Asterisk{}, state
		},
	},
	{
		name:  "slash",
		match: literal("/"),
		build: func(_ *Table, _ string, state parseState) (Sound, parseState) {
			state.inRight = false
			return Slash{}, state
		},
	},
	{
		name:  "bare-misstroke",
		match: matchRe(misstrokeRe),
		build: func(_ *Table, token string, state parseState) (Sound, parseState) {
			return Phoneme{
				Chord: token[1:],
				Kind:  CategoryMisstroke,
			}, state
		},
	},
	{
		name:  "phoneme",
		match: matchRe(phonemeRe),
		build: buildPhoneme,
	},
	{
		name: "junk",
		match: func(string, parseState) bool {
			return true
		},
		build: func(_ *Table, token string, state parseState) (Sound, parseState) {
			return Junk{Text: token}, state
		},
	},
}

func buildPhoneme(table *Table, token string, state parseState) (Sound, parseState) {
	groups := phonemeRe.FindStringSubmatch(token)
	bang := groups[1] == "!"
	mnemonic := groups[2]
	chord := groups[4]

	if state.inRight && !strings.HasPrefix(mnemonic, "-") {
		mnemonic = "-" + mnemonic
	}
	if strings.HasPrefix(mnemonic, "-") {
		state.inRight = true
	}

	var kind Category
	switch {
	case chord != "" && bang:
		kind = CategoryMisstroke
	case chord != "":
		kind = CategoryCustom
	default:
		var ok bool
		chord, ok = table.Lookup(mnemonic)
		if !ok && strings.HasPrefix(mnemonic, "-") {
			mnemonic = mnemonic[1:]
			chord, ok = table.Lookup(mnemonic)
		}
		if !ok {
			return Junk{Text: token}, state
		}
		kind = CategoryPhoneme
	}

	if strings.IndexAny(chord, "AOEU*") == 0 {
		state.inRight = true
	}

	return Phoneme{
		Mnemonic: mnemonic,
		Chord:    chord,
		Kind:     kind,
	}, state
}

// classify applies the first matching rule to one token.
func classify(table *Table, token string, state parseState) (Sound, parseState) {
	for _, rule := range parseRules {
		if rule.match(token, state) {
			return rule.build(table, token, state)
		}
	}
	panic("unreachable")
}

// Parse never fails, unparsable tokens become Junk.
func Parse(table *Table, text string) Sequence {
	var ret Sequence
	var state parseState
	for _, token := range tokenize(text) {
		var sound Sound
		sound, state = classify(table, token, state)
		ret = append(ret, sound)
	}
	return ret
}
