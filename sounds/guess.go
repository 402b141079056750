package sounds

import (
	"strings"
	"unicode/utf8"
)

type zone int

const (
	zoneLeft zone = iota
	zoneVowel
	zoneRight
)

type guessRule struct {
	zone      zone
	prefix    string
	mnemonics []string
}

func rule(z zone, prefix string, mnemonics ...string) guessRule {
	return guessRule{
		zone:      z,
		prefix:    prefix,
		mnemonics: mnemonics,
	}
}

// guessRules are tried in declaration order at each position, not by longest prefix.
// Reordering them changes the suggestions.
var guessRules = []guessRule{
	// left bank
	rule(zoneLeft, "STKPW", "zz"),
	rule(zoneLeft, "SKWR", "j"),
	rule(zoneLeft, "TKPW", "g"),
	rule(zoneLeft, "STK", "s", "d"),
	rule(zoneLeft, "STPH", "s", "n"),
	rule(zoneLeft, "KWR", "y"),
	rule(zoneLeft, "TPH", "n"),
	rule(zoneLeft, "SPH", "s", "m"),
	rule(zoneLeft, "SR", "v"),
	rule(zoneLeft, "TK", "d"),
	rule(zoneLeft, "TP", "f"),
	rule(zoneLeft, "PW", "b"),
	rule(zoneLeft, "PH", "m"),
	rule(zoneLeft, "HR", "l"),
	rule(zoneLeft, "KR", "c"),
	rule(zoneLeft, "KW", "q"),
	rule(zoneLeft, "KP", "x"),
	rule(zoneLeft, "TH", "th"),
	rule(zoneLeft, "KH", "ch"),
	rule(zoneLeft, "SH", "sh"),

	// vowels
	rule(zoneVowel, "AO*EU", "eye*"),
	rule(zoneVowel, "AOEU", "eye"),
	rule(zoneVowel, "AO*E", "ee*"),
	rule(zoneVowel, "AOE", "ee"),
	rule(zoneVowel, "AO*U", "ew*"),
	rule(zoneVowel, "AOU", "ew"),
	rule(zoneVowel, "A*EU", "ay*"),
	rule(zoneVowel, "AEU", "ay"),
	rule(zoneVowel, "O*EU", "oi*"),
	rule(zoneVowel, "OEU", "oi"),
	rule(zoneVowel, "AO*", "oo*"),
	rule(zoneVowel, "AO", "oo"),
	rule(zoneVowel, "A*E", "ea*"),
	rule(zoneVowel, "AE", "ea"),
	rule(zoneVowel, "A*U", "aw*"),
	rule(zoneVowel, "AU", "aw"),
	rule(zoneVowel, "O*U", "ow*"),
	rule(zoneVowel, "OU", "ow"),
	rule(zoneVowel, "O*E", "oh*"),
	rule(zoneVowel, "OE", "oh"),
	rule(zoneVowel, "*EU", "i*"),
	rule(zoneVowel, "EU", "i"),
	rule(zoneVowel, "A*", "a*"),
	rule(zoneVowel, "O*", "o*"),
	rule(zoneVowel, "*E", "e*"),
	rule(zoneVowel, "*U", "u*"),

	// right bank
	rule(zoneRight, "FRPB", "-rch"),
	rule(zoneRight, "FRB", "-rv"),
	rule(zoneRight, "PBLGS", "-j", "-s"),
	rule(zoneRight, "PBLG", "-j"),
	rule(zoneRight, "PBGS", "-ng", "-s"),
	rule(zoneRight, "PBG", "-ng"),
	rule(zoneRight, "BGS", "-kshun"),
	rule(zoneRight, "BGT", "-k", "-t"),
	rule(zoneRight, "GS", "-shun"),
	rule(zoneRight, "LG", "-lch"),
	rule(zoneRight, "FP", "-ch"),
	rule(zoneRight, "RB", "-sh"),
	rule(zoneRight, "PB", "-n"),
	rule(zoneRight, "PL", "-m"),
	rule(zoneRight, "BG", "-k"),
}

// guessState is threaded through one guess.
type guessState struct {
	pastVowels bool
}

func (s guessState) zoneOf(r byte) zone {
	switch {
	case strings.IndexByte("AOEU*", r) >= 0:
		return zoneVowel
	case s.pastVowels:
		return zoneRight
	}
	return zoneLeft
}

// Guess proposes an annotation for a chord. The result is a starting point for editing,
// it may not assemble back to the same chord.
func Guess(table *Table, chord string) Sequence {
	var ret Sequence
	var state guessState
	for pos := 0; pos < len(chord); {
		var sounds []Sound
		var n int
		sounds, n, state = guessStep(table, chord[pos:], state)
		ret = append(ret, sounds...)
		pos += n
	}
	return ret
}

func guessStep(table *Table, rest string, state guessState) ([]Sound, int, guessState) {
	z := state.zoneOf(rest[0])
	if z == zoneVowel {
		state.pastVowels = true
	}

	for _, rule := range guessRules {
		if rule.zone != z || !strings.HasPrefix(rest, rule.prefix) {
			continue
		}
		sounds := make([]Sound, 0, len(rule.mnemonics))
		for _, mnemonic := range rule.mnemonics {
			sounds = append(sounds, guessPhoneme(table, mnemonic))
		}
		return sounds, len(rule.prefix), state
	}

	r, size := utf8.DecodeRuneInString(rest)
	switch r {
	case '*':
		return []Sound{Asterisk{}}, 1, state
	case '-':
		state.pastVowels = true
		return []Sound{Hyphen{}}, 1, state
	case '/':
		return []Sound{Slash{}}, 1, guessState{}
	default:
		mnemonic := strings.ToLower(string(r))
		if z == zoneRight {
			mnemonic = "-" + mnemonic
		}
		if _, ok := table.Lookup(mnemonic); ok {
			return []Sound{guessPhoneme(table, mnemonic)}, size, state
		}
		return []Sound{Phoneme{
			Mnemonic: string(r),
			Chord:    string(r),
			Kind:     CategoryPhoneme,
		}}, size, state
	}
}

func guessPhoneme(table *Table, mnemonic string) Phoneme {
	chord, ok := table.Lookup(mnemonic)
	if !ok {
		// a table without the default entries
		chord = strings.ToUpper(mnemonic)
	}
	return Phoneme{
		Mnemonic: mnemonic,
		Chord:    chord,
		Kind:     CategoryPhoneme,
	}
}
