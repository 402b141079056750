package strokes

import (
	"fmt"
	"strings"
)

// Stroke is a set of steno keys, one bit per key in board order.
type Stroke uint32

// Keys in board order: left bank, vowel cluster with asterisk, right bank.
var Keys = []string{
	"S-", "T-", "K-", "P-", "W-", "H-", "R-",
	"A-", "O-", "*", "-E", "-U",
	"-F", "-R", "-P", "-B", "-L", "-G", "-T", "-S", "-D", "-Z",
}

const (
	firstVowel = 7
	firstRight = 12
)

var keyIndex = func() map[string]int {
	ret := make(map[string]int, len(Keys))
	for i, key := range Keys {
		ret[key] = i
	}
	return ret
}()

const middleMask = Stroke(1<<firstRight - 1<<firstVowel)

func NewStroke(keys ...string) (ret Stroke, err error) {
	for _, key := range keys {
		i, ok := keyIndex[key]
		if !ok {
			return 0, fmt.Errorf("unknown key %q", key)
		}
		ret |= 1 << i
	}
	return
}

func (s Stroke) Has(key string) bool {
	i, ok := keyIndex[key]
	if !ok {
		return false
	}
	return s&(1<<i) != 0
}

func (s Stroke) Keys() []string {
	var ret []string
	for i, key := range Keys {
		if s&(1<<i) != 0 {
			ret = append(ret, key)
		}
	}
	return ret
}

func (s Stroke) IsEmpty() bool {
	return s == 0
}

// String returns the canonical text: letters in board order, with a hyphen before the
// right bank when no vowel or asterisk separates it from the left bank.
func (s Stroke) String() string {
	var b strings.Builder
	needHyphen := s&middleMask == 0 && s>>firstRight != 0
	for i, key := range Keys {
		if s&(1<<i) == 0 {
			continue
		}
		if needHyphen && i >= firstRight {
			b.WriteByte('-')
			needHyphen = false
		}
		b.WriteString(strings.Trim(key, "-"))
	}
	return b.String()
}

// Sequence is a multi-stroke group.
type Sequence []Stroke

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, stroke := range s {
		parts[i] = stroke.String()
	}
	return strings.Join(parts, "/")
}

func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func Join(seqs ...Sequence) Sequence {
	var ret Sequence
	for _, seq := range seqs {
		ret = append(ret, seq...)
	}
	return ret
}
