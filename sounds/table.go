package sounds

import (
	"fmt"
	"regexp"

	"github.com/reusee/stenowiki/strokes"
)

type Entry struct {
	Mnemonic string `json:"mnemonic"`
	Chord    string `json:"chord"`
}

// Table is an ordered mnemonic to chord association list.
type Table struct {
	entries []Entry
	index   map[string]int
}

type DuplicateMnemonicError struct {
	Mnemonic string
	Chords   [2]string
}

func (e *DuplicateMnemonicError) Error() string {
	return fmt.Sprintf("duplicated mnemonic %q: %s and %s", e.Mnemonic, e.Chords[0], e.Chords[1])
}

type InvalidEntryError struct {
	Entry  Entry
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid phoneme %q:%q: %s", e.Entry.Mnemonic, e.Entry.Chord, e.Reason)
}

var mnemonicRe = regexp.MustCompile(`^(-?[a-z]+\*?|\*)$`)

func checkEntry(entry Entry) error {
	switch {
	case !mnemonicRe.MatchString(entry.Mnemonic):
		return &InvalidEntryError{Entry: entry, Reason: "malformed mnemonic"}
	case entry.Chord == "":
		return &InvalidEntryError{Entry: entry, Reason: "empty chord"}
	case !strokes.Valid(entry.Chord):
		return &InvalidEntryError{Entry: entry, Reason: "chord out of steno order"}
	}
	return nil
}

func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if err := checkEntry(entry); err != nil {
			return nil, err
		}
		if i, ok := t.index[entry.Mnemonic]; ok {
			return nil, &DuplicateMnemonicError{
				Mnemonic: entry.Mnemonic,
				Chords:   [2]string{t.entries[i].Chord, entry.Chord},
			}
		}
		t.index[entry.Mnemonic] = len(t.entries)
		t.entries = append(t.entries, entry)
	}
	return t, nil
}

func MustNewTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a new table with extra entries declared after the existing ones.
func (t *Table) With(extra ...Entry) (*Table, error) {
	return NewTable(append(t.Entries(), extra...)...)
}

func (t *Table) Lookup(mnemonic string) (chord string, ok bool) {
	i, ok := t.index[mnemonic]
	if !ok {
		return "", false
	}
	return t.entries[i].Chord, true
}

func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Default is built at init, a collision in DefaultEntries stops the process.
var Default = MustNewTable(DefaultEntries...)

var DefaultEntries = []Entry{
	// basic keys
	{"s", "S"},
	{"t", "T"},
	{"k", "K"},
	{"p", "P"},
	{"w", "W"},
	{"h", "H"},
	{"r", "R"},
	{"*", "*"},
	{"-f", "-F"},
	{"-r", "-R"},
	{"-p", "-P"},
	{"-b", "-B"},
	{"-l", "-L"},
	{"-g", "-G"},
	{"-t", "-T"},
	{"-s", "-S"},
	{"-d", "-D"},
	{"-z", "-Z"},

	// vowels
	{"a", "A"},
	{"o", "O"},
	{"e", "E"},
	{"u", "U"},
	{"i", "EU"},
	{"ay", "AEU"},
	{"ee", "AOE"},
	{"eye", "AOEU"},
	{"oh", "OE"},
	{"ew", "AOU"},
	{"aw", "AU"},
	{"ow", "OU"},
	{"ou", "OU"},
	{"oi", "OEU"},
	{"ea", "AE"},
	{"ae", "AE"},
	{"oo", "AO"},
	{"oa", "AO"},

	// asterisked vowels
	{"a*", "A*"},
	{"o*", "O*"},
	{"e*", "*E"},
	{"u*", "*U"},
	{"i*", "*EU"},
	{"ay*", "A*EU"},
	{"ee*", "AO*E"},
	{"eye*", "AO*EU"},
	{"oh*", "O*E"},
	{"ew*", "AO*U"},
	{"aw*", "A*U"},
	{"ow*", "O*U"},
	{"oi*", "O*EU"},
	{"ea*", "A*E"},
	{"ae*", "A*E"},
	{"oo*", "AO*"},
	{"oa*", "AO*"},

	// letters without a key of their own
	{"d", "TK"},
	{"f", "TP"},
	{"l", "HR"},
	{"g", "TKPW"},
	{"b", "PW"},
	{"z", "S"}, // asterisk
	{"v", "SR"},
	{"-k", "BG"},

	// more letters
	{"n", "TPH"},
	{"m", "PH"},
	{"j", "SKWR"},
	{"y", "KWR"},
	{"-n", "-PB"},
	{"-m", "-PL"},
	{"-lm", "-PL"},
	{"-j", "-PBLG"},

	// fingerspelled variants
	{"c", "KR"},
	{"q", "KW"},
	{"x", "KP"},
	{"zz", "STKPW"},

	// digraphs
	{"th", "TH"},
	{"ch", "KH"},
	{"sh", "SH"},
	{"-th", "T"}, // asterisk
	{"-ch", "-FP"},
	{"-sh", "-RB"},
	{"-ng", "-PBG"},
	{"-nj", "-PBG"},

	// compound clusters
	{"-mp", "PL"}, // asterisk
	{"-rv", "-FRB"},
	{"-lch", "-LG"},
	{"-lj", "-LG"},
	{"-lk", "LG"},  // asterisk
	{"-nk", "PBG"}, // asterisk
	{"-shun", "-GS"},
	{"-kshun", "-BGS"},
	{"-rch", "-FRPB"},
	{"-nch", "-FRPB"},

	// suffix keys
	{"-ed", "-D"},
	{"-ing", "-G"},
}
