package sounds

import (
	"errors"
	"testing"

	"github.com/reusee/stenowiki/strokes"
)

func TestDuplicateMnemonic(t *testing.T) {
	_, err := NewTable(
		Entry{"x", "KP"},
		Entry{"y", "KWR"},
		Entry{"x", "STKPW"},
	)
	var dup *DuplicateMnemonicError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v", err)
	}
	if dup.Mnemonic != "x" || dup.Chords != [2]string{"KP", "STKPW"} {
		t.Fatalf("got %+v", dup)
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		MustNewTable(Entry{"x", "A"}, Entry{"x", "O"})
	}()
}

func TestDefaultTable(t *testing.T) {
	if n := Default.Len(); n != len(DefaultEntries) {
		t.Fatalf("got %d", n)
	}
	for _, entry := range Default.Entries() {
		if !strokes.Valid(entry.Chord) {
			t.Fatalf("%s: chord %s out of steno order", entry.Mnemonic, entry.Chord)
		}
	}
	chord, ok := Default.Lookup("-kshun")
	if !ok || chord != "-BGS" {
		t.Fatalf("got %v %v", chord, ok)
	}
	if _, ok := Default.Lookup("bogus"); ok {
		t.Fatal()
	}
	if entries := Default.Entries(); entries[0] != (Entry{"s", "S"}) || entries[len(entries)-1] != (Entry{"-ing", "-G"}) {
		t.Fatalf("got %v", entries)
	}
}

func TestTableWith(t *testing.T) {
	table, err := Default.With(Entry{"com", "K"}, Entry{"-ly", "-L"})
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != Default.Len()+2 {
		t.Fatalf("got %d", table.Len())
	}
	if chord, _ := table.Lookup("-ly"); chord != "-L" {
		t.Fatalf("got %s", chord)
	}
	if _, ok := Default.Lookup("com"); ok {
		t.Fatal("default table modified")
	}
	if _, err := Default.With(Entry{"th", "TH"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestInvalidEntry(t *testing.T) {
	testCases := []struct {
		entry  Entry
		reason string
	}{
		{Entry{"qq", ""}, "empty chord"},
		{Entry{"zq", "TAH"}, "chord out of steno order"},
		{Entry{"k2", "K"}, "malformed mnemonic"},
		{Entry{"Q", "K"}, "malformed mnemonic"},
		{Entry{"", "K"}, "malformed mnemonic"},
		{Entry{"-", "-T"}, "malformed mnemonic"},
	}
	for _, c := range testCases {
		_, err := NewTable(c.entry)
		var invalid *InvalidEntryError
		if !errors.As(err, &invalid) {
			t.Fatalf("%+v: got %v", c.entry, err)
		}
		if invalid.Entry != c.entry || invalid.Reason != c.reason {
			t.Fatalf("got %+v", invalid)
		}
		if _, err := Default.With(c.entry); !errors.As(err, &invalid) {
			t.Fatalf("%+v: got %v", c.entry, err)
		}
	}

	for _, entry := range []Entry{{"*", "*"}, {"-mp", "-PL"}, {"oo*", "AO*"}} {
		if _, err := NewTable(entry); err != nil {
			t.Fatalf("%+v: got %v", entry, err)
		}
	}
}
