package dictionaries

import (
	"testing"

	"github.com/reusee/stenowiki/strokes"
	"github.com/reusee/stenowiki/translations"
)

func testDictionary(t *testing.T) *Dictionary {
	main := NewLayer("main")
	for key, translation := range map[string]string{
		"KAT":          "cat",
		"KAT/HROG":     "catalog",
		"KAT/HROG/-S":  "catalogs",
		"-S":           "{^s}",
		"TKOG":         "dog",
		"PW-FR":        "{^}",
		"TP-PL":        "{.}",
		"KW-BG":        "{,}",
		"KPA":          "{-|}",
		"HROPBD/TKOPB": "London",
		"HRAOEUBG":     "like",
	} {
		if err := main.Add(key, translation); err != nil {
			t.Fatal(err)
		}
	}
	return NewDictionary(main)
}

func translate(t *testing.T, translator translations.Translator, chords string) string {
	session := translations.NewSession(translator, nil)
	return session.Translate(strokes.MustNormalize(chords))
}

func TestTranslator(t *testing.T) {
	translator := NewTranslator(testDictionary(t), DefaultUndoLength)
	testCases := []struct {
		chords   string
		expected string
	}{
		{"KAT", "cat"},
		{"KAT/TKOG", "cat dog"},
		{"KAT/HROG", "catalog"},
		{"KAT/HROG/-S", "catalogs"},
		{"TKOG/-S", "dogs"},
		{"HROPBD/TKOPB", "London"},
		{"HROPBD", "HROPBD"},
		{"KAT/TP-PL/TKOG", "cat. Dog"},
		{"KAT/KW-BG/TKOG", "cat, dog"},
		{"KPA/TKOG", "Dog"},
		{"KAT/PW-FR/TKOG", "catdog"},
		{"STKPW", "STKPW"},
		{"-T", "-T"},
		{"KAT/*", ""},
		{"KAT/TKOG/*", "cat"},
		{"KAT/HROG/*", "cat"},
		{"KAT/HROG/*/*", ""},
		{"KAT/HROG/-S/*", "catalog"},
		{"KAT/HROG/-S/*/*", "cat"},
		{"*", ""},
		{"KAT/TP-PL/TKOG/*/HRAOEUBG", "cat. Like"},
	}
	for _, c := range testCases {
		if text := translate(t, translator, c.chords); text != c.expected {
			t.Fatalf("%s: got %q", c.chords, text)
		}
	}
}

func TestTranslatorEdits(t *testing.T) {
	translator := NewTranslator(testDictionary(t), DefaultUndoLength)
	seq := strokes.MustNormalize("KAT/HROG/*")

	edit := translator.Translate(seq[0])
	if len(edit.Deletes) != 0 || len(edit.Appends) != 1 || edit.Appends[0] != " cat" {
		t.Fatalf("got %+v", edit)
	}

	edit = translator.Translate(seq[1])
	if len(edit.Deletes) != 1 || edit.Deletes[0] != 4 {
		t.Fatalf("got %+v", edit)
	}
	if len(edit.Appends) != 1 || edit.Appends[0] != " catalog" {
		t.Fatalf("got %+v", edit)
	}

	edit = translator.Translate(seq[2])
	if len(edit.Deletes) != 1 || edit.Deletes[0] != 8 {
		t.Fatalf("got %+v", edit)
	}
	if len(edit.Appends) != 1 || edit.Appends[0] != " cat" {
		t.Fatalf("got %+v", edit)
	}

	translator.Reset()
	if edit := translator.Translate(seq[2]); !edit.IsEmpty() {
		t.Fatalf("got %+v", edit)
	}
}

func TestTranslatorUndoLength(t *testing.T) {
	translator := NewTranslator(testDictionary(t), 2)
	if text := translate(t, translator, "KAT/TKOG/KAT/*/*/*"); text != "cat" {
		t.Fatalf("got %q", text)
	}
	if text := translate(t, translator, "KAT/TKOG/HROG"); text != "cat dog HROG" {
		t.Fatalf("got %q", text)
	}
	if translator := NewTranslator(testDictionary(t), 0); translator.undoLength != DefaultUndoLength {
		t.Fatalf("got %d", translator.undoLength)
	}
}

func TestTranslatorWindow(t *testing.T) {
	translator := NewTranslator(testDictionary(t), 1)
	// only one translation is kept, so KAT/HROG still combines
	if text := translate(t, translator, "KAT/HROG"); text != "catalog" {
		t.Fatalf("got %q", text)
	}
	if text := translate(t, translator, "TKOG/KAT/HROG"); text != "dog catalog" {
		t.Fatalf("got %q", text)
	}
}
