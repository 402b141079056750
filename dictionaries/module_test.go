package dictionaries

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/modes"
	"github.com/reusee/stenowiki/strokes"
)

func TestModule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/extra.yaml":
			io.WriteString(w, "catalog: [KAT/HROG]\ncat: [KAT]\n")
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.json")
	if err := os.WriteFile(mainPath, []byte(`{"KAT": "kat", "TKOG": "dog", "-S": "{^s}"}`), 0644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "stenowiki.cue")
	if err := os.WriteFile(configPath, []byte(`
dictionaries: ["`+server.URL+`/extra.yaml", "`+mainPath+`"]
undo_length: 3
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{configPath}, "")),
	).Call(func(
		paths Paths,
		undoLength UndoLength,
		getDictionary GetDictionary,
		newSession NewSession,
	) {
		if len(paths) != 2 {
			t.Fatalf("got %v", paths)
		}
		if undoLength != 3 {
			t.Fatalf("got %d", undoLength)
		}

		dict, err := getDictionary()
		if err != nil {
			t.Fatal(err)
		}
		if len(dict.Layers()) != 2 || dict.Layers()[1].Name != mainPath {
			t.Fatalf("got %v", dict.Layers())
		}

		session, err := newSession()
		if err != nil {
			t.Fatal(err)
		}
		if text := session.Translate(strokes.MustNormalize("KAT/HROG/-S/TKOG")); text != "catalogs dog" {
			t.Fatalf("got %q", text)
		}
		if seqs := session.ReverseLookup("cat"); len(seqs) != 1 || seqs[0].String() != "KAT" {
			t.Fatalf("got %v", seqs)
		}
	})
}

func TestModuleLoadError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "stenowiki.cue")
	if err := os.WriteFile(configPath, []byte(`
dictionaries: ["`+server.URL+`/missing.json"]
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{configPath}, "")),
	).Call(func(
		newSession NewSession,
		undoLength UndoLength,
	) {
		if undoLength != DefaultUndoLength {
			t.Fatalf("got %d", undoLength)
		}
		if _, err := newSession(); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestModuleWithoutDictionary(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		newSession NewSession,
	) {
		session, err := newSession()
		if err != nil {
			t.Fatal(err)
		}
		if text := session.Translate(strokes.MustNormalize("KAT/-T")); text != "KAT -T" {
			t.Fatalf("got %q", text)
		}
	})
}
