package sounds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/modes"
)

func TestModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stenowiki.cue")
	if err := os.WriteFile(path, []byte(`
phonemes: [
	{mnemonic: "com", chord: "K"},
	{mnemonic: "-ly", chord: "-L"},
]
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, "")),
	).Call(func(
		table *Table,
		parse ParseAnnotation,
		guess GuessAnnotation,
	) {
		if table.Len() != Default.Len()+2 {
			t.Fatalf("got %d", table.Len())
		}
		seq := parse("com p l ee -ly -t")
		if junk := seq.Junk(); len(junk) > 0 {
			t.Fatalf("got %v", junk)
		}
		if str := seq.Stroke(); str != "KPHRAOELT" {
			t.Fatalf("got %s", str)
		}
		if str := guess("KPHRAOELT").String(); str != "x l ee -l -t" {
			t.Fatalf("got %s", str)
		}
	})
}

func TestModuleWithoutConfig(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		table *Table,
	) {
		if table != Default {
			t.Fatal()
		}
	})
}

func TestModuleInvalidPhoneme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stenowiki.cue")
	if err := os.WriteFile(path, []byte(`
phonemes: [
	{mnemonic: "qq", chord: ""},
]
`), 0644); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, "")),
	).Call(func(
		table *Table,
	) {
		t.Fatalf("got %d entries", table.Len())
	})
}
