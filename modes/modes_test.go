package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModes(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if tt != nil {
			t.Fatal()
		}
	})

	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if tt != t {
			t.Fatal()
		}
	})
}
