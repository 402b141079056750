package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("loaded", "entries", 42)
		if !strings.Contains(buf.String(), "entries=42") {
			t.Fatalf("got %s", buf.String())
		}
		buf.Reset()
		logger.With("dict", "main.json").InfoContext(
			context.WithValue(context.Background(), SpanKey, Span("foo")),
			"loaded",
		)
		if !strings.Contains(buf.String(), "logs.span=foo") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "dict=main.json") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestLevelName(t *testing.T) {
	testCases := []struct {
		name  LevelName
		level slog.Level
		ok    bool
	}{
		{"", slog.LevelInfo, true},
		{"debug", slog.LevelDebug, true},
		{"WARN", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", 0, false},
	}
	for _, c := range testCases {
		l, err := c.name.Level()
		if c.ok != (err == nil) {
			t.Fatalf("%s: got %v", c.name, err)
		}
		if c.ok && l != c.level {
			t.Fatalf("%s: got %v", c.name, l)
		}
	}
}

func TestLevelFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stenowiki.cue")
	if err := os.WriteFile(path, []byte(`log_level: "warn"`), 0644); err != nil {
		t.Fatal(err)
	}
	defer level.Set(slog.LevelInfo)

	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, "")),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		logger.Warn("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")
	if got := WrapSpan(context.Background(), err); got != err {
		t.Fatalf("got %v", got)
	}
	if got := WrapSpan(context.Background(), nil); got != nil {
		t.Fatalf("got %v", got)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	got := WrapSpan(ctx, err)
	if !errors.Is(got, err) {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(got.Error(), "span: bar") {
		t.Fatalf("got %v", got)
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %s", key)
	}
}
