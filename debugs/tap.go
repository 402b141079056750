package debugs

import (
	"context"
	"slices"

	"github.com/reusee/stenowiki/logs"
	"github.com/samber/lo"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// Tap starts an interactive starlark session over globals on stdin.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := lo.Keys(globals)
		slices.Sort(names)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Exec runs a starlark script over globals, print goes to the logger.
type Exec func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error)

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "print", "script", filename, "msg", msg)
			},
		}
		thread.SetLocal("context", ctx)
		return starlark.ExecFileOptions(fileOptions, thread, filename, src, toStringDict(globals))
	}
}
