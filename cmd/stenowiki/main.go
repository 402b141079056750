package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/cmds"
	"github.com/reusee/stenowiki/modes"
	"github.com/reusee/stenowiki/stenoconfigs"
)

func main() {
	cmds.Execute(os.Args[1:])
	if len(actions) == 0 {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		paths stenoconfigs.Paths,
	) {
		e := newEnv(context.Background(), scope, os.Stdout)
		if len(paths) > 0 {
			e.logger.Debug("config files", "paths", paths)
		}
		for _, action := range actions {
			if err := action(e); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	})
}
