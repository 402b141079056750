package main

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/debugs"
	"github.com/reusee/stenowiki/dictionaries"
	"github.com/reusee/stenowiki/logs"
	"github.com/reusee/stenowiki/sounds"
)

type env struct {
	ctx        context.Context
	out        io.Writer
	logger     logs.Logger
	table      *sounds.Table
	parse      sounds.ParseAnnotation
	guess      sounds.GuessAnnotation
	newSession dictionaries.NewSession
	tap        debugs.Tap
}

func newEnv(ctx context.Context, scope dscope.Scope, out io.Writer) (ret *env) {
	scope.Call(func(
		logger logs.Logger,
		table *sounds.Table,
		parse sounds.ParseAnnotation,
		guess sounds.GuessAnnotation,
		newSession dictionaries.NewSession,
		tap debugs.Tap,
	) {
		ret = &env{
			ctx:        ctx,
			out:        out,
			logger:     logger,
			table:      table,
			parse:      parse,
			guess:      guess,
			newSession: newSession,
			tap:        tap,
		}
	})
	return
}
