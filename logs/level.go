package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/stenowiki/cmds"
	"github.com/reusee/stenowiki/configs"
)

var (
	level         = new(slog.LevelVar)
	levelFromFlag bool
)

func setLevel(l slog.Level) {
	level.Set(l)
	levelFromFlag = true
}

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		setLevel(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		setLevel(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		setLevel(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		setLevel(slog.LevelError)
	}).Desc("set log level to error"))
}

// LevelName is the log_level config value, one of debug, info, warn or error.
type LevelName string

func (Module) LevelName(
	loader configs.Loader,
) LevelName {
	return configs.First[LevelName](loader, "log_level")
}

func (l LevelName) Level() (slog.Level, error) {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %s", string(l))
}

// Leveler is shared by every handler, command line flags take precedence over the config.
type Leveler slog.Leveler

func (Module) Leveler(
	name LevelName,
) Leveler {
	if !levelFromFlag && name != "" {
		l, err := name.Level()
		if err != nil {
			panic(err)
		}
		level.Set(l)
	}
	return level
}
