package dictionaries

import (
	"context"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/cmds"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/logs"
	"github.com/reusee/stenowiki/nets"
	"github.com/reusee/stenowiki/syncs"
	"github.com/reusee/stenowiki/translations"
	"github.com/reusee/stenowiki/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Nets    nets.Module
}

var (
	dictFlag       = cmds.Collect[string]("-dict")
	undoLengthFlag = cmds.Var[int]("-undo-length")
)

const maxConcurrentLoads = 4

// Paths lists dictionary locations, highest priority first.
type Paths []string

func (Module) Paths(
	loader configs.Loader,
) (ret Paths) {
	ret = append(ret, *dictFlag...)
	for paths := range configs.All[[]string](loader, "dictionaries") {
		ret = append(ret, paths...)
	}
	return
}

type UndoLength int

func (Module) UndoLength(
	loader configs.Loader,
) UndoLength {
	return vars.FirstNonZero(
		UndoLength(*undoLengthFlag),
		configs.First[UndoLength](loader, "undo_length"),
		DefaultUndoLength,
	)
}

type GetDictionary func() (*Dictionary, error)

func (Module) GetDictionary(
	paths Paths,
	load Load,
	logger logs.Logger,
) GetDictionary {
	return sync.OnceValues(func() (*Dictionary, error) {
		ctx := context.Background()
		layers := make([]*Layer, len(paths))
		var fns []func() error
		for i, path := range paths {
			fns = append(fns, func() (err error) {
				layers[i], err = load(ctx, path)
				return
			})
		}
		if err := syncs.Go(ctx, maxConcurrentLoads, fns...); err != nil {
			return nil, err
		}
		dict := NewDictionary(layers...)
		if len(paths) == 0 {
			logger.Warn("no dictionary configured")
		} else {
			logger.Info("dictionaries", "layers", len(layers), "entries", dict.Len())
		}
		return dict, nil
	})
}

type NewSession func() (*translations.Session, error)

func (Module) NewSession(
	getDictionary GetDictionary,
	undoLength UndoLength,
) NewSession {
	return func() (*translations.Session, error) {
		dict, err := getDictionary()
		if err != nil {
			return nil, err
		}
		return translations.NewSession(
			NewTranslator(dict, int(undoLength)),
			dict,
		), nil
	}
}
