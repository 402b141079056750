package stenoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/stenowiki/cmds"
	"github.com/reusee/stenowiki/configs"
)

//go:embed schema.cue
var Schema string

var configFlag = cmds.Collect[string]("-config")

var filenames = []string{
	"stenowiki.cue",
	".stenowiki.cue",
}

// Paths lists config files in precedence order: flags, working directory, user config dir, /etc.
type Paths []string

func (Module) Paths() Paths {
	return findPaths(*configFlag, os.Getwd, os.UserConfigDir, "/etc")
}

func findPaths(
	explicit []string,
	getWorkingDir func() (string, error),
	getConfigDir func() (string, error),
	systemDir string,
) (paths Paths) {
	paths = append(paths, explicit...)

	search := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	if dir, err := getWorkingDir(); err == nil {
		search(dir)
	}

	// user config dir
	if dir, err := getConfigDir(); err == nil {
		search(dir)
	}

	// system wide dir
	if systemDir != "" {
		search(systemDir)
	}

	return
}

func (Module) ConfigsLoader(
	paths Paths,
) configs.Loader {
	return configs.NewLoader(paths, Schema)
}
