package configs

import "github.com/reusee/dscope"

// Module carries no providers, the Loader comes from the program's config module.
type Module struct {
	dscope.Module
}
