package logs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
