package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
