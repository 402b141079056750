package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/debugs"
	"github.com/reusee/stenowiki/dictionaries"
	"github.com/reusee/stenowiki/logs"
	"github.com/reusee/stenowiki/sounds"
	"github.com/reusee/stenowiki/stenoconfigs"
)

type Module struct {
	dscope.Module
	Configs      stenoconfigs.Module
	Logs         logs.Module
	Sounds       sounds.Module
	Dictionaries dictionaries.Module
	Debugs       debugs.Module
}
