package commands

import (
	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/patch"
)

// InjectCmd implements the 'inject' command.
type InjectCmd struct {
	patchFlags
}

func (i *InjectCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	docsRoot := i.resolveDocsRoot(cfg)
	injector := patch.Injector{DocsRoot: docsRoot, DryRun: i.DryRun}
	rep := injector.Run(cat.Inject)
	return completeRun(cfg, rep, i.patchFlags, docsRoot)
}
