package commands

import (
	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/patch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	patchFlags
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	docsRoot := g.resolveDocsRoot(cfg)
	gen := patch.Generator{DocsRoot: docsRoot, DryRun: g.DryRun}
	rep := gen.Run(cat.Components)
	return completeRun(cfg, rep, g.patchFlags, docsRoot)
}
