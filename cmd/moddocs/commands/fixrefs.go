package commands

import (
	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/patch"
)

// FixRefsCmd implements the 'fix-refs' command.
type FixRefsCmd struct {
	patchFlags
}

func (f *FixRefsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	docsRoot := f.resolveDocsRoot(cfg)
	fixer := patch.RefsFixer{DocsRoot: docsRoot, DryRun: f.DryRun}
	rep := fixer.Run(cat.Refs)
	return completeRun(cfg, rep, f.patchFlags, docsRoot)
}
