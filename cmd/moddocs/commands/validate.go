package commands

import (
	"fmt"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Catalog string `help:"Catalog file path (overrides config)"`
}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	path := cfg.Catalog
	if v.Catalog != "" {
		path = v.Catalog
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d components, %d inject targets, %d refs targets\n",
		path, len(cat.Components), len(cat.Inject), len(cat.Refs))
	fmt.Println("catalog is valid")
	return nil
}
