package commands

import (
	"fmt"
	"path/filepath"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing files"`
	Output string `short:"o" name:"output" help:"Output directory for the generated files"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfgPath := root.Config
	catalogPath := "catalog.yaml"
	if i.Output != "" {
		cfgPath = filepath.Join(i.Output, "config.yaml")
		catalogPath = filepath.Join(i.Output, "catalog.yaml")
	}

	fmt.Printf("Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}
	fmt.Printf("Writing starter catalog to %s\n", catalogPath)
	if err := catalog.WriteStarter(catalogPath, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
