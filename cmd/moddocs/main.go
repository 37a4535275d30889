package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mode-7/moddocs/cmd/moddocs/commands"
	"github.com/mode-7/moddocs/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("moddocs"),
		kong.Description("Maintains the @mode-7/mod component reference pages from a declarative prop catalog."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("moddocs %s (commit %s, built %s)",
				version.Version, version.GitCommit, version.BuildTime),
		},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
