package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" help:"Maximum number of runs to show" default:"10"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	if cfg.History.Disabled {
		return fmt.Errorf("run history is disabled in the configuration")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %s  (%d files, took %s)\n",
			run.Started.Format("2006-01-02 15:04:05"),
			run.Command,
			run.RunID,
			len(run.Outcomes),
			run.Finished.Sub(run.Started).Round(time.Millisecond))
		for _, o := range run.Outcomes {
			if o.Error != "" {
				fmt.Printf("    %s: %s (%s)\n", o.File, o.Status, o.Error)
			} else {
				fmt.Printf("    %s: %s\n", o.File, o.Status)
			}
		}
	}
	return nil
}
