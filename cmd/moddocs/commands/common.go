package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/gitops"
	"github.com/mode-7/moddocs/internal/history"
	"github.com/mode-7/moddocs/internal/logfields"
	"github.com/mode-7/moddocs/internal/patch"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Initialize a starter configuration and prop catalog"`
	Validate ValidateCmd `cmd:"" help:"Validate the prop catalog without touching any files"`
	Inject   InjectCmd   `cmd:"" help:"Inject missing prop rows into existing reference pages"`
	Generate GenerateCmd `cmd:"" help:"Generate full reference pages from the catalog"`
	FixRefs  FixRefsCmd  `cmd:"" name:"fix-refs" help:"Rewrite the imperative-refs section of reference pages"`
	History  HistoryCmd  `cmd:"" help:"Show recent patch runs"`
	Watch    WatchCmd    `cmd:"" help:"Watch the catalog and re-run patch commands on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// patchFlags are shared by the commands that modify files under the docs root.
type patchFlags struct {
	Docs   string `help:"Docs root directory (overrides config)"`
	DryRun bool   `help:"Report what would change without writing files"`
	Commit bool   `help:"Commit changed files to git after a successful run"`
}

func (f *patchFlags) resolveDocsRoot(cfg *config.Config) string {
	if f.Docs != "" {
		return f.Docs
	}
	return cfg.DocsRoot
}

// completeRun prints per-file results, persists the run and optionally commits
// the changed files. It returns an error when any file failed so the process
// exits non-zero.
func completeRun(cfg *config.Config, rep *patch.Report, flags patchFlags, docsRoot string) error {
	for _, o := range rep.Outcomes {
		mark := "✓"
		if o.Status == patch.StatusFailed {
			mark = "✗"
		}
		if o.Detail != "" {
			fmt.Printf("%s %s (%s: %s)\n", mark, o.File, o.Status, o.Detail)
		} else {
			fmt.Printf("%s %s (%s)\n", mark, o.File, o.Status)
		}
	}
	fmt.Println(rep.Summary())

	if !flags.DryRun && !cfg.History.Disabled {
		if err := recordRun(cfg, rep); err != nil {
			slog.Warn("failed to record run history", logfields.Error(err))
		}
	}

	if flags.Commit && !flags.DryRun {
		changed := rep.ChangedFiles()
		committer := gitops.Committer{
			AuthorName:  cfg.Git.AuthorName,
			AuthorEmail: cfg.Git.AuthorEmail,
		}
		msg := fmt.Sprintf("docs: %s (%s)", rep.Command, rep.RunID)
		hash, err := committer.Commit(docsRoot, changed, msg)
		if err != nil {
			return fmt.Errorf("commit changed files: %w", err)
		}
		if hash != "" {
			slog.Info("committed changed files", "commit", hash, logfields.Command(rep.Command))
		}
	}

	if rep.HasFailures() {
		return fmt.Errorf("%s: %d file(s) failed", rep.Command, rep.Count(patch.StatusFailed))
	}
	return nil
}

func recordRun(cfg *config.Config, rep *patch.Report) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(context.Background(), rep)
}
