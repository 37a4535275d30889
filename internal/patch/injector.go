package patch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/logfields"
	"github.com/mode-7/moddocs/internal/markdown"
	"github.com/mode-7/moddocs/internal/render"
)

// anchorCell is the first cell of the props-table row that new rows are
// inserted before. Every reference page lists the render-prop row last.
const anchorCell = "children"

// Injector inserts missing prop rows into existing pages' props tables.
//
// Injection is idempotent: rows whose prop name already appears in the props
// table are skipped, so re-running against patched files is a no-op. Only the
// table region up to the anchor row is considered; the same prop names appear
// again in the page's Render Props table.
type Injector struct {
	DocsRoot string
	DryRun   bool
}

// Run processes all targets and returns the per-file report.
func (in Injector) Run(targets []catalog.InjectTarget) *Report {
	report := NewReport("inject")
	for _, target := range targets {
		status, detail, err := in.injectFile(target)
		report.Add(target.File, status, detail, err)
		logOutcome("inject", target.File, status, err)
	}
	return report.Finish()
}

func (in Injector) injectFile(target catalog.InjectTarget) (Status, string, error) {
	path := filepath.Join(in.DocsRoot, target.File)

	src, err := os.ReadFile(path) // #nosec G304 -- path is docs root + catalog filename
	if err != nil {
		return StatusFailed, "", fmt.Errorf("read: %w", err)
	}

	anchor, err := markdown.FindAnchorRow(src, anchorCell)
	if err != nil {
		return StatusFailed, "", err
	}

	var missing []catalog.Prop
	for _, p := range target.Props {
		if !markdown.HasRowBefore(src, p.Name, anchor) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return StatusSkipped, "all rows already present", nil
	}

	rows := render.TableRows(missing)
	out, err := markdown.Apply(src, []markdown.Splice{{Start: anchor, End: anchor, Text: []byte(rows)}})
	if err != nil {
		return StatusFailed, "", err
	}

	detail := fmt.Sprintf("inserted %d of %d rows", len(missing), len(target.Props))
	if in.DryRun {
		return StatusPatched, detail + " (dry-run)", nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil { // #nosec G306 -- docs are world-readable
		return StatusFailed, "", fmt.Errorf("write: %w", err)
	}
	return StatusPatched, detail, nil
}

func logOutcome(command, file string, status Status, err error) {
	if err != nil {
		slog.Error("File failed", logfields.Command(command), logfields.File(file), logfields.Error(err))
		return
	}
	slog.Info("File processed", logfields.Command(command), logfields.File(file), logfields.Status(string(status)))
}
