package patch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/render"
)

// Generator renders complete reference pages from component descriptors,
// unconditionally overwriting the target files.
type Generator struct {
	DocsRoot string
	DryRun   bool
}

// Run processes all components and returns the per-file report.
func (g Generator) Run(components []catalog.Component) *Report {
	report := NewReport("generate")
	for _, comp := range components {
		status, detail, err := g.generateFile(comp)
		report.Add(comp.File, status, detail, err)
		logOutcome("generate", comp.File, status, err)
	}
	return report.Finish()
}

func (g Generator) generateFile(comp catalog.Component) (Status, string, error) {
	content, err := render.Page(comp)
	if err != nil {
		return StatusFailed, "", err
	}

	detail := fmt.Sprintf("%d props", len(comp.Props))
	if g.DryRun {
		return StatusWritten, detail + " (dry-run)", nil
	}

	path := filepath.Join(g.DocsRoot, comp.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return StatusFailed, "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- docs are world-readable
		return StatusFailed, "", fmt.Errorf("write: %w", err)
	}
	return StatusWritten, detail, nil
}
