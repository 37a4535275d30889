package patch

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/logfields"
	"github.com/mode-7/moddocs/internal/markdown"
	"github.com/mode-7/moddocs/internal/render"
)

const (
	refsHeading      = "Imperative Refs"
	refsHeadingLevel = 3
	// Sections end at the next chapter heading of the page.
	refsBoundLevel = 2
)

// RefsFixer regenerates the imperative-refs section of existing pages,
// replacing everything from the section heading up to the next chapter
// heading (or end of file). Content outside that span is left byte-for-byte
// unchanged.
type RefsFixer struct {
	DocsRoot string
	DryRun   bool
}

// Run processes all targets and returns the per-file report.
func (f RefsFixer) Run(targets []catalog.RefsTarget) *Report {
	report := NewReport("fix-refs")
	for _, target := range targets {
		status, detail, err := f.fixFile(target)
		report.Add(target.File, status, detail, err)
		logOutcome("fix-refs", target.File, status, err)
	}
	return report.Finish()
}

func (f RefsFixer) fixFile(target catalog.RefsTarget) (Status, string, error) {
	path := filepath.Join(f.DocsRoot, target.File)

	src, err := os.ReadFile(path) // #nosec G304 -- path is docs root + catalog filename
	if err != nil {
		return StatusFailed, "", fmt.Errorf("read: %w", err)
	}

	sec, err := markdown.FindSection(src, refsHeadingLevel, refsHeading, refsBoundLevel)
	if err != nil {
		return StatusFailed, "", err
	}

	section, err := render.RefsSection(target.Component, target.Props)
	if err != nil {
		return StatusFailed, "", err
	}
	replacement := []byte(section)
	if sec.End < len(src) {
		// Keep the blank line separating the section from the next heading.
		replacement = append(replacement, '\n')
	}

	if bytes.Equal(src[sec.Start:sec.End], replacement) {
		return StatusSkipped, "section already up to date", nil
	}

	out, err := markdown.Apply(src, []markdown.Splice{{Start: sec.Start, End: sec.End, Text: replacement}})
	if err != nil {
		return StatusFailed, "", err
	}

	slog.Debug("Section regenerated", logfields.File(target.File),
		logfields.Component(target.Component))

	detail := fmt.Sprintf("replaced section for %s", target.Component)
	if f.DryRun {
		return StatusPatched, detail + " (dry-run)", nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil { // #nosec G306 -- docs are world-readable
		return StatusFailed, "", fmt.Errorf("write: %w", err)
	}
	return StatusPatched, detail, nil
}
