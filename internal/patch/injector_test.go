package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mode-7/moddocs/internal/catalog"
)

const reverbPage = `# Reverb

## Props

| Prop | Type | Default | Description |
|------|------|---------|-------------|
| ` + "`input`" + ` | ` + "`ModStreamRef`" + ` | Required | Audio signal to process |
| ` + "`children`" + ` | ` + "`function`" + ` | - | Render prop function receiving control props |

## Usage
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func wetProp() catalog.Prop {
	return catalog.Prop{Name: "wet", Type: "number", Default: "0.3", Description: "Wet/dry mix 0-1 (controlled or initial value)"}
}

func TestInjector_InsertsBeforeChildrenRow(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "reverb.md", reverbPage)

	report := Injector{DocsRoot: dir}.Run([]catalog.InjectTarget{
		{File: "reverb.md", Props: []catalog.Prop{wetProp()}},
	})

	require.False(t, report.HasFailures())
	require.Equal(t, StatusPatched, report.Outcomes[0].Status)

	got := readDoc(t, path)
	require.Contains(t, got,
		"| `wet` | `number` | `0.3` | Wet/dry mix 0-1 (controlled or initial value) |\n"+
			"| `children` | `function` | - | Render prop function receiving control props |\n")

	// Everything but the inserted row is untouched.
	require.Contains(t, got, "| `input` | `ModStreamRef` | Required | Audio signal to process |")
	require.True(t, strings.HasSuffix(got, "## Usage\n"))
}

func TestInjector_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "reverb.md", reverbPage)
	targets := []catalog.InjectTarget{{File: "reverb.md", Props: []catalog.Prop{wetProp()}}}

	in := Injector{DocsRoot: dir}
	first := in.Run(targets)
	require.Equal(t, StatusPatched, first.Outcomes[0].Status)
	afterFirst := readDoc(t, path)

	second := in.Run(targets)
	require.Equal(t, StatusSkipped, second.Outcomes[0].Status)
	require.Equal(t, afterFirst, readDoc(t, path))
}

func TestInjector_InsertsWhenPropOnlyInRenderPropsTable(t *testing.T) {
	// Legacy pages documented render props before the controlled props
	// existed; the same prop name below the props table must not suppress
	// the insertion.
	page := `# Reverb

## Props

| Prop | Type | Default | Description |
|------|------|---------|-------------|
| ` + "`input`" + ` | ` + "`ModStreamRef`" + ` | Required | Audio signal to process |
| ` + "`children`" + ` | ` + "`function`" + ` | - | Render prop function receiving control props |

## Render Props

| Prop | Type | Description |
|------|------|-------------|
| ` + "`wet`" + ` | ` + "`number`" + ` | Current wet/dry mix |
| ` + "`setWet`" + ` | ` + "`(value: number) => void`" + ` | Update the wet |
`
	dir := t.TempDir()
	path := writeDoc(t, dir, "reverb.md", page)

	report := Injector{DocsRoot: dir}.Run([]catalog.InjectTarget{
		{File: "reverb.md", Props: []catalog.Prop{wetProp()}},
	})

	require.False(t, report.HasFailures())
	require.Equal(t, StatusPatched, report.Outcomes[0].Status)

	got := readDoc(t, path)
	require.Contains(t, got,
		"| `wet` | `number` | `0.3` | Wet/dry mix 0-1 (controlled or initial value) |\n"+
			"| `children` | `function` | - | Render prop function receiving control props |\n")
	// The Render Props table is untouched.
	require.Contains(t, got, "| `wet` | `number` | Current wet/dry mix |")

	second := Injector{DocsRoot: dir}.Run([]catalog.InjectTarget{
		{File: "reverb.md", Props: []catalog.Prop{wetProp()}},
	})
	require.Equal(t, StatusSkipped, second.Outcomes[0].Status)
}

func TestInjector_InsertsOnlyMissingRows(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "reverb.md", reverbPage)

	in := Injector{DocsRoot: dir}
	in.Run([]catalog.InjectTarget{{File: "reverb.md", Props: []catalog.Prop{wetProp()}}})

	report := in.Run([]catalog.InjectTarget{{
		File: "reverb.md",
		Props: []catalog.Prop{
			wetProp(),
			{Name: "decay", Type: "number", Default: "2.0", Description: "Decay rate (controlled or initial value)"},
		},
	}})
	require.Equal(t, StatusPatched, report.Outcomes[0].Status)
	require.Equal(t, "inserted 1 of 2 rows", report.Outcomes[0].Detail)

	got := readDoc(t, path)
	require.Equal(t, 1, strings.Count(got, "| `wet` |"))
	require.Equal(t, 1, strings.Count(got, "| `decay` |"))
}

func TestInjector_MissingAnchorFails(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "broken.md", "# Broken\n\nNo table here.\n")

	report := Injector{DocsRoot: dir}.Run([]catalog.InjectTarget{
		{File: "broken.md", Props: []catalog.Prop{wetProp()}},
	})
	require.True(t, report.HasFailures())
	require.Contains(t, report.Outcomes[0].Error, "anchor row not found")
}

func TestInjector_MissingFileSkippedOthersProcessed(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "reverb.md", reverbPage)

	report := Injector{DocsRoot: dir}.Run([]catalog.InjectTarget{
		{File: "missing.md", Props: []catalog.Prop{wetProp()}},
		{File: "reverb.md", Props: []catalog.Prop{wetProp()}},
	})

	require.Len(t, report.Outcomes, 2)
	require.Equal(t, StatusFailed, report.Outcomes[0].Status)
	require.Equal(t, StatusPatched, report.Outcomes[1].Status)
	require.True(t, report.HasFailures())
}

func TestInjector_DryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "reverb.md", reverbPage)

	report := Injector{DocsRoot: dir, DryRun: true}.Run([]catalog.InjectTarget{
		{File: "reverb.md", Props: []catalog.Prop{wetProp()}},
	})
	require.Equal(t, StatusPatched, report.Outcomes[0].Status)
	require.Contains(t, report.Outcomes[0].Detail, "dry-run")
	require.Equal(t, reverbPage, readDoc(t, path))
}
