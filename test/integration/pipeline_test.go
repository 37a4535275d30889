package integration

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/patch"
)

// pipelineCatalog describes one generated page, one legacy page receiving
// injected rows, and refs fixes for both.
func pipelineCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Components: []catalog.Component{
			{
				File:        "chorus.md",
				Name:        "Chorus",
				Label:       "chorus",
				Description: "adds depth and thickness to audio",
				Props: []catalog.Prop{
					{Name: "rate", Type: "number", Default: "1.5", Description: "LFO rate in Hz (controlled or initial value)", RenderDescription: "Rate of the chorus modulation"},
					{Name: "wet", Type: "number", Default: "0.5", Description: "Wet/dry mix 0-1 (controlled or initial value)", RenderDescription: "Mix between dry and wet signal"},
				},
				Notes:   "### Rate\n\n- Typical range: 0.1 to 5 Hz",
				Related: []string{"- [Phaser](/api/processors/phaser) - Related modulation effect"},
			},
		},
		Inject: []catalog.InjectTarget{
			{
				File: "reverb.md",
				Props: []catalog.Prop{
					{Name: "wet", Type: "number", Default: "0.3", Description: "Wet/dry mix 0-1 (controlled or initial value)"},
					{Name: "onWetChange", Type: "(wet: number) => void", Description: "Callback when wet/dry mix changes"},
				},
			},
		},
		Refs: []catalog.RefsTarget{
			{File: "chorus.md", Component: "Chorus", Props: []string{"rate", "wet"}},
			{File: "reverb.md", Component: "Reverb", Props: []string{"wet"}},
		},
	}
}

func TestPipeline_GenerateInjectFixRefs(t *testing.T) {
	docsRoot := t.TempDir()
	cat := pipelineCatalog()
	require.NoError(t, cat.Validate())

	writeDoc(t, docsRoot, "reverb.md", legacyPage("Reverb"))

	// First pass: generate components, inject rows, normalize refs sections.
	gen := patch.Generator{DocsRoot: docsRoot}
	requireAllStatus(t, gen.Run(cat.Components), patch.StatusWritten)

	inj := patch.Injector{DocsRoot: docsRoot}
	requireAllStatus(t, inj.Run(cat.Inject), patch.StatusPatched)

	fix := patch.RefsFixer{DocsRoot: docsRoot}
	requireAllStatus(t, fix.Run(cat.Refs), patch.StatusPatched)

	chorus := readDoc(t, docsRoot, "chorus.md")
	require.Contains(t, chorus, "# Chorus")
	require.Contains(t, chorus, "| `rate` | `number` | `1.5` |")
	require.Contains(t, chorus, "| `onRateChange` |")
	require.Contains(t, chorus, "| `setWet` |")
	// fix-refs rewrote the generated example to the generic source shape
	require.Contains(t, chorus, "<SomeSource output={inputRef} />")
	require.NotContains(t, chorus, "<ToneGenerator output={toneOut} />")
	require.Contains(t, chorus, "## Important Notes")

	reverb := readDoc(t, docsRoot, "reverb.md")
	// injected rows precede the children row
	wetAt := strings.Index(reverb, "| `wet` |")
	childrenAt := strings.Index(reverb, "| `children` |")
	require.Greater(t, wetAt, 0)
	require.Less(t, wetAt, childrenAt)
	require.Contains(t, reverb, "| `onWetChange` | `(wet: number) => void` | `-` |")
	// old imperative-refs content is gone, replaced by getState guidance
	require.NotContains(t, reverb, "ref.current.setWet(0.5);")
	require.Contains(t, reverb, "reverbRef.current.getState();")
	require.Contains(t, reverb, "console.log('wet:', state.wet);")
	// the section after the replaced one survives intact
	require.Contains(t, reverb, "## Related\n\n- Nothing yet\n")

	// Second pass: everything is already in the desired state.
	chorusBefore := readDoc(t, docsRoot, "chorus.md")
	requireAllStatus(t, gen.Run(cat.Components), patch.StatusWritten)
	require.Equal(t, chorusBefore, readDoc(t, docsRoot, "chorus.md"))

	requireAllStatus(t, inj.Run(cat.Inject), patch.StatusSkipped)
	requireAllStatus(t, fix.Run(cat.Refs), patch.StatusSkipped)
}

func TestPipeline_StarterCatalog(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, catalog.WriteStarter(catPath, false))

	cat, err := catalog.Load(catPath)
	require.NoError(t, err)
	require.Len(t, cat.Components, 9)
	require.Len(t, cat.Inject, 6)
	require.Len(t, cat.Refs, 6)

	docsRoot := filepath.Join(dir, "docs")
	gen := patch.Generator{DocsRoot: docsRoot}
	requireAllStatus(t, gen.Run(cat.Components), patch.StatusWritten)

	for _, comp := range cat.Components {
		page := readDoc(t, docsRoot, comp.File)
		require.Contains(t, page, "# "+comp.Name)
		require.Contains(t, page, "| `label` | `string` | `'"+comp.Label+"'` |")
		require.Contains(t, page, "| `children` |")
		for _, p := range comp.Props {
			require.Contains(t, page, "| `"+p.Name+"` |")
		}
	}

	// AutoWah exercises the single-capital edge: Q stays Q.
	autowah := readDoc(t, docsRoot, "autowah.md")
	require.Contains(t, autowah, "| `onQChange` | `(Q: number) => void` |")
	require.Contains(t, autowah, "| `setQ` |")
}

func TestPipeline_PartialFailureKeepsGoing(t *testing.T) {
	docsRoot := t.TempDir()
	writeDoc(t, docsRoot, "present.md", legacyPage("Present"))

	inj := patch.Injector{DocsRoot: docsRoot}
	rep := inj.Run([]catalog.InjectTarget{
		{File: "absent.md", Props: []catalog.Prop{{Name: "gain", Type: "number", Description: "Gain"}}},
		{File: "present.md", Props: []catalog.Prop{{Name: "gain", Type: "number", Description: "Gain"}}},
	})

	require.True(t, rep.HasFailures())
	require.Equal(t, 1, rep.Count(patch.StatusFailed))
	require.Equal(t, 1, rep.Count(patch.StatusPatched))
	require.Contains(t, readDoc(t, docsRoot, "present.md"), "| `gain` |")
}
