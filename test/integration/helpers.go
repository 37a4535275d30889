package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mode-7/moddocs/internal/patch"
)

// writeDoc writes a page under the docs root, creating parent directories.
func writeDoc(t *testing.T, docsRoot, name, content string) {
	t.Helper()
	path := filepath.Join(docsRoot, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// readDoc reads a page under the docs root.
func readDoc(t *testing.T, docsRoot, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(docsRoot, name))
	require.NoError(t, err)
	return string(data)
}

// requireAllStatus asserts every outcome in the report has the given status.
func requireAllStatus(t *testing.T, rep *patch.Report, want patch.Status) {
	t.Helper()
	require.NotEmpty(t, rep.Outcomes)
	for _, o := range rep.Outcomes {
		require.Equalf(t, want, o.Status, "file %s: %s", o.File, o.Error)
	}
}

// legacyPage is a hand-maintained page shape from before the catalog existed:
// a props table missing some rows and an outdated imperative-refs section.
func legacyPage(component string) string {
	return "# " + component + "\n\n" +
		"A processor.\n\n" +
		"## Props\n\n" +
		"| Prop | Type | Default | Description |\n" +
		"|------|------|---------|-------------|\n" +
		"| `input` | `ModStreamRef` | required | Ref to the input stream |\n" +
		"| `output` | `ModStreamRef` | required | Ref to the output stream |\n" +
		"| `children` | `ReactNode` | `-` | Optional children |\n\n" +
		"## Usage\n\n" +
		"### Basic Usage\n\n" +
		"Some example.\n\n" +
		"### Imperative Refs\n\n" +
		"Old text describing setters that no longer exist.\n\n" +
		"```tsx\n" +
		"ref.current.setWet(0.5);\n" +
		"```\n\n" +
		"## Related\n\n" +
		"- Nothing yet\n"
}
