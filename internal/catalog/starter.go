package catalog

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed starter.yaml
var starterYAML []byte

// WriteStarter writes the example catalog seeded with the @mode-7/mod
// processor components. It refuses to overwrite an existing file unless force
// is set.
func WriteStarter(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("catalog file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, starterYAML, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
