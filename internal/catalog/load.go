package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

// Validate checks structural consistency of the catalog. All findings are
// reported, joined into a single error.
func (c *Catalog) Validate() error {
	var errs []error

	for i, comp := range c.Components {
		where := fmt.Sprintf("components[%d]", i)
		if comp.File == "" {
			errs = append(errs, fmt.Errorf("%s: file is required", where))
		}
		if comp.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if comp.Label == "" {
			errs = append(errs, fmt.Errorf("%s (%s): label is required", where, comp.Name))
		}
		if comp.Description == "" {
			errs = append(errs, fmt.Errorf("%s (%s): description is required", where, comp.Name))
		}
		errs = append(errs, validateProps(where, comp.Props)...)
	}

	for i, target := range c.Inject {
		where := fmt.Sprintf("inject[%d]", i)
		if target.File == "" {
			errs = append(errs, fmt.Errorf("%s: file is required", where))
		}
		if len(target.Props) == 0 {
			errs = append(errs, fmt.Errorf("%s (%s): at least one prop is required", where, target.File))
		}
		errs = append(errs, validateProps(where, target.Props)...)
	}

	for i, target := range c.Refs {
		where := fmt.Sprintf("refs[%d]", i)
		if target.File == "" {
			errs = append(errs, fmt.Errorf("%s: file is required", where))
		}
		if target.Component == "" {
			errs = append(errs, fmt.Errorf("%s (%s): component is required", where, target.File))
		}
		if len(target.Props) == 0 {
			errs = append(errs, fmt.Errorf("%s (%s): at least one prop is required", where, target.File))
		}
	}

	return errors.Join(errs...)
}

func validateProps(where string, props []Prop) []error {
	var errs []error
	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: prop name is required", where))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate prop %q", where, p.Name))
		}
		seen[p.Name] = true
		if p.Type == "" {
			errs = append(errs, fmt.Errorf("%s: prop %q has no type", where, p.Name))
		}
		if p.Description == "" {
			errs = append(errs, fmt.Errorf("%s: prop %q has no description", where, p.Name))
		}
	}
	return errs
}
