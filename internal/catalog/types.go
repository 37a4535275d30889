// Package catalog defines the declarative component catalog that drives all
// documentation maintenance: which pages exist, which props they document, and
// which imperative-refs sections to regenerate.
package catalog

// Prop describes a single configurable input of a component.
type Prop struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description"`
	// RenderDescription is the wording used in the render-props table; falls
	// back to Description when empty.
	RenderDescription string `yaml:"render_description,omitempty"`
}

// DefaultOrDash returns the default value, or "-" when the prop has none.
func (p Prop) DefaultOrDash() string {
	if p.Default == "" {
		return "-"
	}
	return p.Default
}

// RenderDesc returns the render-props table description for the prop.
func (p Prop) RenderDesc() string {
	if p.RenderDescription != "" {
		return p.RenderDescription
	}
	return p.Description
}

// Component describes one documented component and its reference page.
type Component struct {
	// File is the page filename relative to the docs root (e.g. "chorus.md").
	File string `yaml:"file"`
	// Name is the exported component name (e.g. "Chorus").
	Name string `yaml:"name"`
	// Label is the lowercase metadata label (e.g. "chorus").
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Props       []Prop   `yaml:"props"`
	Notes       string   `yaml:"notes,omitempty"`
	Related     []string `yaml:"related,omitempty"`
}

// InjectTarget names a page and the prop rows to insert into its props table.
type InjectTarget struct {
	File  string `yaml:"file"`
	Props []Prop `yaml:"props"`
}

// RefsTarget names a page whose imperative-refs section is regenerated for the
// given component and prop subset.
type RefsTarget struct {
	File      string   `yaml:"file"`
	Component string   `yaml:"component"`
	Props     []string `yaml:"props"`
}

// Catalog is the root of the catalog file.
type Catalog struct {
	Components []Component    `yaml:"components,omitempty"`
	Inject     []InjectTarget `yaml:"inject,omitempty"`
	Refs       []RefsTarget   `yaml:"refs,omitempty"`
}
