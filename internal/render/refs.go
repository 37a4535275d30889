package render

import "strings"

type refsData struct {
	Component     string
	Ref           string
	LogStatements string
}

// RefsSection renders a standalone imperative-refs section for the component,
// logging each of the given props in order. The result ends with a single
// trailing newline.
func RefsSection(component string, props []string) (string, error) {
	return execute("refs.md.tmpl", refsData{
		Component:     component,
		Ref:           strings.ToLower(component),
		LogStatements: RefsLogStatements(props),
	})
}
