// Package render turns catalog descriptors into page content: complete
// reference pages, props-table rows, and imperative-refs sections.
//
// Templates use [[ ]] delimiters because the generated example code is full of
// JSX braces that would collide with the default template delimiters.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("render").Delims("[[", "]]").Option("missingkey=error").ParseFS(templateFS, "templates/*.md.tmpl"),
)

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
