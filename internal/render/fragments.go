package render

import (
	"fmt"
	"strings"

	"github.com/mode-7/moddocs/internal/catalog"
)

// TableRows renders plain props-table rows, one per prop, each terminated by a
// newline. Used by row injection, where callback rows are listed explicitly in
// the catalog rather than synthesized.
func TableRows(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "| `%s` | `%s` | `%s` | %s |\n", p.Name, p.Type, p.DefaultOrDash(), p.Description)
	}
	return b.String()
}

// propsTableRows renders the generated page's props table: each prop followed
// by its synthesized on-change callback row.
func propsTableRows(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "| `%s` | `%s` | `%s` | %s |\n", p.Name, p.Type, p.DefaultOrDash(), p.Description)
		fmt.Fprintf(&b, "| `%s` | `%s` | `-` | Callback when %s changes |\n", p.CallbackName(), p.CallbackType(), p.Name)
	}
	return b.String()
}

// renderPropsTableRows renders the render-props table: each prop followed by
// its synthesized setter row.
func renderPropsTableRows(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", p.Name, p.Type, p.RenderDesc())
		fmt.Fprintf(&b, "| `%s` | `%s` | Update the %s |\n", p.SetterName(), p.SetterType(), p.Name)
	}
	return b.String()
}

// renderPropNames joins the destructured names exposed to the render prop:
// "rate, setRate, wet, setWet".
func renderPropNames(props []catalog.Prop) string {
	names := make([]string, 0, len(props)*2)
	for _, p := range props {
		names = append(names, p.Name, p.SetterName())
	}
	return strings.Join(names, ", ")
}

// uiControls renders one labeled range input per numeric prop for the
// render-props example. Non-numeric props get no generic control.
func uiControls(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		if p.Type != "number" {
			continue
		}
		b.WriteString(rangeInput(p, "          "))
	}
	return b.String()
}

// stateDeclarations renders the useState declarations for the controlled-props
// example.
func stateDeclarations(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "  const [%s, %s] = useState(%s);\n", p.Name, p.SetterName(), p.Default)
	}
	return b.String()
}

// controlledProps renders the prop/callback wiring on the component element.
func controlledProps(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "        %s={%s}\n", p.Name, p.Name)
		fmt.Fprintf(&b, "        %s={%s}\n", p.CallbackName(), p.SetterName())
	}
	return b.String()
}

// stateControls renders one labeled range input per prop for the
// controlled-props example, blocks separated by blank lines.
func stateControls(props []catalog.Prop) string {
	blocks := make([]string, 0, len(props))
	for _, p := range props {
		blocks = append(blocks, rangeInput(p, "      "))
	}
	return strings.Join(blocks, "\n")
}

// pageLogStatements renders the getState logging lines for the page's
// imperative-refs example, one per prop.
func pageLogStatements(props []catalog.Prop) string {
	var b strings.Builder
	for _, p := range props {
		fmt.Fprintf(&b, "      console.log('%s:', state.%s);\n", p.Name, p.Name)
	}
	return b.String()
}

// RefsLogStatements renders the logging lines for a standalone imperative-refs
// section, joined for inline placement after the getState call.
func RefsLogStatements(names []string) string {
	stmts := make([]string, 0, len(names))
	for _, name := range names {
		stmts = append(stmts, fmt.Sprintf("console.log('%s:', state.%s);", name, name))
	}
	return strings.Join(stmts, "\n      ")
}

// rangeInput renders one labeled range-input block at the given indent.
func rangeInput(p catalog.Prop, indent string) string {
	display := catalog.Capitalize(p.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "%s<div>\n", indent)
	fmt.Fprintf(&b, "%s  <label>%s: {%s.toFixed(2)}</label>\n", indent, display, p.Name)
	fmt.Fprintf(&b, "%s  <input\n", indent)
	fmt.Fprintf(&b, "%s    type=\"range\"\n", indent)
	fmt.Fprintf(&b, "%s    min=\"0\"\n", indent)
	fmt.Fprintf(&b, "%s    max=\"1\"\n", indent)
	fmt.Fprintf(&b, "%s    step=\"0.01\"\n", indent)
	fmt.Fprintf(&b, "%s    value={%s}\n", indent, p.Name)
	fmt.Fprintf(&b, "%s    onChange={(e) => %s(Number(e.target.value))}\n", indent, p.SetterName())
	fmt.Fprintf(&b, "%s  />\n", indent)
	fmt.Fprintf(&b, "%s</div>\n", indent)
	return b.String()
}
