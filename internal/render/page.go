package render

import (
	"strings"

	"github.com/mode-7/moddocs/internal/catalog"
)

type pageData struct {
	Component         string
	Label             string
	Description       string
	Ref               string
	PropsRows         string
	RenderPropsRows   string
	RenderPropNames   string
	UIControls        string
	StateDeclarations string
	ControlledProps   string
	StateControls     string
	LogStatements     string
	ImportantNotes    string
	RelatedComponents string
}

// Page renders a complete reference page for the component. The output is a
// pure function of the descriptor: identical descriptor in, byte-identical
// Markdown out.
func Page(comp catalog.Component) (string, error) {
	data := pageData{
		Component:         comp.Name,
		Label:             comp.Label,
		Description:       comp.Description,
		Ref:               strings.ToLower(comp.Name),
		PropsRows:         propsTableRows(comp.Props),
		RenderPropsRows:   renderPropsTableRows(comp.Props),
		RenderPropNames:   renderPropNames(comp.Props),
		UIControls:        uiControls(comp.Props),
		StateDeclarations: stateDeclarations(comp.Props),
		ControlledProps:   controlledProps(comp.Props),
		StateControls:     stateControls(comp.Props),
		LogStatements:     pageLogStatements(comp.Props),
		ImportantNotes:    strings.TrimRight(comp.Notes, "\n"),
		RelatedComponents: strings.Join(comp.Related, "\n"),
	}
	return execute("page.md.tmpl", data)
}
