package accessor

import (
	"embed"

	"goa.design/goa/v3/codegen/template"
)

const (
	headerT   = "header"
	accessorT = "accessor"
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

var accessorTemplates = &template.TemplateReader{FS: templateFS}

// Header is the first line of every generated file.
const Header = "// Code generated by autoreg. DO NOT EDIT."
