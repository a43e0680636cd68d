package accessor

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"goa.design/autoreg/codegen/ir"
	"goa.design/autoreg/codegen/model"
	"goa.design/goa/v3/codegen"
)

// File returns the file generated for f. The file only depends on f: files
// generated for distinct fields never share state and regenerating one leaves
// the others untouched.
func File(f model.Field) *codegen.File {
	data := ir.Build(f)
	sections := []*codegen.SectionTemplate{
		{
			Name:    "autoreg-header",
			Source:  accessorTemplates.Read(headerT),
			Data:    data,
			FuncMap: templateFuncMap(),
		},
		{
			Name:    "autoreg-accessor",
			Source:  accessorTemplates.Read(accessorT),
			Data:    data.Type,
			FuncMap: templateFuncMap(),
		},
	}
	return &codegen.File{Path: data.Path, SectionTemplates: sections}
}

// Render executes the sections of f in order and returns the gofmt-ed
// result.
func Render(f *codegen.File) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range f.SectionTemplates {
		tmpl, err := template.New(s.Name).Funcs(s.FuncMap).Parse(s.Source)
		if err != nil {
			return nil, fmt.Errorf("parse section %s of %s: %w", s.Name, f.Path, err)
		}
		if err := tmpl.Execute(&buf, s.Data); err != nil {
			return nil, fmt.Errorf("execute section %s of %s: %w", s.Name, f.Path, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Path, err)
	}
	return src, nil
}

// Generate returns the rendered content of the file generated for f.
func Generate(f model.Field) ([]byte, error) {
	return Render(File(f))
}
