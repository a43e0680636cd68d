package ir

import (
	"path"
	"path/filepath"

	"goa.design/autoreg/codegen/model"
	"goa.design/autoreg/codegen/naming"
	"goa.design/goa/v3/codegen"
)

// Build constructs the IR of the file generated for f. Build only reads f so
// the result is identical for identical models.
func Build(f model.Field) *File {
	// Names visible in the method bodies: imported packages and type
	// parameters. Receiver and parameter must not shadow them.
	scope := codegen.NewNameScope()
	imports := make([]*codegen.ImportSpec, 0, len(f.Imports))
	for _, imp := range f.Imports {
		scope.Unique(imp.Name)
		spec := &codegen.ImportSpec{Path: imp.Path}
		if imp.Name != path.Base(imp.Path) {
			spec.Name = imp.Name
		}
		imports = append(imports, spec)
	}
	for _, tp := range f.TypeParams {
		scope.Unique(tp)
	}
	recv := scope.Unique(f.Receiver)
	param := scope.Unique("v")

	key := f.Key()
	return &File{
		Key:     key,
		Path:    filepath.Join(f.Dir, naming.FileName(key)),
		Package: f.Namespace,
		Imports: imports,

		BuildConstraint: f.BuildConstraint,
		Type: &Type{
			Name:       f.TypeName,
			TypeParams: f.TypeParams,
			Receiver:   recv,
			Accessors: []*Accessor{{
				Getter:    f.AccessorName,
				Setter:    f.SetterName,
				Field:     f.FieldName,
				FieldType: f.FieldType,
				Param:     param,
				Key:       f.FieldName,
				Registry:  f.Registry.Selector,
				Contains:  f.Registry.Contains,
				Remove:    f.Registry.Remove,
				Register:  f.Registry.Register,
			}},
		},
	}
}
