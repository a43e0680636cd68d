package testhelpers

import (
	"go/token"

	"goa.design/autoreg/codegen/model"
)

// Decl is a hand-built model.Declaration.
type Decl struct {
	Position    token.Position
	Pkg         string
	Path        string
	Directory   string
	Type        string
	Params      []string
	Field       string
	Expr        string
	Imports     []model.Import
	Recv        string
	Constraint  string
	Declared    map[string]bool
	Reg         model.Registry
	ContractErr error
}

// NewDecl returns a declaration of field of type fieldType in the struct
// typeName of package pkg. The enclosing type satisfies the default registry
// contract through an embedded registry.Module.
func NewDecl(pkg, typeName, field, fieldType string) *Decl {
	return &Decl{
		Position:  token.Position{Filename: "/src/" + pkg + "/" + "types.go", Line: 7, Column: 2},
		Pkg:       pkg,
		Path:      "example.com/" + pkg,
		Directory: "/src/" + pkg,
		Type:      typeName,
		Field:     field,
		Expr:      fieldType,
		Reg: model.Registry{
			Selector: model.DefaultContract.Registry + "()",
			Contains: model.DefaultContract.Contains,
			Remove:   model.DefaultContract.Remove,
			Register: model.DefaultContract.Register,
		},
	}
}

func (d *Decl) Pos() token.Position                 { return d.Position }
func (d *Decl) Namespace() string                   { return d.Pkg }
func (d *Decl) PkgPath() string                     { return d.Path }
func (d *Decl) Dir() string                         { return d.Directory }
func (d *Decl) TypeName() string                    { return d.Type }
func (d *Decl) TypeParams() []string                { return d.Params }
func (d *Decl) FieldName() string                   { return d.Field }
func (d *Decl) FieldType() (string, []model.Import) { return d.Expr, d.Imports }
func (d *Decl) Receiver() string                    { return d.Recv }
func (d *Decl) BuildConstraint() string             { return d.Constraint }
func (d *Decl) Declares(name string) bool           { return d.Declared[name] }

func (d *Decl) Registry(model.Contract) (model.Registry, error) {
	if d.ContractErr != nil {
		return model.Registry{}, d.ContractErr
	}
	return d.Reg, nil
}
