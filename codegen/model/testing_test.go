package model_test

import (
	"go/token"

	"goa.design/autoreg/codegen/model"
)

// fakeDecl is a hand-built Declaration.
type fakeDecl struct {
	pkg         string
	typeName    string
	typeParams  []string
	field       string
	fieldType   string
	imports     []model.Import
	receiver    string
	constraint  string
	declared    map[string]bool
	registry    model.Registry
	contractErr error
}

func newFakeDecl(typeName, field, fieldType string) *fakeDecl {
	return &fakeDecl{
		pkg:       "n",
		typeName:  typeName,
		field:     field,
		fieldType: fieldType,
		registry: model.Registry{
			Selector: "Submodules()",
			Contains: "Contains",
			Remove:   "Remove",
			Register: "RegisterModule",
		},
	}
}

func (d *fakeDecl) Pos() token.Position {
	return token.Position{Filename: "container.go", Line: 7, Column: 2}
}
func (d *fakeDecl) Namespace() string    { return d.pkg }
func (d *fakeDecl) PkgPath() string      { return "example.com/" + d.pkg }
func (d *fakeDecl) Dir() string          { return "/src/" + d.pkg }
func (d *fakeDecl) TypeName() string     { return d.typeName }
func (d *fakeDecl) TypeParams() []string { return d.typeParams }
func (d *fakeDecl) FieldName() string    { return d.field }
func (d *fakeDecl) FieldType() (string, []model.Import) {
	return d.fieldType, d.imports
}
func (d *fakeDecl) Receiver() string          { return d.receiver }
func (d *fakeDecl) BuildConstraint() string   { return d.constraint }
func (d *fakeDecl) Declares(name string) bool { return d.declared[name] }
func (d *fakeDecl) Registry(model.Contract) (model.Registry, error) {
	if d.contractErr != nil {
		return model.Registry{}, d.contractErr
	}
	return d.registry, nil
}
