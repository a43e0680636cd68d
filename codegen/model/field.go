package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"goa.design/autoreg/codegen/naming"
)

// Field describes one marked struct field. Values are built by Extract and
// must not be modified afterwards; slices are owned by the Field.
type Field struct {
	// Namespace is the name of the declaring package.
	Namespace string `json:"namespace"`
	// PkgPath is the import path of the declaring package.
	PkgPath string `json:"pkg_path"`
	// Dir is the directory the generated file is written to.
	Dir string `json:"dir"`
	// TypeName is the simple name of the enclosing struct type.
	TypeName string `json:"type_name"`
	// TypeParams lists the type parameter names of the enclosing type.
	TypeParams []string `json:"type_params,omitempty"`
	// Receiver is the receiver name of the generated methods.
	Receiver string `json:"receiver"`
	// FieldName is the field name verbatim.
	FieldName string `json:"field_name"`
	// FieldType is the field type as rendered in the generated file.
	FieldType string `json:"field_type"`
	// Imports lists the imports FieldType requires, sorted by path.
	Imports []Import `json:"imports,omitempty"`
	// AccessorName is FieldName with its first rune upper-cased.
	AccessorName string `json:"accessor_name"`
	// SetterName is the name of the generated setter.
	SetterName string `json:"setter_name"`
	// Registry is the registry contract resolved on the enclosing type.
	Registry Registry `json:"registry"`
	// BuildConstraint is the //go:build expression of the declaring file,
	// carried over to the generated file.
	BuildConstraint string `json:"build_constraint,omitempty"`
}

// Extract builds the Field model of decl. It returns a *Diagnostic when no
// accessor can be generated for the field. Extract only reads decl so models
// of distinct fields are computed independently.
func Extract(decl Declaration, contract Contract) (Field, error) {
	typeName, fieldName := decl.TypeName(), decl.FieldName()
	key := naming.Key(typeName, fieldName)
	diag := func(kind DiagnosticKind, err error, format string, args ...any) error {
		return &Diagnostic{Pos: decl.Pos(), Key: key, Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
	}
	if !naming.IsIdentifier(fieldName) {
		return Field{}, diag(Unsupported, nil, "field name %q cannot host an accessor", fieldName)
	}
	if !naming.IsIdentifier(typeName) {
		return Field{}, diag(Unsupported, nil, "field %s is not declared by a named struct type", fieldName)
	}
	if file := naming.FileName(key); !naming.IsBuildable(file) {
		return Field{}, diag(Unsupported, nil, "the go command ignores %s, rename type %s", file, typeName)
	}

	accessor := naming.AccessorName(fieldName)
	if accessor == fieldName {
		return Field{}, diag(AccessorCollision, nil,
			"accessor %s.%s collides with field %s; a field and a method cannot share a name, start the field name with a lower-case letter",
			typeName, accessor, fieldName)
	}
	if decl.Declares(accessor) {
		return Field{}, diag(GetterCollision, nil, "%s already declares %s", typeName, accessor)
	}
	setter := naming.SetterName(accessor)
	if decl.Declares(setter) {
		return Field{}, diag(SetterCollision, nil, "%s already declares %s", typeName, setter)
	}

	reg, err := decl.Registry(contract)
	if err != nil {
		return Field{}, diag(ContractMismatch, err, "%v", err)
	}

	fieldType, imports := decl.FieldType()
	if fieldType == "" {
		return Field{}, diag(Unsupported, nil, "type of field %s.%s cannot be resolved", typeName, fieldName)
	}
	imports = slices.Clone(imports)
	slices.SortFunc(imports, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})

	receiver := decl.Receiver()
	if !naming.IsIdentifier(receiver) {
		receiver = naming.ReceiverName(typeName)
	}

	return Field{
		Namespace:    decl.Namespace(),
		PkgPath:      decl.PkgPath(),
		Dir:          decl.Dir(),
		TypeName:     typeName,
		TypeParams:   slices.Clone(decl.TypeParams()),
		Receiver:     receiver,
		FieldName:    fieldName,
		FieldType:    fieldType,
		Imports:      imports,
		AccessorName: accessor,
		SetterName:   setter,
		Registry:     reg,

		BuildConstraint: decl.BuildConstraint(),
	}, nil
}

// Key returns the identity of the output unit generated for f.
func (f Field) Key() string {
	return naming.Key(f.TypeName, f.FieldName)
}

// Fingerprint returns a stable digest of every attribute of f. Two fields
// with the same fingerprint render to the same output.
func (f Field) Fingerprint() string {
	b, err := json.Marshal(f)
	if err != nil {
		// Field only holds strings and slices of strings.
		panic(err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
