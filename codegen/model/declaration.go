package model

import "go/token"

type (
	// Declaration is the host view of one marked struct field. The discovery
	// stage implements it on top of go/types; tests implement it by hand.
	Declaration interface {
		// Pos returns the position of the field declaration.
		Pos() token.Position
		// Namespace returns the name of the declaring package.
		Namespace() string
		// PkgPath returns the import path of the declaring package.
		PkgPath() string
		// Dir returns the directory holding the declaring package sources.
		Dir() string
		// TypeName returns the simple name of the enclosing struct type.
		TypeName() string
		// TypeParams returns the names of the enclosing type's type
		// parameters in declaration order.
		TypeParams() []string
		// FieldName returns the field name verbatim.
		FieldName() string
		// FieldType returns the field type rendered as it must appear in
		// a file of the declaring package together with the imports the
		// rendering requires.
		FieldType() (string, []Import)
		// Receiver returns the receiver name used by the existing methods
		// of the enclosing type, if any.
		Receiver() string
		// BuildConstraint returns the build constraint of the declaring
		// file as a //go:build expression, including the GOOS and GOARCH
		// implied by its name, or "" when the file is always built.
		BuildConstraint() string
		// Declares reports whether the enclosing type already has a field
		// or a method with the given name, ignoring generated files.
		Declares(name string) bool
		// Registry resolves the registry contract against the enclosing
		// type.
		Registry(Contract) (Registry, error)
	}

	// Import is an import required by a rendered field type.
	Import struct {
		// Name is the identifier qualifying the package in the rendered
		// type: the package name, or an alias when two imported packages
		// share a name.
		Name string `json:"name"`
		// Path is the import path.
		Path string `json:"path"`
	}
)
