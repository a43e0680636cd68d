package model

import (
	"fmt"
	"go/token"
)

type (
	// DiagnosticKind classifies per-field generation problems.
	DiagnosticKind string

	// Diagnostic reports a marked field for which no output is generated.
	// Diagnostics never abort generation for other fields.
	Diagnostic struct {
		// Pos is the position of the field declaration.
		Pos token.Position
		// Key is the output key of the field when known.
		Key string
		// Kind classifies the problem.
		Kind DiagnosticKind
		// Message describes the problem.
		Message string
		// Err is the underlying error if any, e.g. a *ContractError.
		Err error
	}
)

const (
	// AccessorCollision is reported when the derived accessor name equals
	// the field name. Go forbids a field and a method of the same name.
	AccessorCollision DiagnosticKind = "accessor-collision"
	// SetterCollision is reported when the setter name is already declared
	// on the enclosing type.
	SetterCollision DiagnosticKind = "setter-collision"
	// GetterCollision is reported when the accessor name is already
	// declared on the enclosing type by another field or method.
	GetterCollision DiagnosticKind = "getter-collision"
	// ContractMismatch is reported when the enclosing type does not satisfy
	// the registry contract.
	ContractMismatch DiagnosticKind = "contract-mismatch"
	// Unsupported is reported for marked fields that cannot host generated
	// methods: blank fields, fields of anonymous or function-local structs
	// and malformed declarations.
	Unsupported DiagnosticKind = "unsupported"
)

// Error implements error.
func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Unwrap returns the underlying error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}
