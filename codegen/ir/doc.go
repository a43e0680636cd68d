// Package ir provides the typed intermediate representation rendered by the
// accessor templates.
//
// The IR is built from one model.Field and mirrors the shape of the generated
// file (package, enclosing type, accessors). Every naming decision, including
// receiver and parameter names and import aliases, is made while building the
// IR so templates only concern themselves with layout.
package ir
