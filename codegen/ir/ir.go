package ir

import "goa.design/goa/v3/codegen"

type (
	// File is the generator-facing representation of one generated file.
	File struct {
		// Key identifies the output unit, see naming.Key.
		Key string `json:"key"`
		// Path is the path of the generated file.
		Path string `json:"path"`
		// Package is the package clause of the generated file.
		Package string `json:"package"`
		// BuildConstraint is the //go:build expression of the file, if
		// any.
		BuildConstraint string `json:"build_constraint,omitempty"`
		// Imports lists the imports of the generated file sorted by path.
		Imports []*codegen.ImportSpec `json:"imports,omitempty"`
		// Type is the enclosing type the accessors are declared on.
		Type *Type `json:"type"`
	}

	// Type describes the enclosing struct type.
	Type struct {
		// Name is the simple type name.
		Name string `json:"name"`
		// TypeParams lists the type parameter names used in receivers.
		TypeParams []string `json:"type_params,omitempty"`
		// Receiver is the receiver name of the generated methods.
		Receiver string `json:"receiver"`
		// Accessors lists the accessors declared on the type.
		Accessors []*Accessor `json:"accessors"`
	}

	// Accessor describes a getter/setter pair wrapping one field.
	Accessor struct {
		// Getter is the name of the getter method.
		Getter string `json:"getter"`
		// Setter is the name of the setter method.
		Setter string `json:"setter"`
		// Field is the wrapped field name.
		Field string `json:"field"`
		// FieldType is the rendered field type.
		FieldType string `json:"field_type"`
		// Param is the setter parameter name.
		Param string `json:"param"`
		// Key is the registry key, the field name.
		Key string `json:"registry_key"`
		// Registry is the selector reaching the registry from the receiver.
		Registry string `json:"registry"`
		// Contains is the registry method testing for a key.
		Contains string `json:"contains"`
		// Remove is the registry method deleting a key.
		Remove string `json:"remove"`
		// Register is the enclosing type method registering a value.
		Register string `json:"register"`
	}
)
