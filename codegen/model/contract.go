package model

import (
	"errors"
	"fmt"

	"goa.design/autoreg/codegen/naming"
)

type (
	// Contract names the members through which generated setters reach the
	// child registry of the enclosing type.
	//
	// Registry is a field or a nullary method of the enclosing type whose
	// value exposes Contains(string) bool and Remove(string). Register is a
	// method of the enclosing type accepting the registry key and the new
	// value. Promoted fields and methods of embedded types qualify.
	Contract struct {
		Registry string `yaml:"registry" json:"registry"`
		Contains string `yaml:"contains" json:"contains"`
		Remove   string `yaml:"remove" json:"remove"`
		Register string `yaml:"register" json:"register"`
	}

	// Registry is a contract resolved against one enclosing type.
	Registry struct {
		// Selector is the expression appended to the receiver to reach
		// the registry, e.g. "Submodules()" or "children".
		Selector string `json:"selector"`
		Contains string `json:"contains"`
		Remove   string `json:"remove"`
		Register string `json:"register"`
	}

	// ContractError reports an enclosing type that does not satisfy the
	// registry contract.
	ContractError struct {
		// TypeName is the enclosing type.
		TypeName string
		// Member is the contract member that failed to resolve.
		Member string
		// Reason describes the mismatch.
		Reason string
	}
)

// DefaultContract matches registry.Module from the autoreg runtime.
var DefaultContract = Contract{
	Registry: "Submodules",
	Contains: "Contains",
	Remove:   "Remove",
	Register: "RegisterModule",
}

// Validate checks that every member of the contract is a valid identifier.
func (c Contract) Validate() error {
	var errs []error
	check := func(member, name string) {
		if !naming.IsIdentifier(name) {
			errs = append(errs, fmt.Errorf("contract %s: %q is not a valid identifier", member, name))
		}
	}
	check("registry", c.Registry)
	check("contains", c.Contains)
	check("remove", c.Remove)
	check("register", c.Register)
	return errors.Join(errs...)
}

// WithDefaults returns c with empty members replaced by DefaultContract's.
func (c Contract) WithDefaults() Contract {
	if c.Registry == "" {
		c.Registry = DefaultContract.Registry
	}
	if c.Contains == "" {
		c.Contains = DefaultContract.Contains
	}
	if c.Remove == "" {
		c.Remove = DefaultContract.Remove
	}
	if c.Register == "" {
		c.Register = DefaultContract.Register
	}
	return c
}

// Error implements error.
func (e *ContractError) Error() string {
	return fmt.Sprintf("type %s does not satisfy the registry contract: %s: %s", e.TypeName, e.Member, e.Reason)
}
