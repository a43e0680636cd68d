// Package model defines the Field model extracted for each marked struct field
// and the contracts the discovery and synthesis stages share.
//
// A Field is a derived, disposable description of one marked field. It is
// built by Extract from a Declaration, the narrow view the discovery stage
// exposes over the Go type checker, so synthesis can be exercised against
// hand-built declarations without loading any package.
package model
