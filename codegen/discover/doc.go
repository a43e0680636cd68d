// Package discover implements the discovery stage of autoreg. It loads Go
// packages with golang.org/x/tools/go/packages, finds the struct fields
// carrying the annotation.Tag marker and exposes each of them as a
// model.Declaration backed by the type checker.
//
// Files previously written by autoreg are skipped when looking for marked
// fields and ignored when checking for name collisions, so regenerating a
// package yields the same result as generating it from scratch.
package discover
