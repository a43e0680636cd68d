// Package annotation declares the marker that selects struct fields for
// accessor generation.
//
// A field is selected by carrying the autoreg struct tag key. The tag value is
// ignored:
//
//	type Network struct {
//		registry.Module
//
//		head *Dense `autoreg:""`
//	}
//
// Struct tags only exist on struct fields so the marker cannot be attached to
// any other declaration.
package annotation

import "reflect"

// Tag is the struct tag key marking a field for accessor generation.
const Tag = "autoreg"

// Marked reports whether the given struct tag carries the marker. tag is the
// raw tag text without the surrounding back quotes, as returned by
// reflect.StructField.Tag or strconv.Unquote of the tag literal.
func Marked(tag string) bool {
	_, ok := reflect.StructTag(tag).Lookup(Tag)
	return ok
}
