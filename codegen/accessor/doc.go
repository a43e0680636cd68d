// Package accessor implements the synthesis stage of autoreg: it renders the
// getter and registering setter of one marked field.
//
// Each model.Field is turned into an ir.File and then into a goa
// codegen.File whose sections are rendered from the embedded templates. The
// generated setter runs three steps on every call:
//
//  1. store the new value in the field,
//  2. remove any registry entry keyed by the field name,
//  3. register the field value under the field name.
//
// so the registry never holds two entries for a field and the last assignment
// wins.
package accessor
