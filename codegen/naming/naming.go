package naming

import (
	"go/token"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FileSuffix terminates the name of every file written by autoreg. The suffix
// keeps generated names clear of the _test and GOOS/GOARCH build suffixes.
const FileSuffix = "_autoreg.go"

// AccessorName returns field with its first rune upper-cased. The remainder of
// the name is left untouched so "x1" yields "X1" and "httpClient" yields
// "HttpClient". A field that already starts with an upper-case rune (or with a
// rune that has no upper-case form) yields itself.
func AccessorName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}

// SetterName returns the name of the setter generated for accessor.
func SetterName(accessor string) string {
	return "Set" + accessor
}

// ReceiverName returns the conventional receiver name for a method declared
// on typeName: its first letter lower-cased. It falls back to "r" when the type
// name does not start with a letter.
func ReceiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return "r"
	}
	return string(unicode.ToLower(r))
}

// Key returns the identity of the output unit generated for the given field.
// Keys are unique per enclosing type and field name.
func Key(typeName, field string) string {
	return typeName + "_" + field
}

// FileName returns the name of the file generated for key.
func FileName(key string) string {
	return key + FileSuffix
}

// KeyFromFile returns the key encoded in a generated file name and whether the
// name denotes a generated file at all.
func KeyFromFile(path string) (string, bool) {
	base := filepath.Base(path)
	key, ok := strings.CutSuffix(base, FileSuffix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// IsGenerated reports whether path names a file written by autoreg.
func IsGenerated(path string) bool {
	_, ok := KeyFromFile(path)
	return ok
}

// IsIdentifier reports whether name is a valid, non-blank Go identifier.
func IsIdentifier(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}

// IsBuildable reports whether the go command considers the file named name.
// It ignores files whose name starts with "_" or ".".
func IsBuildable(name string) bool {
	base := filepath.Base(name)
	return !strings.HasPrefix(base, "_") && !strings.HasPrefix(base, ".")
}
