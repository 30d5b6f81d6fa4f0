// Package artifact resolves a function's packaged implementation so that
// validation can introspect its declared input and output types. The Loader
// interface is what the validation pipeline depends on; FileLoader is the
// local-package implementation.
package artifact

import "strings"

// BuiltinPrefix marks an artifact locator naming a builtin function rather
// than a package on disk or a URL.
const BuiltinPrefix = "builtin://"

// VoidType is the sentinel output type of a function that produces no output.
const VoidType = "java.lang.Void"

// TypeArguments carries a function's resolved generic input and output type
// names.
type TypeArguments struct {
	Input  string
	Output string
}

// Handle is an opened function package. It is handed back to the caller of
// validation for reuse by a subsequent submission step; closing it is the
// caller's responsibility.
type Handle interface {
	Location() string
	Close() error
}

// Loader materializes a function package from a locator and resolves the
// function's declared types from it.
type Loader interface {
	Load(locator string) (Handle, error)
	FunctionTypes(h Handle) (*TypeArguments, error)
}

// IsPackageURLSupported reports whether the locator is a URL scheme the
// surrounding system knows how to fetch packages from.
func IsPackageURLSupported(locator string) bool {
	return strings.HasPrefix(locator, "http://") ||
		strings.HasPrefix(locator, "https://") ||
		strings.HasPrefix(locator, "file://")
}
