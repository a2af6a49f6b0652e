// Package bundled re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/bundled used by dependents
// of this shim module.
package bundled

import "github.com/microsoft/typescript-go/internal/bundled"

var (
	LibPath = bundled.LibPath
	WrapFS  = bundled.WrapFS
)
