// Package tspath re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/tspath used by dependents of
// this shim module.
package tspath

import "github.com/microsoft/typescript-go/internal/tspath"

var (
	NormalizePath = tspath.NormalizePath
	ResolvePath   = tspath.ResolvePath
)
