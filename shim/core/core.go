// Package core re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/core used by dependents of
// this shim module.
package core

import "github.com/microsoft/typescript-go/internal/core"

type (
	CompilerOptions = core.CompilerOptions
	Tristate        = core.Tristate
)

const TSTrue = core.TSTrue
