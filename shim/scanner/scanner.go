// Package scanner re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/scanner used by dependents
// of this shim module.
package scanner

import "github.com/microsoft/typescript-go/internal/scanner"

var GetECMALineAndCharacterOfPosition = scanner.GetECMALineAndCharacterOfPosition
