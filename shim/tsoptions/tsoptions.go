// Package tsoptions re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/tsoptions used by dependents
// of this shim module.
package tsoptions

import "github.com/microsoft/typescript-go/internal/tsoptions"

type (
	ParsedCommandLine   = tsoptions.ParsedCommandLine
	ParseConfigHost     = tsoptions.ParseConfigHost
	ExtendedConfigCache = tsoptions.ExtendedConfigCache
)

var GetParsedCommandLineOfConfigFile = tsoptions.GetParsedCommandLineOfConfigFile
