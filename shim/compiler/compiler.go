// Package compiler re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/compiler used by dependents
// of this shim module.
package compiler

import (
	"context"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/compiler"
)

type (
	CompilerHost   = compiler.CompilerHost
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
)

var (
	NewCompilerHost = compiler.NewCompilerHost
	NewProgram      = compiler.NewProgram
)

func Program_GetSyntacticDiagnostics(p *Program, ctx context.Context, sourceFile *ast.SourceFile) []*ast.Diagnostic {
	return p.GetSyntacticDiagnostics(ctx, sourceFile)
}
