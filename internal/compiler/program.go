// Package compiler wraps tsgo program construction for the bindings
// pipeline. Programs are built over a synthesized in-memory tsconfig so a
// .d.ts input set never needs a tsconfig.json on disk, and only syntactic
// diagnostics are gathered since no type checking is required.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/microsoft/typescript-go/shim/ast"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/scanner"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// DiagnosticCategory mirrors tsgo's diagnostics.Category.
// We redeclare here to avoid importing the internal diagnostics package directly.
type DiagnosticCategory int

const (
	CategoryWarning    DiagnosticCategory = 0
	CategoryError      DiagnosticCategory = 1
	CategorySuggestion DiagnosticCategory = 2
	CategoryMessage    DiagnosticCategory = 3
)

func (c DiagnosticCategory) Name() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	case CategoryMessage:
		return "message"
	}
	return "unknown"
}

// Diagnostic represents a parse-level diagnostic message with its source
// position already resolved to 1-based line and column.
type Diagnostic struct {
	FilePath string
	Line     int
	Column   int
	Category DiagnosticCategory
	Code     int32
	Message  string
}

func (d Diagnostic) String() string {
	if d.FilePath == "" {
		return fmt.Sprintf("%s TS%d: %s", d.Category.Name(), d.Code, d.Message)
	}
	if d.Line > 0 {
		return fmt.Sprintf("%s(%d,%d): %s TS%d: %s", d.FilePath, d.Line, d.Column, d.Category.Name(), d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s TS%d: %s", d.FilePath, d.Category.Name(), d.Code, d.Message)
}

// IsError reports whether the diagnostic is error severity.
func (d Diagnostic) IsError() bool {
	return d.Category == CategoryError
}

// virtualConfigName is the synthesized tsconfig layered over the input
// filesystem; the name is unusual enough not to shadow a real project file.
const virtualConfigName = "__dartify_tsconfig.json"

type virtualConfig struct {
	CompilerOptions virtualCompilerOptions `json:"compilerOptions"`
	Files           []string               `json:"files"`
}

type virtualCompilerOptions struct {
	NoEmit       bool   `json:"noEmit"`
	SkipLibCheck bool   `json:"skipLibCheck"`
	Target       string `json:"target"`
}

// Unit bundles a constructed program with the resolved paths of the input
// declaration files, in input order.
type Unit struct {
	Program *shimcompiler.Program
	Files   []string
}

// CreateUnitProgram builds a tsgo program over the given .d.ts files. The
// tsconfig is synthesized in memory and layered over fs, so callers only name
// the input files. Returned diagnostics are config-level problems; parse
// errors are gathered later per file via SyntacticDiagnostics.
func CreateUnitProgram(fs vfs.FS, cwd string, files []string) (*Unit, []Diagnostic, error) {
	if len(files) == 0 {
		return nil, nil, errors.New("no input files")
	}

	resolved := make([]string, len(files))
	for i, f := range files {
		resolved[i] = tspath.ResolvePath(cwd, f)
	}

	cfg := virtualConfig{
		CompilerOptions: virtualCompilerOptions{
			NoEmit:       true,
			SkipLibCheck: true,
			Target:       "esnext",
		},
		Files: resolved,
	}
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("synthesizing tsconfig: %w", err)
	}

	configPath := tspath.ResolvePath(cwd, virtualConfigName)
	overlay := NewOverlayFS(fs, map[string]string{configPath: string(cfgJSON)})
	host := CreateDefaultHost(cwd, overlay)

	parsedConfig, configDiags := tsoptions.GetParsedCommandLineOfConfigFile(
		configPath, &core.CompilerOptions{}, nil, host, nil,
	)
	if len(configDiags) > 0 {
		return nil, convertDiagnostics(configDiags), nil
	}
	if parsedConfig != nil && len(parsedConfig.Errors) > 0 {
		return nil, convertDiagnostics(parsedConfig.Errors), nil
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsedConfig,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}
	program.BindSourceFiles()

	return &Unit{Program: program, Files: resolved}, nil, nil
}

// SourceFile returns the parsed source file for one of the unit's inputs,
// or nil when the program never loaded it.
func (u *Unit) SourceFile(path string) *ast.SourceFile {
	return u.Program.GetSourceFile(path)
}

// SyntacticDiagnostics returns parse errors for a single source file, or for
// every file when file is nil.
func SyntacticDiagnostics(program *shimcompiler.Program, file *ast.SourceFile) []Diagnostic {
	return convertDiagnostics(shimcompiler.Program_GetSyntacticDiagnostics(program, context.Background(), file))
}

// convertDiagnostics converts tsgo diagnostics to our Diagnostic type,
// resolving positions to 1-based line and column.
func convertDiagnostics(tsdiags []*ast.Diagnostic) []Diagnostic {
	diags := make([]Diagnostic, len(tsdiags))
	for i, d := range tsdiags {
		var filePath string
		line, column := 0, 0
		if d.File() != nil {
			filePath = d.File().FileName()
			l, c := scanner.GetECMALineAndCharacterOfPosition(d.File(), d.Pos())
			line, column = l+1, c+1
		}
		diags[i] = Diagnostic{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Category: DiagnosticCategory(ast.Diagnostic_Category(d)),
			Code:     d.Code(),
			Message:  d.String(),
		}
	}
	return diags
}

// FormatDiagnostics formats diagnostics into human-readable strings.
func FormatDiagnostics(diags []Diagnostic) string {
	var result string
	for _, d := range diags {
		result += d.String() + "\n"
	}
	return result
}
