// Package testutil provides helpers for parsing inline TypeScript
// declaration source into real tsgo source files through an in-memory
// filesystem overlay.
package testutil

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"

	"github.com/codewithsam110g/dartify/internal/compiler"
)

// virtualRoot anchors inline sources; it never has to exist on disk.
const virtualRoot = "/virtual"

// NewVirtualFS creates a filesystem with the given virtual files layered
// over the bundled OS filesystem (includes TypeScript lib files).
func NewVirtualFS(virtualFiles map[string]string) vfs.FS {
	return compiler.NewOverlayFS(bundled.WrapFS(osvfs.FS()), virtualFiles)
}

// ParseDecl parses inline .d.ts source into a bound source file. Parse
// errors fail the test.
func ParseDecl(t *testing.T, source string) *ast.SourceFile {
	t.Helper()

	fileName := "test.d.ts"
	filePath := tspath.ResolvePath(virtualRoot, fileName)
	fs := NewVirtualFS(map[string]string{filePath: source})

	unit, diags, err := compiler.CreateUnitProgram(fs, virtualRoot, []string{fileName})
	if err != nil {
		t.Fatalf("creating program: %v", err)
	}
	if len(diags) > 0 {
		t.Fatalf("config diagnostics: %v", diags[0])
	}

	sf := unit.SourceFile(unit.Files[0])
	if sf == nil {
		t.Fatalf("source file %q not found in program", fileName)
	}
	if parseDiags := compiler.SyntacticDiagnostics(unit.Program, sf); len(parseDiags) > 0 {
		t.Fatalf("parse errors: %v", parseDiags[0])
	}
	return sf
}
