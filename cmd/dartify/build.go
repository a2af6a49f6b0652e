package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/codewithsam110g/dartify/internal/codegen"
	"github.com/codewithsam110g/dartify/internal/compiler"
	"github.com/codewithsam110g/dartify/internal/config"
	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/hoist"
	"github.com/codewithsam110g/dartify/internal/ir"
	"github.com/codewithsam110g/dartify/internal/resolver"
)

// runBuild executes the generation pipeline:
// expand inputs -> parse program -> resolve -> hoist -> transform -> emit.
func runBuild(args []string) int {
	buildFlags := flag.NewFlagSet("build", flag.ExitOnError)

	var (
		configPath string
		outDir     string
		dumpIR     bool
		timing     bool
		quiet      bool
	)

	buildFlags.StringVar(&configPath, "config", "", "Path to dartify config file (dartify.config.json)")
	buildFlags.StringVar(&outDir, "out", "", "Output directory for generated .dart files")
	buildFlags.StringVar(&outDir, "o", "", "Output directory (shorthand for --out)")
	buildFlags.BoolVar(&dumpIR, "dump-ir", false, "Dump the declaration IR as JSON to stdout instead of emitting Dart")
	buildFlags.BoolVar(&timing, "timing", false, "Print a phase timing breakdown")
	buildFlags.BoolVar(&quiet, "quiet", false, "Suppress warning diagnostics")

	buildFlags.Usage = func() {
		fmt.Println("Usage: dartify build [flags] <files-or-globs...>")
		fmt.Println()
		fmt.Println("Flags:")
		buildFlags.PrintDefaults()
	}

	buildFlags.Parse(args)

	buildStart := time.Now()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	// Load config if specified, otherwise discover it in the working directory
	cfg := config.DefaultConfig()
	if configPath == "" {
		configPath = config.Discover(cwd)
	}
	if configPath != "" {
		resolvedConfigPath := configPath
		if !filepath.IsAbs(resolvedConfigPath) {
			resolvedConfigPath = filepath.Join(cwd, resolvedConfigPath)
		}
		loaded, loadErr := config.Load(resolvedConfigPath)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "error: [%s] %v\n", diagnostic.CodeConfigInvalid, loadErr)
			return 1
		}
		cfg = *loaded
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(resolvedConfigPath))
	}

	// CLI flags take precedence over config values
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if quiet {
		cfg.Quiet = true
	}

	patterns := buildFlags.Args()
	if len(patterns) == 0 {
		patterns = cfg.Include
	}
	if len(patterns) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input files (pass .d.ts paths or set include in dartify.config.json)")
		buildFlags.Usage()
		return 1
	}

	files, err := config.ExpandGlobs(cwd, patterns, cfg.Exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: expanding inputs: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "error: no files matched the given patterns")
		return 1
	}

	// One program over every input; units are still processed independently
	programStart := time.Now()
	fs := compiler.CreateDefaultFS()
	unit, progDiags, err := compiler.CreateUnitProgram(fs, cwd, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(progDiags) > 0 {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(progDiags))
		return 1
	}
	programDur := time.Since(programStart)

	collector := diagnostic.NewCollector(cfg.Quiet)

	generateStart := time.Now()
	var dumps []unitDump
	emitted := 0
	failed := 0
	for _, path := range unit.Files {
		rel := relativePath(path, cwd)

		sf := unit.SourceFile(path)
		if sf == nil {
			collector.Errorf(diagnostic.CodeParseFailure, rel, 0, 0, "file could not be loaded")
			failed++
			continue
		}

		if parseErrs := parseErrors(unit, sf); len(parseErrs) > 0 {
			for _, d := range parseErrs {
				collector.Errorf(diagnostic.CodeParseFailure, relativePath(d.FilePath, cwd), d.Line, d.Column, "%s", d.Message)
			}
			failed++
			continue
		}

		final, ok := processUnit(sf, rel, collector)
		if !ok {
			failed++
			continue
		}

		library := codegen.LibraryName(path)
		if dumpIR {
			dumps = append(dumps, newUnitDump(rel, library, final))
			continue
		}

		source := codegen.EmitUnit(final, library)
		outPath := filepath.Join(outDir, library+".dart")
		if err := writeOutput(outPath, source); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed++
			continue
		}
		emitted++
	}
	generateDur := time.Since(generateStart)

	if dumpIR {
		if err := writeDump(os.Stdout, dumps); err != nil {
			fmt.Fprintf(os.Stderr, "error encoding JSON: %v\n", err)
			return 1
		}
	} else if emitted > 0 {
		fmt.Fprintf(os.Stderr, "emitted %d file(s) to %s\n", emitted, outDir)
	}

	if out := collector.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	fmt.Fprintf(os.Stderr, "%s\n", collector.Summary())

	if timing {
		totalDur := time.Since(buildStart)
		fmt.Fprintf(os.Stderr, "\n--- timing ---\n")
		fmt.Fprintf(os.Stderr, "  program:   %s\n", programDur.Round(time.Millisecond))
		fmt.Fprintf(os.Stderr, "  generate:  %s\n", generateDur.Round(time.Millisecond))
		fmt.Fprintf(os.Stderr, "  total:     %s\n", totalDur.Round(time.Millisecond))
	}

	if failed > 0 || collector.HasErrors() {
		return 1
	}
	return 0
}

// parseErrors returns the error-severity syntactic diagnostics for one file.
func parseErrors(unit *compiler.Unit, sf *ast.SourceFile) []compiler.Diagnostic {
	var errs []compiler.Diagnostic
	for _, d := range compiler.SyntacticDiagnostics(unit.Program, sf) {
		if d.IsError() {
			errs = append(errs, d)
		}
	}
	return errs
}

// processUnit runs resolve, hoist, and transform for one source file. A
// panic in any pass aborts only this unit and is reported as an internal
// fault.
func processUnit(sf *ast.SourceFile, file string, collector *diagnostic.Collector) (final *ir.FinalMap, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			collector.Errorf(diagnostic.CodeInternalFault, file, 0, 0, "internal fault: %v", r)
			final, ok = nil, false
		}
	}()

	declRes := resolver.NewDeclResolver(sf, collector)
	decls := declRes.ResolveSourceFile(sf)

	registry := hoist.NewRegistry()
	hoister := hoist.New(registry, decls.Has, collector, file)
	for _, name := range decls.Keys() {
		for _, d := range decls.Get(name) {
			hoister.HoistAll(d.TypeRoots())
		}
	}

	return codegen.Transform(decls, registry, collector, file), true
}

func writeOutput(path string, source string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// relativePath converts an absolute path to relative if possible.
func relativePath(absPath string, cwd string) string {
	if cwd == "" {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
