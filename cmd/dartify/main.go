package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		return runBuild(os.Args[1:])
	}

	switch os.Args[1] {
	case "build":
		return runBuild(os.Args[2:])
	case "--version", "-v":
		fmt.Println("dartify", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// First arg starting with - is a flag, not a subcommand
		if strings.HasPrefix(os.Args[1], "-") {
			return runBuild(os.Args[1:])
		}
		// A bare path or glob is an input to the default build
		if strings.ContainsAny(os.Args[1], "./*") {
			return runBuild(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("dartify - TypeScript declaration to Dart package:js bindings generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dartify [flags] <files-or-globs...>         Generate bindings (default)")
	fmt.Println("  dartify build [flags] <files-or-globs...>   Generate bindings")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Build Flags:")
	fmt.Println("  --out, -o <dir>        Output directory for .dart files (default: out)")
	fmt.Println("  --config <path>        Path to dartify.config.json")
	fmt.Println("  --dump-ir              Dump the declaration IR as JSON to stdout instead of emitting Dart")
	fmt.Println("  --timing               Print a phase timing breakdown")
	fmt.Println("  --quiet                Suppress warning diagnostics")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  dartify types/dom.d.ts")
	fmt.Println("  dartify build -o lib/bindings 'types/**/*.d.ts'")
	fmt.Println("  dartify --config dartify.config.json")
	fmt.Println()
}
