package codegen

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser upper-cases the first letter of a segment without lowering the
// rest, so "httpClient" becomes "HttpClient", not "Httpclient".
var titleCaser = cases.Title(language.Und, cases.NoLower)

// DartName converts a dotted qualified name into a Dart identifier. A plain
// name keeps its spelling; a namespace-qualified name concatenates
// title-cased segments ("ns.point" → "NsPoint") so it cannot collide with a
// same-named top-level declaration. The wire annotation always carries the
// dotted original.
func DartName(qualified string) string {
	parts := strings.Split(qualified, ".")
	if len(parts) == 1 {
		return sanitizeIdent(parts[0])
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(titleCaser.String(sanitizeIdent(p)))
	}
	return sb.String()
}

// LibraryName derives the Dart library name from a source file path:
// base name without the .d.ts/.ts suffix, non-alphanumeric runes normalized
// to underscores, leading digit guarded.
func LibraryName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".d.ts")
	base = strings.TrimSuffix(base, ".ts")
	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	name := sb.String()
	if name == "" {
		return "bindings"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// WireName strips wrapping quote characters from a qualified original name
// for use inside a wire annotation.
func WireName(qualified string) string {
	return strings.NewReplacer(`"`, "", "'", "").Replace(qualified)
}

// sanitizeIdent replaces runes Dart identifiers cannot contain with
// underscores. `$` is valid in Dart and kept as-is.
func sanitizeIdent(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}
