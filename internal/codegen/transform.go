package codegen

import (
	"fmt"
	"strings"

	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/hoist"
	"github.com/codewithsam110g/dartify/internal/ir"
)

// Transform produces the final one-declaration-per-name map for a source
// unit. It merges hoisted interfaces into the declaration set, groups and
// renames overloaded functions and methods, and resolves same-name merges.
// Multi-map iteration order is preserved so emission is deterministic.
//
// Merge policy (recorded in DESIGN.md): same-kind interface groups are
// structurally merged, mirroring TypeScript declaration merging; groups of
// differing kinds keep the first declaration and report every dropped entry
// as a merge conflict — nothing is dropped silently.
func Transform(decls *ir.DeclMap, registry *hoist.Registry, diags *diagnostic.Collector, file string) *ir.FinalMap {
	// Hoisted interfaces join the multi-map under their generated names.
	for _, name := range registry.Names() {
		if decls.Has(name) {
			diags.Errorf(diagnostic.CodeHoistMerge, file, 0, 0,
				"hoisted interface %q collides with an existing declaration, dropping the hoisted entry", name)
			continue
		}
		decls.Add(registry.Declaration(name))
	}

	final := ir.NewFinalMap()
	for _, name := range decls.Keys() {
		entries := decls.Get(name)
		switch {
		case len(entries) == 1:
			d := entries[0]
			groupMethodOverloads(d)
			put(final, d, diags, file)

		case allOfKind(entries, ir.DeclFunction):
			// Function overloads: clone and suffix in declaration order; the
			// un-suffixed original name stays the wire identity. Suffixes
			// already bound to a source declaration are skipped so a
			// hand-written `f_1` never loses to a renamed overload of `f`.
			next := 1
			for _, d := range entries {
				c := d.Clone()
				c.Name = nextFreeSuffix(name, &next, decls, final)
				c.WireName = name
				put(final, c, diags, file)
			}

		case allOfKind(entries, ir.DeclInterface):
			merged := mergeInterfaces(entries)
			groupMethodOverloads(merged)
			put(final, merged, diags, file)

		default:
			// Mixed kinds sharing one name. Keep the first declaration and
			// report the rest explicitly.
			first := entries[0]
			groupMethodOverloads(first)
			put(final, first, diags, file)
			for _, dropped := range entries[1:] {
				diags.Errorf(diagnostic.CodeMergeConflict, file, 0, 0,
					"declarations of kind %s and %s share the name %q; keeping the %s, dropping the %s",
					first.Kind, dropped.Kind, name, first.Kind, dropped.Kind)
			}
		}
	}
	return final
}

// put registers a declaration in the final map. A rejected name is reported
// as a merge conflict so no declaration is ever dropped silently.
func put(final *ir.FinalMap, d *ir.Declaration, diags *diagnostic.Collector, file string) {
	if final.Put(d) {
		return
	}
	diags.Errorf(diagnostic.CodeMergeConflict, file, 0, 0,
		"declaration %q of kind %s collides with the already-emitted %s of the same name, dropping it",
		d.Name, d.Kind, final.Get(d.Name).Kind)
}

// nextFreeSuffix returns the first <base>_<n> name, counting up from *next,
// that no source declaration or final-map entry already claims.
func nextFreeSuffix(base string, next *int, decls *ir.DeclMap, final *ir.FinalMap) string {
	for {
		candidate := fmt.Sprintf("%s_%d", base, *next)
		*next++
		if !decls.Has(candidate) && !final.Has(candidate) {
			return candidate
		}
	}
}

func allOfKind(entries []*ir.Declaration, kind ir.DeclKind) bool {
	if len(entries) < 2 {
		return false
	}
	for _, d := range entries {
		if d.Kind != kind {
			return false
		}
	}
	return true
}

// mergeInterfaces folds same-name interface declarations into one, in source
// order. Duplicate property names keep the first occurrence; everything else
// concatenates.
func mergeInterfaces(entries []*ir.Declaration) *ir.Declaration {
	merged := entries[0].Clone()
	seenProps := make(map[string]bool, len(merged.Properties))
	for _, p := range merged.Properties {
		seenProps[p.Name] = true
	}
	for _, d := range entries[1:] {
		for _, p := range d.Properties {
			if seenProps[p.Name] {
				continue
			}
			seenProps[p.Name] = true
			merged.Properties = append(merged.Properties, p)
		}
		merged.Methods = append(merged.Methods, d.Methods...)
		merged.Constructors = append(merged.Constructors, d.Constructors...)
		merged.Getters = append(merged.Getters, d.Getters...)
		merged.Setters = append(merged.Setters, d.Setters...)
		merged.IndexSignatures = append(merged.IndexSignatures, d.IndexSignatures...)
	}
	return merged
}

// groupMethodOverloads renames same-named methods inside a class or
// interface to <name>_<i> (1-based, declaration order), keeping the original
// name as wire identity. Static and instance methods are grouped separately.
func groupMethodOverloads(d *ir.Declaration) {
	if d.Kind != ir.DeclClass && d.Kind != ir.DeclInterface {
		return
	}
	counts := make(map[string]int)
	for i := range d.Methods {
		counts[methodGroupKey(&d.Methods[i])]++
	}
	indices := make(map[string]int)
	for i := range d.Methods {
		key := methodGroupKey(&d.Methods[i])
		if counts[key] < 2 {
			continue
		}
		indices[key]++
		m := &d.Methods[i]
		m.WireName = m.Name
		m.Name = fmt.Sprintf("%s_%d", m.Name, indices[key])
	}
}

func methodGroupKey(m *ir.Method) string {
	var sb strings.Builder
	if m.Static {
		sb.WriteString("static ")
	}
	sb.WriteString(m.Name)
	return sb.String()
}
