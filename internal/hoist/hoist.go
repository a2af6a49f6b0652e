package hoist

import (
	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/ir"
)

// Hoister rewrites IR trees so that every anonymous record becomes a
// reference to a named top-level interface. Traversal is depth-first with
// children before parents: nested records are already deduplicated
// references by the time the enclosing record is canonicalized, so two
// structurally equal parents collapse to one name.
type Hoister struct {
	registry *Registry
	isTaken  func(name string) bool
	diags    *diagnostic.Collector
	file     string
	// skipped remembers shapes whose generated name collided with an existing
	// top-level declaration; later occurrences stay inline too.
	skipped map[uint64]bool
}

// New creates a hoister for one compilation unit. isTaken reports whether a
// name is already bound at top level; a generated name colliding with one is
// reported and that hoist skipped (the original declaration wins).
func New(registry *Registry, isTaken func(string) bool, diags *diagnostic.Collector, file string) *Hoister {
	if isTaken == nil {
		isTaken = func(string) bool { return false }
	}
	return &Hoister{registry: registry, isTaken: isTaken, diags: diags, file: file, skipped: make(map[uint64]bool)}
}

// Registry returns the unit's hoist registry.
func (h *Hoister) Registry() *Registry {
	return h.registry
}

// HoistAll rewrites every type reachable from the given roots in place.
func (h *Hoister) HoistAll(roots []*ir.Type) {
	for _, root := range roots {
		h.Hoist(root)
	}
}

// Hoist rewrites one type tree in place, bottom-up.
func (h *Hoister) Hoist(t *ir.Type) {
	if t == nil {
		return
	}
	switch t.Kind {
	case ir.KindArray:
		h.Hoist(t.Element)
	case ir.KindTuple:
		for i := range t.Elements {
			h.Hoist(t.Elements[i].Type)
		}
	case ir.KindUnion, ir.KindIntersection:
		for _, m := range t.Members {
			h.Hoist(m)
		}
	case ir.KindReference:
		for _, a := range t.TypeArgs {
			h.Hoist(a)
		}
	case ir.KindFunction:
		for i := range t.Params {
			h.Hoist(t.Params[i].Type)
		}
		h.Hoist(t.Return)
	case ir.KindRecord:
		h.hoistRecord(t)
	}
}

// hoistRecord hoists the record node's children first, then canonicalizes the
// record itself and replaces the node with a reference to the hoisted name.
func (h *Hoister) hoistRecord(t *ir.Type) {
	rec := t.Record
	for _, child := range recordTypeRoots(rec) {
		h.Hoist(child)
	}

	hash := canonicalHash(rec)
	if h.skipped[hash] {
		return
	}
	name, ok := h.registry.Lookup(hash)
	if !ok {
		name = h.registry.Allocate(hash)
		if h.isTaken(name) {
			h.diags.Errorf(diagnostic.CodeHoistCollision, h.file, 0, 0,
				"generated name %q collides with an existing top-level declaration, keeping the inline type", name)
			h.skipped[hash] = true
			return
		}
		h.registry.Register(name, materialize(name, rec))
	}

	// Rewrite the node in place: the record becomes a reference.
	*t = ir.Type{Kind: ir.KindReference, Name: name, Nullable: t.Nullable}
}

// recordTypeRoots lists every type directly reachable from a record's
// members, in declaration order.
func recordTypeRoots(rec *ir.Record) []*ir.Type {
	var roots []*ir.Type
	add := func(t *ir.Type) {
		if t != nil {
			roots = append(roots, t)
		}
	}
	for i := range rec.Properties {
		add(rec.Properties[i].Type)
	}
	for i := range rec.Methods {
		for j := range rec.Methods[i].Params {
			add(rec.Methods[i].Params[j].Type)
		}
		add(rec.Methods[i].Return)
	}
	for _, ctor := range rec.Constructors {
		for i := range ctor {
			add(ctor[i].Type)
		}
	}
	for i := range rec.Getters {
		add(rec.Getters[i].Type)
	}
	for i := range rec.Setters {
		add(rec.Setters[i].Type)
	}
	for i := range rec.IndexSignatures {
		add(rec.IndexSignatures[i].KeyType)
		add(rec.IndexSignatures[i].ValueType)
	}
	return roots
}

// materialize converts a hoisted record into an interface declaration. A
// synthesized all-properties constructor is prepended to any explicit
// construct signatures so every hoisted interface can be instantiated from
// Dart.
func materialize(name string, rec *ir.Record) *ir.Declaration {
	synthesized := make([]ir.Parameter, 0, len(rec.Properties))
	for _, p := range rec.Properties {
		synthesized = append(synthesized, ir.Parameter{
			Name:     p.Name,
			Type:     p.Type,
			Optional: p.Optional,
		})
	}
	ctors := append([][]ir.Parameter{synthesized}, rec.Constructors...)

	return &ir.Declaration{
		Kind:            ir.DeclInterface,
		Name:            name,
		WireName:        name,
		Properties:      rec.Properties,
		Methods:         rec.Methods,
		Constructors:    ctors,
		Getters:         rec.Getters,
		Setters:         rec.Setters,
		IndexSignatures: rec.IndexSignatures,
	}
}
