package hoist

import (
	"testing"

	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/ir"
)

func prop(name string, p ir.Primitive) ir.Property {
	return ir.Property{Name: name, Type: ir.NewPrimitive(p)}
}

func recordOf(props ...ir.Property) *ir.Type {
	return &ir.Type{Kind: ir.KindRecord, Record: &ir.Record{Properties: props}}
}

func TestHoistDeduplicatesEqualShapes(t *testing.T) {
	a := recordOf(prop("x", ir.PrimNumber), prop("y", ir.PrimNumber))
	b := recordOf(prop("x", ir.PrimNumber), prop("y", ir.PrimNumber))

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.HoistAll([]*ir.Type{a, b})

	if a.Kind != ir.KindReference || b.Kind != ir.KindReference {
		t.Fatalf("records not rewritten: a=%s b=%s", a.Kind, b.Kind)
	}
	if a.Name != b.Name {
		t.Errorf("equal shapes got different names: %q vs %q", a.Name, b.Name)
	}
	if a.Name != "AnonInterface$1" {
		t.Errorf("name = %q, want AnonInterface$1", a.Name)
	}
	if h.Registry().Len() != 1 {
		t.Errorf("registry has %d declarations, want 1", h.Registry().Len())
	}
}

func TestHoistMemberOrderIndependent(t *testing.T) {
	a := recordOf(prop("x", ir.PrimNumber), prop("y", ir.PrimString))
	b := recordOf(prop("y", ir.PrimString), prop("x", ir.PrimNumber))

	if canonicalHash(a.Record) != canonicalHash(b.Record) {
		t.Error("property order changed the canonical hash")
	}

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.HoistAll([]*ir.Type{a, b})
	if a.Name != b.Name {
		t.Errorf("reordered shapes got different names: %q vs %q", a.Name, b.Name)
	}
}

func TestHoistDistinguishesShapes(t *testing.T) {
	a := recordOf(prop("x", ir.PrimNumber))
	b := recordOf(prop("x", ir.PrimString))

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.HoistAll([]*ir.Type{a, b})

	if a.Name == b.Name {
		t.Error("different shapes shared one name")
	}
	if h.Registry().Len() != 2 {
		t.Errorf("registry has %d declarations, want 2", h.Registry().Len())
	}
}

func TestHoistOptionalAffectsHash(t *testing.T) {
	a := recordOf(ir.Property{Name: "x", Type: ir.NewPrimitive(ir.PrimNumber)})
	b := recordOf(ir.Property{Name: "x", Type: ir.NewPrimitive(ir.PrimNumber), Optional: true})
	if canonicalHash(a.Record) == canonicalHash(b.Record) {
		t.Error("optional flag did not affect the canonical hash")
	}
}

func TestHoistNestedBottomUp(t *testing.T) {
	inner := recordOf(prop("v", ir.PrimNumber))
	outer := &ir.Type{Kind: ir.KindRecord, Record: &ir.Record{
		Properties: []ir.Property{{Name: "child", Type: inner}},
	}}

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.Hoist(outer)

	if h.Registry().Len() != 2 {
		t.Fatalf("registry has %d declarations, want 2", h.Registry().Len())
	}
	// Children before parent: the inner shape takes the first name.
	if inner.Name != "AnonInterface$1" {
		t.Errorf("inner name = %q, want AnonInterface$1", inner.Name)
	}
	if outer.Name != "AnonInterface$2" {
		t.Errorf("outer name = %q, want AnonInterface$2", outer.Name)
	}
	// The materialized outer interface references the inner by name.
	decl := h.Registry().Declaration("AnonInterface$2")
	if decl.Properties[0].Type.Kind != ir.KindReference || decl.Properties[0].Type.Name != "AnonInterface$1" {
		t.Errorf("outer property type = %+v, want reference to AnonInterface$1", decl.Properties[0].Type)
	}
}

func TestHoistIdempotent(t *testing.T) {
	a := recordOf(prop("x", ir.PrimNumber))
	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.Hoist(a)
	name := a.Name

	h.Hoist(a)
	if a.Name != name {
		t.Errorf("second hoist changed the name: %q -> %q", name, a.Name)
	}
	if h.Registry().Len() != 1 {
		t.Errorf("second hoist grew the registry to %d", h.Registry().Len())
	}
}

func TestHoistPreservesNullability(t *testing.T) {
	a := recordOf(prop("x", ir.PrimNumber))
	a.Nullable = true

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.Hoist(a)
	if !a.Nullable {
		t.Error("nullability lost in the rewritten reference")
	}
}

func TestHoistCollisionKeepsInline(t *testing.T) {
	taken := func(name string) bool { return name == "AnonInterface$1" }
	diags := diagnostic.NewCollector(false)
	a := recordOf(prop("x", ir.PrimNumber))
	b := recordOf(prop("x", ir.PrimNumber))

	h := New(NewRegistry(), taken, diags, "test.d.ts")
	h.HoistAll([]*ir.Type{a, b})

	if a.Kind != ir.KindRecord || b.Kind != ir.KindRecord {
		t.Error("colliding shape was rewritten instead of staying inline")
	}
	if h.Registry().Len() != 0 {
		t.Errorf("registry has %d declarations, want 0", h.Registry().Len())
	}
	if diags.ErrorCount() != 1 {
		t.Errorf("collision reported %d error(s), want 1", diags.ErrorCount())
	}
}

func TestMaterializeSynthesizesConstructor(t *testing.T) {
	rec := &ir.Record{
		Properties: []ir.Property{
			{Name: "x", Type: ir.NewPrimitive(ir.PrimNumber)},
			{Name: "y", Type: ir.NewPrimitive(ir.PrimString), Optional: true},
		},
		Constructors: [][]ir.Parameter{{{Name: "raw", Type: ir.NewPrimitive(ir.PrimString)}}},
	}
	decl := materialize("AnonInterface$1", rec)

	if decl.Kind != ir.DeclInterface {
		t.Fatalf("kind = %s, want interface", decl.Kind)
	}
	if len(decl.Constructors) != 2 {
		t.Fatalf("constructors = %d, want 2 (synthesized + explicit)", len(decl.Constructors))
	}
	synth := decl.Constructors[0]
	if len(synth) != 2 || synth[0].Name != "x" || synth[1].Name != "y" {
		t.Errorf("synthesized constructor params = %+v", synth)
	}
	if !synth[1].Optional {
		t.Error("optional property should stay optional in the synthesized constructor")
	}
	if decl.Constructors[1][0].Name != "raw" {
		t.Error("explicit constructor not preserved after the synthesized one")
	}
}

func TestHoistInsideCompositeTypes(t *testing.T) {
	rec := recordOf(prop("x", ir.PrimNumber))
	arr := &ir.Type{Kind: ir.KindArray, Element: rec}

	h := New(NewRegistry(), nil, diagnostic.NewCollector(false), "test.d.ts")
	h.Hoist(arr)

	if arr.Element.Kind != ir.KindReference {
		t.Errorf("array element not hoisted: %s", arr.Element.Kind)
	}

	rec2 := recordOf(prop("x", ir.PrimNumber))
	fn := &ir.Type{
		Kind:   ir.KindFunction,
		Params: []ir.Parameter{{Name: "p", Type: rec2}},
		Return: ir.NewPrimitive(ir.PrimVoid),
	}
	h.Hoist(fn)
	if fn.Params[0].Type.Kind != ir.KindReference {
		t.Errorf("function parameter not hoisted: %s", fn.Params[0].Type.Kind)
	}
	if fn.Params[0].Type.Name != arr.Element.Name {
		t.Error("equal shape in a different context got a different name")
	}
}
