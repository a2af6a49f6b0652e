package codegen

import (
	"strings"
	"testing"

	"github.com/codewithsam110g/dartify/internal/ir"
)

func finalOf(t *testing.T, decls ...*ir.Declaration) *ir.FinalMap {
	t.Helper()
	final := ir.NewFinalMap()
	for _, d := range decls {
		if !final.Put(d) {
			t.Fatalf("duplicate declaration %q", d.Name)
		}
	}
	return final
}

func TestEmitUnitHeader(t *testing.T) {
	got := EmitUnit(ir.NewFinalMap(), "dom")
	want := "@JS()\nlibrary dom;\n\nimport 'package:js/js.dart';\n"
	if got != want {
		t.Errorf("EmitUnit() = %q, want %q", got, want)
	}
}

func TestEmitVariable(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclVariable,
		Name:     "a",
		WireName: "a",
		Type:     ir.NewPrimitive(ir.PrimNumber),
	})
	got := EmitUnit(final, "test")
	want := "@JS()\nlibrary test;\n\nimport 'package:js/js.dart';\n\n@JS(\"a\")\nexternal num a;\n"
	if got != want {
		t.Errorf("EmitUnit() = %q, want %q", got, want)
	}
}

func TestEmitReadonlyVariable(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclVariable,
		Name:     "version",
		WireName: "version",
		Type:     ir.NewPrimitive(ir.PrimString),
		Readonly: true,
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "external String get version;") {
		t.Errorf("const variable should emit a getter, got:\n%s", got)
	}
	if strings.Contains(got, "external String version;") {
		t.Error("const variable should not emit a settable field")
	}
}

func TestEmitNamespacedVariable(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclVariable,
		Name:     "ns.flag",
		WireName: "ns.flag",
		Type:     ir.NewPrimitive(ir.PrimBoolean),
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "@JS(\"ns.flag\")") {
		t.Errorf("wire annotation should carry the dotted name, got:\n%s", got)
	}
	if !strings.Contains(got, "external bool NsFlag;") {
		t.Errorf("identifier should concatenate title-cased segments, got:\n%s", got)
	}
}

func TestEmitFunction(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclFunction,
		Name:     "add",
		WireName: "add",
		Params: []ir.Parameter{
			{Name: "a", Type: ir.NewPrimitive(ir.PrimNumber)},
			{Name: "b", Type: ir.NewPrimitive(ir.PrimNumber), Optional: true},
		},
		Return: ir.NewPrimitive(ir.PrimNumber),
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "external num add(num a, [num b]);") {
		t.Errorf("unexpected function binding:\n%s", got)
	}
}

func TestEmitRenamedOverloadKeepsWire(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclFunction,
		Name:     "f_1",
		WireName: "f",
		Return:   ir.NewPrimitive(ir.PrimVoid),
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "@JS(\"f\")\nexternal void f_1();") {
		t.Errorf("renamed overload should bind the original name, got:\n%s", got)
	}
}

func TestEmitEnum(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclEnum,
		Name:     "Status",
		WireName: "Status",
		EnumMembers: []ir.EnumMember{
			{Name: "Idle", Value: 0.0},
			{Name: "Label", Value: "label"},
			{Name: "Computed", Value: nil},
		},
	})
	got := EmitUnit(final, "test")
	for _, line := range []string{
		"@JS(\"Status\")",
		"class Status {",
		"  external static int get Idle;",
		"  external static String get Label;",
		"  external static dynamic get Computed;",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestEmitInterface(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclInterface,
		Name:     "Options",
		WireName: "Options",
		Properties: []ir.Property{
			{Name: "url", Type: ir.NewPrimitive(ir.PrimString)},
			{Name: "retries", Type: ir.NewPrimitive(ir.PrimNumber), Optional: true},
			{Name: "id", Type: ir.NewPrimitive(ir.PrimString), Readonly: true},
		},
	})
	got := EmitUnit(final, "test")
	for _, line := range []string{
		"@JS()\n@anonymous\nclass Options {",
		"external factory Options({String url, num retries, String id});",
		"external String get url;",
		"external set url(String value);",
		"external String get id;",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
	if strings.Contains(got, "external set id(") {
		t.Error("readonly property should not emit a setter")
	}
}

func TestEmitClass(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclClass,
		Name:     "Widget",
		WireName: "Widget",
		Constructors: [][]ir.Parameter{
			{{Name: "id", Type: ir.NewPrimitive(ir.PrimString)}},
			{},
		},
		Properties: []ir.Property{
			{Name: "count", Type: ir.NewPrimitive(ir.PrimNumber), Static: true},
			{Name: "id", Type: ir.NewPrimitive(ir.PrimString), Readonly: true},
		},
		Methods: []ir.Method{
			{Name: "render", Return: ir.NewPrimitive(ir.PrimVoid)},
			{Name: "create", Static: true, Return: &ir.Type{Kind: ir.KindReference, Name: "Widget"}},
		},
		IndexSignatures: []ir.IndexSignature{
			{KeyType: ir.NewPrimitive(ir.PrimString), ValueType: ir.Any()},
		},
	})
	got := EmitUnit(final, "test")
	for _, line := range []string{
		"@JS(\"Widget\")",
		"class Widget {",
		"external factory Widget(String id);",
		"external factory Widget.create2();",
		"external static num count;",
		"external String get id;",
		"external void render();",
		"external static Widget create();",
		"external dynamic operator [](Object key);",
		"external void operator []=(Object key, dynamic value);",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in:\n%s", line, got)
		}
	}
}

func TestEmitAbstractClassSkipsFactory(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclClass,
		Name:     "Base",
		WireName: "Base",
		Abstract: true,
		Constructors: [][]ir.Parameter{
			{{Name: "id", Type: ir.NewPrimitive(ir.PrimString)}},
		},
	})
	got := EmitUnit(final, "test")
	if strings.Contains(got, "external factory") {
		t.Errorf("abstract class should not emit factories, got:\n%s", got)
	}
}

func TestEmitClassAccessors(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclClass,
		Name:     "Doc",
		WireName: "Doc",
		Getters:  []ir.Accessor{{Name: "title", Type: ir.NewPrimitive(ir.PrimString)}},
		Setters:  []ir.Accessor{{Name: "title", Type: ir.NewPrimitive(ir.PrimString)}},
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "external String get title;") {
		t.Errorf("missing getter in:\n%s", got)
	}
	if !strings.Contains(got, "external set title(String value);") {
		t.Errorf("missing setter in:\n%s", got)
	}
}

func TestEmitMethodWireAnnotation(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclClass,
		Name:     "C",
		WireName: "C",
		Methods: []ir.Method{
			{Name: "load_1", WireName: "load", Return: ir.NewPrimitive(ir.PrimVoid)},
		},
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "@JS(\"load\")\n  external void load_1();") {
		t.Errorf("renamed method should carry a wire annotation, got:\n%s", got)
	}
}

func TestEmitTypeAlias(t *testing.T) {
	final := finalOf(t, &ir.Declaration{
		Kind:     ir.DeclTypeAlias,
		Name:     "Callback",
		WireName: "Callback",
		Type: &ir.Type{Kind: ir.KindFunction,
			Params: []ir.Parameter{{Name: "err", Type: &ir.Type{Kind: ir.KindReference, Name: "Error"}}},
			Return: ir.NewPrimitive(ir.PrimVoid),
		},
	})
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "typedef Callback = void Function(Error);") {
		t.Errorf("unexpected typedef:\n%s", got)
	}
}

func TestEmitDeclarationsSeparatedByBlankLine(t *testing.T) {
	final := finalOf(t,
		&ir.Declaration{Kind: ir.DeclVariable, Name: "a", WireName: "a", Type: ir.NewPrimitive(ir.PrimNumber)},
		&ir.Declaration{Kind: ir.DeclVariable, Name: "b", WireName: "b", Type: ir.NewPrimitive(ir.PrimNumber)},
	)
	got := EmitUnit(final, "test")
	if !strings.Contains(got, "external num a;\n\n@JS(\"b\")") {
		t.Errorf("declarations should be blank-line separated:\n%s", got)
	}
}
