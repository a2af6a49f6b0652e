package codegen

import (
	"fmt"
	"strings"

	"github.com/codewithsam110g/dartify/internal/ir"
)

// EmitUnit serializes a transformed declaration set into one Dart library of
// package:js bindings. Declarations are emitted in map order, separated by a
// blank line, under a library header that wires the file to the JS global
// scope.
func EmitUnit(final *ir.FinalMap, library string) string {
	e := NewEmitter()
	e.Line("@JS()")
	e.Line("library %s;", library)
	e.Blank()
	e.Line("import 'package:js/js.dart';")
	for _, name := range final.Keys() {
		e.Blank()
		emitDeclaration(e, final.Get(name))
	}
	return e.String()
}

func emitDeclaration(e *Emitter, d *ir.Declaration) {
	switch d.Kind {
	case ir.DeclVariable:
		emitVariable(e, d)
	case ir.DeclFunction:
		emitFunction(e, d)
	case ir.DeclEnum:
		emitEnum(e, d)
	case ir.DeclInterface:
		emitInterface(e, d)
	case ir.DeclClass:
		emitClass(e, d)
	case ir.DeclTypeAlias:
		emitTypeAlias(e, d)
	}
}

// declWire returns the runtime JS identifier a binding must reference: the
// original name when the transformer renamed the declaration, otherwise the
// declaration's own qualified name.
func declWire(d *ir.Declaration) string {
	if d.WireName != "" {
		return WireName(d.WireName)
	}
	return WireName(d.Name)
}

func emitVariable(e *Emitter, d *ir.Declaration) {
	e.Line("@JS(%q)", declWire(d))
	if d.Readonly {
		e.Line("external %s get %s;", TypeText(d.Type), DartName(d.Name))
		return
	}
	e.Line("external %s %s;", TypeText(d.Type), DartName(d.Name))
}

func emitFunction(e *Emitter, d *ir.Declaration) {
	e.Line("@JS(%q)", declWire(d))
	e.Line("external %s %s(%s);", TypeText(d.Return), DartName(d.Name), paramList(d.Params))
}

// emitEnum renders a TypeScript enum as a class of static getters so the
// member values are read from the JS object at runtime rather than baked in.
func emitEnum(e *Emitter, d *ir.Declaration) {
	e.Line("@JS(%q)", declWire(d))
	e.Block("class %s", DartName(d.Name))
	for _, m := range d.EnumMembers {
		e.Line("external static %s get %s;", enumValueTypeText(m.Value), sanitizeIdent(m.Name))
	}
	e.EndBlock()
}

// emitInterface renders an interface as an @anonymous class: a named-parameter
// factory for object-literal construction plus getter/setter pairs per
// property.
func emitInterface(e *Emitter, d *ir.Declaration) {
	e.Line("@JS()")
	e.Line("@anonymous")
	e.Block("class %s", DartName(d.Name))
	name := DartName(d.Name)
	if len(d.Constructors) > 0 {
		e.Line("external factory %s(%s);", name, namedParamList(d.Constructors[0]))
	} else if len(d.Properties) > 0 {
		e.Line("external factory %s(%s);", name, namedParamList(propertyParams(d.Properties)))
	} else {
		e.Line("external factory %s();", name)
	}
	emitAccessorMembers(e, d)
	emitMethods(e, d)
	emitIndexSignatures(e, d)
	e.EndBlock()
}

func emitClass(e *Emitter, d *ir.Declaration) {
	e.Line("@JS(%q)", declWire(d))
	e.Block("class %s", DartName(d.Name))
	name := DartName(d.Name)
	if !d.Abstract && len(d.Constructors) > 0 {
		e.Line("external factory %s(%s);", name, paramList(d.Constructors[0]))
		for i, ctor := range d.Constructors[1:] {
			e.Line("external factory %s.create%d(%s);", name, i+2, paramList(ctor))
		}
	}
	for _, p := range d.Properties {
		prefix := "external "
		if p.Static {
			prefix = "external static "
		}
		if p.Readonly {
			e.Line("%s%s get %s;", prefix, TypeText(p.Type), sanitizeIdent(p.Name))
			continue
		}
		e.Line("%s%s %s;", prefix, TypeText(p.Type), sanitizeIdent(p.Name))
	}
	for _, g := range d.Getters {
		if g.Static {
			e.Line("external static %s get %s;", TypeText(g.Type), sanitizeIdent(g.Name))
			continue
		}
		e.Line("external %s get %s;", TypeText(g.Type), sanitizeIdent(g.Name))
	}
	for _, s := range d.Setters {
		if s.Static {
			e.Line("external static set %s(%s value);", sanitizeIdent(s.Name), TypeText(s.Type))
			continue
		}
		e.Line("external set %s(%s value);", sanitizeIdent(s.Name), TypeText(s.Type))
	}
	emitMethods(e, d)
	emitIndexSignatures(e, d)
	e.EndBlock()
}

func emitAccessorMembers(e *Emitter, d *ir.Declaration) {
	for _, p := range d.Properties {
		e.Line("external %s get %s;", TypeText(p.Type), sanitizeIdent(p.Name))
		if !p.Readonly {
			e.Line("external set %s(%s value);", sanitizeIdent(p.Name), TypeText(p.Type))
		}
	}
	for _, g := range d.Getters {
		e.Line("external %s get %s;", TypeText(g.Type), sanitizeIdent(g.Name))
	}
	for _, s := range d.Setters {
		e.Line("external set %s(%s value);", sanitizeIdent(s.Name), TypeText(s.Type))
	}
}

func emitMethods(e *Emitter, d *ir.Declaration) {
	for _, m := range d.Methods {
		if m.WireName != "" && m.WireName != m.Name {
			e.Line("@JS(%q)", m.WireName)
		}
		prefix := "external "
		if m.Static {
			prefix = "external static "
		}
		e.Line("%s%s %s(%s);", prefix, TypeText(m.Return), sanitizeIdent(m.Name), paramList(m.Params))
	}
}

func emitIndexSignatures(e *Emitter, d *ir.Declaration) {
	for range d.IndexSignatures {
		e.Line("external dynamic operator [](Object key);")
		e.Line("external void operator []=(Object key, dynamic value);")
		break
	}
}

func emitTypeAlias(e *Emitter, d *ir.Declaration) {
	e.Line("typedef %s = %s;", DartName(d.Name), TypeText(d.Type))
}

// paramList renders a positional parameter list, required parameters first
// and optional or rest parameters bracketed.
func paramList(params []ir.Parameter) string {
	var required, optional []string
	for i, p := range params {
		text := fmt.Sprintf("%s %s", TypeText(p.Type), paramName(p, i))
		if p.Optional || p.Rest {
			optional = append(optional, text)
		} else {
			required = append(required, text)
		}
	}
	joined := strings.Join(required, ", ")
	if len(optional) > 0 {
		bracketed := "[" + strings.Join(optional, ", ") + "]"
		if joined != "" {
			joined += ", " + bracketed
		} else {
			joined = bracketed
		}
	}
	return joined
}

// namedParamList renders every parameter as an optional named parameter, the
// shape @anonymous factories require.
func namedParamList(params []ir.Parameter) string {
	if len(params) == 0 {
		return ""
	}
	texts := make([]string, len(params))
	for i, p := range params {
		texts[i] = fmt.Sprintf("%s %s", TypeText(p.Type), paramName(p, i))
	}
	return "{" + strings.Join(texts, ", ") + "}"
}

// propertyParams turns an interface's properties into factory parameters for
// interfaces that never declared a construct signature.
func propertyParams(props []ir.Property) []ir.Parameter {
	params := make([]ir.Parameter, len(props))
	for i, p := range props {
		params[i] = ir.Parameter{Name: p.Name, Type: p.Type, Optional: p.Optional}
	}
	return params
}

func paramName(p ir.Parameter, i int) string {
	if p.Name == "" {
		return fmt.Sprintf("arg%d", i)
	}
	return sanitizeIdent(p.Name)
}
