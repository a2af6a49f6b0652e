package codegen

import (
	"fmt"
	"math"
	"strings"

	"github.com/codewithsam110g/dartify/internal/ir"
)

// primitiveText maps TypeScript primitive keywords to Dart types.
var primitiveText = map[ir.Primitive]string{
	ir.PrimString:    "String",
	ir.PrimNumber:    "num",
	ir.PrimBoolean:   "bool",
	ir.PrimBigInt:    "BigInt",
	ir.PrimVoid:      "void",
	ir.PrimAny:       "dynamic",
	ir.PrimUnknown:   "dynamic",
	ir.PrimNever:     "Never",
	ir.PrimUndefined: "dynamic",
}

// wellKnownRefs maps cross-ecosystem type names onto their Dart counterparts.
var wellKnownRefs = map[string]string{
	"Promise":     "Future",
	"Date":        "DateTime",
	"RegExp":      "RegExp",
	"Map":         "Map",
	"ReadonlyMap": "Map",
	"Set":         "Set",
	"ReadonlySet": "Set",
	"Iterable":    "Iterable",
	"Error":       "Error",
	"Object":      "Object",
	"Function":    "Function",
}

// TypeText maps a resolved type to its Dart textual form. Nullability is
// applied exactly once, at the outermost emitted type.
func TypeText(t *ir.Type) string {
	text := rawTypeText(t)
	if t != nil && t.Nullable && nullableSuffixApplies(text) {
		return text + "?"
	}
	return text
}

// nullableSuffixApplies reports whether appending `?` is meaningful: dynamic
// (including the commented union/intersection fallbacks) and void are already
// nullable in Dart, and a `?` must not be doubled.
func nullableSuffixApplies(text string) bool {
	return !strings.HasPrefix(text, "dynamic") && text != "void" && !strings.HasSuffix(text, "?")
}

func rawTypeText(t *ir.Type) string {
	if t == nil {
		return "dynamic"
	}
	switch t.Kind {
	case ir.KindPrimitive:
		if text, ok := primitiveText[t.Primitive]; ok {
			return text
		}
		return "dynamic"

	case ir.KindLiteral:
		return literalTypeText(t.Literal)

	case ir.KindArray:
		return fmt.Sprintf("List<%s>", TypeText(t.Element))

	case ir.KindTuple:
		return tupleText(t)

	case ir.KindUnion:
		return unionText(t)

	case ir.KindIntersection:
		return fmt.Sprintf("dynamic /*%s*/", joinMemberTexts(t.Members, "&"))

	case ir.KindReference:
		return referenceText(t)

	case ir.KindFunction:
		return functionTypeText(t)

	case ir.KindRecord:
		// Records reaching emission were deliberately left inline (hoist
		// skipped on collision); only dynamic can express them.
		return "dynamic"
	}
	return "dynamic"
}

// literalTypeText widens a literal to its base Dart type.
func literalTypeText(v any) string {
	switch v.(type) {
	case string:
		return "String"
	case float64:
		return "num"
	case bool:
		return "bool"
	}
	return "dynamic"
}

// tupleText renders a tuple as a homogeneous list when every element maps to
// the same Dart type, otherwise as List<dynamic>.
func tupleText(t *ir.Type) string {
	if len(t.Elements) == 0 {
		return "List<dynamic>"
	}
	first := TypeText(t.Elements[0].Type)
	for _, el := range t.Elements[1:] {
		if TypeText(el.Type) != first {
			return "List<dynamic>"
		}
	}
	return fmt.Sprintf("List<%s>", first)
}

// unionText collapses a single-member union and degrades multi-member unions
// to dynamic annotated with the original alternatives.
func unionText(t *ir.Type) string {
	if len(t.Members) == 1 {
		return rawTypeText(t.Members[0])
	}
	return fmt.Sprintf("dynamic /*%s*/", joinMemberTexts(t.Members, "|"))
}

func joinMemberTexts(members []*ir.Type, sep string) string {
	texts := make([]string, len(members))
	for i, m := range members {
		texts[i] = rawTypeText(m)
	}
	return strings.Join(texts, sep)
}

func referenceText(t *ir.Type) string {
	name, ok := wellKnownRefs[t.Name]
	if !ok {
		name = DartName(t.Name)
	}
	if len(t.TypeArgs) == 0 {
		return name
	}
	args := make([]string, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		args[i] = TypeText(a)
	}
	return fmt.Sprintf("%s<%s>", name, strings.Join(args, ", "))
}

// functionTypeText renders a Dart function type with required parameters
// first and optional parameters bracketed.
func functionTypeText(t *ir.Type) string {
	var required, optional []string
	for _, p := range t.Params {
		text := TypeText(p.Type)
		if p.Optional || p.Rest {
			optional = append(optional, text)
		} else {
			required = append(required, text)
		}
	}
	params := strings.Join(required, ", ")
	if len(optional) > 0 {
		bracketed := "[" + strings.Join(optional, ", ") + "]"
		if params != "" {
			params += ", " + bracketed
		} else {
			params = bracketed
		}
	}
	return fmt.Sprintf("%s Function(%s)", TypeText(t.Return), params)
}

// enumValueTypeText infers the Dart type of an enum member from the shape of
// its literal value.
func enumValueTypeText(v any) string {
	switch val := v.(type) {
	case string:
		return "String"
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return "int"
		}
		return "double"
	}
	return "dynamic"
}
