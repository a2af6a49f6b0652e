package hoist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/codewithsam110g/dartify/internal/ir"
)

// canonicalHash returns the structural hash of a record. Member lists are
// sorted by name first so source declaration order never affects the hash,
// and the serialization is an explicit field-by-field writer: hash stability
// must not depend on struct layout or any general-purpose encoder.
func canonicalHash(rec *ir.Record) uint64 {
	var sb strings.Builder
	writeCanonicalRecord(&sb, rec)
	return xxh3.HashString(sb.String())
}

func writeCanonicalRecord(sb *strings.Builder, rec *ir.Record) {
	sb.WriteString("record{")

	props := append([]ir.Property(nil), rec.Properties...)
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	sb.WriteString("props[")
	for _, p := range props {
		fmt.Fprintf(sb, "%s:o=%t,r=%t,t=", p.Name, p.Optional, p.Readonly)
		writeCanonicalType(sb, p.Type)
		sb.WriteByte(';')
	}
	sb.WriteString("]")

	methods := append([]ir.Method(nil), rec.Methods...)
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	sb.WriteString("methods[")
	for _, m := range methods {
		fmt.Fprintf(sb, "%s:o=%t,p=", m.Name, m.Optional)
		writeCanonicalParams(sb, m.Params)
		sb.WriteString(",ret=")
		writeCanonicalType(sb, m.Return)
		sb.WriteByte(';')
	}
	sb.WriteString("]")

	// Constructor order is significant (overload order), not sorted.
	sb.WriteString("ctors[")
	for _, ctor := range rec.Constructors {
		writeCanonicalParams(sb, ctor)
		sb.WriteByte(';')
	}
	sb.WriteString("]")

	getters := append([]ir.Accessor(nil), rec.Getters...)
	sort.Slice(getters, func(i, j int) bool { return getters[i].Name < getters[j].Name })
	sb.WriteString("get[")
	for _, a := range getters {
		fmt.Fprintf(sb, "%s:t=", a.Name)
		writeCanonicalType(sb, a.Type)
		sb.WriteByte(';')
	}
	sb.WriteString("]")

	setters := append([]ir.Accessor(nil), rec.Setters...)
	sort.Slice(setters, func(i, j int) bool { return setters[i].Name < setters[j].Name })
	sb.WriteString("set[")
	for _, a := range setters {
		fmt.Fprintf(sb, "%s:t=", a.Name)
		writeCanonicalType(sb, a.Type)
		sb.WriteByte(';')
	}
	sb.WriteString("]")

	sb.WriteString("index[")
	for _, is := range rec.IndexSignatures {
		sb.WriteString("k=")
		writeCanonicalType(sb, is.KeyType)
		sb.WriteString(",v=")
		writeCanonicalType(sb, is.ValueType)
		sb.WriteByte(';')
	}
	sb.WriteString("]}")
}

func writeCanonicalType(sb *strings.Builder, t *ir.Type) {
	if t == nil {
		sb.WriteString("nil")
		return
	}
	fmt.Fprintf(sb, "%s(n=%t", t.Kind, t.Nullable)
	switch t.Kind {
	case ir.KindPrimitive:
		fmt.Fprintf(sb, ",%s", t.Primitive)
	case ir.KindLiteral:
		fmt.Fprintf(sb, ",%T:%v", t.Literal, t.Literal)
	case ir.KindArray:
		sb.WriteString(",el=")
		writeCanonicalType(sb, t.Element)
	case ir.KindTuple:
		sb.WriteString(",els=[")
		for _, el := range t.Elements {
			fmt.Fprintf(sb, "o=%t,r=%t,t=", el.Optional, el.Rest)
			writeCanonicalType(sb, el.Type)
			sb.WriteByte(';')
		}
		sb.WriteString("]")
	case ir.KindUnion, ir.KindIntersection:
		sb.WriteString(",mem=[")
		for _, m := range t.Members {
			writeCanonicalType(sb, m)
			sb.WriteByte(';')
		}
		sb.WriteString("]")
	case ir.KindReference:
		fmt.Fprintf(sb, ",ref=%s,args=[", t.Name)
		for _, a := range t.TypeArgs {
			writeCanonicalType(sb, a)
			sb.WriteByte(';')
		}
		sb.WriteString("]")
	case ir.KindFunction:
		sb.WriteString(",fn:p=")
		writeCanonicalParams(sb, t.Params)
		sb.WriteString(",ret=")
		writeCanonicalType(sb, t.Return)
	case ir.KindRecord:
		// Nested records are hoisted to references before the parent is
		// hashed; a record reaching here is a hoist-skipped inline shape.
		writeCanonicalRecord(sb, t.Record)
	}
	sb.WriteByte(')')
}

func writeCanonicalParams(sb *strings.Builder, params []ir.Parameter) {
	sb.WriteString("[")
	for _, p := range params {
		// Parameter names are call-site irrelevant; only position, flags,
		// and types shape the canonical form.
		fmt.Fprintf(sb, "o=%t,r=%t,t=", p.Optional, p.Rest)
		writeCanonicalType(sb, p.Type)
		sb.WriteByte(';')
	}
	sb.WriteString("]")
}
