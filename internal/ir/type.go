// Package ir defines the intermediate representation used throughout dartify.
// Types and declarations are normalized here after syntax resolution, before
// hoisting, transformation, and Dart emission.
package ir

// Kind identifies the primary variant of a Type node.
type Kind string

const (
	KindPrimitive    Kind = "primitive"    // string, number, boolean, ...
	KindLiteral      Kind = "literal"      // "a", 42, -1n, true
	KindArray        Kind = "array"        // T[] / Array<T>
	KindTuple        Kind = "tuple"        // [A, B?, ...C[]]
	KindUnion        Kind = "union"        // A | B
	KindIntersection Kind = "intersection" // A & B
	KindReference    Kind = "reference"    // Foo, ns.Bar<T>
	KindFunction     Kind = "function"     // (a: A) => R
	KindRecord       Kind = "record"       // inline { ... } — the only hoistable variant
)

// Primitive identifies the keyword kind of a KindPrimitive node.
type Primitive string

const (
	PrimString    Primitive = "string"
	PrimNumber    Primitive = "number"
	PrimBoolean   Primitive = "boolean"
	PrimBigInt    Primitive = "bigint"
	PrimVoid      Primitive = "void"
	PrimAny       Primitive = "any"
	PrimUnknown   Primitive = "unknown"
	PrimNever     Primitive = "never"
	PrimUndefined Primitive = "undefined"
)

// Type represents one resolved type expression. Exactly one variant's fields
// are populated, selected by Kind. Nodes are created by the type resolver,
// rewritten in place by the hoister (Record → Reference), then immutable.
type Type struct {
	Kind Kind `json:"kind"`

	// Nullable is true when a union/intersection contained null or undefined.
	Nullable bool `json:"nullable,omitempty"`

	// Primitive holds the keyword kind for KindPrimitive.
	Primitive Primitive `json:"primitive,omitempty"`

	// Literal holds the literal value (string, float64, bool, or a bigint
	// digit string) for KindLiteral.
	Literal any `json:"literal,omitempty"`

	// Element holds the element type for KindArray.
	Element *Type `json:"element,omitempty"`

	// Elements holds the ordered elements for KindTuple.
	Elements []TupleElement `json:"elements,omitempty"`

	// Members holds the member types for KindUnion and KindIntersection.
	Members []*Type `json:"members,omitempty"`

	// Name holds the dotted entity name for KindReference.
	Name string `json:"name,omitempty"`

	// TypeArgs holds generic arguments for KindReference.
	TypeArgs []*Type `json:"typeArgs,omitempty"`

	// Params and Return describe KindFunction.
	Params []Parameter `json:"params,omitempty"`
	Return *Type       `json:"return,omitempty"`

	// Record holds the member groups for KindRecord.
	Record *Record `json:"record,omitempty"`
}

// TupleElement is one positional tuple member.
type TupleElement struct {
	Type     *Type `json:"type"`
	Optional bool  `json:"optional,omitempty"`
	Rest     bool  `json:"rest,omitempty"`
}

// Parameter is one ordered function/method/constructor parameter.
type Parameter struct {
	Name     string `json:"name"`
	Type     *Type  `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Rest     bool   `json:"rest,omitempty"`
}

// Property is one named value member. The same shape is used for interface
// members, class members, and anonymous Record members so that structural
// canonicalization treats them uniformly.
type Property struct {
	Name     string `json:"name"`
	Type     *Type  `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Readonly bool   `json:"readonly,omitempty"`
	Static   bool   `json:"static,omitempty"`
}

// Method is one named callable member.
type Method struct {
	Name     string      `json:"name"`
	Params   []Parameter `json:"params"`
	Return   *Type       `json:"return"`
	Optional bool        `json:"optional,omitempty"`
	Static   bool        `json:"static,omitempty"`
	// WireName is the original external name when the method was renamed
	// during overload grouping. Empty means the name was never rewritten.
	WireName string `json:"wireName,omitempty"`
}

// Accessor is one get or set accessor member.
type Accessor struct {
	Name   string `json:"name"`
	Type   *Type  `json:"type"`
	Static bool   `json:"static,omitempty"`
}

// IndexSignature is a dynamic-key member like [key: string]: T.
type IndexSignature struct {
	KeyType   *Type `json:"keyType"`
	ValueType *Type `json:"valueType"`
}

// Record holds the member groups of an inline object type.
type Record struct {
	Properties      []Property       `json:"properties,omitempty"`
	Methods         []Method         `json:"methods,omitempty"`
	Constructors    [][]Parameter    `json:"constructors,omitempty"`
	Getters         []Accessor       `json:"getters,omitempty"`
	Setters         []Accessor       `json:"setters,omitempty"`
	IndexSignatures []IndexSignature `json:"indexSignatures,omitempty"`
}

// Any returns the conservative fallback type.
func Any() *Type {
	return &Type{Kind: KindPrimitive, Primitive: PrimAny}
}

// NewPrimitive returns a primitive node of the given keyword kind.
func NewPrimitive(p Primitive) *Type {
	return &Type{Kind: KindPrimitive, Primitive: p}
}

// IsNullish reports whether t is a null-like member of a union or
// intersection (literal null, or the undefined primitive).
func (t *Type) IsNullish() bool {
	if t == nil {
		return true
	}
	if t.Kind == KindLiteral && t.Literal == nil {
		return true
	}
	return t.Kind == KindPrimitive && t.Primitive == PrimUndefined
}
