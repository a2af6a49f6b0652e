package ir

// DeclKind identifies the variant of a Declaration.
type DeclKind string

const (
	DeclInterface DeclKind = "interface"
	DeclClass     DeclKind = "class"
	DeclFunction  DeclKind = "function"
	DeclVariable  DeclKind = "variable"
	DeclEnum      DeclKind = "enum"
	DeclTypeAlias DeclKind = "typealias"
)

// Declaration is one top-level entity after namespace flattening. Name is the
// module-prefixed qualified name (dot separated); WireName is the external
// identifier a binding must reference at runtime — it differs from Name only
// after overload renaming.
type Declaration struct {
	Kind     DeclKind `json:"kind"`
	Name     string   `json:"name"`
	WireName string   `json:"wireName"`

	// Interface and class members.
	Properties      []Property       `json:"properties,omitempty"`
	Methods         []Method         `json:"methods,omitempty"`
	Constructors    [][]Parameter    `json:"constructors,omitempty"`
	Getters         []Accessor       `json:"getters,omitempty"`
	Setters         []Accessor       `json:"setters,omitempty"`
	IndexSignatures []IndexSignature `json:"indexSignatures,omitempty"`
	Abstract        bool             `json:"abstract,omitempty"`

	// Function signature.
	Params []Parameter `json:"params,omitempty"`
	Return *Type       `json:"return,omitempty"`

	// Variable type (also the aliased type for DeclTypeAlias).
	Type     *Type `json:"type,omitempty"`
	Readonly bool  `json:"readonly,omitempty"`

	// Enum members.
	EnumMembers []EnumMember `json:"enumMembers,omitempty"`
}

// EnumMember is one enum constant. Value is a string, a float64, or nil when
// the initializer could not be evaluated.
type EnumMember struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Clone returns a shallow copy suitable for rename-and-keep-original
// transformations. Member slices are copied one level deep so the transformer
// can rewrite them without aliasing the source declaration.
func (d *Declaration) Clone() *Declaration {
	c := *d
	c.Properties = append([]Property(nil), d.Properties...)
	c.Methods = append([]Method(nil), d.Methods...)
	c.Constructors = append([][]Parameter(nil), d.Constructors...)
	c.Getters = append([]Accessor(nil), d.Getters...)
	c.Setters = append([]Accessor(nil), d.Setters...)
	c.IndexSignatures = append([]IndexSignature(nil), d.IndexSignatures...)
	c.EnumMembers = append([]EnumMember(nil), d.EnumMembers...)
	return &c
}

// TypeRoots returns pointers to every Type reachable from the declaration's
// own members, in declaration order. The hoister rewrites these in place.
func (d *Declaration) TypeRoots() []*Type {
	var roots []*Type
	add := func(t *Type) {
		if t != nil {
			roots = append(roots, t)
		}
	}
	for i := range d.Properties {
		add(d.Properties[i].Type)
	}
	for i := range d.Methods {
		for j := range d.Methods[i].Params {
			add(d.Methods[i].Params[j].Type)
		}
		add(d.Methods[i].Return)
	}
	for _, ctor := range d.Constructors {
		for i := range ctor {
			add(ctor[i].Type)
		}
	}
	for i := range d.Getters {
		add(d.Getters[i].Type)
	}
	for i := range d.Setters {
		add(d.Setters[i].Type)
	}
	for i := range d.IndexSignatures {
		add(d.IndexSignatures[i].KeyType)
		add(d.IndexSignatures[i].ValueType)
	}
	for i := range d.Params {
		add(d.Params[i].Type)
	}
	add(d.Return)
	add(d.Type)
	return roots
}

// DeclMap is an insertion-ordered multi-map from qualified name to the raw
// declarations sharing that name. Multiple entries per key are legitimate:
// function overloads and TypeScript declaration merging both produce them.
type DeclMap struct {
	order   []string
	entries map[string][]*Declaration
}

// NewDeclMap creates an empty ordered multi-map.
func NewDeclMap() *DeclMap {
	return &DeclMap{entries: make(map[string][]*Declaration)}
}

// Add appends a declaration under its qualified name, preserving first-seen
// key order and per-key declaration order.
func (m *DeclMap) Add(d *Declaration) {
	if _, ok := m.entries[d.Name]; !ok {
		m.order = append(m.order, d.Name)
	}
	m.entries[d.Name] = append(m.entries[d.Name], d)
}

// Keys returns the qualified names in first-insertion order.
func (m *DeclMap) Keys() []string {
	return m.order
}

// Get returns the declarations registered under name, in insertion order.
func (m *DeclMap) Get(name string) []*Declaration {
	return m.entries[name]
}

// Has reports whether any declaration is registered under name.
func (m *DeclMap) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Len returns the number of distinct qualified names.
func (m *DeclMap) Len() int {
	return len(m.order)
}

// FinalMap is an insertion-ordered map from qualified name to exactly one
// declaration — the transformer's output and the emitter's input.
type FinalMap struct {
	order   []string
	entries map[string]*Declaration
}

// NewFinalMap creates an empty ordered map.
func NewFinalMap() *FinalMap {
	return &FinalMap{entries: make(map[string]*Declaration)}
}

// Put registers a declaration under its qualified name. It reports false and
// leaves the map unchanged when the name is already taken.
func (m *FinalMap) Put(d *Declaration) bool {
	if _, ok := m.entries[d.Name]; ok {
		return false
	}
	m.order = append(m.order, d.Name)
	m.entries[d.Name] = d
	return true
}

// Keys returns the qualified names in insertion order.
func (m *FinalMap) Keys() []string {
	return m.order
}

// Get returns the declaration registered under name, or nil.
func (m *FinalMap) Get(name string) *Declaration {
	return m.entries[name]
}

// Has reports whether name is taken.
func (m *FinalMap) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Len returns the number of declarations.
func (m *FinalMap) Len() int {
	return len(m.order)
}
