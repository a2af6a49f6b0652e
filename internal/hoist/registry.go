// Package hoist lifts anonymous record types out of IR trees into named
// top-level interface declarations, deduplicating structurally identical
// shapes through a canonical hash.
package hoist

import (
	"fmt"

	"github.com/codewithsam110g/dartify/internal/ir"
)

// Registry tracks hoisted shapes for one compilation unit. It maps the
// canonical structural hash to the generated name and the generated name to
// its materialized interface declaration. The registry is an explicit value
// threaded through the passes — never package-level state — so units stay
// independent and could run in parallel.
type Registry struct {
	byHash  map[uint64]string
	decls   map[string]*ir.Declaration
	order   []string
	counter int
}

// NewRegistry creates an empty per-unit registry.
func NewRegistry() *Registry {
	return &Registry{
		byHash: make(map[uint64]string),
		decls:  make(map[string]*ir.Declaration),
	}
}

// Lookup returns the generated name for a canonical hash, if one exists.
func (g *Registry) Lookup(hash uint64) (string, bool) {
	name, ok := g.byHash[hash]
	return name, ok
}

// Allocate reserves the next generated name for a canonical hash. Names are
// stable within one unit: a monotonic counter, never reused.
func (g *Registry) Allocate(hash uint64) string {
	g.counter++
	name := fmt.Sprintf("AnonInterface$%d", g.counter)
	g.byHash[hash] = name
	return name
}

// Register stores the materialized interface for a generated name.
func (g *Registry) Register(name string, decl *ir.Declaration) {
	if _, ok := g.decls[name]; !ok {
		g.order = append(g.order, name)
	}
	g.decls[name] = decl
}

// Names returns the generated names in allocation order.
func (g *Registry) Names() []string {
	return g.order
}

// Declaration returns the materialized interface for a generated name.
func (g *Registry) Declaration(name string) *ir.Declaration {
	return g.decls[name]
}

// Len returns the number of hoisted declarations.
func (g *Registry) Len() int {
	return len(g.order)
}
