package resolver

import (
	"strconv"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/ir"
)

// DeclResolver converts declaration statements into Declaration IR entities,
// flattening nested namespaces into dotted qualified names. It shares one
// TypeResolver so member types and top-level types use the same memo.
type DeclResolver struct {
	types *TypeResolver
	diags *diagnostic.Collector
	file  *ast.SourceFile
}

// NewDeclResolver creates a declaration resolver for one source file.
func NewDeclResolver(file *ast.SourceFile, diags *diagnostic.Collector) *DeclResolver {
	return &DeclResolver{
		types: NewTypeResolver(file, diags),
		diags: diags,
		file:  file,
	}
}

// Types returns the shared type resolver.
func (r *DeclResolver) Types() *TypeResolver {
	return r.types
}

// ResolveSourceFile walks every statement of a source unit and accumulates
// declarations into an ordered multi-map. Multiple declarations sharing one
// qualified name stay grouped in source order: overload grouping and
// declaration merging need them all.
func (r *DeclResolver) ResolveSourceFile(sf *ast.SourceFile) *ir.DeclMap {
	decls := ir.NewDeclMap()
	for _, stmt := range sf.Statements.Nodes {
		r.resolveStatement(stmt, "", decls)
	}
	return decls
}

// resolveStatement dispatches one top-level or namespace-nested statement.
// prefix is the enclosing module path ("" or "outer.inner.").
func (r *DeclResolver) resolveStatement(node *ast.Node, prefix string, decls *ir.DeclMap) {
	switch node.Kind {
	case ast.KindInterfaceDeclaration:
		decls.Add(r.resolveInterface(node, prefix))

	case ast.KindClassDeclaration:
		decls.Add(r.resolveClass(node, prefix))

	case ast.KindFunctionDeclaration:
		decls.Add(r.resolveFunction(node, prefix))

	case ast.KindVariableStatement:
		for _, d := range r.resolveVariables(node, prefix) {
			decls.Add(d)
		}

	case ast.KindEnumDeclaration:
		decls.Add(r.resolveEnum(node, prefix))

	case ast.KindTypeAliasDeclaration:
		decls.Add(r.resolveTypeAlias(node, prefix))

	case ast.KindModuleDeclaration:
		r.resolveModule(node, prefix, decls)

	default:
		// Imports, exports, and expression statements carry no binding
		// information for declaration output.
	}
}

// resolveModule walks a namespace/module container, extending the dotted
// prefix. This is the only module-hierarchy mechanism: the Declaration IR has
// no container kind, everything flattens to top-level qualified names.
func (r *DeclResolver) resolveModule(node *ast.Node, prefix string, decls *ir.DeclMap) {
	mod := node.AsModuleDeclaration()
	name := ""
	if mod.Name() != nil {
		name = strings.Trim(mod.Name().Text(), `"'`)
	}
	body := mod.Body
	if body == nil {
		return
	}
	inner := prefix + name + "."
	switch body.Kind {
	case ast.KindModuleBlock:
		for _, stmt := range body.AsModuleBlock().Statements.Nodes {
			r.resolveStatement(stmt, inner, decls)
		}
	case ast.KindModuleDeclaration:
		// Dotted form: `declare namespace a.b { … }`.
		r.resolveModule(body, inner, decls)
	}
}

func (r *DeclResolver) resolveInterface(node *ast.Node, prefix string) *ir.Declaration {
	iface := node.AsInterfaceDeclaration()
	qualified := prefix + iface.Name().Text()
	rec := r.types.ResolveMembers(iface.Members.Nodes, 0)
	return &ir.Declaration{
		Kind:            ir.DeclInterface,
		Name:            qualified,
		WireName:        qualified,
		Properties:      rec.Properties,
		Methods:         rec.Methods,
		Constructors:    rec.Constructors,
		Getters:         rec.Getters,
		Setters:         rec.Setters,
		IndexSignatures: rec.IndexSignatures,
	}
}

func (r *DeclResolver) resolveClass(node *ast.Node, prefix string) *ir.Declaration {
	class := node.AsClassDeclaration()
	name := ""
	if class.Name() != nil {
		name = class.Name().Text()
	}
	qualified := prefix + name
	decl := &ir.Declaration{
		Kind:     ir.DeclClass,
		Name:     qualified,
		WireName: qualified,
		Abstract: hasModifier(node, ast.ModifierFlagsAbstract),
	}
	if class.Members == nil {
		return decl
	}
	for _, m := range class.Members.Nodes {
		switch m.Kind {
		case ast.KindPropertyDeclaration:
			pd := m.AsPropertyDeclaration()
			decl.Properties = append(decl.Properties, ir.Property{
				Name:     memberName(pd.Name()),
				Type:     r.types.Resolve(pd.Type, 0),
				Optional: isQuestionPostfix(pd.PostfixToken),
				Readonly: hasModifier(m, ast.ModifierFlagsReadonly),
				Static:   hasModifier(m, ast.ModifierFlagsStatic),
			})

		case ast.KindMethodDeclaration:
			md := m.AsMethodDeclaration()
			decl.Methods = append(decl.Methods, ir.Method{
				Name:     memberName(md.Name()),
				Params:   r.types.ResolveParameters(md.Parameters.Nodes, 0),
				Return:   r.types.Resolve(md.Type, 0),
				Optional: isQuestionPostfix(md.PostfixToken),
				Static:   hasModifier(m, ast.ModifierFlagsStatic),
			})

		case ast.KindConstructor:
			cd := m.AsConstructorDeclaration()
			decl.Constructors = append(decl.Constructors, r.types.ResolveParameters(cd.Parameters.Nodes, 0))

		case ast.KindGetAccessor:
			ga := m.AsGetAccessorDeclaration()
			decl.Getters = append(decl.Getters, ir.Accessor{
				Name:   memberName(ga.Name()),
				Type:   r.types.Resolve(ga.Type, 0),
				Static: hasModifier(m, ast.ModifierFlagsStatic),
			})

		case ast.KindSetAccessor:
			sa := m.AsSetAccessorDeclaration()
			decl.Setters = append(decl.Setters, ir.Accessor{
				Name:   memberName(sa.Name()),
				Type:   r.types.setterValueType(sa.Parameters.Nodes, 0),
				Static: hasModifier(m, ast.ModifierFlagsStatic),
			})

		case ast.KindIndexSignature:
			is := m.AsIndexSignatureDeclaration()
			decl.IndexSignatures = append(decl.IndexSignatures, ir.IndexSignature{
				KeyType:   r.types.indexKeyType(is.Parameters.Nodes, 0),
				ValueType: r.types.Resolve(is.Type, 0),
			})
		}
	}
	return decl
}

func (r *DeclResolver) resolveFunction(node *ast.Node, prefix string) *ir.Declaration {
	fn := node.AsFunctionDeclaration()
	name := ""
	if fn.Name() != nil {
		name = fn.Name().Text()
	}
	qualified := prefix + name
	return &ir.Declaration{
		Kind:     ir.DeclFunction,
		Name:     qualified,
		WireName: qualified,
		Params:   r.types.ResolveParameters(fn.Parameters.Nodes, 0),
		Return:   r.types.Resolve(fn.Type, 0),
	}
}

// resolveVariables expands one variable statement into one declaration per
// declared variable — `declare var a: number, b: string;` yields two.
func (r *DeclResolver) resolveVariables(node *ast.Node, prefix string) []*ir.Declaration {
	stmt := node.AsVariableStatement()
	readonly := stmt.DeclarationList.Flags&ast.NodeFlagsConst != 0
	list := stmt.DeclarationList.AsVariableDeclarationList()

	var decls []*ir.Declaration
	for _, d := range list.Declarations.Nodes {
		vd := d.AsVariableDeclaration()
		qualified := prefix + memberName(vd.Name())
		decls = append(decls, &ir.Declaration{
			Kind:     ir.DeclVariable,
			Name:     qualified,
			WireName: qualified,
			Type:     r.types.Resolve(vd.Type, 0),
			Readonly: readonly,
		})
	}
	return decls
}

func (r *DeclResolver) resolveEnum(node *ast.Node, prefix string) *ir.Declaration {
	enum := node.AsEnumDeclaration()
	qualified := prefix + enum.Name().Text()
	decl := &ir.Declaration{
		Kind:     ir.DeclEnum,
		Name:     qualified,
		WireName: qualified,
	}
	// Members without initializers auto-increment from the previous numeric
	// value, starting at 0 — TS enum semantics.
	next := 0.0
	for _, m := range enum.Members.Nodes {
		em := m.AsEnumMember()
		value, numeric := r.enumMemberValue(em.Initializer, next)
		if f, ok := value.(float64); ok && numeric {
			next = f + 1
		}
		decl.EnumMembers = append(decl.EnumMembers, ir.EnumMember{
			Name:  memberName(em.Name()),
			Value: value,
		})
	}
	return decl
}

// enumMemberValue evaluates a literal enum initializer. Non-literal
// initializers (computed members) yield nil, which the emitter maps to a
// dynamic accessor.
func (r *DeclResolver) enumMemberValue(init *ast.Node, next float64) (value any, numeric bool) {
	if init == nil {
		return next, true
	}
	switch init.Kind {
	case ast.KindStringLiteral:
		return init.AsStringLiteral().Text, false
	case ast.KindNumericLiteral:
		if v, err := strconv.ParseFloat(init.Text(), 64); err == nil {
			return v, true
		}
	case ast.KindPrefixUnaryExpression:
		unary := init.AsPrefixUnaryExpression()
		if unary.Operator == ast.KindMinusToken && unary.Operand.Kind == ast.KindNumericLiteral {
			if v, err := strconv.ParseFloat(unary.Operand.Text(), 64); err == nil {
				return -v, true
			}
		}
	}
	return nil, false
}

func (r *DeclResolver) resolveTypeAlias(node *ast.Node, prefix string) *ir.Declaration {
	alias := node.AsTypeAliasDeclaration()
	qualified := prefix + alias.Name().Text()
	return &ir.Declaration{
		Kind:     ir.DeclTypeAlias,
		Name:     qualified,
		WireName: qualified,
		Type:     r.types.Resolve(alias.Type, 0),
	}
}
