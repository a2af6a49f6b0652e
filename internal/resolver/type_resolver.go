// Package resolver converts TypeScript declaration syntax into the dartify
// IR. Type resolution is purely syntax-driven: no checker, no symbol
// resolution. Anything the syntax cannot express conservatively degrades to
// dynamic instead of failing the unit.
package resolver

import (
	"strconv"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"

	"github.com/codewithsam110g/dartify/internal/diagnostic"
	"github.com/codewithsam110g/dartify/internal/ir"
)

// MaxDepth is the hard recursion ceiling for type resolution. Deep or cyclic
// generic expressions degrade to dynamic once the ceiling is hit instead of
// overflowing the stack.
const MaxDepth = 15

// TypeResolver converts one type expression node into an ir.Type.
type TypeResolver struct {
	file  *ast.SourceFile
	diags *diagnostic.Collector
	// memo caches top-level resolutions per syntax node. Depth-degraded
	// results are never cached: they depend on where in the tree the node was
	// reached, not on the node itself.
	memo map[*ast.Node]*ir.Type
}

// NewTypeResolver creates a resolver for one source file.
func NewTypeResolver(file *ast.SourceFile, diags *diagnostic.Collector) *TypeResolver {
	return &TypeResolver{
		file:  file,
		diags: diags,
		memo:  make(map[*ast.Node]*ir.Type),
	}
}

// Resolve converts a type expression into an ir.Type. A nil node (missing
// annotation) and any unsupported or depth-exceeded expression resolve to
// dynamic. Resolution never mutates registries; hoisting happens later.
func (r *TypeResolver) Resolve(node *ast.Node, depth int) *ir.Type {
	if node == nil {
		return ir.Any()
	}
	if depth > MaxDepth {
		line, col := r.position(node)
		r.diags.Warnf(diagnostic.CodeDepthExceeded, r.fileName(), line, col,
			"type nesting exceeds depth %d, falling back to dynamic", MaxDepth)
		return ir.Any()
	}
	if depth == 0 {
		if cached, ok := r.memo[node]; ok {
			return cached
		}
	}
	t := r.resolve(node, depth)
	if depth == 0 {
		r.memo[node] = t
	}
	return t
}

func (r *TypeResolver) resolve(node *ast.Node, depth int) *ir.Type {
	switch node.Kind {
	case ast.KindStringKeyword:
		return ir.NewPrimitive(ir.PrimString)
	case ast.KindNumberKeyword:
		return ir.NewPrimitive(ir.PrimNumber)
	case ast.KindBooleanKeyword:
		return ir.NewPrimitive(ir.PrimBoolean)
	case ast.KindBigIntKeyword:
		return ir.NewPrimitive(ir.PrimBigInt)
	case ast.KindVoidKeyword:
		return ir.NewPrimitive(ir.PrimVoid)
	case ast.KindAnyKeyword, ast.KindObjectKeyword:
		return ir.NewPrimitive(ir.PrimAny)
	case ast.KindUnknownKeyword:
		return ir.NewPrimitive(ir.PrimUnknown)
	case ast.KindNeverKeyword:
		return ir.NewPrimitive(ir.PrimNever)
	case ast.KindUndefinedKeyword:
		return ir.NewPrimitive(ir.PrimUndefined)
	case ast.KindThisType:
		return ir.Any()

	case ast.KindLiteralType:
		return r.resolveLiteral(node.AsLiteralTypeNode().Literal)

	case ast.KindUnionType:
		return r.resolveUnion(node, depth)

	case ast.KindIntersectionType:
		return r.resolveIntersection(node, depth)

	case ast.KindArrayType:
		elem := r.Resolve(node.AsArrayTypeNode().ElementType, depth+1)
		return &ir.Type{Kind: ir.KindArray, Element: elem}

	case ast.KindTupleType:
		return r.resolveTuple(node, depth)

	case ast.KindFunctionType:
		fn := node.AsFunctionTypeNode()
		return &ir.Type{
			Kind:   ir.KindFunction,
			Params: r.ResolveParameters(fn.Parameters.Nodes, depth),
			Return: r.Resolve(fn.Type, depth+1),
		}
	case ast.KindConstructorType:
		fn := node.AsConstructorTypeNode()
		return &ir.Type{
			Kind:   ir.KindFunction,
			Params: r.ResolveParameters(fn.Parameters.Nodes, depth),
			Return: r.Resolve(fn.Type, depth+1),
		}

	case ast.KindTypeReference:
		return r.resolveReference(node, depth)

	case ast.KindTypeLiteral:
		rec := r.ResolveMembers(node.AsTypeLiteralNode().Members.Nodes, depth)
		return &ir.Type{Kind: ir.KindRecord, Record: rec}

	case ast.KindParenthesizedType:
		return r.Resolve(node.AsParenthesizedTypeNode().Type, depth)

	case ast.KindTypeOperator:
		op := node.AsTypeOperatorNode()
		// readonly T[] carries no interop meaning; unwrap it.
		if op.Operator == ast.KindReadonlyKeyword {
			return r.Resolve(op.Type, depth)
		}
		return r.unsupported(node)

	default:
		// Conditional, mapped, template-literal, indexed-access, typeof,
		// infer, import types: conservatively approximated as dynamic.
		return r.unsupported(node)
	}
}

// resolveLiteral handles the literal inside a literal type node, including
// sign-adjusted negative numeric and bigint literals.
func (r *TypeResolver) resolveLiteral(lit *ast.Node) *ir.Type {
	switch lit.Kind {
	case ast.KindStringLiteral:
		return &ir.Type{Kind: ir.KindLiteral, Literal: lit.AsStringLiteral().Text}
	case ast.KindNoSubstitutionTemplateLiteral:
		return &ir.Type{Kind: ir.KindLiteral, Literal: lit.Text()}
	case ast.KindNumericLiteral:
		if v, err := strconv.ParseFloat(lit.Text(), 64); err == nil {
			return &ir.Type{Kind: ir.KindLiteral, Literal: v}
		}
		return ir.Any()
	case ast.KindBigIntLiteral:
		return &ir.Type{Kind: ir.KindLiteral, Literal: strings.TrimSuffix(lit.Text(), "n")}
	case ast.KindTrueKeyword:
		return &ir.Type{Kind: ir.KindLiteral, Literal: true}
	case ast.KindFalseKeyword:
		return &ir.Type{Kind: ir.KindLiteral, Literal: false}
	case ast.KindNullKeyword:
		return &ir.Type{Kind: ir.KindLiteral, Literal: nil}
	case ast.KindPrefixUnaryExpression:
		return r.resolveNegativeLiteral(lit)
	}
	return r.unsupported(lit)
}

func (r *TypeResolver) resolveNegativeLiteral(lit *ast.Node) *ir.Type {
	unary := lit.AsPrefixUnaryExpression()
	if unary.Operator != ast.KindMinusToken {
		return r.unsupported(lit)
	}
	switch unary.Operand.Kind {
	case ast.KindNumericLiteral:
		if v, err := strconv.ParseFloat(unary.Operand.Text(), 64); err == nil {
			return &ir.Type{Kind: ir.KindLiteral, Literal: -v}
		}
	case ast.KindBigIntLiteral:
		digits := strings.TrimSuffix(unary.Operand.Text(), "n")
		return &ir.Type{Kind: ir.KindLiteral, Literal: "-" + digits}
	}
	return r.unsupported(lit)
}

// resolveUnion filters literal null/undefined members into the Nullable flag
// and unwraps single-member results. A union of only null-like members
// resolves to nullable dynamic.
func (r *TypeResolver) resolveUnion(node *ast.Node, depth int) *ir.Type {
	union := node.AsUnionTypeNode()
	nullable := false
	var members []*ir.Type
	for _, m := range union.Types.Nodes {
		mt := r.Resolve(m, depth+1)
		if mt.IsNullish() {
			nullable = true
			continue
		}
		members = append(members, mt)
	}
	switch len(members) {
	case 0:
		t := ir.Any()
		t.Nullable = nullable
		return t
	case 1:
		t := members[0]
		t.Nullable = t.Nullable || nullable
		return t
	}
	return &ir.Type{Kind: ir.KindUnion, Nullable: nullable, Members: members}
}

// resolveIntersection drops null/undefined/void members, forces never when
// any member is never, and collapses to the sole remaining member.
func (r *TypeResolver) resolveIntersection(node *ast.Node, depth int) *ir.Type {
	inter := node.AsIntersectionTypeNode()
	anyNullable := false
	var members []*ir.Type
	for _, m := range inter.Types.Nodes {
		mt := r.Resolve(m, depth+1)
		if mt.IsNullish() || (mt.Kind == ir.KindPrimitive && mt.Primitive == ir.PrimVoid) {
			continue
		}
		if mt.Kind == ir.KindPrimitive && mt.Primitive == ir.PrimNever {
			return ir.NewPrimitive(ir.PrimNever)
		}
		anyNullable = anyNullable || mt.Nullable
		members = append(members, mt)
	}
	switch len(members) {
	case 0:
		return ir.Any()
	case 1:
		t := members[0]
		t.Nullable = t.Nullable || anyNullable
		return t
	}
	return &ir.Type{Kind: ir.KindIntersection, Members: members}
}

func (r *TypeResolver) resolveTuple(node *ast.Node, depth int) *ir.Type {
	tuple := node.AsTupleTypeNode()
	var elements []ir.TupleElement
	for _, el := range tuple.Elements.Nodes {
		switch el.Kind {
		case ast.KindNamedTupleMember:
			nm := el.AsNamedTupleMember()
			elements = append(elements, ir.TupleElement{
				Type:     r.Resolve(nm.Type, depth+1),
				Optional: nm.QuestionToken != nil,
				Rest:     nm.DotDotDotToken != nil,
			})
		case ast.KindOptionalType:
			elements = append(elements, ir.TupleElement{
				Type:     r.Resolve(el.AsOptionalTypeNode().Type, depth+1),
				Optional: true,
			})
		case ast.KindRestType:
			elements = append(elements, ir.TupleElement{
				Type: r.Resolve(el.AsRestTypeNode().Type, depth+1),
				Rest: true,
			})
		default:
			elements = append(elements, ir.TupleElement{Type: r.Resolve(el, depth+1)})
		}
	}
	return &ir.Type{Kind: ir.KindTuple, Elements: elements}
}

func (r *TypeResolver) resolveReference(node *ast.Node, depth int) *ir.Type {
	ref := node.AsTypeReferenceNode()
	name := entityName(ref.TypeName)
	var args []*ir.Type
	if ref.TypeArguments != nil {
		for _, a := range ref.TypeArguments.Nodes {
			args = append(args, r.Resolve(a, depth+1))
		}
	}
	// Array<T> and ReadonlyArray<T> are the reference spelling of T[].
	if (name == "Array" || name == "ReadonlyArray") && len(args) == 1 {
		return &ir.Type{Kind: ir.KindArray, Element: args[0]}
	}
	return &ir.Type{Kind: ir.KindReference, Name: name, TypeArgs: args}
}

// ResolveParameters converts an ordered parameter list, dropping any `this`
// pseudo-parameter.
func (r *TypeResolver) ResolveParameters(nodes []*ast.Node, depth int) []ir.Parameter {
	var params []ir.Parameter
	for _, p := range nodes {
		pd := p.AsParameterDeclaration()
		name := ""
		if pd.Name() != nil {
			name = pd.Name().Text()
		}
		if name == "this" {
			continue
		}
		params = append(params, ir.Parameter{
			Name:     name,
			Type:     r.Resolve(pd.Type, depth+1),
			Optional: pd.QuestionToken != nil || pd.Initializer != nil,
			Rest:     pd.DotDotDotToken != nil,
		})
	}
	return params
}

// ResolveMembers converts the signature members of a type literal or
// interface body into a Record. Call signatures have no Dart interop
// counterpart and are reported as unsupported.
func (r *TypeResolver) ResolveMembers(nodes []*ast.Node, depth int) *ir.Record {
	rec := &ir.Record{}
	for _, m := range nodes {
		switch m.Kind {
		case ast.KindPropertySignature:
			ps := m.AsPropertySignatureDeclaration()
			rec.Properties = append(rec.Properties, ir.Property{
				Name:     memberName(ps.Name()),
				Type:     r.Resolve(ps.Type, depth+1),
				Optional: isQuestionPostfix(ps.PostfixToken),
				Readonly: hasModifier(m, ast.ModifierFlagsReadonly),
			})

		case ast.KindMethodSignature:
			ms := m.AsMethodSignatureDeclaration()
			rec.Methods = append(rec.Methods, ir.Method{
				Name:     memberName(ms.Name()),
				Params:   r.ResolveParameters(ms.Parameters.Nodes, depth),
				Return:   r.Resolve(ms.Type, depth+1),
				Optional: isQuestionPostfix(ms.PostfixToken),
			})

		case ast.KindConstructSignature:
			cs := m.AsConstructSignatureDeclaration()
			rec.Constructors = append(rec.Constructors, r.ResolveParameters(cs.Parameters.Nodes, depth))

		case ast.KindGetAccessor:
			ga := m.AsGetAccessorDeclaration()
			rec.Getters = append(rec.Getters, ir.Accessor{
				Name: memberName(ga.Name()),
				Type: r.Resolve(ga.Type, depth+1),
			})

		case ast.KindSetAccessor:
			sa := m.AsSetAccessorDeclaration()
			rec.Setters = append(rec.Setters, ir.Accessor{
				Name: memberName(sa.Name()),
				Type: r.setterValueType(sa.Parameters.Nodes, depth),
			})

		case ast.KindIndexSignature:
			is := m.AsIndexSignatureDeclaration()
			rec.IndexSignatures = append(rec.IndexSignatures, ir.IndexSignature{
				KeyType:   r.indexKeyType(is.Parameters.Nodes, depth),
				ValueType: r.Resolve(is.Type, depth+1),
			})

		default:
			r.unsupported(m)
		}
	}
	return rec
}

// setterValueType extracts the declared value type of a set accessor,
// skipping a leading `this` parameter.
func (r *TypeResolver) setterValueType(params []*ast.Node, depth int) *ir.Type {
	resolved := r.ResolveParameters(params, depth)
	if len(resolved) == 0 {
		return ir.Any()
	}
	return resolved[0].Type
}

func (r *TypeResolver) indexKeyType(params []*ast.Node, depth int) *ir.Type {
	if len(params) == 0 {
		return ir.NewPrimitive(ir.PrimString)
	}
	return r.Resolve(params[0].AsParameterDeclaration().Type, depth+1)
}

// unsupported records a diagnostic for a syntax kind the pipeline cannot
// express and returns the dynamic fallback.
func (r *TypeResolver) unsupported(node *ast.Node) *ir.Type {
	line, col := r.position(node)
	r.diags.Warnf(diagnostic.CodeUnsupportedSyntax, r.fileName(), line, col,
		"unsupported syntax kind %v, falling back to dynamic", node.Kind)
	return ir.Any()
}

func (r *TypeResolver) fileName() string {
	if r.file == nil {
		return ""
	}
	return r.file.FileName()
}

func (r *TypeResolver) position(node *ast.Node) (line, col int) {
	if r.file == nil || node == nil {
		return 0, 0
	}
	l, c := shimscanner.GetECMALineAndCharacterOfPosition(r.file, node.Pos())
	return l + 1, c + 1
}

// entityName flattens an identifier or qualified name into dotted text.
func entityName(node *ast.Node) string {
	switch node.Kind {
	case ast.KindIdentifier:
		return node.AsIdentifier().Text
	case ast.KindQualifiedName:
		qn := node.AsQualifiedName()
		return entityName(qn.Left) + "." + entityName(qn.Right)
	}
	return node.Text()
}

// memberName extracts the source text of a member name, stripping the quotes
// of string-literal names.
func memberName(name *ast.Node) string {
	if name == nil {
		return ""
	}
	return name.Text()
}

func isQuestionPostfix(tok *ast.Node) bool {
	return tok != nil && tok.Kind == ast.KindQuestionToken
}

func hasModifier(node *ast.Node, flag ast.ModifierFlags) bool {
	return node.ModifierFlags()&flag != 0
}
