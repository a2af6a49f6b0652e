// Package ast re-exports the identifiers of
// github.com/microsoft/typescript-go/internal/ast used by dependents of
// this shim module.
package ast

import (
	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/diagnostics"
)

type (
	Node          = ast.Node
	SourceFile    = ast.SourceFile
	Diagnostic    = ast.Diagnostic
	Kind          = ast.Kind
	NodeFlags     = ast.NodeFlags
	ModifierFlags = ast.ModifierFlags
)

const (
	KindAnyKeyword                     = ast.KindAnyKeyword
	KindArrayType                      = ast.KindArrayType
	KindBigIntKeyword                  = ast.KindBigIntKeyword
	KindBigIntLiteral                  = ast.KindBigIntLiteral
	KindBooleanKeyword                 = ast.KindBooleanKeyword
	KindClassDeclaration               = ast.KindClassDeclaration
	KindConstructSignature             = ast.KindConstructSignature
	KindConstructor                    = ast.KindConstructor
	KindConstructorType                = ast.KindConstructorType
	KindEnumDeclaration                = ast.KindEnumDeclaration
	KindFalseKeyword                   = ast.KindFalseKeyword
	KindFunctionDeclaration            = ast.KindFunctionDeclaration
	KindFunctionType                   = ast.KindFunctionType
	KindGetAccessor                    = ast.KindGetAccessor
	KindIdentifier                     = ast.KindIdentifier
	KindIndexSignature                 = ast.KindIndexSignature
	KindInterfaceDeclaration           = ast.KindInterfaceDeclaration
	KindIntersectionType               = ast.KindIntersectionType
	KindLiteralType                    = ast.KindLiteralType
	KindMethodDeclaration              = ast.KindMethodDeclaration
	KindMethodSignature                = ast.KindMethodSignature
	KindMinusToken                     = ast.KindMinusToken
	KindModuleBlock                    = ast.KindModuleBlock
	KindModuleDeclaration              = ast.KindModuleDeclaration
	KindNamedTupleMember               = ast.KindNamedTupleMember
	KindNeverKeyword                   = ast.KindNeverKeyword
	KindNoSubstitutionTemplateLiteral  = ast.KindNoSubstitutionTemplateLiteral
	KindNullKeyword                    = ast.KindNullKeyword
	KindNumberKeyword                  = ast.KindNumberKeyword
	KindNumericLiteral                 = ast.KindNumericLiteral
	KindObjectKeyword                  = ast.KindObjectKeyword
	KindOptionalType                   = ast.KindOptionalType
	KindParenthesizedType              = ast.KindParenthesizedType
	KindPrefixUnaryExpression          = ast.KindPrefixUnaryExpression
	KindPropertyDeclaration            = ast.KindPropertyDeclaration
	KindPropertySignature              = ast.KindPropertySignature
	KindQualifiedName                  = ast.KindQualifiedName
	KindQuestionToken                  = ast.KindQuestionToken
	KindReadonlyKeyword                = ast.KindReadonlyKeyword
	KindRestType                       = ast.KindRestType
	KindSetAccessor                    = ast.KindSetAccessor
	KindStringKeyword                  = ast.KindStringKeyword
	KindStringLiteral                  = ast.KindStringLiteral
	KindThisType                       = ast.KindThisType
	KindTrueKeyword                    = ast.KindTrueKeyword
	KindTupleType                      = ast.KindTupleType
	KindTypeAliasDeclaration           = ast.KindTypeAliasDeclaration
	KindTypeLiteral                    = ast.KindTypeLiteral
	KindTypeOperator                   = ast.KindTypeOperator
	KindTypeReference                  = ast.KindTypeReference
	KindUndefinedKeyword               = ast.KindUndefinedKeyword
	KindUnionType                      = ast.KindUnionType
	KindUnknownKeyword                 = ast.KindUnknownKeyword
	KindVariableStatement              = ast.KindVariableStatement
	KindVoidKeyword                    = ast.KindVoidKeyword
)

const NodeFlagsConst = ast.NodeFlagsConst

const (
	ModifierFlagsAbstract = ast.ModifierFlagsAbstract
	ModifierFlagsReadonly = ast.ModifierFlagsReadonly
	ModifierFlagsStatic   = ast.ModifierFlagsStatic
)

func Diagnostic_Category(d *Diagnostic) diagnostics.Category { return d.Category() }
