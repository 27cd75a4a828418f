// Package ast defines the zomlang abstract syntax tree: a sealed hierarchy of
// nodes produced by the parser, plus a visitor with hierarchical fallback
// dispatch and a set of dumpers (see internal/diagfmt) for rendering it.
//
// Nodes are immutable once built; rewrites produce new trees rather than
// mutating existing ones. Every node carries a Kind and a Span, and exposes
// its children in source order so generic tree walks never need a type
// switch over every concrete kind.
package ast

import "zomlang/internal/source"

// Kind identifies the concrete syntax of a Node. The ranges below group
// related kinds so category checks (IsExpression, IsStatement, IsType) are a
// single comparison instead of a long switch.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Module-level
	KindSourceFile
	KindModulePath
	KindImportDeclaration
	KindExportDeclaration

	// Statements (includes declarations, per the language's TS-like grammar
	// where declarations are themselves statements).
	kindStatementStart
	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindInterfaceDeclaration
	KindStructDeclaration
	KindEnumDeclaration
	KindAliasDeclaration
	KindErrorDeclaration
	KindBlock
	KindExpressionStatement
	KindIfStatement
	KindWhileStatement
	KindForStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindMatchStatement
	KindEmptyStatement
	KindDebuggerStatement
	kindStatementEnd

	// Expressions
	kindExpressionStart
	KindStringLiteral
	KindIntLiteral
	KindFloatLiteral
	KindBoolLiteral
	KindNullLiteral
	KindTemplateExpression
	KindRegexLiteral
	KindIdentifier
	KindParenthesizedExpression
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindCallExpression
	KindNewExpression
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindBinaryExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindAsExpression
	KindForcedAsExpression
	KindConditionalAsExpression
	KindTypeOfExpression
	KindVoidExpression
	KindAwaitExpression
	KindFunctionExpression
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	kindExpressionEnd

	// Types
	kindTypeStart
	KindTypeReference
	KindArrayType
	KindUnionType
	KindIntersectionType
	KindParenthesizedType
	KindPredefinedType
	KindObjectType
	KindTupleType
	KindFunctionType
	KindOptionalType
	KindReturnType
	KindTypeQuery
	kindTypeEnd
)

var kindNames = map[Kind]string{
	KindSourceFile:               "SourceFile",
	KindModulePath:               "ModulePath",
	KindImportDeclaration:        "ImportDeclaration",
	KindExportDeclaration:        "ExportDeclaration",
	KindVariableDeclaration:      "VariableDeclaration",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindClassDeclaration:         "ClassDeclaration",
	KindInterfaceDeclaration:     "InterfaceDeclaration",
	KindStructDeclaration:        "StructDeclaration",
	KindEnumDeclaration:          "EnumDeclaration",
	KindAliasDeclaration:         "AliasDeclaration",
	KindErrorDeclaration:         "ErrorDeclaration",
	KindBlock:                    "Block",
	KindExpressionStatement:      "ExpressionStatement",
	KindIfStatement:              "IfStatement",
	KindWhileStatement:           "WhileStatement",
	KindForStatement:             "ForStatement",
	KindReturnStatement:          "ReturnStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindMatchStatement:           "MatchStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindDebuggerStatement:        "DebuggerStatement",
	KindStringLiteral:            "StringLiteral",
	KindIntLiteral:               "IntLiteral",
	KindFloatLiteral:             "FloatLiteral",
	KindBoolLiteral:              "BoolLiteral",
	KindNullLiteral:              "NullLiteral",
	KindTemplateExpression:       "TemplateExpression",
	KindRegexLiteral:             "RegexLiteral",
	KindIdentifier:               "Identifier",
	KindParenthesizedExpression:  "ParenthesizedExpression",
	KindPropertyAccessExpression: "PropertyAccessExpression",
	KindElementAccessExpression:  "ElementAccessExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindPrefixUnaryExpression:    "PrefixUnaryExpression",
	KindPostfixUnaryExpression:   "PostfixUnaryExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindAsExpression:             "AsExpression",
	KindForcedAsExpression:       "ForcedAsExpression",
	KindConditionalAsExpression:  "ConditionalAsExpression",
	KindTypeOfExpression:         "TypeOfExpression",
	KindVoidExpression:           "VoidExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindFunctionExpression:       "FunctionExpression",
	KindArrayLiteralExpression:   "ArrayLiteralExpression",
	KindObjectLiteralExpression:  "ObjectLiteralExpression",
	KindTypeReference:            "TypeReference",
	KindArrayType:                "ArrayType",
	KindUnionType:                "UnionType",
	KindIntersectionType:         "IntersectionType",
	KindParenthesizedType:        "ParenthesizedType",
	KindPredefinedType:           "PredefinedType",
	KindObjectType:               "ObjectType",
	KindTupleType:                "TupleType",
	KindFunctionType:             "FunctionType",
	KindOptionalType:             "OptionalType",
	KindReturnType:               "ReturnType",
	KindTypeQuery:                "TypeQuery",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsStatement reports whether k is one of the statement/declaration kinds.
func (k Kind) IsStatement() bool { return k > kindStatementStart && k < kindStatementEnd }

// IsExpression reports whether k is one of the expression kinds.
func (k Kind) IsExpression() bool { return k > kindExpressionStart && k < kindExpressionEnd }

// IsType reports whether k is one of the type-syntax kinds.
func (k Kind) IsType() bool { return k > kindTypeStart && k < kindTypeEnd }

// Node is the base of the sealed AST hierarchy. Every concrete node type in
// this package implements it.
type Node interface {
	Kind() Kind
	Span() source.Span
	Children() []Node
	Accept(v Visitor) any
}

// Expr is a Node known to be an expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node known to be a statement or top-level declaration.
type Stmt interface {
	Node
	stmtNode()
}

// TypeSyntax is a Node known to be a type expression.
type TypeSyntax interface {
	Node
	typeNode()
}

func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func appendNodes[T Node](dst []Node, items []T) []Node {
	for _, item := range items {
		dst = append(dst, item)
	}
	return dst
}
