package ast

import "zomlang/internal/source"

// TypeParam is a single `<T extends Bound = Default>` entry.
type TypeParam struct {
	SpanVal source.Span
	Name    string
	Extends TypeSyntax
	Default TypeSyntax
}

// Param is a single function/method/constructor parameter.
type Param struct {
	SpanVal  source.Span
	Name     string
	Type     TypeSyntax
	Optional bool
	Rest     bool
	Default  Expr
}

// TypeReference is `Identifier<Args...>?`.
type TypeReference struct {
	SpanVal  source.Span
	Name     string
	TypeArgs []TypeSyntax
}

func (n *TypeReference) Kind() Kind        { return KindTypeReference }
func (n *TypeReference) Span() source.Span { return n.SpanVal }
func (n *TypeReference) Children() []Node {
	return appendNodes(nil, n.TypeArgs)
}
func (n *TypeReference) Accept(v Visitor) any { return v.VisitTypeReference(n) }
func (*TypeReference) typeNode()              {}

// ArrayType is `T[]`.
type ArrayType struct {
	SpanVal source.Span
	Elem    TypeSyntax
}

func (n *ArrayType) Kind() Kind           { return KindArrayType }
func (n *ArrayType) Span() source.Span    { return n.SpanVal }
func (n *ArrayType) Children() []Node     { return nonNil(n.Elem) }
func (n *ArrayType) Accept(v Visitor) any { return v.VisitArrayType(n) }
func (*ArrayType) typeNode()              {}

// UnionType is `A | B | C`.
type UnionType struct {
	SpanVal source.Span
	Members []TypeSyntax
}

func (n *UnionType) Kind() Kind           { return KindUnionType }
func (n *UnionType) Span() source.Span    { return n.SpanVal }
func (n *UnionType) Children() []Node     { return appendNodes(nil, n.Members) }
func (n *UnionType) Accept(v Visitor) any { return v.VisitUnionType(n) }
func (*UnionType) typeNode()              {}

// IntersectionType is `A & B & C`.
type IntersectionType struct {
	SpanVal source.Span
	Members []TypeSyntax
}

func (n *IntersectionType) Kind() Kind           { return KindIntersectionType }
func (n *IntersectionType) Span() source.Span    { return n.SpanVal }
func (n *IntersectionType) Children() []Node     { return appendNodes(nil, n.Members) }
func (n *IntersectionType) Accept(v Visitor) any { return v.VisitIntersectionType(n) }
func (*IntersectionType) typeNode()              {}

// ParenthesizedType is `(T)`, used to override union/intersection binding.
type ParenthesizedType struct {
	SpanVal source.Span
	Inner   TypeSyntax
}

func (n *ParenthesizedType) Kind() Kind           { return KindParenthesizedType }
func (n *ParenthesizedType) Span() source.Span    { return n.SpanVal }
func (n *ParenthesizedType) Children() []Node     { return nonNil(n.Inner) }
func (n *ParenthesizedType) Accept(v Visitor) any { return v.VisitParenthesizedType(n) }
func (*ParenthesizedType) typeNode()              {}

// PredefinedTypeKeyword enumerates the built-in type names.
type PredefinedTypeKeyword uint8

const (
	PredefinedNumber PredefinedTypeKeyword = iota
	PredefinedString
	PredefinedBoolean
	PredefinedVoid
	PredefinedAny
	PredefinedUnknown
	PredefinedNever
	PredefinedObject
)

// PredefinedType is one of the built-in named types.
type PredefinedType struct {
	SpanVal source.Span
	Keyword PredefinedTypeKeyword
}

func (n *PredefinedType) Kind() Kind           { return KindPredefinedType }
func (n *PredefinedType) Span() source.Span    { return n.SpanVal }
func (n *PredefinedType) Children() []Node     { return nil }
func (n *PredefinedType) Accept(v Visitor) any { return v.VisitPredefinedType(n) }
func (*PredefinedType) typeNode()              {}

// ObjectTypeMember is one `name: Type` (or method-shaped) entry of an object
// type literal.
type ObjectTypeMember struct {
	SpanVal  source.Span
	Name     string
	Type     TypeSyntax
	Optional bool
	Readonly bool
}

// ObjectType is `{ a: T; b?: U }`.
type ObjectType struct {
	SpanVal source.Span
	Members []ObjectTypeMember
}

func (n *ObjectType) Kind() Kind        { return KindObjectType }
func (n *ObjectType) Span() source.Span { return n.SpanVal }
func (n *ObjectType) Children() []Node {
	out := make([]Node, 0, len(n.Members))
	for i := range n.Members {
		if n.Members[i].Type != nil {
			out = append(out, n.Members[i].Type)
		}
	}
	return out
}
func (n *ObjectType) Accept(v Visitor) any { return v.VisitObjectType(n) }
func (*ObjectType) typeNode()              {}

// TupleType is `[A, B, ...C]`.
type TupleType struct {
	SpanVal  source.Span
	Elements []TypeSyntax
}

func (n *TupleType) Kind() Kind           { return KindTupleType }
func (n *TupleType) Span() source.Span    { return n.SpanVal }
func (n *TupleType) Children() []Node     { return appendNodes(nil, n.Elements) }
func (n *TupleType) Accept(v Visitor) any { return v.VisitTupleType(n) }
func (*TupleType) typeNode()              {}

// FunctionType is `<T>(a: A, ...b: B) => Ret`.
type FunctionType struct {
	SpanVal    source.Span
	TypeParams []TypeParam
	Params     []Param
	ReturnType TypeSyntax
}

func (n *FunctionType) Kind() Kind        { return KindFunctionType }
func (n *FunctionType) Span() source.Span { return n.SpanVal }
func (n *FunctionType) Children() []Node {
	var out []Node
	for i := range n.Params {
		if n.Params[i].Type != nil {
			out = append(out, n.Params[i].Type)
		}
	}
	return nonNil(append(out, n.ReturnType)...)
}
func (n *FunctionType) Accept(v Visitor) any { return v.VisitFunctionType(n) }
func (*FunctionType) typeNode()              {}

// OptionalType is `T?`, distinct from `T | null`.
type OptionalType struct {
	SpanVal source.Span
	Inner   TypeSyntax
}

func (n *OptionalType) Kind() Kind           { return KindOptionalType }
func (n *OptionalType) Span() source.Span    { return n.SpanVal }
func (n *OptionalType) Children() []Node     { return nonNil(n.Inner) }
func (n *OptionalType) Accept(v Visitor) any { return v.VisitOptionalType(n) }
func (*OptionalType) typeNode()              {}

// ReturnType is a function's declared result type, with an optional error
// type present iff the source used `raises E`.
type ReturnType struct {
	SpanVal   source.Span
	Type      TypeSyntax
	ErrorType TypeSyntax
}

func (n *ReturnType) Kind() Kind           { return KindReturnType }
func (n *ReturnType) Span() source.Span    { return n.SpanVal }
func (n *ReturnType) Children() []Node     { return nonNil(n.Type, n.ErrorType) }
func (n *ReturnType) Accept(v Visitor) any { return v.VisitReturnType(n) }
func (*ReturnType) typeNode()              {}

// HasErrorType reports whether the source used `raises E`.
func (n *ReturnType) HasErrorType() bool { return n.ErrorType != nil }

// TypeQuery is `typeof expr` used in type position.
type TypeQuery struct {
	SpanVal    source.Span
	Expression Expr
}

func (n *TypeQuery) Kind() Kind           { return KindTypeQuery }
func (n *TypeQuery) Span() source.Span    { return n.SpanVal }
func (n *TypeQuery) Children() []Node     { return nonNil(n.Expression) }
func (n *TypeQuery) Accept(v Visitor) any { return v.VisitTypeQuery(n) }
func (*TypeQuery) typeNode()              {}
