package ast

import "zomlang/internal/source"

// VarKind distinguishes the three variable-declaration keywords.
type VarKind uint8

const (
	VarLet VarKind = iota
	VarConst
	VarVar
)

// BindingElement is one name (with optional type annotation and initializer)
// in a variable declaration's binding list.
type BindingElement struct {
	SpanVal     source.Span
	Name        string
	Type        TypeSyntax
	Initializer Expr
}

// VariableDeclaration is `let|const|var a: T = v, b = w;`.
type VariableDeclaration struct {
	SpanVal  source.Span
	Kind_    VarKind
	Elements []BindingElement
	Exported bool
}

func (n *VariableDeclaration) Kind() Kind        { return KindVariableDeclaration }
func (n *VariableDeclaration) Span() source.Span { return n.SpanVal }
func (n *VariableDeclaration) Children() []Node {
	var out []Node
	for i := range n.Elements {
		if n.Elements[i].Type != nil {
			out = append(out, n.Elements[i].Type)
		}
		if n.Elements[i].Initializer != nil {
			out = append(out, n.Elements[i].Initializer)
		}
	}
	return out
}
func (n *VariableDeclaration) Accept(v Visitor) any { return v.VisitVariableDeclaration(n) }
func (*VariableDeclaration) stmtNode()              {}

// FunctionDeclaration requires a Name, unlike FunctionExpression.
type FunctionDeclaration struct {
	SpanVal    source.Span
	Name       string
	Async      bool
	Exported   bool
	TypeParams []TypeParam
	Params     []Param
	ReturnType *ReturnType
	Body       *Block
}

func (n *FunctionDeclaration) Kind() Kind        { return KindFunctionDeclaration }
func (n *FunctionDeclaration) Span() source.Span { return n.SpanVal }
func (n *FunctionDeclaration) Children() []Node {
	var out []Node
	for i := range n.Params {
		if n.Params[i].Type != nil {
			out = append(out, n.Params[i].Type)
		}
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *FunctionDeclaration) Accept(v Visitor) any { return v.VisitFunctionDeclaration(n) }
func (*FunctionDeclaration) stmtNode()              {}

// ClassMemberKind distinguishes the shapes a class body can hold.
type ClassMemberKind uint8

const (
	ClassMemberField ClassMemberKind = iota
	ClassMemberMethod
	ClassMemberConstructor
)

// ClassMember is one field or method of a class or struct body.
type ClassMember struct {
	SpanVal     source.Span
	Kind        ClassMemberKind
	Name        string
	Visibility  Visibility
	Static      bool
	Readonly    bool
	Async       bool
	Type        TypeSyntax // field type
	TypeParams  []TypeParam
	Params      []Param
	ReturnType  *ReturnType
	Body        *Block
	Initializer Expr
}

// ClassDeclaration is `class Name<T> extends Base implements I1, I2 { ... }`.
type ClassDeclaration struct {
	SpanVal    source.Span
	Name       string
	Exported   bool
	TypeParams []TypeParam
	Extends    TypeSyntax
	Implements []TypeSyntax
	Members    []ClassMember
}

func (n *ClassDeclaration) Kind() Kind        { return KindClassDeclaration }
func (n *ClassDeclaration) Span() source.Span { return n.SpanVal }
func (n *ClassDeclaration) Children() []Node {
	out := nonNil(n.Extends)
	out = appendNodes(out, n.Implements)
	for i := range n.Members {
		if n.Members[i].Type != nil {
			out = append(out, n.Members[i].Type)
		}
		if n.Members[i].ReturnType != nil {
			out = append(out, n.Members[i].ReturnType)
		}
		if n.Members[i].Body != nil {
			out = append(out, n.Members[i].Body)
		}
		if n.Members[i].Initializer != nil {
			out = append(out, n.Members[i].Initializer)
		}
	}
	return out
}
func (n *ClassDeclaration) Accept(v Visitor) any { return v.VisitClassDeclaration(n) }
func (*ClassDeclaration) stmtNode()              {}

// InterfaceDeclaration is `interface Name<T> extends B1, B2 { ... }`.
type InterfaceDeclaration struct {
	SpanVal    source.Span
	Name       string
	Exported   bool
	TypeParams []TypeParam
	Extends    []TypeSyntax
	Members    []ObjectTypeMember
}

func (n *InterfaceDeclaration) Kind() Kind        { return KindInterfaceDeclaration }
func (n *InterfaceDeclaration) Span() source.Span { return n.SpanVal }
func (n *InterfaceDeclaration) Children() []Node {
	out := appendNodes(nil, n.Extends)
	for i := range n.Members {
		if n.Members[i].Type != nil {
			out = append(out, n.Members[i].Type)
		}
	}
	return out
}
func (n *InterfaceDeclaration) Accept(v Visitor) any { return v.VisitInterfaceDeclaration(n) }
func (*InterfaceDeclaration) stmtNode()              {}

// StructDeclaration is a plain-data record type: `struct Name { a: T; b: U }`.
type StructDeclaration struct {
	SpanVal    source.Span
	Name       string
	Exported   bool
	TypeParams []TypeParam
	Fields     []ObjectTypeMember
}

func (n *StructDeclaration) Kind() Kind        { return KindStructDeclaration }
func (n *StructDeclaration) Span() source.Span { return n.SpanVal }
func (n *StructDeclaration) Children() []Node {
	var out []Node
	for i := range n.Fields {
		if n.Fields[i].Type != nil {
			out = append(out, n.Fields[i].Type)
		}
	}
	return out
}
func (n *StructDeclaration) Accept(v Visitor) any { return v.VisitStructDeclaration(n) }
func (*StructDeclaration) stmtNode()              {}

// EnumVariant is one member of an enum, optionally carrying an explicit
// initializer (`Red = 1`).
type EnumVariant struct {
	SpanVal     source.Span
	Name        string
	Initializer Expr
}

// EnumDeclaration is `enum Name { A, B = 2, C }`.
type EnumDeclaration struct {
	SpanVal  source.Span
	Name     string
	Exported bool
	Variants []EnumVariant
}

func (n *EnumDeclaration) Kind() Kind        { return KindEnumDeclaration }
func (n *EnumDeclaration) Span() source.Span { return n.SpanVal }
func (n *EnumDeclaration) Children() []Node {
	var out []Node
	for i := range n.Variants {
		if n.Variants[i].Initializer != nil {
			out = append(out, n.Variants[i].Initializer)
		}
	}
	return out
}
func (n *EnumDeclaration) Accept(v Visitor) any { return v.VisitEnumDeclaration(n) }
func (*EnumDeclaration) stmtNode()              {}

// AliasDeclaration is `type Name<T> = SomeType;`.
type AliasDeclaration struct {
	SpanVal    source.Span
	Name       string
	Exported   bool
	TypeParams []TypeParam
	Target     TypeSyntax
}

func (n *AliasDeclaration) Kind() Kind           { return KindAliasDeclaration }
func (n *AliasDeclaration) Span() source.Span    { return n.SpanVal }
func (n *AliasDeclaration) Children() []Node     { return nonNil(n.Target) }
func (n *AliasDeclaration) Accept(v Visitor) any { return v.VisitAliasDeclaration(n) }
func (*AliasDeclaration) stmtNode()              {}

// ErrorDeclaration is `error Name { ... }` (or `error Name(message: string)`),
// declaring a nominal error type usable in a `raises` return type.
type ErrorDeclaration struct {
	SpanVal  source.Span
	Name     string
	Exported bool
	Fields   []ObjectTypeMember
}

func (n *ErrorDeclaration) Kind() Kind        { return KindErrorDeclaration }
func (n *ErrorDeclaration) Span() source.Span { return n.SpanVal }
func (n *ErrorDeclaration) Children() []Node {
	var out []Node
	for i := range n.Fields {
		if n.Fields[i].Type != nil {
			out = append(out, n.Fields[i].Type)
		}
	}
	return out
}
func (n *ErrorDeclaration) Accept(v Visitor) any { return v.VisitErrorDeclaration(n) }
func (*ErrorDeclaration) stmtNode()              {}

// Block is a `{ ... }` sequence of statements.
type Block struct {
	SpanVal    source.Span
	Statements []Stmt
}

func (n *Block) Kind() Kind           { return KindBlock }
func (n *Block) Span() source.Span    { return n.SpanVal }
func (n *Block) Children() []Node     { return appendNodes(nil, n.Statements) }
func (n *Block) Accept(v Visitor) any { return v.VisitBlock(n) }
func (*Block) stmtNode()              {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	SpanVal    source.Span
	Expression Expr
}

func (n *ExpressionStatement) Kind() Kind           { return KindExpressionStatement }
func (n *ExpressionStatement) Span() source.Span    { return n.SpanVal }
func (n *ExpressionStatement) Children() []Node     { return nonNil(n.Expression) }
func (n *ExpressionStatement) Accept(v Visitor) any { return v.VisitExpressionStatement(n) }
func (*ExpressionStatement) stmtNode()              {}

// IfStatement is `if (cond) then else alt?`.
type IfStatement struct {
	SpanVal   source.Span
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (n *IfStatement) Kind() Kind           { return KindIfStatement }
func (n *IfStatement) Span() source.Span    { return n.SpanVal }
func (n *IfStatement) Children() []Node     { return nonNil(n.Condition, n.Then, n.Else) }
func (n *IfStatement) Accept(v Visitor) any { return v.VisitIfStatement(n) }
func (*IfStatement) stmtNode()              {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	SpanVal   source.Span
	Condition Expr
	Body      Stmt
}

func (n *WhileStatement) Kind() Kind           { return KindWhileStatement }
func (n *WhileStatement) Span() source.Span    { return n.SpanVal }
func (n *WhileStatement) Children() []Node     { return nonNil(n.Condition, n.Body) }
func (n *WhileStatement) Accept(v Visitor) any { return v.VisitWhileStatement(n) }
func (*WhileStatement) stmtNode()              {}

// ForStatement is the classic three-clause `for (init; cond; update) body`,
// or a `for (name of|in expr) body` iteration form when IsOf/IsIn is set.
type ForStatement struct {
	SpanVal  source.Span
	Init     Node // VariableDeclaration, ExpressionStatement, or nil
	Cond     Expr
	Update   Expr
	Body     Stmt
	IsOf     bool
	IsIn     bool
	Binding  string
	Iterable Expr
}

func (n *ForStatement) Kind() Kind        { return KindForStatement }
func (n *ForStatement) Span() source.Span { return n.SpanVal }
func (n *ForStatement) Children() []Node {
	return nonNil(n.Init, n.Cond, n.Update, n.Iterable, n.Body)
}
func (n *ForStatement) Accept(v Visitor) any { return v.VisitForStatement(n) }
func (*ForStatement) stmtNode()              {}

// ReturnStatement is `return expr?;`.
type ReturnStatement struct {
	SpanVal source.Span
	Value   Expr
}

func (n *ReturnStatement) Kind() Kind           { return KindReturnStatement }
func (n *ReturnStatement) Span() source.Span    { return n.SpanVal }
func (n *ReturnStatement) Children() []Node     { return nonNil(n.Value) }
func (n *ReturnStatement) Accept(v Visitor) any { return v.VisitReturnStatement(n) }
func (*ReturnStatement) stmtNode()              {}

// BreakStatement is `break label?;`.
type BreakStatement struct {
	SpanVal source.Span
	Label   string
}

func (n *BreakStatement) Kind() Kind           { return KindBreakStatement }
func (n *BreakStatement) Span() source.Span    { return n.SpanVal }
func (n *BreakStatement) Children() []Node     { return nil }
func (n *BreakStatement) Accept(v Visitor) any { return v.VisitBreakStatement(n) }
func (*BreakStatement) stmtNode()              {}

// ContinueStatement is `continue label?;`.
type ContinueStatement struct {
	SpanVal source.Span
	Label   string
}

func (n *ContinueStatement) Kind() Kind           { return KindContinueStatement }
func (n *ContinueStatement) Span() source.Span    { return n.SpanVal }
func (n *ContinueStatement) Children() []Node     { return nil }
func (n *ContinueStatement) Accept(v Visitor) any { return v.VisitContinueStatement(n) }
func (*ContinueStatement) stmtNode()              {}

// CaseClause is one `case pattern: body` or `default: body` arm of a match.
type CaseClause struct {
	SpanVal   source.Span
	Patterns  []Expr // empty for default
	IsDefault bool
	Body      []Stmt
}

// MatchStatement is `match (expr) { case a: ...; default: ...; }`.
type MatchStatement struct {
	SpanVal    source.Span
	Expression Expr
	Cases      []CaseClause
}

func (n *MatchStatement) Kind() Kind        { return KindMatchStatement }
func (n *MatchStatement) Span() source.Span { return n.SpanVal }
func (n *MatchStatement) Children() []Node {
	out := nonNil(n.Expression)
	for _, c := range n.Cases {
		out = appendNodes(out, c.Patterns)
		out = appendNodes(out, c.Body)
	}
	return out
}
func (n *MatchStatement) Accept(v Visitor) any { return v.VisitMatchStatement(n) }
func (*MatchStatement) stmtNode()              {}

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	SpanVal source.Span
}

func (n *EmptyStatement) Kind() Kind           { return KindEmptyStatement }
func (n *EmptyStatement) Span() source.Span    { return n.SpanVal }
func (n *EmptyStatement) Children() []Node     { return nil }
func (n *EmptyStatement) Accept(v Visitor) any { return v.VisitEmptyStatement(n) }
func (*EmptyStatement) stmtNode()              {}

// DebuggerStatement is the `debugger;` statement.
type DebuggerStatement struct {
	SpanVal source.Span
}

func (n *DebuggerStatement) Kind() Kind           { return KindDebuggerStatement }
func (n *DebuggerStatement) Span() source.Span    { return n.SpanVal }
func (n *DebuggerStatement) Children() []Node     { return nil }
func (n *DebuggerStatement) Accept(v Visitor) any { return v.VisitDebuggerStatement(n) }
func (*DebuggerStatement) stmtNode()              {}

// ModulePath is a dotted module reference used by import/export declarations.
type ModulePath struct {
	SpanVal source.Span
	Parts   []string
}

func (n *ModulePath) Kind() Kind           { return KindModulePath }
func (n *ModulePath) Span() source.Span    { return n.SpanVal }
func (n *ModulePath) Children() []Node     { return nil }
func (n *ModulePath) Accept(v Visitor) any { return v.VisitModulePath(n) }

// ImportSpecifier is one `name` or `name as alias` entry of an import group.
type ImportSpecifier struct {
	SpanVal source.Span
	Name    string
	Alias   string
}

// ImportDeclaration is `import { a, b as c } from Path;` or `import * as ns from Path;`.
type ImportDeclaration struct {
	SpanVal     source.Span
	Specifiers  []ImportSpecifier
	NamespaceAs string
	Path        *ModulePath
}

func (n *ImportDeclaration) Kind() Kind           { return KindImportDeclaration }
func (n *ImportDeclaration) Span() source.Span    { return n.SpanVal }
func (n *ImportDeclaration) Children() []Node     { return nonNil(n.Path) }
func (n *ImportDeclaration) Accept(v Visitor) any { return v.VisitImportDeclaration(n) }
func (*ImportDeclaration) stmtNode()              {}

// ExportSpecifier is one `name` or `name as alias` entry of a re-export group.
type ExportSpecifier struct {
	SpanVal source.Span
	Name    string
	Alias   string
}

// ExportDeclaration is `export { a, b as c };`, `export { a } from Path;`, or
// wraps a directly exported declaration (Decl non-nil, Specifiers empty).
type ExportDeclaration struct {
	SpanVal    source.Span
	Specifiers []ExportSpecifier
	Path       *ModulePath
	Decl       Stmt
}

func (n *ExportDeclaration) Kind() Kind           { return KindExportDeclaration }
func (n *ExportDeclaration) Span() source.Span    { return n.SpanVal }
func (n *ExportDeclaration) Children() []Node     { return nonNil(n.Path, n.Decl) }
func (n *ExportDeclaration) Accept(v Visitor) any { return v.VisitExportDeclaration(n) }
func (*ExportDeclaration) stmtNode()              {}

// SourceFile is the root of one parsed buffer's AST.
type SourceFile struct {
	SpanVal    source.Span
	FileName   string
	FileID     source.FileID
	Statements []Stmt
}

func (n *SourceFile) Kind() Kind           { return KindSourceFile }
func (n *SourceFile) Span() source.Span    { return n.SpanVal }
func (n *SourceFile) Children() []Node     { return appendNodes(nil, n.Statements) }
func (n *SourceFile) Accept(v Visitor) any { return v.VisitSourceFile(n) }
