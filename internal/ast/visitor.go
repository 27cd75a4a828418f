package ast

// Visitor provides one method per concrete Kind plus a handful of category
// methods (VisitNode, VisitStatement, VisitExpression, VisitUnaryExpression,
// VisitUpdateExpression, VisitType) used as fallback targets. A concrete
// visitor overrides only the kinds it cares about; everything else falls
// through BaseVisitor's hierarchical defaults, emulating the double-dispatch
// a class hierarchy would give for free.
type Visitor interface {
	VisitNode(n Node) any
	VisitStatement(n Stmt) any
	VisitExpression(n Expr) any
	VisitUnaryExpression(n Expr) any
	VisitUpdateExpression(n Expr) any
	VisitType(n TypeSyntax) any

	VisitSourceFile(n *SourceFile) any
	VisitModulePath(n *ModulePath) any
	VisitImportDeclaration(n *ImportDeclaration) any
	VisitExportDeclaration(n *ExportDeclaration) any

	VisitVariableDeclaration(n *VariableDeclaration) any
	VisitFunctionDeclaration(n *FunctionDeclaration) any
	VisitClassDeclaration(n *ClassDeclaration) any
	VisitInterfaceDeclaration(n *InterfaceDeclaration) any
	VisitStructDeclaration(n *StructDeclaration) any
	VisitEnumDeclaration(n *EnumDeclaration) any
	VisitAliasDeclaration(n *AliasDeclaration) any
	VisitErrorDeclaration(n *ErrorDeclaration) any
	VisitBlock(n *Block) any
	VisitExpressionStatement(n *ExpressionStatement) any
	VisitIfStatement(n *IfStatement) any
	VisitWhileStatement(n *WhileStatement) any
	VisitForStatement(n *ForStatement) any
	VisitReturnStatement(n *ReturnStatement) any
	VisitBreakStatement(n *BreakStatement) any
	VisitContinueStatement(n *ContinueStatement) any
	VisitMatchStatement(n *MatchStatement) any
	VisitEmptyStatement(n *EmptyStatement) any
	VisitDebuggerStatement(n *DebuggerStatement) any

	VisitStringLiteral(n *StringLiteral) any
	VisitIntLiteral(n *IntLiteral) any
	VisitFloatLiteral(n *FloatLiteral) any
	VisitBoolLiteral(n *BoolLiteral) any
	VisitNullLiteral(n *NullLiteral) any
	VisitTemplateExpression(n *TemplateExpression) any
	VisitRegexLiteral(n *RegexLiteral) any
	VisitIdentifier(n *Identifier) any
	VisitParenthesizedExpression(n *ParenthesizedExpression) any
	VisitPropertyAccessExpression(n *PropertyAccessExpression) any
	VisitElementAccessExpression(n *ElementAccessExpression) any
	VisitCallExpression(n *CallExpression) any
	VisitNewExpression(n *NewExpression) any
	VisitPrefixUnaryExpression(n *PrefixUnaryExpression) any
	VisitPostfixUnaryExpression(n *PostfixUnaryExpression) any
	VisitBinaryExpression(n *BinaryExpression) any
	VisitAssignmentExpression(n *AssignmentExpression) any
	VisitConditionalExpression(n *ConditionalExpression) any
	VisitAsExpression(n *AsExpression) any
	VisitForcedAsExpression(n *ForcedAsExpression) any
	VisitConditionalAsExpression(n *ConditionalAsExpression) any
	VisitTypeOfExpression(n *TypeOfExpression) any
	VisitVoidExpression(n *VoidExpression) any
	VisitAwaitExpression(n *AwaitExpression) any
	VisitFunctionExpression(n *FunctionExpression) any
	VisitArrayLiteralExpression(n *ArrayLiteralExpression) any
	VisitObjectLiteralExpression(n *ObjectLiteralExpression) any

	VisitTypeReference(n *TypeReference) any
	VisitArrayType(n *ArrayType) any
	VisitUnionType(n *UnionType) any
	VisitIntersectionType(n *IntersectionType) any
	VisitParenthesizedType(n *ParenthesizedType) any
	VisitPredefinedType(n *PredefinedType) any
	VisitObjectType(n *ObjectType) any
	VisitTupleType(n *TupleType) any
	VisitFunctionType(n *FunctionType) any
	VisitOptionalType(n *OptionalType) any
	VisitReturnType(n *ReturnType) any
	VisitTypeQuery(n *TypeQuery) any
}

// BaseVisitor implements every Visitor method with the hierarchical fallback
// spec'd for the visitor: concrete kinds fall back to their syntactic
// category, which falls back to Node. Embed it by value and set Self to the
// embedding visitor so overridden methods are reached during fallback.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitNode(Node) any { return nil }

func (b *BaseVisitor) VisitStatement(n Stmt) any  { return b.self().VisitNode(n) }
func (b *BaseVisitor) VisitExpression(n Expr) any { return b.self().VisitNode(n) }
func (b *BaseVisitor) VisitUnaryExpression(n Expr) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitUpdateExpression(n Expr) any {
	return b.self().VisitUnaryExpression(n)
}
func (b *BaseVisitor) VisitType(n TypeSyntax) any { return b.self().VisitNode(n) }

func (b *BaseVisitor) VisitSourceFile(n *SourceFile) any { return b.self().VisitNode(n) }
func (b *BaseVisitor) VisitModulePath(n *ModulePath) any { return b.self().VisitNode(n) }
func (b *BaseVisitor) VisitImportDeclaration(n *ImportDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitExportDeclaration(n *ExportDeclaration) any {
	return b.self().VisitStatement(n)
}

func (b *BaseVisitor) VisitVariableDeclaration(n *VariableDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitClassDeclaration(n *ClassDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitInterfaceDeclaration(n *InterfaceDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitStructDeclaration(n *StructDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitEnumDeclaration(n *EnumDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitAliasDeclaration(n *AliasDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitErrorDeclaration(n *ErrorDeclaration) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitBlock(n *Block) any { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitIfStatement(n *IfStatement) any { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitWhileStatement(n *WhileStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitForStatement(n *ForStatement) any { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitReturnStatement(n *ReturnStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitBreakStatement(n *BreakStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitContinueStatement(n *ContinueStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitMatchStatement(n *MatchStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitEmptyStatement(n *EmptyStatement) any {
	return b.self().VisitStatement(n)
}
func (b *BaseVisitor) VisitDebuggerStatement(n *DebuggerStatement) any {
	return b.self().VisitStatement(n)
}

func (b *BaseVisitor) VisitStringLiteral(n *StringLiteral) any { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitIntLiteral(n *IntLiteral) any       { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitFloatLiteral(n *FloatLiteral) any   { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitBoolLiteral(n *BoolLiteral) any     { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitNullLiteral(n *NullLiteral) any     { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitTemplateExpression(n *TemplateExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitRegexLiteral(n *RegexLiteral) any { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitIdentifier(n *Identifier) any     { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitParenthesizedExpression(n *ParenthesizedExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitPropertyAccessExpression(n *PropertyAccessExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitElementAccessExpression(n *ElementAccessExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitCallExpression(n *CallExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitNewExpression(n *NewExpression) any { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitPrefixUnaryExpression(n *PrefixUnaryExpression) any {
	return b.self().VisitUpdateExpression(n)
}
func (b *BaseVisitor) VisitPostfixUnaryExpression(n *PostfixUnaryExpression) any {
	return b.self().VisitUpdateExpression(n)
}
func (b *BaseVisitor) VisitBinaryExpression(n *BinaryExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitAssignmentExpression(n *AssignmentExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitConditionalExpression(n *ConditionalExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitAsExpression(n *AsExpression) any { return b.self().VisitExpression(n) }
func (b *BaseVisitor) VisitForcedAsExpression(n *ForcedAsExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitConditionalAsExpression(n *ConditionalAsExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitTypeOfExpression(n *TypeOfExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitVoidExpression(n *VoidExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitAwaitExpression(n *AwaitExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitFunctionExpression(n *FunctionExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitArrayLiteralExpression(n *ArrayLiteralExpression) any {
	return b.self().VisitExpression(n)
}
func (b *BaseVisitor) VisitObjectLiteralExpression(n *ObjectLiteralExpression) any {
	return b.self().VisitExpression(n)
}

func (b *BaseVisitor) VisitTypeReference(n *TypeReference) any { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitArrayType(n *ArrayType) any         { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitUnionType(n *UnionType) any         { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitIntersectionType(n *IntersectionType) any {
	return b.self().VisitType(n)
}
func (b *BaseVisitor) VisitParenthesizedType(n *ParenthesizedType) any {
	return b.self().VisitType(n)
}
func (b *BaseVisitor) VisitPredefinedType(n *PredefinedType) any { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitObjectType(n *ObjectType) any         { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitTupleType(n *TupleType) any           { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitFunctionType(n *FunctionType) any     { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitOptionalType(n *OptionalType) any     { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitReturnType(n *ReturnType) any         { return b.self().VisitType(n) }
func (b *BaseVisitor) VisitTypeQuery(n *TypeQuery) any           { return b.self().VisitType(n) }
