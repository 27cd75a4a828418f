package parser

import (
	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/lexer"
	"zomlang/internal/source"
	"zomlang/internal/token"
)

// parseTopLevelStatement parses one top-level item: an import, an export, a
// pragma-adjacent declaration, or any ordinary statement. zomlang's grammar
// treats declarations as statements, so the bulk of the work is shared with
// parseStatement.
func (p *Parser) parseTopLevelStatement() ast.Stmt {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImportDeclaration()
	case token.KwExport:
		return p.parseExportDeclaration()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return &ast.EmptyStatement{SpanVal: tok.Span}
	case token.KwDebugger:
		p.advance()
		end := p.consumeSemicolon(tok.Span)
		return &ast.DebuggerStatement{SpanVal: tok.Span.Cover(end)}
	case token.LBrace:
		return p.parseBlockStmt()
	case token.KwLet, token.KwConst, token.KwVar:
		decl := p.parseVariableDeclaration()
		p.consumeSemicolon(decl.Span())
		return decl
	case token.KwFun:
		return p.parseFunctionDeclaration(false)
	case token.KwAsync:
		return p.parseAsyncDeclarationOrStatement()
	case token.KwClass:
		return p.parseClassDeclaration(false)
	case token.KwInterface:
		return p.parseInterfaceDeclaration(false)
	case token.KwStruct:
		return p.parseStructDeclaration(false)
	case token.KwEnum:
		return p.parseEnumDeclaration(false)
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwWhile:
		return p.parseWhileStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwBreak:
		return p.parseBreakStatement()
	case token.KwContinue:
		return p.parseContinueStatement()
	case token.KwMatch:
		return p.parseMatchStatement()
	case token.Ident:
		if p.isContextualKeyword("type") {
			return p.parseAliasDeclaration(false)
		}
		if p.isContextualKeyword("error") {
			return p.parseErrorDeclaration(false)
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// consumeSemicolon eats an optional-but-expected trailing ';', reporting and
// recovering without consuming anything else when it's missing. Returns the
// span the caller should extend its own span to cover.
func (p *Parser) consumeSemicolon(fallback source.Span) source.Span {
	if p.at(token.Semicolon) {
		return p.advance().Span
	}
	if p.at(token.RBrace) || p.at(token.EOF) {
		return fallback
	}
	at := p.errorSpan().ZeroideToStart()
	p.errAtWithFixes(diag.SynExpectSemicolon, at, "expected ';' to terminate the statement",
		[]diag.Fix{{
			Title:         "Insert ';'",
			Kind:          diag.FixKindQuickFix,
			Applicability: diag.FixApplicabilityAlwaysSafe,
			IsPreferred:   true,
			Edits:         []diag.FixEdit{{Span: at, NewText: ";"}},
		}})
	return fallback
}

func (p *Parser) parseBlockStmt() *ast.Block {
	p.lx.EnterMode(lexer.ModeNormal)
	defer p.lx.ExitMode()

	open, _ := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin a block")
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		beforeSpan := p.lx.Peek().Span
		stmts = append(stmts, p.parseStatement())
		if !p.at(token.EOF) && p.lx.Peek().Span == beforeSpan {
			p.advance()
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the block")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span
	}
	return &ast.Block{SpanVal: sp, Statements: stmts}
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	expr := p.parseExpr()
	if isErrorPlaceholder(expr) {
		// Nothing expression-shaped here; skip to the next statement
		// boundary instead of cascading a missing-semicolon diagnostic.
		p.syncStatement()
		return &ast.ExpressionStatement{SpanVal: expr.Span(), Expression: expr}
	}
	end := p.consumeSemicolon(expr.Span())
	return &ast.ExpressionStatement{SpanVal: expr.Span().Cover(end), Expression: expr}
}

func isErrorPlaceholder(e ast.Expr) bool {
	id, ok := e.(*ast.Identifier)
	return ok && id.Name == "<error>"
}

// statementStart lists the tokens that can begin a statement, plus the two
// boundary tokens recovery stops at: ';' (consumed by syncStatement) and
// '}' (left for the enclosing block to close on).
var statementStart = []token.Kind{
	token.Semicolon, token.RBrace, token.LBrace,
	token.KwLet, token.KwConst, token.KwVar,
	token.KwFun, token.KwAsync, token.KwClass, token.KwInterface,
	token.KwStruct, token.KwEnum,
	token.KwIf, token.KwWhile, token.KwFor,
	token.KwReturn, token.KwBreak, token.KwContinue, token.KwMatch,
	token.KwImport, token.KwExport, token.KwDebugger,
}

// syncStatement implements statement-level error recovery: discard tokens
// until one that can begin a statement, a ';' (consumed, it terminates the
// broken statement), a '}' (left in place), or EOF.
func (p *Parser) syncStatement() {
	p.resyncUntil(statementStart...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	kwTok := p.advance()
	var kind ast.VarKind
	switch kwTok.Kind {
	case token.KwConst:
		kind = ast.VarConst
	case token.KwVar:
		kind = ast.VarVar
	default:
		kind = ast.VarLet
	}

	var elems []ast.BindingElement
	for {
		name, sp, _ := p.parseIdentName()
		elem := ast.BindingElement{SpanVal: sp, Name: name}
		if p.at(token.Colon) {
			p.advance()
			elem.Type = p.parseType()
		}
		if p.at(token.Assign) {
			p.advance()
			elem.Initializer = p.parseAssignmentExpr()
		}
		if elem.Initializer != nil {
			elem.SpanVal = elem.SpanVal.Cover(elem.Initializer.Span())
		} else if elem.Type != nil {
			elem.SpanVal = elem.SpanVal.Cover(elem.Type.Span())
		}
		elems = append(elems, elem)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := elems[len(elems)-1].SpanVal
	return &ast.VariableDeclaration{SpanVal: kwTok.Span.Cover(end), Kind_: kind, Elements: elems}
}

func (p *Parser) parseIfStatement() ast.Stmt {
	kw := p.advance()
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'")
	cond := p.parseExpr()
	_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after if-condition")
	then := p.parseStatement()
	end := then.Span()
	var elseStmt ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		elseStmt = p.parseStatement()
		end = elseStmt.Span()
	}
	return &ast.IfStatement{SpanVal: kw.Span.Cover(end), Condition: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	kw := p.advance()
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'")
	cond := p.parseExpr()
	_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after while-condition")
	body := p.parseStatement()
	return &ast.WhileStatement{SpanVal: kw.Span.Cover(body.Span()), Condition: cond, Body: body}
}

// parseForStatement disambiguates the classic three-clause header from the
// `for (name of|in expr)` iteration forms by parsing the binding first and
// checking for 'of'/'in' before committing to either shape.
func (p *Parser) parseForStatement() ast.Stmt {
	kw := p.advance()
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'")

	if p.atAny(token.KwLet, token.KwConst, token.KwVar) && p.isForOfIn() {
		p.advance() // let/const/var; the binding form isn't tracked on ForStatement
		name, _, _ := p.parseIdentName()
		isOf := p.at(token.KwOf)
		p.advance() // 'of' or 'in'
		iterable := p.parseExpr()
		_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the for-header")
		body := p.parseStatement()
		return &ast.ForStatement{
			SpanVal: kw.Span.Cover(body.Span()), IsOf: isOf, IsIn: !isOf,
			Binding: name, Iterable: iterable, Body: body,
		}
	}

	var init ast.Node
	if !p.at(token.Semicolon) {
		if p.atAny(token.KwLet, token.KwConst, token.KwVar) {
			init = p.parseVariableDeclaration()
		} else {
			e := p.parseExpr()
			init = &ast.ExpressionStatement{SpanVal: e.Span(), Expression: e}
		}
	}
	_, _ = p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop initializer")
	var cond ast.Expr
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	_, _ = p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop condition")
	var update ast.Expr
	if !p.at(token.RParen) {
		update = p.parseExpr()
	}
	_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the for-header")
	body := p.parseStatement()
	return &ast.ForStatement{SpanVal: kw.Span.Cover(body.Span()), Init: init, Cond: cond, Update: update, Body: body}
}

// isForOfIn looks one identifier past the current let/const/var keyword to
// see whether 'of' or 'in' follows, without committing to either parse.
func (p *Parser) isForOfIn() bool {
	state := p.lx.GetStateForBeginningOfToken()
	p.advance() // let/const/var
	if !p.at(token.Ident) {
		p.lx.RestoreState(state)
		return false
	}
	p.advance()
	ok := p.at(token.KwOf) || p.at(token.KwIn)
	p.lx.RestoreState(state)
	return ok
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	kw := p.advance()
	var val ast.Expr
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		val = p.parseExpr()
	}
	end := kw.Span
	if val != nil {
		end = val.Span()
	}
	end = p.consumeSemicolon(end)
	return &ast.ReturnStatement{SpanVal: kw.Span.Cover(end), Value: val}
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	kw := p.advance()
	label := ""
	end := kw.Span
	if p.at(token.Ident) {
		t := p.advance()
		label = t.Text
		end = t.Span
	}
	end = p.consumeSemicolon(end)
	return &ast.BreakStatement{SpanVal: kw.Span.Cover(end), Label: label}
}

func (p *Parser) parseContinueStatement() ast.Stmt {
	kw := p.advance()
	label := ""
	end := kw.Span
	if p.at(token.Ident) {
		t := p.advance()
		label = t.Text
		end = t.Span
	}
	end = p.consumeSemicolon(end)
	return &ast.ContinueStatement{SpanVal: kw.Span.Cover(end), Label: label}
}

func (p *Parser) parseMatchStatement() ast.Stmt {
	kw := p.advance()
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'match'")
	subject := p.parseExpr()
	_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after match subject")
	_, _ = p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin match body")

	var cases []ast.CaseClause
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		cases = append(cases, p.parseCaseClause())
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close match body")
	sp := kw.Span.Cover(close.Span)
	if !ok {
		sp = kw.Span
	}
	return &ast.MatchStatement{SpanVal: sp, Expression: subject, Cases: cases}
}

func (p *Parser) parseCaseClause() ast.CaseClause {
	start := p.lx.Peek().Span
	isDefault := false
	var patterns []ast.Expr
	if p.at(token.KwDefault) {
		isDefault = true
		p.advance()
	} else {
		_, _ = p.expect(token.KwCase, diag.SynUnexpectedToken, "expected 'case' or 'default'")
		patterns = append(patterns, p.parseAssignmentExpr())
		for p.at(token.Comma) {
			p.advance()
			patterns = append(patterns, p.parseAssignmentExpr())
		}
	}
	_, _ = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case pattern")

	var body []ast.Stmt
	for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		body = append(body, p.parseStatement())
	}
	end := start
	if len(body) > 0 {
		end = body[len(body)-1].Span()
	}
	return ast.CaseClause{SpanVal: start.Cover(end), Patterns: patterns, IsDefault: isDefault, Body: body}
}
