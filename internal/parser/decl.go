package parser

import (
	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/token"
)

// parseParamList parses a function/method `(params...)` list, including
// default values — the declaration-site counterpart of
// tryParseArrowParams, except this one always commits and always reports.
func (p *Parser) parseParamList() []ast.Param {
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to begin the parameter list")
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		rest := false
		start := p.lx.Peek().Span
		if p.at(token.DotDotDot) {
			rest = true
			p.advance()
		}
		name, sp, _ := p.parseIdentName()
		if rest {
			sp = start
		}
		param := ast.Param{SpanVal: sp, Name: name, Rest: rest}
		if p.at(token.Question) {
			param.Optional = true
			p.advance()
		}
		if p.at(token.Colon) {
			p.advance()
			param.Type = p.parseType()
			param.SpanVal = param.SpanVal.Cover(param.Type.Span())
		}
		if p.at(token.Assign) {
			p.advance()
			param.Default = p.parseAssignmentExpr()
			param.SpanVal = param.SpanVal.Cover(param.Default.Span())
		}
		params = append(params, param)
		if rest {
			break
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parameter list")
	return params
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Stmt {
	kw := p.advance() // 'fun'
	name, _, _ := p.parseIdentName()
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	params := p.parseParamList()
	retType := p.parseReturnType()
	body := p.parseBlockStmt()
	return &ast.FunctionDeclaration{
		SpanVal: kw.Span.Cover(body.Span()), Name: name, Async: async,
		TypeParams: typeParams, Params: params, ReturnType: retType, Body: body,
	}
}

// parseAsyncDeclarationOrStatement handles the `async fun name(...)`
// declaration form; an `async` that isn't followed by 'fun' is forwarded to
// expression-statement parsing (async arrow functions as statements).
func (p *Parser) parseAsyncDeclarationOrStatement() ast.Stmt {
	if p.peekTokenAfterAsync() == token.KwFun {
		p.advance() // 'async'
		return p.parseFunctionDeclaration(true)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) peekTokenAfterAsync() token.Kind {
	state := p.lx.GetStateForBeginningOfToken()
	p.advance() // 'async'
	k := p.lx.Peek().Kind
	p.lx.RestoreState(state)
	return k
}

func (p *Parser) parseClassDeclaration(exported bool) ast.Stmt {
	kw := p.advance()
	name, _, _ := p.parseIdentName()
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	var extends ast.TypeSyntax
	if p.at(token.KwExtends) {
		p.advance()
		extends = p.parseType()
	}
	var implements []ast.TypeSyntax
	if p.at(token.KwImplements) {
		p.advance()
		implements = append(implements, p.parseType())
		for p.at(token.Comma) {
			p.advance()
			implements = append(implements, p.parseType())
		}
	}
	_, _ = p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin class body")
	var members []ast.ClassMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		beforeSpan := p.lx.Peek().Span
		members = append(members, p.parseClassMember())
		if !p.at(token.EOF) && p.lx.Peek().Span == beforeSpan {
			p.advance()
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class body")
	sp := kw.Span.Cover(close.Span)
	if !ok {
		sp = kw.Span
	}
	return &ast.ClassDeclaration{
		SpanVal: sp, Name: name, Exported: exported, TypeParams: typeParams,
		Extends: extends, Implements: implements, Members: members,
	}
}

func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.lx.Peek().Span
	m := ast.ClassMember{Visibility: ast.VisPublic}
	for {
		switch p.lx.Peek().Kind {
		case token.KwPublic:
			m.Visibility = ast.VisPublic
			p.advance()
		case token.KwPrivate:
			m.Visibility = ast.VisPrivate
			p.advance()
		case token.KwProtected:
			m.Visibility = ast.VisProtected
			p.advance()
		case token.KwStatic:
			m.Static = true
			p.advance()
		case token.KwReadonly:
			m.Readonly = true
			p.advance()
		case token.KwAsync:
			m.Async = true
			p.advance()
		case token.KwGet, token.KwSet, token.KwOverride, token.KwAbstract:
			p.advance()
		default:
			goto modifiersDone
		}
	}
modifiersDone:

	if p.at(token.KwConstructor) {
		p.advance()
		m.Kind = ast.ClassMemberConstructor
		m.Name = "constructor"
		m.Params = p.parseParamList()
		m.Body = p.parseBlockStmt()
		m.SpanVal = start.Cover(m.Body.Span())
		return m
	}

	name, sp, _ := p.parseIdentName()
	m.Name = name

	if p.at(token.Lt) || p.at(token.LParen) {
		m.Kind = ast.ClassMemberMethod
		if p.at(token.Lt) {
			m.TypeParams = p.parseTypeParamList()
		}
		m.Params = p.parseParamList()
		m.ReturnType = p.parseReturnType()
		m.Body = p.parseBlockStmt()
		m.SpanVal = start.Cover(m.Body.Span())
		return m
	}

	m.Kind = ast.ClassMemberField
	end := sp
	if p.at(token.Question) {
		p.advance()
	}
	if p.at(token.Colon) {
		p.advance()
		m.Type = p.parseType()
		end = m.Type.Span()
	}
	if p.at(token.Assign) {
		p.advance()
		m.Initializer = p.parseAssignmentExpr()
		end = m.Initializer.Span()
	}
	end = p.consumeSemicolon(end)
	m.SpanVal = start.Cover(end)
	return m
}

func (p *Parser) parseInterfaceDeclaration(exported bool) ast.Stmt {
	kw := p.advance()
	name, _, _ := p.parseIdentName()
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	var extends []ast.TypeSyntax
	if p.at(token.KwExtends) {
		p.advance()
		extends = append(extends, p.parseType())
		for p.at(token.Comma) {
			p.advance()
			extends = append(extends, p.parseType())
		}
	}
	_, _ = p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin interface body")
	var members []ast.ObjectTypeMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		members = append(members, p.parseObjectTypeMember())
		if p.at(token.Comma) || p.at(token.Semicolon) {
			p.advance()
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close interface body")
	sp := kw.Span.Cover(close.Span)
	if !ok {
		sp = kw.Span
	}
	return &ast.InterfaceDeclaration{SpanVal: sp, Name: name, Exported: exported, TypeParams: typeParams, Extends: extends, Members: members}
}

func (p *Parser) parseStructDeclaration(exported bool) ast.Stmt {
	kw := p.advance()
	name, _, _ := p.parseIdentName()
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	_, _ = p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to begin struct body")
	var fields []ast.ObjectTypeMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fields = append(fields, p.parseObjectTypeMember())
		if p.at(token.Comma) || p.at(token.Semicolon) {
			p.advance()
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct body")
	sp := kw.Span.Cover(close.Span)
	if !ok {
		sp = kw.Span
	}
	return &ast.StructDeclaration{SpanVal: sp, Name: name, Exported: exported, TypeParams: typeParams, Fields: fields}
}

func (p *Parser) parseEnumDeclaration(exported bool) ast.Stmt {
	kw := p.advance()
	name, _, _ := p.parseIdentName()
	_, _ = p.expect(token.LBrace, diag.SynEnumExpectBody, "expected '{' to begin enum body")
	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		vname, vsp, _ := p.parseIdentName()
		variant := ast.EnumVariant{SpanVal: vsp, Name: vname}
		if p.at(token.Assign) {
			p.advance()
			variant.Initializer = p.parseAssignmentExpr()
			variant.SpanVal = vsp.Cover(variant.Initializer.Span())
		}
		variants = append(variants, variant)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBrace, diag.SynEnumExpectRBrace, "expected '}' to close enum body")
	sp := kw.Span.Cover(close.Span)
	if !ok {
		sp = kw.Span
	}
	return &ast.EnumDeclaration{SpanVal: sp, Name: name, Exported: exported, Variants: variants}
}

// parseAliasDeclaration parses `type Name<T> = Target;`, recognized via the
// contextual "type" identifier since the lexer does not reserve it.
func (p *Parser) parseAliasDeclaration(exported bool) ast.Stmt {
	kw := p.advance() // 'type'
	name, _, _ := p.parseIdentName()
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	_, _ = p.expect(token.Assign, diag.SynTypeExpectEquals, "expected '=' in type alias")
	target := p.parseType()
	end := p.consumeSemicolon(target.Span())
	return &ast.AliasDeclaration{SpanVal: kw.Span.Cover(end), Name: name, Exported: exported, TypeParams: typeParams, Target: target}
}

// parseErrorDeclaration parses `error Name { fields... }`, recognized via
// the contextual "error" identifier.
func (p *Parser) parseErrorDeclaration(exported bool) ast.Stmt {
	kw := p.advance() // 'error'
	name, _, _ := p.parseIdentName()
	var fields []ast.ObjectTypeMember
	end := kw.Span
	if p.at(token.LBrace) {
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			fields = append(fields, p.parseObjectTypeMember())
			if p.at(token.Comma) || p.at(token.Semicolon) {
				p.advance()
			}
		}
		close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close error body")
		end = close.Span
		if !ok {
			end = kw.Span
		}
	} else {
		end = p.consumeSemicolon(end)
	}
	return &ast.ErrorDeclaration{SpanVal: kw.Span.Cover(end), Name: name, Exported: exported, Fields: fields}
}

// parseExportDeclaration parses `export { a, b as c };`, `export { a } from
// Path;`, or wraps a directly exported declaration.
func (p *Parser) parseExportDeclaration() ast.Stmt {
	kw := p.advance()
	if p.at(token.LBrace) {
		p.advance()
		var specs []ast.ExportSpecifier
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			name, sp, _ := p.parseIdentName()
			spec := ast.ExportSpecifier{SpanVal: sp, Name: name}
			if p.at(token.KwAs) {
				p.advance()
				alias, aliasSp, _ := p.parseIdentName()
				spec.Alias = alias
				spec.SpanVal = sp.Cover(aliasSp)
			}
			specs = append(specs, spec)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		_, _ = p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close export group")
		var path *ast.ModulePath
		end := kw.Span
		if p.at(token.KwFrom) {
			p.advance()
			path = p.parseModulePath()
			end = path.Span()
		}
		end = p.consumeSemicolon(end)
		return &ast.ExportDeclaration{SpanVal: kw.Span.Cover(end), Specifiers: specs, Path: path}
	}

	decl := p.parseExportedDeclaration()
	return &ast.ExportDeclaration{SpanVal: kw.Span.Cover(decl.Span()), Decl: decl}
}

// parseExportedDeclaration parses the declaration directly following
// `export` (not an export group), threading the Exported flag through.
func (p *Parser) parseExportedDeclaration() ast.Stmt {
	switch p.lx.Peek().Kind {
	case token.KwClass:
		return p.parseClassDeclaration(true)
	case token.KwInterface:
		return p.parseInterfaceDeclaration(true)
	case token.KwStruct:
		return p.parseStructDeclaration(true)
	case token.KwEnum:
		return p.parseEnumDeclaration(true)
	case token.KwFun:
		return p.markFunctionExported(p.parseFunctionDeclaration(false))
	case token.KwAsync:
		p.advance()
		return p.markFunctionExported(p.parseFunctionDeclaration(true))
	case token.KwLet, token.KwConst, token.KwVar:
		decl := p.parseVariableDeclaration()
		decl.Exported = true
		p.consumeSemicolon(decl.Span())
		return decl
	case token.Ident:
		if p.isContextualKeyword("type") {
			return p.parseAliasDeclaration(true)
		}
		if p.isContextualKeyword("error") {
			return p.parseErrorDeclaration(true)
		}
		fallthrough
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected a declaration after 'export'")
		return p.parseStatement()
	}
}

func (p *Parser) markFunctionExported(s ast.Stmt) ast.Stmt {
	if fd, ok := s.(*ast.FunctionDeclaration); ok {
		fd.Exported = true
	}
	return s
}

func (p *Parser) parseModulePath() *ast.ModulePath {
	start := p.lx.Peek().Span
	var parts []string
	name, sp, ok := p.parseIdentName()
	if !ok {
		return &ast.ModulePath{SpanVal: sp}
	}
	parts = append(parts, name)
	end := sp
	for p.at(token.Dot) {
		p.advance()
		seg, segSp, ok := p.parseIdentName()
		if !ok {
			p.err(diag.SynExpectModuleSeg, "expected a module path segment")
			break
		}
		parts = append(parts, seg)
		end = segSp
	}
	return &ast.ModulePath{SpanVal: start.Cover(end), Parts: parts}
}

// parseImportDeclaration parses `import { a, b as c } from Path;` or
// `import * as ns from Path;`.
func (p *Parser) parseImportDeclaration() ast.Stmt {
	kw := p.advance()
	var specs []ast.ImportSpecifier
	namespaceAs := ""

	switch {
	case p.at(token.Star):
		p.advance()
		_, _ = p.expect(token.KwAs, diag.SynExpectIdentAfterAs, "expected 'as' after '*' in import")
		name, _, _ := p.parseIdentName()
		namespaceAs = name
	case p.at(token.LBrace):
		p.advance()
		if p.at(token.RBrace) {
			p.err(diag.SynEmptyImportGroup, "empty import group")
		}
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			name, sp, _ := p.parseIdentName()
			spec := ast.ImportSpecifier{SpanVal: sp, Name: name}
			if p.at(token.KwAs) {
				p.advance()
				alias, aliasSp, _ := p.parseIdentName()
				spec.Alias = alias
				spec.SpanVal = sp.Cover(aliasSp)
			}
			specs = append(specs, spec)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		_, _ = p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close import group")
	default:
		p.err(diag.SynExpectIdentifier, "expected '{', '*', or an identifier after 'import'")
	}

	_, _ = p.expect(token.KwFrom, diag.SynExpectModuleSeg, "expected 'from' in import declaration")
	path := p.parseModulePath()
	end := p.consumeSemicolon(path.Span())
	return &ast.ImportDeclaration{SpanVal: kw.Span.Cover(end), Specifiers: specs, NamespaceAs: namespaceAs, Path: path}
}
