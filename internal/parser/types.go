package parser

import (
	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/source"
	"zomlang/internal/token"
)

// parseType parses a full type expression: `union (| intersection)*`.
func (p *Parser) parseType() ast.TypeSyntax {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() ast.TypeSyntax {
	// A leading '|' is allowed before the first member, mirroring the
	// alignment style TS-like sources use for multi-line unions.
	if p.at(token.Pipe) {
		p.advance()
	}
	first := p.parseIntersectionType()
	if !p.at(token.Pipe) {
		return first
	}
	members := []ast.TypeSyntax{first}
	start := first.Span()
	for p.at(token.Pipe) {
		p.advance()
		members = append(members, p.parseIntersectionType())
	}
	end := members[len(members)-1].Span()
	return &ast.UnionType{SpanVal: start.Cover(end), Members: members}
}

func (p *Parser) parseIntersectionType() ast.TypeSyntax {
	if p.at(token.Amp) {
		p.advance()
	}
	first := p.parsePostfixType()
	if !p.at(token.Amp) {
		return first
	}
	members := []ast.TypeSyntax{first}
	start := first.Span()
	for p.at(token.Amp) {
		p.advance()
		members = append(members, p.parsePostfixType())
	}
	end := members[len(members)-1].Span()
	return &ast.IntersectionType{SpanVal: start.Cover(end), Members: members}
}

// parsePostfixType applies trailing `[]` (array) and `?` (optional) suffixes,
// which may chain and combine: `T[]?`, `T?[]`.
func (p *Parser) parsePostfixType() ast.TypeSyntax {
	t := p.parsePrimaryType()
	for {
		switch {
		case p.at(token.LBracket):
			open := p.advance()
			close, ok := p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' after array type")
			sp := t.Span().Cover(open.Span)
			if ok {
				sp = t.Span().Cover(close.Span)
			}
			t = &ast.ArrayType{SpanVal: sp, Elem: t}
		case p.at(token.Question):
			q := p.advance()
			t = &ast.OptionalType{SpanVal: t.Span().Cover(q.Span), Inner: t}
		default:
			return t
		}
	}
}

func (p *Parser) parsePrimaryType() ast.TypeSyntax {
	switch p.lx.Peek().Kind {
	case token.LParen:
		return p.parseParenOrFunctionType()
	case token.Lt:
		return p.parseFunctionTypeWithTypeParams()
	case token.LBracket:
		return p.parseTupleType()
	case token.LBrace:
		return p.parseObjectType()
	case token.KwTypeof:
		return p.parseTypeQuery()
	case token.KwNumber:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedNumber}
	case token.KwBoolean:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedBoolean}
	case token.KwVoid:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedVoid}
	case token.KwAny:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedAny}
	case token.KwNever:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedNever}
	case token.KwObject:
		t := p.advance()
		return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedObject}
	case token.Ident:
		if p.isContextualKeyword("unknown") {
			t := p.advance()
			return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedUnknown}
		}
		if p.isContextualKeyword("string") {
			t := p.advance()
			return &ast.PredefinedType{SpanVal: t.Span, Keyword: ast.PredefinedString}
		}
		return p.parseTypeReference()
	default:
		p.err(diag.SynExpectType, "expected a type")
		sp := p.errorSpan()
		p.advance()
		return &ast.TypeReference{SpanVal: sp, Name: "<error>"}
	}
}

func (p *Parser) parseTypeReference() ast.TypeSyntax {
	name, sp, ok := p.parseIdentName()
	if !ok {
		return &ast.TypeReference{SpanVal: sp, Name: "<error>"}
	}
	ref := &ast.TypeReference{SpanVal: sp, Name: name}
	if p.at(token.Lt) {
		args, end := p.parseTypeArgumentList()
		ref.TypeArgs = args
		ref.SpanVal = sp.Cover(end)
	}
	return ref
}

// parseTypeArgumentList parses `<T, U>`, assuming the caller already
// confirmed the '<' begins a type-argument list rather than a comparison.
// Closing a nested list often lands on a multi-char '>'-prefixed token
// (`>>`, `>>>`, `>=`...) that the lexer has no reason to split on its own;
// biteClosingAngle peels one '>' off the front and pushes the remainder back.
func (p *Parser) parseTypeArgumentList() ([]ast.TypeSyntax, source.Span) {
	open := p.advance() // '<'
	var args []ast.TypeSyntax
	for {
		args = append(args, p.parseType())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end, ok := p.biteClosingAngle()
	if !ok {
		p.err(diag.SynUnclosedAngleBracket, "expected '>' to close the type argument list")
		end = open.Span
	}
	return args, end
}

// biteClosingAngle consumes one '>' worth of a closing angle bracket,
// splitting multi-character operators that begin with '>' and pushing the
// remainder back onto the lexer.
func (p *Parser) biteClosingAngle() (source.Span, bool) {
	tok := p.lx.Peek()
	var remainderKind token.Kind
	switch tok.Kind {
	case token.Gt:
		p.advance()
		return tok.Span, true
	case token.GtEq:
		remainderKind = token.Assign
	case token.Shr:
		remainderKind = token.Gt
	case token.ShrAssign:
		remainderKind = token.GtEq
	case token.UShr:
		remainderKind = token.Shr
	case token.UShrAssign:
		remainderKind = token.ShrAssign
	default:
		return source.Span{}, false
	}
	p.advance()
	first := source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1}
	rest := source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End}
	p.lx.Push(token.Token{Kind: remainderKind, Span: rest, Text: tok.Text[1:]})
	return first, true
}

func (p *Parser) parseTypeQuery() ast.TypeSyntax {
	kw := p.advance()
	expr := p.parseUnaryExpr()
	return &ast.TypeQuery{SpanVal: kw.Span.Cover(expr.Span()), Expression: expr}
}

func (p *Parser) parseTupleType() ast.TypeSyntax {
	open := p.advance()
	var elems []ast.TypeSyntax
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elems = append(elems, p.parseType())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close the tuple type")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span
	}
	return &ast.TupleType{SpanVal: sp, Elements: elems}
}

func (p *Parser) parseObjectType() ast.TypeSyntax {
	open := p.advance()
	var members []ast.ObjectTypeMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		members = append(members, p.parseObjectTypeMember())
		if p.at(token.Comma) || p.at(token.Semicolon) {
			p.advance()
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the object type")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span
	}
	return &ast.ObjectType{SpanVal: sp, Members: members}
}

func (p *Parser) parseObjectTypeMember() ast.ObjectTypeMember {
	readonly := false
	if p.at(token.KwReadonly) {
		readonly = true
		p.advance()
	}
	name, sp, _ := p.parseIdentName()
	optional := false
	if p.at(token.Question) {
		optional = true
		p.advance()
	}
	_, _ = p.expect(token.Colon, diag.SynExpectColon, "expected ':' before member type")
	t := p.parseType()
	return ast.ObjectTypeMember{
		SpanVal:  sp.Cover(t.Span()),
		Name:     name,
		Type:     t,
		Optional: optional,
		Readonly: readonly,
	}
}

// parseParenOrFunctionType disambiguates `(T)` / `(A, B)` tuple-ish
// parenthesization from a function type `(a: A, b: B) => R` by speculatively
// parsing a parameter list and checking for a following '=>'; on failure it
// rewinds the lexer and re-parses as a parenthesized type.
func (p *Parser) parseParenOrFunctionType() ast.TypeSyntax {
	state := p.lx.GetStateForBeginningOfToken()
	open := p.advance()

	p.beginSpeculation()
	if params, ok := p.tryParseFunctionTypeParams(); ok && p.at(token.FatArrow) {
		p.commitSpeculation()
		p.advance()
		ret := p.parseType()
		return &ast.FunctionType{SpanVal: open.Span.Cover(ret.Span()), Params: params, ReturnType: ret}
	}
	p.abandonSpeculation()

	p.lx.RestoreState(state)
	p.advance() // re-consume '('
	inner := p.parseType()
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parenthesized type")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span.Cover(inner.Span())
	}
	return &ast.ParenthesizedType{SpanVal: sp, Inner: inner}
}

// tryParseFunctionTypeParams attempts to parse a `name: Type, ...` list up to
// the matching ')'. It never emits diagnostics; callers that accept the
// speculative parse are responsible for diagnosing anything downstream.
func (p *Parser) tryParseFunctionTypeParams() ([]ast.Param, bool) {
	var params []ast.Param
	for !p.at(token.RParen) {
		rest := false
		if p.at(token.DotDotDot) {
			rest = true
			p.advance()
		}
		if !p.at(token.Ident) {
			return nil, false
		}
		nameTok := p.advance()
		optional := false
		if p.at(token.Question) {
			optional = true
			p.advance()
		}
		if !p.at(token.Colon) {
			return nil, false
		}
		p.advance()
		t := p.parseType()
		params = append(params, ast.Param{SpanVal: nameTok.Span.Cover(t.Span()), Name: nameTok.Text, Type: t, Optional: optional, Rest: rest})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if !p.at(token.RParen) {
		return nil, false
	}
	p.advance()
	return params, true
}

// parseFunctionTypeWithTypeParams parses `<T>(a: T) => R`.
func (p *Parser) parseFunctionTypeWithTypeParams() ast.TypeSyntax {
	start := p.lx.Peek().Span
	tps := p.parseTypeParamList()
	_, _ = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after type parameters")
	params, _ := p.tryParseFunctionTypeParams()
	_, _ = p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' in function type")
	ret := p.parseType()
	return &ast.FunctionType{SpanVal: start.Cover(ret.Span()), TypeParams: tps, Params: params, ReturnType: ret}
}

// parseTypeParamList parses `<T extends B = D, ...>`.
func (p *Parser) parseTypeParamList() []ast.TypeParam {
	_, _ = p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<'")
	var out []ast.TypeParam
	for !p.at(token.Gt) && !p.at(token.EOF) {
		name, sp, _ := p.parseIdentName()
		tp := ast.TypeParam{SpanVal: sp, Name: name}
		if p.at(token.KwExtends) {
			p.advance()
			tp.Extends = p.parseType()
		}
		if p.at(token.Assign) {
			p.advance()
			tp.Default = p.parseType()
		}
		out = append(out, tp)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, _ = p.expect(token.Gt, diag.SynUnclosedAngleBracket, "expected '>' to close the type parameter list")
	return out
}

// parseReturnType parses the `-> T` (or `-> T raises E`) suffix after a
// parameter list, e.g. `fun f(x: i32) -> i32? { ... }` or
// `fun f() -> i32 raises Error { ... }`.
func (p *Parser) parseReturnType() *ast.ReturnType {
	if !p.at(token.Arrow) {
		return nil
	}
	arrow := p.advance()
	t := p.parseType()
	rt := &ast.ReturnType{SpanVal: arrow.Span.Cover(t.Span()), Type: t}
	if p.at(token.KwRaises) {
		p.advance()
		errT := p.parseType()
		rt.ErrorType = errT
		rt.SpanVal = rt.SpanVal.Cover(errT.Span())
	}
	return rt
}
