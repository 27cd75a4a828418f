package parser

import (
	"strconv"

	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/lexer"
	"zomlang/internal/token"
)

func binarySymbol(k token.Kind) (string, bool) {
	switch k {
	case token.QuestionQuestion:
		return "??", true
	case token.PipePipe:
		return "||", true
	case token.AmpAmp:
		return "&&", true
	case token.Pipe:
		return "|", true
	case token.Caret:
		return "^", true
	case token.Amp:
		return "&", true
	case token.EqEq:
		return "==", true
	case token.BangEq:
		return "!=", true
	case token.EqEqEq:
		return "===", true
	case token.BangEqEq:
		return "!==", true
	case token.Lt:
		return "<", true
	case token.Gt:
		return ">", true
	case token.LtEq:
		return "<=", true
	case token.GtEq:
		return ">=", true
	case token.Shl:
		return "<<", true
	case token.Shr:
		return ">>", true
	case token.UShr:
		return ">>>", true
	case token.Plus:
		return "+", true
	case token.Minus:
		return "-", true
	case token.Star:
		return "*", true
	case token.Slash:
		return "/", true
	case token.Percent:
		return "%", true
	case token.StarStar:
		return "**", true
	}
	return "", false
}

func assignSymbol(k token.Kind) (string, bool) {
	switch k {
	case token.Assign:
		return "=", true
	case token.PlusAssign:
		return "+=", true
	case token.MinusAssign:
		return "-=", true
	case token.StarAssign:
		return "*=", true
	case token.SlashAssign:
		return "/=", true
	case token.PercentAssign:
		return "%=", true
	case token.StarStarAssign:
		return "**=", true
	case token.ShlAssign:
		return "<<=", true
	case token.ShrAssign:
		return ">>=", true
	case token.UShrAssign:
		return ">>>=", true
	case token.AmpAssign:
		return "&=", true
	case token.PipeAssign:
		return "|=", true
	case token.CaretAssign:
		return "^=", true
	case token.AmpAmpAssign:
		return "&&=", true
	case token.PipePipeAssign:
		return "||=", true
	case token.QuestionQuestionAssign:
		return "??=", true
	}
	return "", false
}

func prefixSymbol(k token.Kind) (string, bool) {
	switch k {
	case token.Plus:
		return "+", true
	case token.Minus:
		return "-", true
	case token.Bang:
		return "!", true
	case token.Tilde:
		return "~", true
	case token.PlusPlus:
		return "++", true
	case token.MinusMinus:
		return "--", true
	}
	return "", false
}

func postfixSymbol(k token.Kind) (string, bool) {
	switch k {
	case token.PlusPlus:
		return "++", true
	case token.MinusMinus:
		return "--", true
	}
	return "", false
}

// parseExpr is the entry point for a full expression.
func (p *Parser) parseExpr() ast.Expr {
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	if p.exprDepth > maxExprDepth {
		p.err(diag.SynUnexpectedToken, "expression nested too deeply")
		return &ast.Identifier{SpanVal: p.errorSpan(), Name: "<error>"}
	}
	return p.parseAssignmentExpr()
}

func (p *Parser) parseAssignmentExpr() ast.Expr {
	left := p.parseConditionalExpr()
	if sym, ok := assignSymbol(p.lx.Peek().Kind); ok {
		op, _ := ast.LookupAssignmentOperator(sym)
		if !ast.IsLValueShaped(left) {
			p.errAt(diag.SynUnexpectedToken, left.Span(), "left-hand side of assignment must be a variable, property, or index")
		}
		p.advance()
		right := p.parseAssignmentExpr()
		return &ast.AssignmentExpression{SpanVal: left.Span().Cover(right.Span()), Left: left, Operator: op, Right: right}
	}
	return left
}

func (p *Parser) parseConditionalExpr() ast.Expr {
	cond := p.parseBinaryExpr(ast.PrecNullish)
	if !p.at(token.Question) {
		return cond
	}
	p.advance()
	thenE := p.parseAssignmentExpr()
	_, _ = p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression")
	elseE := p.parseAssignmentExpr()
	return &ast.ConditionalExpression{SpanVal: cond.Span().Cover(elseE.Span()), Condition: cond, Then: thenE, Else: elseE}
}

func (p *Parser) parseBinaryExpr(minPrec ast.Precedence) ast.Expr {
	left := p.parseAsExpr()
	for {
		sym, ok := binarySymbol(p.lx.Peek().Kind)
		if !ok {
			return left
		}
		op, _ := ast.LookupBinaryOperator(sym)
		if op.Precedence < minPrec {
			return left
		}
		p.advance()
		nextMin := op.Precedence
		if op.Associativity == ast.AssocLeft {
			nextMin++
		}
		right := p.parseBinaryExpr(nextMin)
		left = &ast.BinaryExpression{SpanVal: left.Span().Cover(right.Span()), Left: left, Operator: op, Right: right}
	}
}

// parseAsExpr handles the postfix `expr as T` / `expr as! T` / `expr as? T`
// cast family, which binds tighter than any binary operator but looser than
// unary prefixes and postfix access.
func (p *Parser) parseAsExpr() ast.Expr {
	e := p.parseUnaryExpr()
	for p.at(token.KwAs) {
		kw := p.advance()
		switch {
		case p.at(token.Bang):
			p.advance()
			t := p.parseType()
			e = &ast.ForcedAsExpression{SpanVal: e.Span().Cover(t.Span()), Expression: e, Type: t}
		case p.at(token.Question):
			p.advance()
			t := p.parseType()
			e = &ast.ConditionalAsExpression{SpanVal: e.Span().Cover(t.Span()), Expression: e, Type: t}
		default:
			t := p.parseType()
			e = &ast.AsExpression{SpanVal: e.Span().Cover(t.Span()), Expression: e, Type: t}
		}
		_ = kw
	}
	return e
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwTypeof:
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.TypeOfExpression{SpanVal: tok.Span.Cover(operand.Span()), Expression: operand}
	case token.KwVoid:
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.VoidExpression{SpanVal: tok.Span.Cover(operand.Span()), Expression: operand}
	case token.KwAwait:
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.AwaitExpression{SpanVal: tok.Span.Cover(operand.Span()), Expression: operand}
	}
	if sym, ok := prefixSymbol(tok.Kind); ok {
		op, _ := ast.LookupPrefixOperator(sym)
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.PrefixUnaryExpression{SpanVal: tok.Span.Cover(operand.Span()), Operator: op, Operand: operand}
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() ast.Expr {
	e := p.parsePrimaryExpr()
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			name, sp, ok := p.parseIdentName()
			end := sp
			if !ok {
				end = e.Span()
			}
			e = &ast.PropertyAccessExpression{SpanVal: e.Span().Cover(end), Object: e, Name: name}
		case token.QuestionDot:
			p.advance()
			switch p.lx.Peek().Kind {
			case token.LBracket:
				e = p.parseElementAccess(e, true)
			case token.LParen:
				e = p.parseCall(e, nil, true)
			default:
				name, sp, ok := p.parseIdentName()
				end := sp
				if !ok {
					end = e.Span()
				}
				e = &ast.PropertyAccessExpression{SpanVal: e.Span().Cover(end), Object: e, Name: name, Optional: true}
			}
		case token.LBracket:
			e = p.parseElementAccess(e, false)
		case token.LParen:
			e = p.parseCall(e, nil, false)
		case token.Lt:
			if args, ok := p.tryParseCallTypeArgs(); ok {
				e = p.parseCall(e, args, false)
				continue
			}
			return e
		case token.PlusPlus, token.MinusMinus:
			sym, _ := postfixSymbol(p.lx.Peek().Kind)
			op, _ := ast.LookupPostfixOperator(sym)
			tok := p.advance()
			return &ast.PostfixUnaryExpression{SpanVal: e.Span().Cover(tok.Span), Operator: op, Operand: e}
		default:
			return e
		}
	}
}

func (p *Parser) parseElementAccess(obj ast.Expr, optional bool) ast.Expr {
	open := p.advance()
	idx := p.parseExpr()
	close, ok := p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close the index expression")
	sp := obj.Span().Cover(close.Span)
	if !ok {
		sp = obj.Span().Cover(open.Span).Cover(idx.Span())
	}
	return &ast.ElementAccessExpression{SpanVal: sp, Object: obj, Index: idx, Optional: optional}
}

func (p *Parser) parseCall(callee ast.Expr, typeArgs []ast.TypeSyntax, optional bool) ast.Expr {
	open, _ := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to begin argument list")
	args := p.parseArgList()
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the argument list")
	sp := callee.Span().Cover(close.Span)
	if !ok {
		sp = callee.Span().Cover(open.Span)
	}
	return &ast.CallExpression{SpanVal: sp, Callee: callee, TypeArgs: typeArgs, Args: args, Optional: optional}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseAssignmentExpr())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return args
}

// tryParseCallTypeArgs speculatively parses `<T, U>` immediately followed by
// '(' — the shape that disambiguates an explicit-type-argument call from a
// less-than comparison. It rewinds on any mismatch.
func (p *Parser) tryParseCallTypeArgs() ([]ast.TypeSyntax, bool) {
	state := p.lx.GetStateForBeginningOfToken()
	p.beginSpeculation()
	args, _ := p.parseTypeArgumentList()
	if p.at(token.LParen) {
		p.commitSpeculation()
		return args, true
	}
	p.abandonSpeculation()
	p.lx.RestoreState(state)
	return nil, false
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.lx.Peek()
	if tok.Kind == token.Slash || tok.Kind == token.SlashAssign {
		// Only an expression can begin here, so a slash cannot be division:
		// it opens a regex literal.
		if rescanned, ok := p.lx.RescanAsRegex(tok); ok {
			tok = rescanned
		}
	}
	switch tok.Kind {
	case token.IntegerLiteral:
		p.advance()
		return &ast.IntLiteral{SpanVal: tok.Span, Value: parseIntLiteral(tok.Text), Raw: tok.Text}
	case token.FloatLiteral:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Text, 64)
		return &ast.FloatLiteral{SpanVal: tok.Span, Value: v, Raw: tok.Text}
	case token.StringLiteral:
		p.advance()
		return &ast.StringLiteral{SpanVal: tok.Span, Value: unquoteStringLiteral(tok.Text), Raw: tok.Text}
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateExpression()
	case token.KwTrue:
		p.advance()
		return &ast.BoolLiteral{SpanVal: tok.Span, Value: true}
	case token.KwFalse:
		p.advance()
		return &ast.BoolLiteral{SpanVal: tok.Span, Value: false}
	case token.KwNull, token.KwUndefined:
		p.advance()
		return &ast.NullLiteral{SpanVal: tok.Span}
	case token.KwNew:
		return p.parseNewExpr()
	case token.KwFun:
		return p.parseFunctionExpr(false)
	case token.KwAsync:
		return p.parseAsyncPrimary()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.LParen:
		return p.parseParenOrArrow()
	case token.Ident:
		if next, ok := p.peekIdentArrowShorthand(); ok {
			return next
		}
		p.advance()
		return &ast.Identifier{SpanVal: tok.Span, Name: tok.Text}
	case token.RegexLiteral:
		p.advance()
		pattern, flags := splitRegexLiteral(tok.Text)
		return &ast.RegexLiteral{SpanVal: tok.Span, Pattern: pattern, Flags: flags}
	case token.Invalid:
		// The lexer has already reported this token; skip it without adding
		// a second diagnostic.
		p.advance()
		return &ast.Identifier{SpanVal: tok.Span, Name: "<error>"}
	default:
		if tok.IsKeyword() {
			p.errAt(diag.SynExpectExpression, tok.Span,
				diag.FormatMessage("'{0}' is a reserved word and cannot be used as an expression", diag.TokenArg(tok)))
		} else {
			p.err(diag.SynExpectExpression, "expected an expression")
		}
		sp := p.errorSpan()
		if !p.at(token.EOF) {
			p.advance()
		}
		return &ast.Identifier{SpanVal: sp, Name: "<error>"}
	}
}

// peekIdentArrowShorthand recognizes the `x => ...` single-parameter arrow
// shorthand, which needs one token of lookahead beyond the identifier.
func (p *Parser) peekIdentArrowShorthand() (ast.Expr, bool) {
	state := p.lx.GetStateForBeginningOfToken()
	name := p.advance()
	if !p.at(token.FatArrow) {
		p.lx.RestoreState(state)
		return nil, false
	}
	p.advance()
	param := ast.Param{SpanVal: name.Span, Name: name.Text}
	body := p.parseArrowBody()
	return &ast.FunctionExpression{SpanVal: name.Span.Cover(body.Span()), Params: []ast.Param{param}, Body: body}, true
}

func (p *Parser) parseAsyncPrimary() ast.Expr {
	kw := p.advance()
	if p.at(token.KwFun) {
		fn := p.parseFunctionExpr(true)
		if f, ok := fn.(*ast.FunctionExpression); ok {
			f.SpanVal = kw.Span.Cover(f.SpanVal)
		}
		return fn
	}
	if next, ok := p.peekIdentArrowShorthand(); ok {
		if f, ok := next.(*ast.FunctionExpression); ok {
			f.Async = true
			f.SpanVal = kw.Span.Cover(f.SpanVal)
		}
		return next
	}
	if p.at(token.LParen) {
		arrow := p.parseParenOrArrow()
		if f, ok := arrow.(*ast.FunctionExpression); ok {
			f.Async = true
			f.SpanVal = kw.Span.Cover(f.SpanVal)
			return f
		}
		return arrow
	}
	p.err(diag.SynUnexpectedToken, "expected a function or arrow expression after 'async'")
	return &ast.Identifier{SpanVal: kw.Span, Name: "<error>"}
}

func (p *Parser) parseFunctionExpr(async bool) ast.Expr {
	kw := p.advance()
	name := ""
	if p.at(token.Ident) {
		nameTok := p.advance()
		name = nameTok.Text
	}
	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams = p.parseTypeParamList()
	}
	params := p.parseParamList()
	retType := p.parseReturnType()
	body := p.parseBlockStmt()
	return &ast.FunctionExpression{
		SpanVal: kw.Span.Cover(body.Span()), Name: name, Async: async,
		TypeParams: typeParams, Params: params, ReturnType: retType, Body: body,
	}
}

func (p *Parser) parseNewExpr() ast.Expr {
	kw := p.advance()
	callee := p.parsePrimaryExpr()
	for p.at(token.Dot) {
		p.advance()
		name, sp, _ := p.parseIdentName()
		callee = &ast.PropertyAccessExpression{SpanVal: callee.Span().Cover(sp), Object: callee, Name: name}
	}
	var typeArgs []ast.TypeSyntax
	if p.at(token.Lt) {
		if args, ok := p.tryParseCallTypeArgs(); ok {
			typeArgs = args
		}
	}
	var args []ast.Expr
	end := callee.Span()
	if p.at(token.LParen) {
		p.advance()
		args = p.parseArgList()
		close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the constructor argument list")
		if ok {
			end = close.Span
		}
	}
	return &ast.NewExpression{SpanVal: kw.Span.Cover(end), Callee: callee, TypeArgs: typeArgs, Args: args}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	open := p.advance()
	var elems []ast.Expr
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			spread := p.advance()
			inner := p.parseAssignmentExpr()
			elems = append(elems, &ast.PrefixUnaryExpression{
				SpanVal:  spread.Span.Cover(inner.Span()),
				Operator: ast.Operator{Symbol: "...", Kind: ast.OpUnary, Precedence: ast.PrecUnary},
				Operand:  inner,
			})
		} else {
			elems = append(elems, p.parseAssignmentExpr())
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close the array literal")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span
	}
	return &ast.ArrayLiteralExpression{SpanVal: sp, Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Expr {
	p.lx.EnterMode(lexer.ModeNormal)
	defer p.lx.ExitMode()

	open := p.advance()
	var props []ast.ObjectProperty
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		props = append(props, p.parseObjectProperty())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the object literal")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span
	}
	return &ast.ObjectLiteralExpression{SpanVal: sp, Properties: props}
}

func (p *Parser) parseObjectProperty() ast.ObjectProperty {
	if p.at(token.LBracket) {
		open := p.advance()
		keyExpr := p.parseExpr()
		_, _ = p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' after computed property key")
		_, _ = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after computed property key")
		val := p.parseAssignmentExpr()
		return ast.ObjectProperty{SpanVal: open.Span.Cover(val.Span()), Value: val, Computed: true, KeyExpr: keyExpr}
	}
	name, sp, _ := p.parseIdentName()
	if !p.at(token.Colon) {
		return ast.ObjectProperty{SpanVal: sp, Key: name, Shorthand: true, Value: &ast.Identifier{SpanVal: sp, Name: name}}
	}
	p.advance()
	val := p.parseAssignmentExpr()
	return ast.ObjectProperty{SpanVal: sp.Cover(val.Span()), Key: name, Value: val}
}

// parseParenOrArrow disambiguates `(expr)` from an arrow function's
// parameter list by speculatively trying the arrow shape first.
func (p *Parser) parseParenOrArrow() ast.Expr {
	state := p.lx.GetStateForBeginningOfToken()
	open := p.advance()

	p.beginSpeculation()
	if params, retType, ok := p.tryParseArrowParams(); ok && p.at(token.FatArrow) {
		p.commitSpeculation()
		p.advance()
		body := p.parseArrowBody()
		return &ast.FunctionExpression{SpanVal: open.Span.Cover(body.Span()), Params: params, ReturnType: retType, Body: body}
	}
	p.abandonSpeculation()

	p.lx.RestoreState(state)
	p.advance() // '('
	inner := p.parseExpr()
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parenthesized expression")
	sp := open.Span.Cover(close.Span)
	if !ok {
		sp = open.Span.Cover(inner.Span())
	}
	return &ast.ParenthesizedExpression{SpanVal: sp, Inner: inner}
}

// tryParseArrowParams speculatively parses `(a: T = d, ...rest: R)` up to and
// including the closing ')' and an optional return type. No diagnostics are
// emitted; the caller rewinds on failure.
func (p *Parser) tryParseArrowParams() ([]ast.Param, *ast.ReturnType, bool) {
	var params []ast.Param
	for !p.at(token.RParen) {
		if !p.at(token.Ident) && !p.at(token.DotDotDot) {
			return nil, nil, false
		}
		rest := false
		if p.at(token.DotDotDot) {
			rest = true
			p.advance()
		}
		if !p.at(token.Ident) {
			return nil, nil, false
		}
		nameTok := p.advance()
		param := ast.Param{SpanVal: nameTok.Span, Name: nameTok.Text, Rest: rest}
		if p.at(token.Question) {
			param.Optional = true
			p.advance()
		}
		if p.at(token.Colon) {
			p.advance()
			param.Type = p.parseType()
		}
		if p.at(token.Assign) {
			p.advance()
			param.Default = p.parseAssignmentExpr()
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if !p.at(token.RParen) {
		return nil, nil, false
	}
	p.advance()
	var retType *ast.ReturnType
	if p.at(token.Arrow) {
		retType = p.parseReturnType()
	}
	return params, retType, true
}

// parseArrowBody accepts either a `{ ... }` block body or a concise
// expression body, desugaring the latter into a single-statement block since
// ast.FunctionExpression only carries a *Block.
func (p *Parser) parseArrowBody() *ast.Block {
	if p.at(token.LBrace) {
		return p.parseBlockStmt()
	}
	expr := p.parseAssignmentExpr()
	return &ast.Block{SpanVal: expr.Span(), Statements: []ast.Stmt{&ast.ReturnStatement{SpanVal: expr.Span(), Value: expr}}}
}

func (p *Parser) parseTemplateExpression() ast.Expr {
	head := p.advance()
	if head.Kind == token.NoSubstitutionTemplate {
		return &ast.TemplateExpression{SpanVal: head.Span, HeadChunk: trimTemplateChunk(head.Text, true)}
	}
	headChunk := trimTemplateChunk(head.Text, false)
	p.lx.EnterMode(lexer.ModeStringInterpolation)
	var spans []ast.TemplateSpan
	for {
		expr := p.parseExpr()
		chunk := p.advance()
		isTail := chunk.Kind == token.TemplateTail
		if chunk.Kind != token.TemplateMiddle && !isTail {
			p.errAt(diag.SynUnexpectedToken, chunk.Span, "expected the rest of the template literal")
			p.lx.ExitMode()
			return &ast.TemplateExpression{SpanVal: head.Span.Cover(chunk.Span), HeadChunk: headChunk, Spans: spans}
		}
		spans = append(spans, ast.TemplateSpan{Expr: expr, TrailingChunk: trimTemplateChunk(chunk.Text, isTail)})
		if isTail {
			p.lx.ExitMode()
			return &ast.TemplateExpression{SpanVal: head.Span.Cover(chunk.Span), HeadChunk: headChunk, Spans: spans}
		}
	}
}

// trimTemplateChunk strips a template token's delimiters: one leading byte
// (a backtick or '}') always, and either a trailing backtick (tail chunks)
// or a trailing "${" (head/middle chunks).
func trimTemplateChunk(text string, tail bool) string {
	body := text[1:]
	if tail {
		return body[:len(body)-1]
	}
	return body[:len(body)-2]
}

func splitRegexLiteral(text string) (pattern, flags string) {
	end := len(text) - 1
	for end > 0 && text[end] != '/' {
		end--
	}
	return text[1:end], text[end+1:]
}

func parseIntLiteral(raw string) int64 {
	clean := removeDigitSeparators(raw)
	v, _ := strconv.ParseInt(clean, 0, 64)
	return v
}

func removeDigitSeparators(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '_' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// unquoteStringLiteral decodes escape sequences in a quoted string token's
// raw text. Unknown escapes pass the escaped character through unchanged.
func unquoteStringLiteral(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	body := raw[1 : len(raw)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			out = append(out, body[i])
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '0':
			out = append(out, 0)
		case '\\', '\'', '"', '`':
			out = append(out, body[i])
		default:
			out = append(out, body[i])
		}
	}
	return string(out)
}
