// Package parser turns a token stream into a zomlang AST (see internal/ast).
// It is a hand-written recursive-descent parser: statements and declarations
// descend by keyword, expressions climb by precedence using the Operator
// tables in internal/ast, and types descend by leading token much like
// expressions do.
package parser

import (
	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/lexer"
	"zomlang/internal/source"
	"zomlang/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint
}

func (o Options) enough(errs uint) bool {
	return o.MaxErrors != 0 && errs >= o.MaxErrors
}

// Parser holds the state needed to parse one source file. It is built over a
// *lexer.Lexer rather than a pre-tokenized slice so the parser can drive the
// lexer's mode stack (EnterMode/ExitMode) for template-literal substitutions
// and speculatively save/restore lexer state when disambiguating constructs
// such as `f<T>(x)` against `f < T > (x)`.
type Parser struct {
	lx     *lexer.Lexer
	opts   Options
	fileID source.FileID

	lastSpan source.Span
	errCount uint

	// exprDepth guards against unbounded recursion on adversarial input
	// (deeply nested parens, chained binary operators).
	exprDepth int

	// specStack holds one buffer per nested speculative parse in progress
	// (see beginSpeculation). Diagnostics raised while any buffer is open
	// are held back instead of reported immediately, since a speculative
	// parse that turns out to be the wrong production gets rewound and
	// re-parsed from scratch — its diagnostics must never reach the
	// reporter.
	specStack [][]bufferedDiag
}

type bufferedDiag struct {
	code  diag.Code
	span  source.Span
	msg   string
	fixes []diag.Fix
}

// beginSpeculation opens a new diagnostic buffer. Pair with commitSpeculation
// (the speculative parse is the one being kept) or abandonSpeculation (the
// caller is about to rewind and try something else).
func (p *Parser) beginSpeculation() {
	p.specStack = append(p.specStack, nil)
}

// commitSpeculation flushes the innermost buffer: to the reporter if no
// speculation remains outstanding, or into the next buffer up otherwise.
func (p *Parser) commitSpeculation() {
	n := len(p.specStack)
	buf := p.specStack[n-1]
	p.specStack = p.specStack[:n-1]
	if len(p.specStack) > 0 {
		p.specStack[len(p.specStack)-1] = append(p.specStack[len(p.specStack)-1], buf...)
		return
	}
	for _, d := range buf {
		p.emitNow(d.code, d.span, d.msg, d.fixes)
	}
}

// abandonSpeculation discards the innermost buffer: the speculative parse
// failed and its diagnostics must never be seen.
func (p *Parser) abandonSpeculation() {
	p.specStack = p.specStack[:len(p.specStack)-1]
}

const maxExprDepth = 250

// New constructs a Parser reading from lx.
func New(lx *lexer.Lexer, fileID source.FileID, opts Options) *Parser {
	return &Parser{lx: lx, opts: opts, fileID: fileID, lastSpan: lx.EmptySpan()}
}

// ParseFile parses an entire source file: a sequence of top-level statements
// up to EOF.
func ParseFile(lx *lexer.Lexer, fileID source.FileID, fileName string, opts Options) *ast.SourceFile {
	p := New(lx, fileID, opts)
	start := p.lx.Peek().Span

	var stmts []ast.Stmt
	for !p.at(token.EOF) {
		beforeSpan := p.lx.Peek().Span
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if !p.at(token.EOF) && p.lx.Peek().Span == beforeSpan {
			p.advance()
		}
	}

	end := p.lastSpan
	return &ast.SourceFile{
		SpanVal:    start.Cover(end),
		FileName:   fileName,
		FileID:     fileID,
		Statements: stmts,
	}
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	cur := p.lx.Peek().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes the current token if it matches k, otherwise reports code
// at the point right after the last good token and returns ok=false without
// consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errAt(code, p.errorSpan(), msg)
	return token.Token{Kind: token.Invalid, Span: p.errorSpan()}, false
}

// errorSpan picks the span a "missing token" diagnostic should point at:
// right after the previous token when the input has run out or gone invalid,
// the current token's own span otherwise.
func (p *Parser) errorSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF || peek.Kind == token.Invalid {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.errAt(code, p.errorSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.errAtWithFixes(code, sp, msg, nil)
}

// errAtWithFixes is errAt plus one or more quick fixes attached to the
// diagnostic, e.g. inserting a missing ';'. Fixes ride along through
// speculative buffering like everything else: a fix proposed during an
// abandoned speculative parse must never reach the reporter.
func (p *Parser) errAtWithFixes(code diag.Code, sp source.Span, msg string, fixes []diag.Fix) {
	if p.opts.Reporter == nil {
		return
	}
	if n := len(p.specStack); n > 0 {
		p.specStack[n-1] = append(p.specStack[n-1], bufferedDiag{code: code, span: sp, msg: msg, fixes: fixes})
		return
	}
	p.emitNow(code, sp, msg, fixes)
}

func (p *Parser) emitNow(code diag.Code, sp source.Span, msg string, fixes []diag.Fix) {
	p.errCount++
	if p.opts.enough(p.errCount) {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, fixes)
}

// resyncUntil discards tokens until one of stop (or EOF) is current, without
// consuming the stop token itself.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) {
		p.advance()
	}
}

// parseIdentName consumes an identifier and returns its text, or "" on
// failure (already diagnosed).
func (p *Parser) parseIdentName() (string, source.Span, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectIdentifier, "expected an identifier")
		return "", p.errorSpan(), false
	}
	tok := p.advance()
	return tok.Text, tok.Span, true
}

// isContextualKeyword reports whether the current identifier token's text
// equals word; used for the few contextual keywords (type, error, string,
// unknown) that the lexer deliberately does not reserve.
func (p *Parser) isContextualKeyword(word string) bool {
	tok := p.lx.Peek()
	return tok.Kind == token.Ident && tok.Text == word
}
