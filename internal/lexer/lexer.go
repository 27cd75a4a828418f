package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"zomlang/internal/diag"
	"zomlang/internal/source"
	"zomlang/internal/token"
)

const maxTokenLength = 64 * 1024 // hard limit in bytes to avoid pathological tokens

// Lexer converts one file's content into a stream of tokens.
type Lexer struct {
	fs     *source.FileSet
	file   *source.File
	cursor Cursor
	opts   Options

	mode      Mode
	modeStack []Mode

	look *token.Token
	hold []token.Trivia
}

// New creates a Lexer over the file identified by fileID. fs is kept for
// the regex-literal-start lookups SupportRegexLiterals needs; every other
// access goes through the resolved file.
func New(fs *source.FileSet, fileID source.FileID, opts Options) *Lexer {
	file := fs.Get(fileID)
	return &Lexer{
		fs:     fs,
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		mode:   ModeNormal,
	}
}

// EnterMode pushes the lexer's current mode and switches to m. The parser
// calls this after consuming a TemplateHead/Middle, so the next scan treats
// '}' as the resumption of template text instead of an operator.
func (lx *Lexer) EnterMode(m Mode) {
	lx.modeStack = append(lx.modeStack, lx.mode)
	lx.mode = m
	lx.invalidateLook()
}

// ExitMode restores the mode active before the matching EnterMode. With no
// mode on the stack it sets ModeNormal and leaves the lookahead untouched.
func (lx *Lexer) ExitMode() {
	if len(lx.modeStack) == 0 {
		lx.mode = ModeNormal
		return
	}
	n := len(lx.modeStack) - 1
	lx.mode = lx.modeStack[n]
	lx.modeStack = lx.modeStack[:n]
	lx.invalidateLook()
}

// invalidateLook discards the buffered lookahead token, rewinding the
// cursor to the token's start so the next scan re-lexes it under the
// current mode. A peeked token must never be silently skipped by a mode
// switch.
func (lx *Lexer) invalidateLook() {
	if lx.look != nil {
		lx.cursor.Off = lx.look.Span.Start
		lx.look = nil
	}
	lx.hold = nil
}

// GetStateForBeginningOfToken captures the position of the next unconsumed
// token — the buffered Peek() token if one is pending, the cursor otherwise
// — so the parser can restore to it after a failed speculative parse (e.g.
// the '<...>' type-argument-vs-less-than disambiguation).
func (lx *Lexer) GetStateForBeginningOfToken() State {
	modeStack := make([]Mode, len(lx.modeStack))
	copy(modeStack, lx.modeStack)
	pos := lx.cursor.Off
	if lx.look != nil {
		pos = lx.look.Span.Start
	}
	return State{Position: pos, Mode: lx.mode, ModeStack: modeStack}
}

// RestoreState rewinds the lexer to a previously captured State, discarding
// any buffered lookahead.
func (lx *Lexer) RestoreState(s State) {
	lx.cursor.Off = s.Position
	lx.mode = s.Mode
	lx.modeStack = append(lx.modeStack[:0], s.ModeStack...)
	lx.look = nil
	lx.hold = nil
}

// Next returns the next significant token, with leading trivia attached.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scanNext()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scanNext()
		lx.look = &tok
	}
	return *lx.look
}

// Push injects a token back into the lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// RescanAsRegex records tok's start offset as a regex-literal start and
// re-lexes from there, so a '/' or '/=' already scanned as an operator at an
// expression-start position comes back as a RegexLiteral token (or Invalid,
// if the literal is unterminated). The parser calls this when it peeks a
// slash where only an expression can begin. Returns ok=false and leaves the
// stream untouched when regex literals are disabled. Recording the offset in
// the FileSet keeps the decision stable across speculative rewinds: a later
// re-scan of the same position yields the same token.
func (lx *Lexer) RescanAsRegex(tok token.Token) (token.Token, bool) {
	if !lx.opts.SupportRegexLiterals {
		return tok, false
	}
	lx.fs.RecordRegexLiteralStart(lx.file.ID, tok.Span.Start)
	lx.cursor.Off = tok.Span.Start
	lx.look = nil
	lx.hold = nil
	return lx.Peek(), true
}

func (lx *Lexer) scanNext() token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan(), Leading: lx.takeHold()}
	}

	if lx.mode == ModeStringInterpolation && lx.cursor.Peek() == '}' {
		tok := lx.scanTemplate(false)
		tok.Leading = lx.takeHold()
		lx.enforceTokenLength(&tok)
		return tok
	}

	if lx.opts.CommentRetention == CommentsReturnAsTokens && lx.atCommentStart() {
		tok := lx.scanCommentToken()
		tok.Leading = lx.takeHold()
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '/' && lx.opts.SupportRegexLiterals && lx.fs.IsRegexLiteralStart(lx.file.ID, lx.cursor.Off):
		tok = lx.scanRegex()
	case isIdentStartByte(ch, lx.opts.AllowDollarIdentifiers):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)
	case ch == '`':
		tok = lx.scanTemplate(true)
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	lx.enforceTokenLength(&tok)
	return tok
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	length := tok.Span.Len()
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
