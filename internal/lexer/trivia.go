package lexer

import (
	"strings"

	"zomlang/internal/diag"
	"zomlang/internal/token"
)

// collectLeadingTrivia accumulates the run of trivia immediately preceding
// the next significant token into lx.hold:
//   - ' '/'\t' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - "//..." to '\n' or EOF -> TriviaLineComment, or TriviaDocLine for "///"
//   - "/* ... */" -> TriviaBlockComment, nesting-aware; "/** ... */" -> TriviaDocBlock
//   - "#word rest-of-line" at the start of a trivia run -> TriviaDirective
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.appendTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' || b == '\r' {
			for lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
				lx.cursor.Bump()
			}
			lx.appendTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.opts.CommentRetention == CommentsReturnAsTokens && lx.atCommentStart() {
				// Left for scanNext to surface as a Comment token.
				break
			}
			if lx.scanCommentIntoHold() {
				if lx.opts.CommentRetention == CommentsDropped {
					lx.hold = lx.hold[:len(lx.hold)-1]
				}
				continue
			}
		}

		if b == '#' && lx.scanDirectiveIntoHold() {
			continue
		}

		break
	}
}

// atCommentStart reports whether the cursor sits on "//" or "/*".
func (lx *Lexer) atCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

// scanCommentToken scans one comment as a main-stream Comment token, for
// the CommentsReturnAsTokens retention policy.
func (lx *Lexer) scanCommentToken() token.Token {
	start := lx.cursor.Mark()
	lx.scanCommentIntoHold()
	lx.hold = lx.hold[:len(lx.hold)-1]
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) appendTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])})
}

// scanCommentIntoHold scans "//", "///" or "/* ... */" starting at the
// cursor. Returns false (with the cursor unmoved) if '/' does not start a
// comment, so the caller falls through to letting '/' lex as an operator.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.appendTrivia(kind, start)
		return true

	case '*':
		lx.cursor.Bump()
		kind := token.TriviaBlockComment
		if lx.cursor.Peek() == '*' {
			lx.cursor.Bump()
			kind = token.TriviaDocBlock
		}
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				switch {
				case b0 == '/' && b1 == '*':
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				case b0 == '*' && b1 == '/':
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

// scanDirectiveIntoHold recognizes "#word name payload" lines. Restricted
// to this shape so a class body's private-field sigil ('#name', scanned as
// Hash by scanOperatorOrPunct) is never mistaken for a directive.
func (lx *Lexer) scanDirectiveIntoHold() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	wordStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek(), false) {
		lx.cursor.Bump()
	}
	if lx.cursor.Mark() == wordStart {
		lx.cursor.Reset(start)
		return false
	}
	module := string(lx.file.Content[wordStart:lx.cursor.Off])
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	restStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	rest := strings.TrimSpace(string(lx.file.Content[restStart:lx.cursor.Off]))
	name, payload, _ := strings.Cut(rest, " ")

	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind:      token.TriviaDirective,
		Span:      sp,
		Text:      string(lx.file.Content[sp.Start:sp.End]),
		Directive: &token.Directive{Module: module, Name: name, Payload: strings.TrimSpace(payload)},
	})
	return true
}
