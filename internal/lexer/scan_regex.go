package lexer

import (
	"zomlang/internal/diag"
	"zomlang/internal/token"
)

// scanRegex scans a /pattern/flags literal. Only called when the parser has
// recorded the current offset as a valid regex-literal start (see
// source.FileSet.RecordRegexLiteralStart); a bracketed character class may
// itself contain an unescaped '/' without ending the literal.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '/'

	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return lx.unterminatedRegex(start)
			}
			lx.cursor.Bump()
		case b == '[':
			inClass = true
			lx.cursor.Bump()
		case b == ']':
			inClass = false
			lx.cursor.Bump()
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek(), false) {
				lx.cursor.Bump()
			}
			return lx.finishLiteral(start, token.RegexLiteral)
		case b == '\n':
			return lx.unterminatedRegex(start)
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminatedRegex(start)
}

func (lx *Lexer) unterminatedRegex(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
