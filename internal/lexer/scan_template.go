package lexer

import (
	"zomlang/internal/diag"
	"zomlang/internal/token"
)

// scanTemplate scans one chunk of a template literal. When atStart is true
// the cursor sits on the opening backtick; otherwise it sits on the '}'
// that resumes a chunk after a substitution (see EnterMode). The chunk ends
// at either a closing backtick (NoSubstitutionTemplate/TemplateTail) or a
// "${" that opens a substitution (TemplateHead/TemplateMiddle), with both
// delimiters included in the token's span, matching TemplateHead's leading
// backtick.
func (lx *Lexer) scanTemplate(atStart bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening backtick, or the '}' resuming the chunk

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '`':
			lx.cursor.Bump()
			kind := token.TemplateTail
			if atStart {
				kind = token.NoSubstitutionTemplate
			}
			return lx.finishLiteral(start, kind)
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return lx.unterminatedTemplate(start)
			}
			lx.cursor.Bump()
		case b == '$':
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				kind := token.TemplateMiddle
				if atStart {
					kind = token.TemplateHead
				}
				return lx.finishLiteral(start, kind)
			}
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminatedTemplate(start)
}

func (lx *Lexer) unterminatedTemplate(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
