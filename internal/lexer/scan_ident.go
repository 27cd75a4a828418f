package lexer

import (
	"zomlang/internal/source"
	"zomlang/internal/token"
)

// scanIdentOrKeyword scans an [Ident] or keyword. zomlang keyword matching
// is case-sensitive: no lower-casing happens before the table lookup.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start)}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r), lx.opts.AllowDollarIdentifiers) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !lx.opts.UseUnicode || !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b, lx.opts.AllowDollarIdentifiers) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !lx.opts.UseUnicode {
			break
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	span := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[span.Start:span.End])
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: span, Text: text}
	}
	var nameID source.StringID
	if lx.opts.Interner != nil {
		nameID = lx.opts.Interner.Intern(text)
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text, NameID: nameID}
}
