package lexer

import (
	"zomlang/internal/diag"
	"zomlang/internal/token"
)

// scanNumber scans a decimal, hex (0x), octal (0o) or binary (0b) numeric
// literal, promoting to FloatLiteral on a fractional part or exponent. '_'
// is accepted as a digit separator throughout; no further validation of its
// placement happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntegerLiteral

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return lx.invalidNumber(start, "expected digit after '.'")
		}
		kind = token.FloatLiteral
		lx.consumeDigits(isDec)
		return lx.finishNumber(start, lx.maybeExponent(kind))
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.consumeDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.finishNumber(start, kind)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.consumeDigits(func(b byte) bool { return b >= '0' && b <= '7' })
			return lx.finishNumber(start, kind)
		case 'x', 'X':
			lx.cursor.Bump()
			lx.consumeDigits(isHex)
			return lx.finishNumber(start, kind)
		}
	}

	lx.consumeDigits(isDec)

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.FloatLiteral
		lx.consumeDigits(isDec)
	}

	return lx.finishNumber(start, lx.maybeExponent(kind))
}

// consumeDigits bumps while the current byte satisfies isDigit or is '_'.
func (lx *Lexer) consumeDigits(isDigit func(byte) bool) {
	for isDigit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// maybeExponent consumes a trailing [eE][+-]?digits suffix, returning
// FloatLiteral if one was present.
func (lx *Lexer) maybeExponent(kind token.Kind) token.Kind {
	if lx.cursor.Peek() != 'e' && lx.cursor.Peek() != 'E' {
		return kind
	}
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		return kind
	}
	lx.consumeDigits(isDec)
	return token.FloatLiteral
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	span := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
}

func (lx *Lexer) invalidNumber(start Mark, msg string) token.Token {
	span := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexInvalidNumber, span, msg)
	return token.Token{Kind: token.Invalid, Span: span, Text: string(lx.file.Content[span.Start:span.End])}
}
