package lexer

import (
	"zomlang/internal/diag"
	"zomlang/internal/source"
)

// CommentRetention controls whether comment trivia is dropped (the zero
// value), surfaced as leading trivia on the following token, or surfaced as
// standalone Comment tokens in the main stream.
type CommentRetention uint8

const (
	CommentsDropped CommentRetention = iota
	CommentsAttachToNextToken
	CommentsReturnAsTokens
)

// Options configures a Lexer.
type Options struct {
	// UseUnicode treats Unicode letter/digit categories as identifier
	// characters. When off, each non-ASCII character produces one Unknown
	// token covering the whole rune.
	UseUnicode bool
	// AllowDollarIdentifiers permits '$' as an identifier-start/continue
	// byte, matching zomlang's template-binding sugar.
	AllowDollarIdentifiers bool
	// SupportRegexLiterals enables '/' to start a regex literal when the
	// FileSet's regex-literal-start tracking says the position is valid for
	// one (see source.FileSet.IsRegexLiteralStart).
	SupportRegexLiterals bool
	CommentRetention     CommentRetention
	// Reporter receives lexical diagnostics; nil disables reporting.
	Reporter diag.Reporter
	// Interner, when non-nil, deduplicates the text of every identifier
	// token scanned, storing the result on Token.NameID. Shared across the
	// goroutines CompilerDriver.ParseSources spawns, since source.Interner
	// is itself safe for concurrent use.
	Interner *source.Interner
}

func (lx *Lexer) reportLex(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(code, diag.SevError, sp, msg)
}
