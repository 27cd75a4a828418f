package lexer

// Mode is the lexer's current scanning mode. Unlike a purely context-free
// tokenizer, zomlang's template literals and regex literals require the
// lexer to track a small amount of state across Next() calls. Mode
// transitions into and out of StringInterpolation are driven by the parser
// via EnterMode/ExitMode, since only the parser knows when a '}' closes an
// interpolated expression rather than a block.
type Mode uint8

const (
	ModeNormal Mode = iota
	// ModeStringInterpolation is entered after a TemplateHead/Middle token,
	// indicating the next '}' resumes scanning literal template text
	// instead of an operator.
	ModeStringInterpolation
	// ModeRegexLiteral is declared but never entered: regex literals are
	// scanned through Lexer.RescanAsRegex in the current mode.
	ModeRegexLiteral
)

// State is a snapshot of the lexer's position sufficient to resume lexing
// exactly where it left off, used by the parser for speculative parses
// (e.g. disambiguating '<' as a type-argument list opener) that must be
// able to back out.
type State struct {
	Position  uint32
	Mode      Mode
	ModeStack []Mode
}
