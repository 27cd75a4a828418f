package diag

import "fmt"

// Code is a compact numeric diagnostic identifier. Ranges group codes by the
// pipeline stage that raises them: 1000s lexical, 2000s syntax, 4000s I/O,
// 6000s observability; 3000s and 5000s are reserved for the semantic and
// code-generation stages this front end stops short of.
type Code uint16

const (
	// UnknownCode is the zero value, used only as a Title() fallback.
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedTemplate     Code = 1003
	LexUnterminatedRegex        Code = 1004
	LexTokenTooLong             Code = 1005
	LexInvalidEscape            Code = 1006
	LexInvalidNumber            Code = 1007
	LexUnterminatedBlockComment Code = 1008

	// Syntax.
	SynUnexpectedToken       Code = 2001
	SynUnclosedParen         Code = 2006
	SynUnclosedBrace         Code = 2007
	SynUnclosedSquareBracket Code = 2009
	SynUnclosedAngleBracket  Code = 2010
	SynExpectSemicolon       Code = 2012
	SynForMissingIn          Code = 2013
	SynForBadHeader          Code = 2014
	SynModifierNotAllowed    Code = 2015
	SynAttributeNotAllowed   Code = 2016

	SynTypeExpectEquals      Code = 2018
	SynTypeExpectBody        Code = 2019
	SynTypeExpectUnionMember Code = 2020
	SynTypeFieldConflict     Code = 2021
	SynTypeNotAllowed        Code = 2023
	SynEnumExpectBody        Code = 2024
	SynEnumExpectRBrace      Code = 2025

	// Import errors & warnings.
	SynInfoImportGroup    Code = 2100
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectModuleSeg    Code = 2103
	SynExpectIdentAfterAs Code = 2105
	SynEmptyImportGroup   Code = 2106

	// Type expression errors & warnings.
	SynExpectRightBracket Code = 2201
	SynExpectType         Code = 2202
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204
	SynUnexpectedModifier Code = 2205
	SynInvalidTupleIndex  Code = 2206
	SynVariadicMustBeLast Code = 2207

	// I/O.
	IOLoadFileError Code = 4001

	// Observability.
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexUnknownChar:              "unrecognized character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedTemplate:     "unterminated template literal",
	LexUnterminatedRegex:        "unterminated regular expression literal",
	LexTokenTooLong:             "token exceeds the maximum allowed length",
	LexInvalidEscape:            "invalid escape sequence",
	LexInvalidNumber:            "invalid numeric literal",
	LexUnterminatedBlockComment: "unterminated block comment",

	SynUnexpectedToken:       "unexpected token",
	SynUnclosedParen:         "expected ')' to close the parenthesized group",
	SynUnclosedBrace:         "expected '}' to close the block",
	SynUnclosedSquareBracket: "expected ']' to close the bracketed group",
	SynUnclosedAngleBracket:  "expected '>' to close the generic argument list",
	SynExpectSemicolon:       "expected ';' to terminate the statement",
	SynForMissingIn:          "expected 'in' in for-loop header",
	SynForBadHeader:          "malformed for-loop header",
	SynModifierNotAllowed:    "modifier is not allowed here",
	SynAttributeNotAllowed:   "attribute is not allowed here",

	SynTypeExpectEquals:      "expected '=' in type alias",
	SynTypeExpectBody:        "expected a type body",
	SynTypeExpectUnionMember: "expected a union member",
	SynTypeFieldConflict:     "conflicting field declaration",
	SynTypeNotAllowed:        "type declaration is not allowed here",
	SynEnumExpectBody:        "expected an enum body",
	SynEnumExpectRBrace:      "expected '}' to close the enum body",

	SynInfoImportGroup:    "import group can be simplified",
	SynUnexpectedTopLevel: "unexpected top-level declaration",
	SynExpectIdentifier:   "expected an identifier",
	SynExpectModuleSeg:    "expected a module path segment",
	SynExpectIdentAfterAs: "expected an identifier after 'as'",
	SynEmptyImportGroup:   "empty import group",

	SynExpectRightBracket: "expected ']'",
	SynExpectType:         "expected a type",
	SynExpectExpression:   "expected an expression",
	SynExpectColon:        "expected ':'",
	SynUnexpectedModifier: "unexpected modifier",
	SynInvalidTupleIndex:  "invalid tuple index",
	SynVariadicMustBeLast: "variadic parameter must be the last parameter",

	IOLoadFileError: "failed to load source file",

	ObsTimings: "pipeline stage timings",
}

// ID renders the stable, stage-prefixed string form of c, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

// Title returns the short human-readable description registered for c.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
