package token

import (
	"strconv"

	"zomlang/internal/source"
)

// TriviaKind categorizes non-semantic text attached to a token as leading
// trivia: whitespace, comments, and directives.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocLine
	TriviaDocBlock
	TriviaDirective
)

func (t TriviaKind) String() string {
	switch t {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaDocBlock:
		return "DocBlock"
	case TriviaDirective:
		return "Directive"
	default:
		return "TriviaKind(" + strconv.Itoa(int(t)) + ")"
	}
}

// Directive is a parsed `#module name payload` style leading directive.
type Directive struct {
	Module  string
	Name    string
	Payload string
}

// Trivia is one piece of leading trivia attached to a Token. Directive is
// non-nil only when Kind is TriviaDirective.
type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Text      string
	Directive *Directive
}

// IsDoc reports whether this trivia is a documentation comment.
func (t Trivia) IsDoc() bool {
	return t.Kind == TriviaDocLine || t.Kind == TriviaDocBlock
}

// IsComment reports whether this trivia is any comment form.
func (t Trivia) IsComment() bool {
	switch t.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaDocLine, TriviaDocBlock:
		return true
	default:
		return false
	}
}
