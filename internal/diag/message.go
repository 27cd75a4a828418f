package diag

import (
	"fmt"
	"strings"

	"zomlang/internal/token"
)

// ArgumentKind discriminates the two value shapes a message template can
// splice in.
type ArgumentKind uint8

const (
	ArgString ArgumentKind = iota
	ArgToken
)

// Argument is one positional substitution value for a diagnostic message
// template: either a plain string or a token whose source text is spliced
// in verbatim.
type Argument struct {
	Kind ArgumentKind
	Str  string
	Tok  token.Token
}

// StringArg wraps a plain string as a template argument.
func StringArg(s string) Argument {
	return Argument{Kind: ArgString, Str: s}
}

// TokenArg wraps a token as a template argument; substitution renders the
// token's source text.
func TokenArg(t token.Token) Argument {
	return Argument{Kind: ArgToken, Tok: t}
}

func (a Argument) render() string {
	if a.Kind == ArgToken {
		return a.Tok.Text
	}
	return a.Str
}

// FormatMessage substitutes the {N} placeholders in template with args.
// Placeholder indices must appear consecutively starting at 0 and every
// index must have a matching argument; templates are compiled into the
// program, so a violation is a bug in the caller and panics.
func FormatMessage(template string, args ...Argument) string {
	var out strings.Builder
	next := 0
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			break
		}
		close := strings.IndexByte(rest[open:], '}')
		if close < 0 {
			panic(fmt.Sprintf("diag: malformed message template %q: unclosed '{'", template))
		}
		idx := 0
		digits := rest[open+1 : open+close]
		if digits == "" {
			panic(fmt.Sprintf("diag: malformed message template %q: empty placeholder", template))
		}
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				panic(fmt.Sprintf("diag: malformed message template %q: placeholder %q is not an index", template, digits))
			}
			idx = idx*10 + int(digits[i]-'0')
		}
		if idx != next {
			panic(fmt.Sprintf("diag: malformed message template %q: placeholder {%d} out of order, want {%d}", template, idx, next))
		}
		if idx >= len(args) {
			panic(fmt.Sprintf("diag: message template %q: no argument for placeholder {%d}", template, idx))
		}
		out.WriteString(rest[:open])
		out.WriteString(args[idx].render())
		rest = rest[open+close+1:]
		next++
	}
	return out.String()
}
