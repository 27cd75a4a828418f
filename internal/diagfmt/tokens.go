package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"zomlang/internal/source"
	"zomlang/internal/token"
)

// TokenOutput is one token in the machine-readable token dump. NameID is
// present only for interned identifiers (see source.Interner).
type TokenOutput struct {
	Kind    string          `json:"kind"`
	Text    string          `json:"text,omitempty"`
	Span    source.Span     `json:"span"`
	NameID  source.StringID `json:"name_id,omitempty"`
	Leading []string        `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	out := make([]string, len(tok.Leading))
	for i, tr := range tok.Leading {
		out[i] = tr.Kind.String()
	}
	return out
}

// FormatTokensPretty renders one token per line: index, kind, text, the
// resolved position, and any leading trivia kinds. Stops after EOF, which
// is always the stream's last token.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		line := fmt.Sprintf("%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if leading := leadingKinds(tok); len(leading) > 0 {
			line += fmt.Sprintf(" (leading: %s)", strings.Join(leading, ", "))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokenOutputsJSON converts a token stream into its serializable form,
// truncating after the EOF token.
func TokenOutputsJSON(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			NameID:  tok.NameID,
			Leading: leadingKinds(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensJSON renders tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokenOutputsJSON(tokens))
}
