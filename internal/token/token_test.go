package token

import (
	"testing"

	"zomlang/internal/source"
)

func TestLookupKeywordCaseSensitive(t *testing.T) {
	if k, ok := LookupKeyword("let"); !ok || k != KwLet {
		t.Fatalf("LookupKeyword(let) = %v, %v", k, ok)
	}
	if _, ok := LookupKeyword("Let"); ok {
		t.Fatalf("keyword lookup must be case-sensitive")
	}
	if _, ok := LookupKeyword("frobnicate"); ok {
		t.Fatalf("unexpected keyword match")
	}
}

func TestLookupKeywordIncludesElse(t *testing.T) {
	if k, ok := LookupKeyword("else"); !ok || k != KwElse {
		t.Fatalf("LookupKeyword(else) = %v, %v", k, ok)
	}
}

func TestKeywordTokenCarriesTextAndClassifies(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("let x = 1;"))
	tok := Token{
		Kind: KwLet,
		Span: source.Span{File: id, Start: 0, End: 3},
		Text: "let",
	}
	if tok.Text != "let" {
		t.Fatalf("Text = %q, want %q", tok.Text, "let")
	}
	if !tok.IsKeyword() {
		t.Fatalf("KwLet token should report IsKeyword")
	}
	if tok.IsIdent() || tok.IsLiteral() || tok.IsPunctOrOp() {
		t.Fatalf("KwLet token misclassified")
	}
	if tok.NameID != source.NoStringID {
		t.Fatalf("a keyword token should carry NoStringID, got %v", tok.NameID)
	}
}

func TestTokenPredicates(t *testing.T) {
	cases := []struct {
		kind    Kind
		ident   bool
		literal bool
		punct   bool
	}{
		{Ident, true, false, false},
		{IntegerLiteral, false, true, false},
		{LParen, false, false, true},
		{FatArrow, false, false, true},
		{EOF, false, false, false},
	}
	for _, c := range cases {
		tok := Token{Kind: c.kind}
		if tok.IsIdent() != c.ident || tok.IsLiteral() != c.literal || tok.IsPunctOrOp() != c.punct {
			t.Fatalf("predicates for %v mismatched expectations", c.kind)
		}
	}
	if !(Token{Kind: EOF}).IsEOF() {
		t.Fatalf("EOF token should report IsEOF")
	}
}
