package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"zomlang/internal/ast"
	"zomlang/internal/source"
)

func sampleFile() *ast.SourceFile {
	span := source.Span{File: 1, Start: 0, End: 20}
	return &ast.SourceFile{
		SpanVal:  span,
		FileName: "sample.zom",
		FileID:   1,
		Statements: []ast.Stmt{
			&ast.FunctionDeclaration{
				SpanVal: span,
				Name:    "main",
				Body: &ast.Block{
					SpanVal: span,
					Statements: []ast.Stmt{
						&ast.ReturnStatement{
							SpanVal: span,
							Value:   &ast.IntLiteral{SpanVal: span, Value: 1, Raw: "1"},
						},
					},
				},
			},
		},
	}
}

func TestFormatASTTextIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTText(&buf, sampleFile(), nil); err != nil {
		t.Fatalf("FormatASTText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "SourceFile") || !strings.Contains(out, `name="main"`) {
		t.Fatalf("text dump missing expected content:\n%s", out)
	}
}

func TestFormatASTJSONRoundTripsKind(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, sampleFile()); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind": "SourceFile"`) {
		t.Fatalf("json dump missing kind field:\n%s", buf.String())
	}
}

func TestFormatASTXMLUsesKindAsElementName(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTXML(&buf, sampleFile()); err != nil {
		t.Fatalf("FormatASTXML: %v", err)
	}
	if !strings.Contains(buf.String(), "<SourceFile") {
		t.Fatalf("xml dump missing SourceFile element:\n%s", buf.String())
	}
}
