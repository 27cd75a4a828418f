package diag

import (
	"testing"

	"zomlang/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.zom", []byte("a\nb\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LexUnterminatedString,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.zom:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.zom:2:1 note line\n" +
		"warning LEX1002 testdata/golden/sample.zom:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenDiagnosticsEmpty(t *testing.T) {
	if got := FormatGoldenDiagnostics(nil, source.NewFileSet(), true); got != "" {
		t.Fatalf("expected empty string for no diagnostics, got %q", got)
	}
}

func TestFormatGoldenDiagnosticsOmitsNotesWhenDisabled(t *testing.T) {
	fs := source.NewFileSet()
	userFile := fs.Add("sample.zom", []byte("a\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "boom",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes:    []Note{{Span: source.Span{File: userFile, Start: 0, End: 1}, Msg: "ignored"}},
		},
	}

	got := FormatGoldenDiagnostics(diags, fs, false)
	if got != "error SYN2001 sample.zom:1:1 boom" {
		t.Fatalf("unexpected output: %q", got)
	}
}
