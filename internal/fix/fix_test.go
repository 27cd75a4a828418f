package fix_test

import (
	"os"
	"path/filepath"
	"testing"

	"zomlang/internal/diag"
	"zomlang/internal/fix"
	"zomlang/internal/source"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

func TestApplyInsertsMissingSemicolonOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "a.zm", "let x = 1\n")

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	at := source.Span{File: id, Start: 9, End: 9} // right after "1", before '\n'
	d := diag.NewError(diag.SynExpectSemicolon, at, "expected ';' to terminate the statement").
		WithFix("Insert ';'", diag.FixEdit{Span: at, NewText: ";"})

	result, err := fix.Apply(fs, []diag.Diagnostic{d}, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("got %d applied fixes, want 1", len(result.Applied))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "let x = 1;\n" {
		t.Errorf("got file content %q, want %q", got, "let x = 1;\n")
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<stdin>", []byte("let x = 1\n"))

	at := source.Span{File: id, Start: 9, End: 9}
	d := diag.NewError(diag.SynExpectSemicolon, at, "expected ';'").
		WithFix("Insert ';'", diag.FixEdit{Span: at, NewText: ";"})

	_, err := fix.Apply(fs, []diag.Diagnostic{d}, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != fix.ErrNoFixes {
		t.Fatalf("got err %v, want ErrNoFixes for a virtual-only file", err)
	}
}

func TestApplyModeAllSkipsFixesRequiringManualReview(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "b.zm", "let x = 1\nlet y = 2\n")

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	safeAt := source.Span{File: id, Start: 9, End: 9}
	safeFix := diag.Fix{
		Title: "Insert ';'", Kind: diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits:         []diag.TextEdit{{Span: safeAt, NewText: ";"}},
	}
	safeDiag := diag.NewError(diag.SynExpectSemicolon, safeAt, "expected ';'").WithFixSuggestion(safeFix)

	riskyAt := source.Span{File: id, Start: 20, End: 20}
	riskyFix := diag.Fix{
		Title: "Wrap in a block", Kind: diag.FixKindRefactorRewrite,
		Applicability: diag.FixApplicabilityManualReview,
		Edits:         []diag.TextEdit{{Span: riskyAt, NewText: ";"}},
	}
	riskyDiag := diag.NewError(diag.SynExpectSemicolon, riskyAt, "expected ';'").WithFixSuggestion(riskyFix)

	result, err := fix.Apply(fs, []diag.Diagnostic{safeDiag, riskyDiag}, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("got %d applied fixes, want 1 (only the always-safe one)", len(result.Applied))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("got %d skipped fixes, want 1 (the manual-review one)", len(result.Skipped))
	}
}

func TestApplyGuardRejectsStaleEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "c.zm", "let x = 1\n")

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// OldText names text that is not actually present at this span, as if the
	// file had changed since the diagnostic was computed.
	at := source.Span{File: id, Start: 4, End: 5}
	d := diag.NewError(diag.SynExpectSemicolon, at, "expected ';'").
		WithFix("Replace stale token", diag.FixEdit{Span: at, NewText: "z", OldText: "q"})

	_, err = fix.Apply(fs, []diag.Diagnostic{d}, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != fix.ErrNoFixes {
		t.Fatalf("got err %v, want ErrNoFixes when the guard text doesn't match", err)
	}
}

func TestMakeFixIDIsDeterministic(t *testing.T) {
	span := source.Span{File: 3, Start: 10, End: 10}
	a := fix.MakeFixID(diag.SynExpectSemicolon, span)
	b := fix.MakeFixID(diag.SynExpectSemicolon, span)
	if a != b {
		t.Errorf("MakeFixID must be deterministic for the same inputs, got %q and %q", a, b)
	}
}

func TestInsertTextBuildsAnAlwaysSafeQuickFix(t *testing.T) {
	at := source.Span{File: 0, Start: 5, End: 5}
	f := fix.InsertText("Insert ';'", at, ";", "")
	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("got kind %v, want FixKindQuickFix", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("got applicability %v, want FixApplicabilityAlwaysSafe", f.Applicability)
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != ";" {
		t.Fatalf("got edits %+v", f.Edits)
	}
}
