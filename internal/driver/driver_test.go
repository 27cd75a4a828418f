package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/diagfmt"
	"zomlang/internal/source"
)

func TestAddVirtualSourceFileAndParseSourcesPopulatesAST(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	id := d.AddVirtualSourceFile("<test>", []byte("let x = 1;"))

	ok := d.ParseSources(context.Background())
	if !ok {
		t.Fatalf("ParseSources reported errors: %+v", d.GetDiagnosticEngine().Bag().Items())
	}

	sf, found := d.GetAST(id)
	if !found {
		t.Fatal("expected an AST for the registered file")
	}
	if len(sf.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(sf.Statements))
	}
	if _, ok := sf.Statements[0].(*ast.VariableDeclaration); !ok {
		t.Errorf("got %T, want *ast.VariableDeclaration", sf.Statements[0])
	}
}

func TestParseSourcesRunsEveryRegisteredBufferConcurrently(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	sources := map[string]string{
		"a": "let a = 1;",
		"b": "let b = 2;",
		"c": "fun f() -> i32 { return 3; }",
	}
	ids := make(map[string]bool)
	for name, content := range sources {
		id := d.AddVirtualSourceFile(name, []byte(content))
		ids[name] = true
		_ = id
	}

	if !d.ParseSources(context.Background()) {
		t.Fatalf("ParseSources reported errors: %+v", d.GetDiagnosticEngine().Bag().Items())
	}

	asts := d.GetASTs()
	if len(asts) != len(sources) {
		t.Fatalf("got %d parsed files, want %d", len(asts), len(sources))
	}
}

func TestParseSourcesIsIdempotentOnceDrained(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	d.AddVirtualSourceFile("<t1>", []byte("let x = 1;"))

	if !d.ParseSources(context.Background()) {
		t.Fatal("first ParseSources call should succeed")
	}
	before := len(d.GetASTs())

	// No new sources were registered, so a second call should be a no-op.
	if !d.ParseSources(context.Background()) {
		t.Fatal("second ParseSources call should also report no errors")
	}
	if after := len(d.GetASTs()); after != before {
		t.Errorf("got %d ASTs after a no-op ParseSources, want %d", after, before)
	}
}

func TestHadErrorsIsMonotonicAcrossBadAndGoodFiles(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	d.AddVirtualSourceFile("<bad>", []byte("let x = ;"))
	d.AddVirtualSourceFile("<good>", []byte("let y = 1;"))

	d.ParseSources(context.Background())
	if !d.GetDiagnosticEngine().HadErrors() {
		t.Fatal("expected HadErrors() to be true after a malformed buffer was parsed")
	}
}

func TestAddSourceFileOnMissingPathReportsIOLoadFileError(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	_, ok := d.AddSourceFile("/nonexistent/does-not-exist.zm")
	if ok {
		t.Fatal("AddSourceFile on a missing path should return ok=false")
	}
	if !d.GetDiagnosticEngine().HadErrors() {
		t.Fatal("a failed AddSourceFile must report an Error-severity diagnostic")
	}
	items := d.GetDiagnosticEngine().Bag().Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(items))
	}
}

func TestTokenizeFileDoesNotPopulateGetASTs(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	id := d.AddVirtualSourceFile("<tok>", []byte("let x = 1;"))

	toks := d.TokenizeFile(id)
	if len(toks) == 0 {
		t.Fatal("expected at least the EOF token")
	}
	if _, found := d.GetAST(id); found {
		t.Error("TokenizeFile must not populate GetASTs")
	}
}

func TestNewWithBaseSetsFileSetBaseDir(t *testing.T) {
	d := NewWithBase("/srv/project", Options{Language: DefaultLanguageOptions()})
	if got := d.Files().BaseDir(); got != "/srv/project" {
		t.Errorf("got base dir %q, want %q", got, "/srv/project")
	}
}

func TestDiagnoseEmitReachesTheBagAndConsumers(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	var seen int
	d.GetDiagnosticEngine().AddConsumer(diag.ConsumerFunc(func(fs *source.FileSet, dg *diag.Diagnostic) {
		seen++
	}))

	inFlight := d.GetDiagnosticEngine().Diagnose(diag.SevWarning, diag.LexUnknownChar, source.Span{}, "manual diagnostic")
	inFlight.WithNote(source.Span{}, "extra context")
	inFlight.Emit()

	if seen != 1 {
		t.Fatalf("expected the consumer to observe exactly one diagnostic, got %d", seen)
	}
	if d.GetDiagnosticEngine().Len() != 1 {
		t.Fatalf("expected the bag to hold exactly one diagnostic, got %d", d.GetDiagnosticEngine().Len())
	}
}

func TestDiagnoseCancelReachesNeitherBagNorConsumers(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	var seen int
	d.GetDiagnosticEngine().AddConsumer(diag.ConsumerFunc(func(fs *source.FileSet, dg *diag.Diagnostic) {
		seen++
	}))

	inFlight := d.GetDiagnosticEngine().Diagnose(diag.SevWarning, diag.LexUnknownChar, source.Span{}, "abandoned diagnostic")
	inFlight.Cancel()

	if seen != 0 {
		t.Fatalf("expected Cancel to keep the consumer from observing anything, got %d", seen)
	}
	if d.GetDiagnosticEngine().Len() != 0 {
		t.Fatalf("expected Cancel to keep the bag empty, got %d", d.GetDiagnosticEngine().Len())
	}
}

func TestAddConsumerReceivesEveryReportedDiagnostic(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	var seen []diag.Code
	d.GetDiagnosticEngine().AddConsumer(diag.ConsumerFunc(func(fs *source.FileSet, dg *diag.Diagnostic) {
		seen = append(seen, dg.Code)
	}))

	d.AddVirtualSourceFile("<bad>", []byte("let x = ;"))
	d.ParseSources(context.Background())

	if len(seen) == 0 {
		t.Fatal("expected the registered consumer to observe at least one diagnostic")
	}
	items := d.GetDiagnosticEngine().Bag().Items()
	if len(seen) != len(items) {
		t.Fatalf("consumer saw %d diagnostics, bag holds %d", len(seen), len(items))
	}
}

func TestConsoleOutputRendersDiagnosticsAsTheyAreReported(t *testing.T) {
	var buf bytes.Buffer
	d := New(Options{Language: DefaultLanguageOptions(), ConsoleOutput: &buf})

	d.AddVirtualSourceFile("<bad>", []byte("let x = ;"))
	d.ParseSources(context.Background())

	if buf.Len() == 0 {
		t.Fatal("expected ConsoleOutput to receive rendered diagnostic text")
	}
}

func TestDiagnosticEngineStateIgnoresSuppressedCodes(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	d.GetDiagnosticEngine().GetState().Ignore(diag.SynExpectSemicolon)

	d.AddVirtualSourceFile("<missing-semi>", []byte("let x = 1"))
	d.ParseSources(context.Background())

	for _, item := range d.GetDiagnosticEngine().Bag().Items() {
		if item.Code == diag.SynExpectSemicolon {
			t.Fatalf("expected SynExpectSemicolon to be suppressed by State.Ignore, got %+v", item)
		}
	}
}

func TestInternerDedupesIdenticalIdentifiersAcrossBuffers(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	idA := d.AddVirtualSourceFile("<a>", []byte("let count = 1;"))
	idB := d.AddVirtualSourceFile("<b>", []byte("let count = 2;"))

	toksA := d.TokenizeFile(idA)
	toksB := d.TokenizeFile(idB)

	var nameA, nameB source.StringID
	for _, tok := range toksA {
		if tok.Text == "count" {
			nameA = tok.NameID
		}
	}
	for _, tok := range toksB {
		if tok.Text == "count" {
			nameB = tok.NameID
		}
	}
	if nameA == source.NoStringID || nameB == source.NoStringID {
		t.Fatal("expected the shared interner to assign a StringID to \"count\" in both buffers")
	}
	if nameA != nameB {
		t.Errorf("expected the same identifier across buffers to share a StringID, got %v and %v", nameA, nameB)
	}
}

func TestParseOneWrapsEngineInADedupReporter(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	// A buffer with two malformed statements gets two distinct diagnostics
	// through the per-buffer DedupReporter; this only confirms parseOne's
	// wiring doesn't swallow unrelated diagnostics sharing no span or code.
	d.AddVirtualSourceFile("<bad>", []byte("let x = ;\nlet y = ;"))
	d.ParseSources(context.Background())

	items := d.GetDiagnosticEngine().Bag().Items()
	if len(items) < 2 {
		t.Fatalf("expected at least two distinct diagnostics, got %d: %+v", len(items), items)
	}
}

func TestInterningSkipsKeywords(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	id := d.AddVirtualSourceFile("<kw>", []byte("let x = 1;"))

	toks := d.TokenizeFile(id)
	for _, tok := range toks {
		if strings.TrimSpace(tok.Text) == "let" && tok.NameID != source.NoStringID {
			t.Errorf("expected the \"let\" keyword token to carry NoStringID, got %v", tok.NameID)
		}
	}
}

func TestEmitTimingsReportsOneObsTimingsNote(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions(), EmitTimings: true})
	d.AddVirtualSourceFile("<a>", []byte("let a = 1;"))
	d.AddVirtualSourceFile("<b>", []byte("let b = 2;"))

	if !d.ParseSources(context.Background()) {
		t.Fatalf("unexpected errors: %+v", d.GetDiagnosticEngine().Bag().Items())
	}

	var timings []*diag.Diagnostic
	for _, item := range d.GetDiagnosticEngine().Bag().Items() {
		if item.Code == diag.ObsTimings {
			timings = append(timings, item)
		}
	}
	if len(timings) != 1 {
		t.Fatalf("got %d ObsTimings diagnostics, want 1", len(timings))
	}
	note := timings[0]
	if note.Severity != diag.SevNote {
		t.Errorf("got severity %v, want SevNote", note.Severity)
	}
	if !strings.HasPrefix(note.Message, "timings (parse):") {
		t.Errorf("got message %q", note.Message)
	}
	if len(note.Notes) != 1 {
		t.Fatalf("got %d notes, want 1 JSON payload note", len(note.Notes))
	}

	var payload struct {
		Kind    string  `json:"kind"`
		TotalMS float64 `json:"total_ms"`
		Phases  []struct {
			Name       string  `json:"name"`
			DurationMS float64 `json:"duration_ms"`
		} `json:"phases"`
	}
	if err := json.Unmarshal([]byte(note.Notes[0].Msg), &payload); err != nil {
		t.Fatalf("payload note is not valid JSON: %v", err)
	}
	if payload.Kind != "parse" || len(payload.Phases) != 2 {
		t.Fatalf("got payload %+v", payload)
	}
	if payload.Phases[0].Name != "<a>" || payload.Phases[1].Name != "<b>" {
		t.Errorf("phases should be sorted by buffer name, got %+v", payload.Phases)
	}
}

func TestEmitTimingsNoteRendersAsStructuredTable(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions(), EmitTimings: true})
	d.AddVirtualSourceFile("<a>", []byte("let a = 1;"))
	d.ParseSources(context.Background())

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, d.GetDiagnosticEngine().Bag(), d.Files(), diagfmt.PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "timings (parse)") {
		t.Fatalf("expected the rendered timings table, got %q", out)
	}
	if strings.Contains(out, `"total_ms"`) {
		t.Errorf("the raw JSON payload should not leak into the rendered output: %q", out)
	}
}

func TestTimingsAreOffByDefault(t *testing.T) {
	d := New(Options{Language: DefaultLanguageOptions()})
	d.AddVirtualSourceFile("<a>", []byte("let a = 1;"))
	d.ParseSources(context.Background())

	for _, item := range d.GetDiagnosticEngine().Bag().Items() {
		if item.Code == diag.ObsTimings {
			t.Fatalf("unexpected ObsTimings diagnostic without EmitTimings: %+v", item)
		}
	}
}
