package diag

import (
	"testing"

	"zomlang/internal/source"
)

func TestStateIgnoreSuppressesCode(t *testing.T) {
	s := NewState()
	if s.IsIgnored(SynUnexpectedToken) {
		t.Fatal("nothing should be ignored on a fresh state")
	}
	s.Ignore(SynUnexpectedToken)
	if !s.IsIgnored(SynUnexpectedToken) {
		t.Fatal("expected SynUnexpectedToken to be ignored")
	}
	s.Unignore(SynUnexpectedToken)
	if s.IsIgnored(SynUnexpectedToken) {
		t.Fatal("expected SynUnexpectedToken to no longer be ignored")
	}
}

func TestStateAnyErrorIsSticky(t *testing.T) {
	s := NewState()
	if s.AnyError() {
		t.Fatal("fresh state should not have an error")
	}
	s.MarkError()
	if !s.AnyError() {
		t.Fatal("expected AnyError true after MarkError")
	}
	s.MarkError()
	if !s.AnyError() {
		t.Fatal("AnyError should remain true after a second MarkError")
	}
}

func TestConsumerFuncHandlesDiagnostic(t *testing.T) {
	var got *Diagnostic
	c := ConsumerFunc(func(fs *source.FileSet, d *Diagnostic) { got = d })

	d := &Diagnostic{Severity: SevWarning, Code: LexUnterminatedString, Message: "boom"}
	c.Handle(nil, d)

	if got != d {
		t.Fatalf("expected ConsumerFunc to forward the diagnostic, got %v", got)
	}
}

func TestReportBuilderCancelNeverReports(t *testing.T) {
	bag := NewBag(8)
	r := BagReporter{Bag: bag}

	b := ReportError(r, SynUnexpectedToken, source.Span{}, "should not appear")
	b.Cancel()

	if bag.Len() != 0 {
		t.Fatalf("expected Cancel to suppress the report, bag has %d diagnostics", bag.Len())
	}
}

func TestReportBuilderCancelAfterEmitIsNoop(t *testing.T) {
	bag := NewBag(8)
	r := BagReporter{Bag: bag}

	b := ReportError(r, SynUnexpectedToken, source.Span{}, "reported once")
	b.Emit()
	b.Cancel()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
}

func TestReportBuilderEmitAfterCancelIsNoop(t *testing.T) {
	bag := NewBag(8)
	r := BagReporter{Bag: bag}

	b := ReportError(r, SynUnexpectedToken, source.Span{}, "cancelled")
	b.Cancel()
	b.Emit()

	if bag.Len() != 0 {
		t.Fatalf("expected Cancel followed by Emit to still report nothing, got %d", bag.Len())
	}
}
