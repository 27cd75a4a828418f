package diag

import (
	"testing"

	"zomlang/internal/source"
)

func TestDedupReporterSuppressesExactRepeats(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	sp := source.Span{Start: 0, End: 1}
	r.Report(SynUnexpectedToken, SevError, sp, "unexpected token", nil, nil)
	r.Report(SynUnexpectedToken, SevError, sp, "unexpected token", nil, nil)

	if bag.Len() != 1 {
		t.Fatalf("expected the second identical report to be suppressed, got %d diagnostics", bag.Len())
	}
}

func TestDedupReporterForwardsDistinctDiagnostics(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 0, End: 1}, "first", nil, nil)
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 2, End: 3}, "second", nil, nil)
	r.Report(LexUnterminatedString, SevWarning, source.Span{Start: 0, End: 1}, "first", nil, nil)

	if bag.Len() != 3 {
		t.Fatalf("expected three distinct diagnostics to pass through, got %d", bag.Len())
	}
}

func TestDedupReporterOnNilReceiverIsANoop(t *testing.T) {
	var r *DedupReporter
	r.Report(SynUnexpectedToken, SevError, source.Span{}, "should not panic", nil, nil)
}
