package source

import "testing"

func TestSpanLenAndEmpty(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Error("a span with Start == End must be Empty")
	}
	if s.Len() != 0 {
		t.Errorf("got Len %d, want 0", s.Len())
	}
	s2 := Span{File: 0, Start: 3, End: 8}
	if s2.Empty() {
		t.Error("a 5-byte span must not be Empty")
	}
	if s2.Len() != 5 {
		t.Errorf("got Len %d, want 5", s2.Len())
	}
}

func TestSpanCoverGrowsToEncloseBoth(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSpanCoverAcrossDifferentFilesIsANoOp(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(b); got != a {
		t.Errorf("Cover across files must return s unchanged, got %+v", got)
	}
}

func TestSpanExtendRightGrowsToNeighborStart(t *testing.T) {
	kw := Span{File: 0, Start: 0, End: 3}
	next := Span{File: 0, Start: 10, End: 15}
	got := kw.ExtendRight(next)
	want := Span{File: 0, Start: 0, End: 10}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSpanExtendRightNoOpWhenAlreadyOverlapping(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 20}
	b := Span{File: 0, Start: 5, End: 10}
	if got := a.ExtendRight(b); got != a {
		t.Errorf("ExtendRight must not shrink s, got %+v", got)
	}
}

func TestSpanExtendLeftGrowsBackToNeighborEnd(t *testing.T) {
	a := Span{File: 0, Start: 10, End: 15}
	b := Span{File: 0, Start: 0, End: 3}
	got := a.ExtendLeft(b)
	want := Span{File: 0, Start: 3, End: 15}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSpanIsLeftThanAndIsRightThan(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 5}
	b := Span{File: 0, Start: 10, End: 20}
	if !a.IsLeftThan(b) {
		t.Error("a starts before b")
	}
	if b.IsLeftThan(a) {
		t.Error("b does not start before a")
	}
	if !b.IsRightThan(a) {
		t.Error("b ends after a")
	}
	other := Span{File: 1, Start: 0, End: 5}
	if a.IsLeftThan(other) || a.IsRightThan(other) {
		t.Error("spans in different files must never compare as left/right of each other")
	}
}

func TestSpanShiftLeftAndShiftRight(t *testing.T) {
	s := Span{File: 0, Start: 10, End: 15}
	if got := s.ShiftRight(5); got != (Span{File: 0, Start: 15, End: 20}) {
		t.Errorf("ShiftRight got %+v", got)
	}
	if got := s.ShiftLeft(5); got != (Span{File: 0, Start: 5, End: 10}) {
		t.Errorf("ShiftLeft got %+v", got)
	}
}

func TestSpanShiftLeftNoOpOnUnderflow(t *testing.T) {
	s := Span{File: 0, Start: 2, End: 10}
	if got := s.ShiftLeft(5); got != s {
		t.Errorf("ShiftLeft must not underflow Start, got %+v", got)
	}
}

func TestSpanZeroideToStartAndEnd(t *testing.T) {
	s := Span{File: 0, Start: 10, End: 20}
	if got := s.ZeroideToStart(); got != (Span{File: 0, Start: 10, End: 10}) {
		t.Errorf("ZeroideToStart got %+v", got)
	}
	if got := s.ZeroideToEnd(); got != (Span{File: 0, Start: 20, End: 20}) {
		t.Errorf("ZeroideToEnd got %+v", got)
	}
}

func TestSpanContainsOffset(t *testing.T) {
	s := Span{File: 0, Start: 10, End: 20}
	if !s.ContainsOffset(10) {
		t.Error("Start is inclusive")
	}
	if s.ContainsOffset(20) {
		t.Error("End is exclusive")
	}
	if s.ContainsOffset(9) || s.ContainsOffset(21) {
		t.Error("offsets outside [Start, End) must not be contained")
	}
}

func TestSpanEncloses(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 100}
	inner := Span{File: 0, Start: 10, End: 20}
	if !outer.Encloses(inner) {
		t.Error("outer should enclose inner")
	}
	if inner.Encloses(outer) {
		t.Error("inner must not enclose outer")
	}
	other := Span{File: 1, Start: 10, End: 20}
	if outer.Encloses(other) {
		t.Error("spans in different files must never enclose one another")
	}
}

func TestSpanIsBefore(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 5}
	b := Span{File: 0, Start: 5, End: 10}
	if !a.IsBefore(b) {
		t.Error("a ends exactly where b starts, so a is before b")
	}
	if b.IsBefore(a) {
		t.Error("b must not be before a")
	}
}
