package source

import "fmt"

// Span represents a contiguous, half-open range of bytes within one File.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// Empty reports whether the span has zero length.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other. Spans in
// different files are incomparable; s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ExtendRight grows s up to the start of other, e.g. to cover the gap (and
// trailing trivia) between a keyword and the token that follows it.
func (s Span) ExtendRight(other Span) Span {
	if s.File != other.File {
		return s
	}
	if s.End < other.Start {
		return Span{File: s.File, Start: s.Start, End: other.Start}
	}
	return s
}

// ExtendLeft grows s back to the end of other.
func (s Span) ExtendLeft(other Span) Span {
	if s.File != other.File {
		return s
	}
	if s.Start > other.End {
		return Span{File: s.File, Start: other.End, End: s.End}
	}
	return s
}

// IsLeftThan reports whether s starts before other in the same file.
func (s Span) IsLeftThan(other Span) bool {
	return s.File == other.File && s.Start < other.Start
}

// IsRightThan reports whether s ends after other in the same file.
func (s Span) IsRightThan(other Span) bool {
	return s.File == other.File && s.End > other.End
}

// ShiftLeft moves s n bytes earlier; a no-op if that would underflow Start.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Start {
		return s
	}
	return Span{File: s.File, Start: s.Start - n, End: s.End - n}
}

// ShiftRight moves s n bytes later; a no-op if that would overflow End.
func (s Span) ShiftRight(n uint32) Span {
	if n > ^uint32(0)-s.End {
		return s
	}
	return Span{File: s.File, Start: s.Start + n, End: s.End + n}
}

// ZeroideToStart collapses s to an empty span at its start, used when a
// fix-it needs to insert text immediately before s.
func (s Span) ZeroideToStart() Span {
	return Span{File: s.File, Start: s.Start, End: s.Start}
}

// ZeroideToEnd collapses s to an empty span at its end, used when a
// diagnostic or fix-it targets the position right after s (e.g. a missing
// semicolon).
func (s Span) ZeroideToEnd() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}

// ContainsOffset reports whether off falls within [Start, End).
func (s Span) ContainsOffset(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Encloses reports whether s fully contains inner.
func (s Span) Encloses(inner Span) bool {
	return s.File == inner.File && s.Start <= inner.Start && inner.End <= s.End
}

// IsBefore reports whether s strictly precedes other in the same file.
func (s Span) IsBefore(other Span) bool {
	return s.File == other.File && s.End <= other.Start
}
