package diag

// Severity defines the importance of a diagnostic, ordered low to high:
// Note < Remark < Warning < Error < Fatal.
type Severity uint8

const (
	// SevNote is for informational diagnostics attached to, or standing in
	// for, more context than the reader strictly needs to act on.
	SevNote Severity = iota
	// SevRemark surfaces a noteworthy but non-actionable observation, e.g.
	// a performance or style remark that isn't wrong, just worth flagging.
	SevRemark
	// SevWarning is for diagnostics about constructs that are legal but
	// likely to be a mistake.
	SevWarning
	// SevError is for diagnostics that prevent producing a usable result.
	SevError
	// SevFatal is for diagnostics so severe that the engine should stop
	// processing the current buffer rather than attempt recovery.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "NOTE"
	case SevRemark:
		return "REMARK"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}
