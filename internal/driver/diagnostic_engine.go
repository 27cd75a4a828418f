package driver

import (
	"sync"

	"zomlang/internal/diag"
	"zomlang/internal/source"
)

// DiagnosticEngine is the CompilerDriver's shared sink for every diagnostic
// raised while adding or parsing source files. It implements diag.Reporter
// so the lexer and parser can report through it directly; Report serializes
// under a mutex so a single diagnostic (and its notes) reaches the bag and
// every registered Consumer atomically, even when ParseSources is running
// several files concurrently.
type DiagnosticEngine struct {
	mu        sync.Mutex
	bag       *diag.Bag
	state     *diag.State
	fs        *source.FileSet
	consumers []diag.Consumer
}

func newDiagnosticEngine(capacity int, fs *source.FileSet) *DiagnosticEngine {
	return &DiagnosticEngine{
		bag:   diag.NewBag(capacity),
		state: diag.NewState(),
		fs:    fs,
	}
}

// AddConsumer registers c to receive every diagnostic reported from now on.
// Consumers are fanned out to in registration order, under the same lock
// that serializes Report, so a consumer sees one diagnostic fully before
// the next.
func (e *DiagnosticEngine) AddConsumer(c diag.Consumer) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consumers = append(e.consumers, c)
}

// Report implements diag.Reporter. A diagnostic whose code is ignored (see
// GetState) is dropped before it reaches the bag, any consumer, or the
// error flag.
func (e *DiagnosticEngine) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	if e.state.IsIgnored(code) {
		return
	}

	e.mu.Lock()
	d := &diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	}
	e.bag.Add(d)
	if sev >= diag.SevError {
		e.state.MarkError()
	}
	// Fan out under the lock so concurrent buffers never interleave one
	// diagnostic's consumer dispatch with another's. Consumers must not
	// recursively report (see diag.Consumer), so this cannot deadlock.
	for _, c := range e.consumers {
		c.Handle(e.fs, d)
	}
	e.mu.Unlock()
}

// Diagnose starts a scoped diagnostic builder bound to this engine: the
// caller chains WithNote/WithFixSuggestion as needed and finishes with
// Emit or Cancel, matching diag.InFlightDiagnostic.
func (e *DiagnosticEngine) Diagnose(sev diag.Severity, code diag.Code, primary source.Span, msg string) *diag.InFlightDiagnostic {
	return diag.NewReportBuilder(e, sev, code, primary, msg)
}

// GetState returns the engine's mutable ignore/error-tracking state.
func (e *DiagnosticEngine) GetState() *diag.State { return e.state }

// HadErrors reports the monotonic false->true error flag: once any buffer
// has reported an Error-severity (or worse) diagnostic, it stays true for
// the life of the engine.
func (e *DiagnosticEngine) HadErrors() bool { return e.state.AnyError() }

// Bag returns a snapshot of the accumulated diagnostics. The returned Bag
// is a fresh copy safe to sort/dedup/filter without affecting the engine's
// own state or racing concurrent Report calls.
func (e *DiagnosticEngine) Bag() *diag.Bag {
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := diag.NewBag(int(e.bag.Cap()))
	for _, d := range e.bag.Items() {
		snapshot.Add(d)
	}
	return snapshot
}

// Len reports how many diagnostics have been accumulated so far.
func (e *DiagnosticEngine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bag.Len()
}
