package diag

import "sync"

// State is a DiagnosticEngine's mutable ignore/error-tracking state: which
// codes are currently suppressed, and whether any Error-or-worse diagnostic
// has been reported since the engine was created. AnyError is sticky: once
// true it never again reports false for the same State.
type State struct {
	mu       sync.Mutex
	ignored  map[Code]bool
	anyError bool
}

// NewState returns a State with nothing ignored and anyError unset.
func NewState() *State {
	return &State{ignored: make(map[Code]bool)}
}

// Ignore suppresses every future diagnostic carrying code: the engine drops
// it before it reaches the Bag or any Consumer, and it cannot flip anyError.
func (s *State) Ignore(code Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ignored[code] = true
}

// Unignore reverses a prior Ignore.
func (s *State) Unignore(code Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ignored, code)
}

// IsIgnored reports whether code is currently suppressed.
func (s *State) IsIgnored(code Code) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ignored[code]
}

// AnyError reports the sticky false->true error flag.
func (s *State) AnyError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anyError
}

// MarkError transitions AnyError to true. A no-op once it is already true.
func (s *State) MarkError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anyError = true
}
