package diag

import "zomlang/internal/source"

// Consumer receives every diagnostic an engine reports, in the order it was
// reported. Handle must be side-effect free apart from its own I/O and must
// never recursively report a diagnostic back through the engine that is
// calling it.
type Consumer interface {
	Handle(fs *source.FileSet, d *Diagnostic)
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc func(fs *source.FileSet, d *Diagnostic)

// Handle calls f.
func (f ConsumerFunc) Handle(fs *source.FileSet, d *Diagnostic) { f(fs, d) }
