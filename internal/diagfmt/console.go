package diagfmt

import (
	"io"
	"sync"

	"zomlang/internal/diag"
	"zomlang/internal/source"
)

// ConsoleConsumer renders every diagnostic it receives to w in the same
// human-readable form Pretty produces, one diagnostic at a time as it
// arrives rather than batched at the end of a run. It implements
// diag.Consumer so it can be attached to a DiagnosticEngine via AddConsumer.
type ConsoleConsumer struct {
	mu   sync.Mutex
	w    io.Writer
	opts PrettyOpts
}

// NewConsoleConsumer returns a ConsoleConsumer writing to w under opts.
func NewConsoleConsumer(w io.Writer, opts PrettyOpts) *ConsoleConsumer {
	return &ConsoleConsumer{w: w, opts: opts}
}

// Handle implements diag.Consumer by rendering d through Pretty. Diagnostics
// are serialized under a mutex so concurrent ParseSources goroutines never
// interleave one diagnostic's lines with another's.
func (c *ConsoleConsumer) Handle(fs *source.FileSet, d *diag.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	single := diag.NewBag(1)
	single.Add(d)
	Pretty(c.w, single, fs, c.opts)
}
