// Package driver orchestrates the front end end to end: register source
// files with a FileSet, lex and parse each one, and expose the resulting
// ASTs and diagnostics. It owns no grammar knowledge of its own — that
// lives in internal/lexer and internal/parser — it only wires them together
// and fans parsing out across goroutines when asked to.
package driver

import (
	"context"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/diagfmt"
	"zomlang/internal/lexer"
	"zomlang/internal/parser"
	"zomlang/internal/source"
	"zomlang/internal/token"
)

// LanguageOptions mirrors the recognized configuration surface: the knobs
// that change how the lexer and parser behave, independent of how many
// files are involved or how they're scheduled.
type LanguageOptions struct {
	// UseUnicode treats Unicode letter categories as identifier characters.
	// When off, non-ASCII bytes produce Unknown tokens.
	UseUnicode bool
	// AllowDollarIdentifiers permits '$' in identifiers.
	AllowDollarIdentifiers bool
	// SupportRegexLiterals lets '/' begin a regex literal where the lexer's
	// position registry says one is expected.
	SupportRegexLiterals bool
}

// DefaultLanguageOptions returns the recognized defaults.
func DefaultLanguageOptions() LanguageOptions {
	return LanguageOptions{
		UseUnicode:           true,
		SupportRegexLiterals: true,
	}
}

func (o LanguageOptions) lexerOptions(reporter diag.Reporter, interner *source.Interner) lexer.Options {
	return lexer.Options{
		UseUnicode:             o.UseUnicode,
		AllowDollarIdentifiers: o.AllowDollarIdentifiers,
		SupportRegexLiterals:   o.SupportRegexLiterals,
		CommentRetention:       lexer.CommentsAttachToNextToken,
		Reporter:               reporter,
		Interner:               interner,
	}
}

// Options configures a CompilerDriver.
type Options struct {
	Language LanguageOptions
	// MaxDiagnostics bounds how many diagnostics the driver's engine keeps
	// across every file it parses. Zero means a generous default.
	MaxDiagnostics int
	// MaxErrorsPerFile stops a single file's parse early once it has
	// reported this many errors. Zero means unbounded.
	MaxErrorsPerFile uint
	// Jobs caps how many files ParseSources parses concurrently. Zero means
	// GOMAXPROCS.
	Jobs int
	// EmitTimings makes ParseSources report one ObsTimings note diagnostic
	// summarizing per-buffer parse durations once every buffer is done.
	EmitTimings bool
	// ConsoleOutput, when non-nil, attaches a diagfmt.ConsoleConsumer to the
	// driver's DiagnosticEngine so every diagnostic is rendered to it as it
	// is reported, in addition to being collected in the engine's Bag.
	ConsoleOutput io.Writer
	// ConsolePretty configures the ConsoleConsumer attached when
	// ConsoleOutput is set. Ignored otherwise.
	ConsolePretty diagfmt.PrettyOpts
}

func (o Options) diagnosticCapacity() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return 4096
}

func (o Options) jobs(n int) int {
	j := o.Jobs
	if j <= 0 {
		j = runtime.GOMAXPROCS(0)
	}
	if j > n {
		j = n
	}
	if j < 1 {
		j = 1
	}
	return j
}

// CompilerDriver adds source files, lexes and parses each one (optionally
// in parallel), and aggregates the resulting ASTs keyed by the FileID each
// one was registered under. It owns the FileSet, the DiagnosticEngine bound
// to it, and the LanguageOptions every parse is run with.
type CompilerDriver struct {
	opts     Options
	files    *source.FileSet
	diags    *DiagnosticEngine
	interner *source.Interner

	mu      sync.Mutex
	asts    map[source.FileID]*ast.SourceFile
	pending []source.FileID
}

// New constructs a CompilerDriver over a fresh FileSet. When opts.
// ConsoleOutput is set, a diagfmt.ConsoleConsumer writing to it is attached
// to the engine before any file is parsed, so it sees every diagnostic
// from the very first one.
func New(opts Options) *CompilerDriver {
	files := source.NewFileSet()
	d := &CompilerDriver{
		opts:     opts,
		files:    files,
		diags:    newDiagnosticEngine(opts.diagnosticCapacity(), files),
		interner: source.NewInterner(),
		asts:     make(map[source.FileID]*ast.SourceFile),
	}
	if opts.ConsoleOutput != nil {
		d.diags.AddConsumer(diagfmt.NewConsoleConsumer(opts.ConsoleOutput, opts.ConsolePretty))
	}
	return d
}

// NewWithBase is New, rooted at baseDir for relative-path rendering in
// diagnostics.
func NewWithBase(baseDir string, opts Options) *CompilerDriver {
	d := New(opts)
	d.files.SetBaseDir(baseDir)
	return d
}

// Files returns the driver's SourceManager.
func (d *CompilerDriver) Files() *source.FileSet { return d.files }

// Interner returns the string interner shared by every buffer this driver
// lexes, deduplicating identifier text across files parsed concurrently.
func (d *CompilerDriver) Interner() *source.Interner { return d.interner }

// AddSourceFile resolves and reads path, registers it with the SourceManager,
// and returns its FileID. On I/O failure it emits a single Error-severity
// diagnostic through the engine and returns ok=false without registering
// anything.
func (d *CompilerDriver) AddSourceFile(path string) (source.FileID, bool) {
	id, err := d.files.Load(path)
	if err != nil {
		// No buffer exists to point at, so report against a zero span.
		d.diags.Report(diag.IOLoadFileError, diag.SevError, source.Span{},
			"failed to load source file "+path+": "+err.Error(), nil, nil)
		return 0, false
	}
	d.mu.Lock()
	d.pending = append(d.pending, id)
	d.mu.Unlock()
	return id, true
}

// AddVirtualSourceFile registers in-memory content (a test fixture, stdin,
// a generated snippet) the same way AddSourceFile registers a disk file.
func (d *CompilerDriver) AddVirtualSourceFile(name string, content []byte) source.FileID {
	id := d.files.AddVirtual(name, content)
	d.mu.Lock()
	d.pending = append(d.pending, id)
	d.mu.Unlock()
	return id
}

// ParseSources parses every registered buffer that has not yet been parsed.
// Each buffer gets its own Lexer and Parser instance, so buffers may be
// parsed on separate goroutines; the shared FileSet is read-mostly once
// files are registered, and the shared DiagnosticEngine serializes Report
// calls. Returns whether parsing completed without any buffer reporting an
// Error-severity diagnostic.
func (d *CompilerDriver) ParseSources(ctx context.Context) bool {
	d.mu.Lock()
	todo := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(todo) == 0 {
		return !d.diags.HadErrors()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.jobs(len(todo)))

	started := time.Now()
	var (
		phaseMu sync.Mutex
		phases  []timingPhase
	)
	for _, id := range todo {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			begin := time.Now()
			d.parseOne(id)
			if d.opts.EmitTimings {
				elapsed := float64(time.Since(begin).Microseconds()) / 1000.0
				phaseMu.Lock()
				phases = append(phases, timingPhase{Name: d.files.Get(id).Path, DurationMS: elapsed})
				phaseMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // per-buffer errors are diagnostics, not Go errors; only ctx cancellation propagates

	if d.opts.EmitTimings {
		// Buffers finish in scheduler order; sort so the note is stable.
		sort.Slice(phases, func(i, j int) bool { return phases[i].Name < phases[j].Name })
		d.reportTimings(timingPayload{
			Kind:    "parse",
			TotalMS: float64(time.Since(started).Microseconds()) / 1000.0,
			Phases:  phases,
		})
	}

	return !d.diags.HadErrors()
}

// parseOne lexes and parses a single buffer. Diagnostics are routed through
// a fresh DedupReporter wrapping the shared engine: a speculative re-lex
// (regex-vs-division, or the parser rewinding a failed type-argument-list
// guess) can otherwise produce the same diagnostic twice for one buffer;
// DedupReporter suppresses the repeat before it ever reaches the engine.
func (d *CompilerDriver) parseOne(id source.FileID) {
	file := d.files.Get(id)
	reporter := diag.NewDedupReporter(d.diags)

	lx := lexer.New(d.files, id, d.opts.Language.lexerOptions(reporter, d.interner))
	sf := parser.ParseFile(lx, id, file.Path, parser.Options{
		Reporter:  reporter,
		MaxErrors: d.opts.MaxErrorsPerFile,
	})

	d.mu.Lock()
	d.asts[id] = sf
	d.mu.Unlock()
}

// GetASTs returns the parsed ASTs keyed by FileID. Safe to call once
// ParseSources has returned; the returned map is a fresh copy so callers
// may range over it without synchronizing with the driver.
func (d *CompilerDriver) GetASTs() map[source.FileID]*ast.SourceFile {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[source.FileID]*ast.SourceFile, len(d.asts))
	for k, v := range d.asts {
		out[k] = v
	}
	return out
}

// GetAST returns a single parsed file's AST, if it has been parsed.
func (d *CompilerDriver) GetAST(id source.FileID) (*ast.SourceFile, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sf, ok := d.asts[id]
	return sf, ok
}

// GetDiagnosticEngine returns the engine accumulating diagnostics from every
// buffer this driver has parsed.
func (d *CompilerDriver) GetDiagnosticEngine() *DiagnosticEngine { return d.diags }

// TokenizeFile is a convenience entry point for callers that only want the
// token stream for one already-registered file, without going through
// ParseSources. It does not populate GetASTs.
func (d *CompilerDriver) TokenizeFile(id source.FileID) []token.Token {
	lx := lexer.New(d.files, id, d.opts.Language.lexerOptions(d.diags, d.interner))
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}
