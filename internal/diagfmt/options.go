package diagfmt

// PathMode selects how a diagnostic's file path is rendered.
type PathMode uint8

const (
	// PathModeAuto shows the path as registered when it is shorter than 40
	// bytes, falling back to the basename otherwise.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always resolves to an absolute path.
	PathModeAbsolute
	// PathModeRelative resolves against the FileSet's base directory.
	PathModeRelative
	// PathModeBasename shows only the final path component.
	PathModeBasename
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	// Color enables ANSI severity coloring; leave off for non-TTY sinks.
	Color bool
	// Context is how many lines around the diagnostic's line to excerpt.
	// Zero means one line of context.
	Context  int8
	PathMode PathMode
	// ShowNotes and ShowFixes toggle the note and fix sections under each
	// diagnostic; ShowPreview additionally renders a before/after diff for
	// every fix edit.
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures the machine-readable renderer.
type JSONOpts struct {
	// IncludePositions resolves line/column pairs for every location, on
	// top of the byte offsets that are always present.
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the rendered output to the first N diagnostics; the
	// Bag itself is left untouched. Zero means all.
	Max             int
	IncludeNotes    bool
	IncludeFixes    bool
	IncludePreviews bool
}
