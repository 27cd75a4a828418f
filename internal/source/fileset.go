package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"
	"sync"

	"fortio.org/safecast"
)

// overlay records a sub-range of a File whose diagnostics should be
// reported under a different display name and line numbering, e.g. a
// template-string body re-lexed as its own pseudo-file.
type overlay struct {
	Span       Span
	Name       string
	LineOffset int
}

func (o overlay) contains(off uint32) bool {
	return off >= o.Span.Start && off < o.Span.End
}

// FileSet owns every source file loaded during a compilation and resolves
// Spans to line/column positions. Safe for concurrent use: methods that
// mutate it (Add/Load, SetBaseDir, CreateVirtualFile,
// RecordRegexLiteralStart) take an exclusive lock, queries a shared one, so
// one errgroup goroutine per file can register and query concurrently.
type FileSet struct {
	mu      sync.RWMutex
	files   []File
	index   map[string]FileID // path -> most recently added FileID
	baseDir string
}

// NewFileSet creates an empty FileSet with no base directory.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// NewFileSetWithBase creates an empty FileSet rooted at baseDir, used to
// render relative paths in diagnostics.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{index: make(map[string]FileID), baseDir: baseDir}
}

// SetBaseDir changes the base directory used for relative path rendering.
func (fs *FileSet) SetBaseDir(dir string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.baseDir = dir
}

// BaseDir returns the configured base directory, or the process's working
// directory if none was set.
func (fs *FileSet) BaseDir() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add registers content under path and returns a new FileID. It always
// allocates a fresh ID, even if path was already added; GetLatest resolves
// a path to the most recent one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: too many files: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[normalizedPath] = id
	return id
}

// Load reads path from disk, normalizes BOM/CRLF, and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the caller (CLI/driver argument)
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (stdin, a test fixture, a generated
// snippet) under name, flagged FileVirtual. The FileSet takes ownership of
// content; callers that reuse their buffer want AddMemBufferCopy.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// AddMemBufferCopy registers a private copy of content under name.
func (fs *FileSet) AddMemBufferCopy(name string, content []byte) FileID {
	dup := make([]byte, len(content))
	copy(dup, content)
	return fs.Add(name, dup, FileVirtual)
}

// Get returns the file for id.
func (fs *FileSet) Get(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return &fs.files[id]
}

// GetLatest returns the most recently added FileID for path, if any.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// GetByPath returns the most recently added File for path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// IDs returns every registered FileID in registration order.
func (fs *FileSet) IDs() []FileID {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	ids := make([]FileID, len(fs.files))
	for i, f := range fs.files {
		ids[i] = f.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Resolve converts a span's start and end offsets into line/column pairs.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// ExtractText returns the bytes covered by span.
func (fs *FileSet) ExtractText(span Span) []byte {
	f := fs.Get(span.File)
	return f.Content[span.Start:span.End]
}

// GetLineNumber returns the 1-based line containing the start of span.
func (fs *FileSet) GetLineNumber(span Span) uint32 {
	f := fs.Get(span.File)
	return toLineCol(f.LineIdx, span.Start).Line
}

// GetPresumedLineAndColumn is like Resolve's start position but honors an
// overlay covering span.Start: the line is remapped relative to the
// overlay's LineOffset, for diagnostics that should read as if the overlay
// were its own file.
func (fs *FileSet) GetPresumedLineAndColumn(span Span) LineCol {
	f := fs.Get(span.File)
	lc := toLineCol(f.LineIdx, span.Start)
	if ov, ok := f.findOverlay(span.Start); ok {
		rawStart := toLineCol(f.LineIdx, ov.Span.Start)
		delta := int(lc.Line) - int(rawStart.Line)
		lc.Line = uint32(ov.LineOffset + delta) //nolint:gosec // delta bounded by file size
	}
	return lc
}

// GetDisplayName returns the File's path, or an overlay's name if span
// falls inside one.
func (fs *FileSet) GetDisplayName(span Span) string {
	f := fs.Get(span.File)
	if ov, ok := f.findOverlay(span.Start); ok {
		return ov.Name
	}
	return f.Path
}

func (f *File) findOverlay(off uint32) (overlay, bool) {
	for _, ov := range f.overlays {
		if ov.contains(off) {
			return ov, true
		}
	}
	return overlay{}, false
}

// CreateVirtualFile registers an overlay spanning length bytes starting at
// start, so later diagnostics in that range report under name/lineOffset
// instead of f's own coordinates. Panics if it overlaps an existing overlay
// in the same file.
func (fs *FileSet) CreateVirtualFile(fileID FileID, start uint32, name string, lineOffset int, length uint32) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f := &fs.files[fileID]
	sp := Span{File: fileID, Start: start, End: start + length}
	for _, existing := range f.overlays {
		if existing.Span.Start < sp.End && sp.Start < existing.Span.End {
			panic(fmt.Errorf("source: virtual file %q overlaps existing overlay %q", name, existing.Name))
		}
	}
	f.overlays = append(f.overlays, overlay{Span: sp, Name: name, LineOffset: lineOffset})
}

// GetVirtualFileName returns the overlay name covering span.Start, if any.
func (fs *FileSet) GetVirtualFileName(span Span) (string, bool) {
	f := fs.Get(span.File)
	ov, ok := f.findOverlay(span.Start)
	return ov.Name, ok
}

// ResolveFromLineCol converts a 1-based (line, col) pair back to a byte
// offset within fileID.
func (fs *FileSet) ResolveFromLineCol(fileID FileID, line, col uint32) (uint32, bool) {
	f := fs.Get(fileID)
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: file length overflow: %w", err))
	}
	start, ok := lineStartOffset(f.LineIdx, line)
	if !ok {
		return 0, false
	}
	length, ok := lineLength(f.LineIdx, contentLen, line)
	if !ok {
		return 0, false
	}
	if col == 0 || col-1 > length {
		return 0, false
	}
	return start + col - 1, true
}

// ResolveOffsetForEndOfLine returns the offset just past 1-based line's
// content, before its terminator.
func (fs *FileSet) ResolveOffsetForEndOfLine(fileID FileID, line uint32) (uint32, bool) {
	f := fs.Get(fileID)
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: file length overflow: %w", err))
	}
	start, ok := lineStartOffset(f.LineIdx, line)
	if !ok {
		return 0, false
	}
	length, ok := lineLength(f.LineIdx, contentLen, line)
	if !ok {
		return 0, false
	}
	return start + length, true
}

// GetLineLength returns the byte length of 1-based line, excluding its
// terminator.
func (fs *FileSet) GetLineLength(fileID FileID, line uint32) (uint32, bool) {
	f := fs.Get(fileID)
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: file length overflow: %w", err))
	}
	return lineLength(f.LineIdx, contentLen, line)
}

// RecordRegexLiteralStart marks offset within fileID as the start of a
// regex literal, so a later scan of that offset, including a re-lex after a
// speculative rewind, yields the same regex literal rather than a '/'
// operator.
func (fs *FileSet) RecordRegexLiteralStart(fileID FileID, offset uint32) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f := &fs.files[fileID]
	if f.regexStarts == nil {
		f.regexStarts = make(map[uint32]struct{})
	}
	f.regexStarts[offset] = struct{}{}
}

// IsRegexLiteralStart reports whether offset was previously recorded via
// RecordRegexLiteralStart.
func (fs *FileSet) IsRegexLiteralStart(fileID FileID, offset uint32) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	f := &fs.files[fileID]
	_, ok := f.regexStarts[offset]
	return ok
}

// FormatPath renders f.Path according to mode: "absolute", "relative"
// (resolved against baseDir), "basename", or "auto" (the path as registered
// when it is shorter than 40 bytes, the basename otherwise).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}

// GetLine returns the 1-based line's text, without its terminator, or ""
// if the line does not exist.
func (f *File) GetLine(lineNum uint32) string {
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: file length overflow: %w", err))
	}
	start, ok := lineStartOffset(f.LineIdx, lineNum)
	if !ok {
		return ""
	}
	length, ok := lineLength(f.LineIdx, contentLen, lineNum)
	if !ok {
		return ""
	}
	return string(f.Content[start : start+length])
}
