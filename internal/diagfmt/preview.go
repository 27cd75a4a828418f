package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"zomlang/internal/diag"
	"zomlang/internal/source"
)

// fixEditPreview holds the lines an edit's enclosing block renders as,
// before and after the edit is applied.
type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview renders the full lines touched by edit, once as they
// are and once with the edit applied, so the console and JSON outputs can
// show a small before/after diff without touching the file on disk.
func buildFixEditPreview(fs *source.FileSet, edit diag.TextEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}

	startPos, endPos := fs.Resolve(edit.Span)
	startLine := startPos.Line
	endLine := max(endPos.Line, startLine)

	contentLen, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixEditPreview{}, fmt.Errorf("file content length overflow: %w", err)
	}
	blockStart := previewLineStart(file, contentLen, startLine)
	blockEnd := max(previewLineEnd(file, contentLen, endLine), blockStart)
	blockEnd = min(blockEnd, contentLen)

	original := make([]byte, blockEnd-blockStart)
	copy(original, file.Content[blockStart:blockEnd])

	relStart := int(edit.Span.Start - blockStart)
	relEnd := int(edit.Span.End - blockStart)
	if relStart < 0 || relStart > len(original) || relEnd < relStart || relEnd > len(original) {
		return fixEditPreview{}, fmt.Errorf("edit span %d-%d outside its preview block", edit.Span.Start, edit.Span.End)
	}

	after := make([]byte, 0, len(original)+len(edit.NewText))
	after = append(after, original[:relStart]...)
	after = append(after, edit.NewText...)
	after = append(after, original[relEnd:]...)

	return fixEditPreview{
		before: splitPreviewLines(original),
		after:  splitPreviewLines(after),
	}, nil
}

func splitPreviewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

// previewLineStart returns the offset where 1-based line begins, or the end
// of the file for a line past the last.
func previewLineStart(f *source.File, contentLen, line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return contentLen
}

// previewLineEnd returns the offset just past 1-based line's terminator, or
// the end of the file for the last line.
func previewLineEnd(f *source.File, contentLen, line uint32) uint32 {
	if line == 0 {
		return 0
	}
	idx := line - 1
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return contentLen
}
