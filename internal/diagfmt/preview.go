package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"

	"sprig/internal/fix"
	"sprig/internal/source"
)

// EditPreview holds the lines touched by one edit, before and after it applies.
type EditPreview struct {
	Path   string
	Line   uint32
	Before []string
	After  []string
}

// BuildEditPreview cuts the whole lines covered by edit out of its file.
func BuildEditPreview(fs *source.FileSet, edit fix.SourceEdit) (EditPreview, error) {
	if fs == nil {
		return EditPreview{}, fmt.Errorf("nil FileSet")
	}
	if int(edit.Span.File) >= fs.Len() {
		return EditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}
	file := fs.Get(edit.Span.File)

	startPos, endPos := fs.Resolve(edit.Span)
	endLine := max(endPos.Line, startPos.Line)

	lenFileContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return EditPreview{}, fmt.Errorf("len file content overflow: %w", err)
	}
	blockStart := lineStartOffset(file, startPos.Line, lenFileContent)
	blockEnd := min(max(lineEndOffsetInclusive(file, endLine, lenFileContent), blockStart), lenFileContent)

	original := file.Content[blockStart:blockEnd]
	if edit.Span.Start < blockStart || edit.Span.End > blockEnd || edit.Span.End < edit.Span.Start {
		return EditPreview{}, fmt.Errorf("edit span %d..%d out of range for preview block", edit.Span.Start, edit.Span.End)
	}
	relStart := edit.Span.Start - blockStart
	relEnd := edit.Span.End - blockStart

	after := make([]byte, 0, len(original)+len(edit.Replacement))
	after = append(after, original[:relStart]...)
	after = append(after, edit.Replacement...)
	after = append(after, original[relEnd:]...)

	return EditPreview{
		Path:   file.Path,
		Line:   startPos.Line,
		Before: splitPreviewLines(original),
		After:  splitPreviewLines(after),
	}, nil
}

// WritePreviews печатает превью в стиле unified diff, по одному блоку на правку.
func WritePreviews(w io.Writer, fs *source.FileSet, edits []fix.SourceEdit, useColor bool) error {
	p := newPalette(useColor)
	for _, e := range edits {
		pv, err := BuildEditPreview(fs, e)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p.path.Sprintf("@@ %s:%d @@", pv.Path, pv.Line))
		for _, l := range pv.Before {
			fmt.Fprintln(w, p.err.Sprint("-"+l))
		}
		for _, l := range pv.After {
			fmt.Fprintln(w, p.caret.Sprint("+"+l))
		}
	}
	return nil
}

func splitPreviewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	// завершающий \n не даёт лишней пустой строки
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

func lineStartOffset(f *source.File, line, size uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}

func lineEndOffsetInclusive(f *source.File, line, size uint32) uint32 {
	if line == 0 {
		return 0
	}
	idx := line - 1
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}
