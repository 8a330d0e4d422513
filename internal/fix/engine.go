package fix

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"sprig/internal/source"
)

var (
	// ErrConflict is returned when two edits overlap.
	ErrConflict = errors.New("overlapping edits")
	// ErrOutOfRange is returned when an edit does not fit the content.
	ErrOutOfRange = errors.New("edit span out of range")
)

// FileChange summarises modifications performed on a file.
type FileChange struct {
	File      source.FileID
	Path      string
	EditCount int
}

// SkippedFile records a file whose edits were not written.
type SkippedFile struct {
	File   source.FileID
	Path   string
	Reason string
}

// ApplyResult aggregates written files and skipped ones.
type ApplyResult struct {
	FileChanges []FileChange
	Skipped     []SkippedFile
}

// Apply applies edits to content and returns the new content. Edits may be
// given in any order; inserts at the same offset keep their relative order.
// content is not modified.
func Apply(content []byte, edits []SourceEdit) ([]byte, error) {
	sorted := sortForApply(edits)
	for i, edit := range sorted {
		if edit.Span.End < edit.Span.Start || int(edit.Span.End) > len(content) {
			return nil, fmt.Errorf("%w: %s (content length %d)", ErrOutOfRange, edit.Span, len(content))
		}
		// sorted идёт с конца файла: sorted[i] левее sorted[i-1]
		if i > 0 && spansConflict(edit, sorted[i-1]) {
			return nil, fmt.Errorf("%w: %s and %s", ErrConflict, edit.Span, sorted[i-1].Span)
		}
	}
	working := append([]byte(nil), content...)
	for _, edit := range sorted {
		start, end := int(edit.Span.Start), int(edit.Span.End)
		suffix := append([]byte(nil), working[end:]...)
		working = append(append(working[:start], edit.Replacement...), suffix...)
	}
	return working, nil
}

// sortForApply orders edits back to front. Reversing first makes the stable
// sort apply same-offset inserts last-to-first, so they end up in input order.
func sortForApply(edits []SourceEdit) []SourceEdit {
	sorted := slices.Clone(edits)
	slices.Reverse(sorted)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End > sorted[j].Span.End
		}
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	return sorted
}

// spansConflict reports whether two edits' spans overlap.
// Spans are half-open intervals [Start, End). Two zero-length edits never
// conflict. A zero-length edit conflicts with a non-zero span if its position
// is strictly inside that span.
func spansConflict(a, b SourceEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// ApplyFiles groups edits by file, applies them and writes the results back
// to disk keeping file modes. Virtual files and files whose edits do not
// apply are skipped and reported in the result.
func ApplyFiles(fs *source.FileSet, edits []SourceEdit) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}
	baseDir := fs.BaseDir()

	buckets := groupEditsByFile(edits)
	ids := make([]source.FileID, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, fileID := range ids {
		file := fs.Get(fileID)
		path := file.FormatPath("relative", baseDir)
		if file.Flags&source.FileVirtual != 0 {
			result.Skipped = append(result.Skipped, SkippedFile{File: fileID, Path: path, Reason: "target file is virtual"})
			continue
		}
		out, err := Apply(file.Content, buckets[fileID])
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFile{File: fileID, Path: path, Reason: err.Error()})
			continue
		}

		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, file.HostContent(out), mode); err != nil {
			return result, fmt.Errorf("write %s: %w", file.Path, err)
		}
		result.FileChanges = append(result.FileChanges, FileChange{File: fileID, Path: path, EditCount: len(buckets[fileID])})
	}
	return result, nil
}

func groupEditsByFile(edits []SourceEdit) map[source.FileID][]SourceEdit {
	buckets := make(map[source.FileID][]SourceEdit)
	for _, edit := range edits {
		buckets[edit.Span.File] = append(buckets[edit.Span.File], edit)
	}
	return buckets
}
