package fix

import (
	"sprig/internal/source"
	"sprig/internal/syntax"
)

// SourceEdit replaces the bytes covered by Span with Replacement.
type SourceEdit struct {
	Span        source.Span
	Replacement string
}

// Replace creates an edit that replaces the full range of n, trivia included.
func Replace(n *syntax.Node, text string) SourceEdit {
	return SourceEdit{Span: n.Span(), Replacement: text}
}

// ReplaceSpan creates an edit over an arbitrary span.
func ReplaceSpan(sp source.Span, text string) SourceEdit {
	return SourceEdit{Span: sp, Replacement: text}
}

// Insert creates an edit that inserts text at off.
func Insert(file source.FileID, off uint32, text string) SourceEdit {
	return SourceEdit{Span: source.Span{File: file, Start: off, End: off}, Replacement: text}
}

// IsNoop reports whether applying e to content would change nothing.
func (e SourceEdit) IsNoop(content []byte) bool {
	if int(e.Span.End) > len(content) || e.Span.Start > e.Span.End {
		return false
	}
	return string(content[e.Span.Start:e.Span.End]) == e.Replacement
}
