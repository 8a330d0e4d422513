package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"sprig/internal/source"
)

// FormatShort renders diagnostics one per line as
// "severity CODE path:line:col message", in the order given.
// Notes follow their diagnostic when includeNotes is set.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	line := func(sev, code string, sp source.Span, msg string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		path, ln, col := resolveSpan(fs, sp)
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", sev, code, path, ln, col, sanitizeMessage(msg))
	}
	for _, d := range diags {
		line(d.Severity.Label(), d.Code.ID(), d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			line("note", d.Code.ID(), n.Span, n.Msg)
		}
	}
	return b.String()
}

func resolveSpan(fs *source.FileSet, span source.Span) (path string, line, col uint32) {
	if int(span.File) >= fs.Len() {
		return "?", 0, 0
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return filepath.ToSlash(file.FormatPath("relative", fs.BaseDir())), start.Line, start.Col
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
