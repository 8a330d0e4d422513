package format

import (
	"bytes"

	"sprig/internal/token"
)

// Writer accumulates formatted output and tracks the indentation of the line
// being written.
type Writer struct {
	buf     []byte
	newline string
}

// NewWriter creates a new formatting writer that breaks lines with lineEnding.
func NewWriter(sizeHint int, lineEnding string) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint), newline: lineEnding}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString writes s as is.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteTrivia writes every trivia piece verbatim.
func (w *Writer) WriteTrivia(tr token.TriviaList) {
	for _, p := range tr {
		w.buf = append(w.buf, p.Text...)
	}
}

// EndsWithSpace reports whether the output is empty or ends with a space,
// tab or newline.
func (w *Writer) EndsWithSpace() bool {
	if len(w.buf) == 0 {
		return true
	}
	switch w.buf[len(w.buf)-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if !w.EndsWithSpace() {
		w.buf = append(w.buf, ' ')
	}
}

// Newline drops trailing spaces and tabs, then starts a new line with indent.
func (w *Writer) Newline(indent string) {
	w.buf = bytes.TrimRight(w.buf, " \t")
	w.buf = append(w.buf, w.newline...)
	w.buf = append(w.buf, indent...)
}

// LineIndent returns the spaces and tabs the current output line starts with.
func (w *Writer) LineIndent() string {
	line := w.buf[bytes.LastIndexAny(w.buf, "\r\n")+1:]
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	return string(line[:end])
}
