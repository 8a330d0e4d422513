package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sprig/internal/diag"
	"sprig/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	path, gutter, caret   *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		note:   mk(color.FgBlue),
		path:   mk(color.Bold),
		gutter: mk(color.FgHiBlack),
		caret:  mk(color.FgGreen, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в текущем порядке (bag.Sort() вызывает вызывающий).
// Для каждого diag печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		sev := p.severity(d.Severity)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprint(location(fs, d.Primary, opts.PathMode)),
			sev.Sprint(d.Severity.String()),
			sev.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(w, fs, d.Primary, int(opts.Context), p)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
			writeSnippet(w, fs, n.Span, 0, p)
		}
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if int(sp.File) >= fs.Len() {
		return "<unknown>"
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, p palette) {
	if int(sp.File) >= fs.Len() {
		return
	}
	f := fs.Get(sp.File)
	if len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + context
	if maxLine := len(f.LineIdx) + 1; last > maxLine {
		last = maxLine
	}
	gw := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) // #nosec G115 -- ln ограничен числом строк файла
		fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", gw, ln), expandTabs(text))
		if ln != int(start.Line) {
			continue
		}
		endCol := int(end.Col)
		if end.Line != start.Line {
			endCol = len(text) + 1
		}
		pad, width := caretColumns(text, int(start.Col), endCol)
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, " %s %s%s\n", p.gutter.Sprintf("%*s |", gw, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	}
}

// caretColumns переводит байтовые колонки (1-based, end исключительно)
// в экранные: отступ до начала и ширину подчёркивания, минимум 1.
func caretColumns(line string, startCol, endCol int) (pad, width int) {
	clamp := func(c int) int {
		c--
		if c < 0 {
			return 0
		}
		if c > len(line) {
			return len(line)
		}
		return c
	}
	s, e := clamp(startCol), clamp(endCol)
	if e < s {
		e = s
	}
	pad = runewidth.StringWidth(expandTabs(line[:s]))
	width = runewidth.StringWidth(expandTabs(line[s:e]))
	if width < 1 {
		width = 1
	}
	return pad, width
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
