package driver

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"sprig/internal/source"
)

// Cursor is a position given on the command line, either a byte offset or a
// 1-based line:col pair.
type Cursor struct {
	Offset uint32
	Pos    source.LineCol
	ByLine bool
}

// ParseCursor accepts "123" or "3:7".
func ParseCursor(s string) (Cursor, error) {
	s = strings.TrimSpace(s)
	if line, col, ok := strings.Cut(s, ":"); ok {
		l, err := strconv.ParseUint(line, 10, 32)
		if err != nil || l == 0 {
			return Cursor{}, fmt.Errorf("invalid line in %q", s)
		}
		c, err := strconv.ParseUint(col, 10, 32)
		if err != nil || c == 0 {
			return Cursor{}, fmt.Errorf("invalid column in %q", s)
		}
		return Cursor{Pos: source.LineCol{Line: uint32(l), Col: uint32(c)}, ByLine: true}, nil
	}
	off, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid offset %q: want N or LINE:COL", s)
	}
	return Cursor{Offset: uint32(off)}, nil
}

// Resolve turns c into a byte offset in f. A plain offset counts bytes of
// the file on disk. It reports false for positions outside the file.
func (c Cursor) Resolve(f *source.File) (uint32, bool) {
	if c.ByLine {
		return f.Offset(c.Pos)
	}
	n, err := safecast.Conv[uint32](len(f.Content))
	off := f.ContentOffset(c.Offset)
	if err != nil || off > n {
		return 0, false
	}
	return off, true
}

func (c Cursor) String() string {
	if c.ByLine {
		return fmt.Sprintf("%d:%d", c.Pos.Line, c.Pos.Col)
	}
	return strconv.FormatUint(uint64(c.Offset), 10)
}
