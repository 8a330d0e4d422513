package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

const bomLen uint32 = 3

func removeBOM(content []byte) ([]byte, bool) {
	if rest, ok := bytes.CutPrefix(content, bom); ok {
		return rest, true
	}
	return content, false
}

// buildLineIndex records where every line break ends: the '\n' of \n and
// \r\n, or a lone '\r'.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32+1)
	for i, b := range content {
		if b == '\n' || (b == '\r' && (i+1 == len(content) || content[i+1] != '\n')) {
			out = append(out, uint32(i)) // #nosec G115 -- FileSet.Add bounds content length
		}
	}
	return out
}

// lineContentEnd returns the offset where the text of a line stops, given
// the index entry of its break.
func lineContentEnd(content []byte, breakOff uint32) uint32 {
	if content[breakOff] == '\n' && breakOff > 0 && content[breakOff-1] == '\r' {
		return breakOff - 1
	}
	return breakOff
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: число переводов строки строго до off
	line, _ := slices.BinarySearch(lineIdx, off)

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1} // #nosec G115
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

func relativePath(target, baseDir string) string {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return normalizePath(target)
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return normalizePath(target)
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || strings.HasPrefix(rel, "..") {
		return normalizePath(absTarget)
	}
	return normalizePath(rel)
}
