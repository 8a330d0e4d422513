package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sprig/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// utf16Len: сколько UTF-16 единиц занимает руна
func utf16Len(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// offsetForPosition переводит LSP-позицию (0-based, колонка в UTF-16) в байтовый
// offset. Позиции за концом строки прижимаются к её концу.
func offsetForPosition(file *source.File, pos protocol.Position) uint32 {
	if file == nil || len(file.Content) == 0 {
		return 0
	}
	content := file.Content
	contentLen := safeUint32(len(content))
	line := int(pos.Line)
	if line > len(file.LineIdx) {
		return contentLen
	}
	var lineStart uint32
	if line > 0 {
		lineStart = file.LineIdx[line-1] + 1
	}
	lineEnd := contentLen
	if line < len(file.LineIdx) {
		lineEnd = file.LineIdx[line]
		// \r из \r\n к тексту строки не относится
		if lineEnd > lineStart && content[lineEnd] == '\n' && content[lineEnd-1] == '\r' {
			lineEnd--
		}
	}
	units := 0
	want := int(pos.Character)
	off := lineStart
	for off < lineEnd && units < want {
		r, size := utf8.DecodeRune(content[off:lineEnd])
		if units+utf16Len(r) > want {
			break
		}
		units += utf16Len(r)
		off += safeUint32(size)
	}
	return off
}

func positionForOffset(file *source.File, offset uint32) protocol.Position {
	if file == nil {
		return protocol.Position{}
	}
	offset = min(offset, safeUint32(len(file.Content)))
	lineIdx := file.LineIdx
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= offset })
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	units := 0
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRune(file.Content[off:offset])
		units += utf16Len(r)
		off += safeUint32(size)
	}
	return protocol.Position{Line: safeUint32(line), Character: safeUint32(units)}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	return protocol.Range{
		Start: positionForOffset(file, span.Start),
		End:   positionForOffset(file, span.End),
	}
}
