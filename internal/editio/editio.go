// Package editio encodes edit lists for host applications.
//
// An expansion run produces []fix.SourceEdit tied to a FileSet; editio turns
// them into a self-describing Document (paths, byte offsets and 1-based
// positions) written as text, JSON or msgpack, and back.
package editio

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"sprig/internal/fix"
	"sprig/internal/source"
)

// SchemaVersion is bumped whenever Document changes shape.
const SchemaVersion uint16 = 1

// Encoding selects the wire format.
type Encoding uint8

const (
	EncodingText Encoding = iota
	EncodingJSON
	EncodingMsgpack
)

func (e Encoding) String() string {
	switch e {
	case EncodingText:
		return "text"
	case EncodingJSON:
		return "json"
	case EncodingMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseEncoding converts a flag value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return EncodingText, nil
	case "json":
		return EncodingJSON, nil
	case "msgpack", "mp":
		return EncodingMsgpack, nil
	default:
		return EncodingText, fmt.Errorf("invalid output encoding %q (expected: text|json|msgpack)", s)
	}
}

// Position is a 1-based line and byte column.
type Position struct {
	Line uint32 `json:"line" msgpack:"line"`
	Col  uint32 `json:"col" msgpack:"col"`
}

// Edit is one replacement. Start and End are byte offsets into the file as
// stored on disk, BOM included.
type Edit struct {
	Start       uint32   `json:"start" msgpack:"start"`
	End         uint32   `json:"end" msgpack:"end"`
	From        Position `json:"from" msgpack:"from"`
	To          Position `json:"to" msgpack:"to"`
	Replacement string   `json:"replacement" msgpack:"replacement"`
}

// FileEdits holds the edits of one file, sorted by Start.
type FileEdits struct {
	Path  string `json:"path" msgpack:"path"`
	Edits []Edit `json:"edits" msgpack:"edits"`
}

// Document is the encoded unit.
type Document struct {
	Schema uint16      `json:"schema" msgpack:"schema"`
	Files  []FileEdits `json:"files" msgpack:"files"`
}

// NewDocument groups edits by file. Files come in FileID order.
func NewDocument(fs *source.FileSet, edits []fix.SourceEdit) Document {
	doc := Document{Schema: SchemaVersion}
	byFile := make(map[source.FileID][]fix.SourceEdit)
	for _, e := range edits {
		byFile[e.Span.File] = append(byFile[e.Span.File], e)
	}
	ids := make([]source.FileID, 0, len(byFile))
	for id := range byFile {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		file := fs.Get(id)
		group := byFile[id]
		slices.SortStableFunc(group, func(a, b fix.SourceEdit) int { return cmp.Compare(a.Span.Start, b.Span.Start) })
		fe := FileEdits{Path: file.Path, Edits: make([]Edit, len(group))}
		for i, e := range group {
			from, to := fs.Resolve(e.Span)
			fe.Edits[i] = Edit{
				Start:       file.HostOffset(e.Span.Start),
				End:         file.HostOffset(e.Span.End),
				From:        Position{Line: from.Line, Col: from.Col},
				To:          Position{Line: to.Line, Col: to.Col},
				Replacement: e.Replacement,
			}
		}
		doc.Files = append(doc.Files, fe)
	}
	return doc
}

// SourceEdits maps doc back onto files of fs by path.
func (d Document) SourceEdits(fs *source.FileSet) ([]fix.SourceEdit, error) {
	var out []fix.SourceEdit
	for _, fe := range d.Files {
		id, ok := fs.GetLatest(fe.Path)
		if !ok {
			return nil, fmt.Errorf("editio: unknown file %q", fe.Path)
		}
		file := fs.Get(id)
		for _, e := range fe.Edits {
			span := source.Span{File: id, Start: file.ContentOffset(e.Start), End: file.ContentOffset(e.End)}
			out = append(out, fix.ReplaceSpan(span, e.Replacement))
		}
	}
	return out, nil
}

// Encode writes doc in the given encoding.
func Encode(w io.Writer, doc Document, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(doc)
	case EncodingMsgpack:
		e := msgpack.NewEncoder(w)
		e.UseCompactInts(true)
		return e.Encode(&doc)
	case EncodingText:
		return encodeText(w, doc)
	default:
		return fmt.Errorf("editio: unknown encoding %v", enc)
	}
}

// Decode reads a document written by Encode. Text is write-only.
func Decode(r io.Reader, enc Encoding) (Document, error) {
	var doc Document
	var err error
	switch enc {
	case EncodingJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case EncodingMsgpack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return Document{}, fmt.Errorf("editio: cannot decode %v", enc)
	}
	if err != nil {
		return Document{}, fmt.Errorf("editio: decode %v: %w", enc, err)
	}
	if doc.Schema != SchemaVersion {
		return Document{}, fmt.Errorf("editio: schema %d, want %d", doc.Schema, SchemaVersion)
	}
	return doc, nil
}

// encodeText writes one line per edit: path:line:col-line:col "replacement".
func encodeText(w io.Writer, doc Document) error {
	var sb strings.Builder
	for _, fe := range doc.Files {
		for _, e := range fe.Edits {
			sb.WriteString(fe.Path)
			fmt.Fprintf(&sb, ":%d:%d-%d:%d ", e.From.Line, e.From.Col, e.To.Line, e.To.Col)
			sb.WriteString(strconv.Quote(e.Replacement))
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
