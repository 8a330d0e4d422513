package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sprig/internal/parser"
	"sprig/internal/source"
	"sprig/internal/syntax"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		content string
		edits   []SourceEdit
		want    string
	}{
		{"none", "abc", nil, "abc"},
		{"replace", "hello world", []SourceEdit{ReplaceSpan(span(6, 11), "there")}, "hello there"},
		{"unordered", "a b c", []SourceEdit{ReplaceSpan(span(0, 1), "x"), ReplaceSpan(span(4, 5), "zz"), ReplaceSpan(span(2, 3), "")}, "x  zz"},
		{"insert order kept", "ab", []SourceEdit{Insert(1, 1, "1"), Insert(1, 1, "2")}, "a12b"},
		{"insert before replace", "abc", []SourceEdit{ReplaceSpan(span(1, 2), "B"), Insert(1, 1, "+")}, "a+Bc"},
		{"adjacent", "abcd", []SourceEdit{ReplaceSpan(span(0, 2), "X"), ReplaceSpan(span(2, 4), "Y")}, "XY"},
		{"append", "ab", []SourceEdit{Insert(1, 2, "!")}, "ab!"},
	}
	for _, tt := range tests {
		got, err := Apply([]byte(tt.content), tt.edits)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if string(got) != tt.want {
			t.Fatalf("%s: want %q, got %q", tt.name, tt.want, string(got))
		}
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	content := []byte("abcdef")
	if _, err := Apply(content, []SourceEdit{ReplaceSpan(span(0, 3), "")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "abcdef" {
		t.Fatalf("input changed: %q", string(content))
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		edits []SourceEdit
		want  error
	}{
		{"overlap", []SourceEdit{ReplaceSpan(span(0, 3), "x"), ReplaceSpan(span(2, 5), "y")}, ErrConflict},
		{"nested", []SourceEdit{ReplaceSpan(span(0, 6), "x"), ReplaceSpan(span(2, 3), "y")}, ErrConflict},
		{"insert inside", []SourceEdit{ReplaceSpan(span(1, 4), "x"), Insert(1, 2, "y")}, ErrConflict},
		{"past end", []SourceEdit{ReplaceSpan(span(4, 9), "x")}, ErrOutOfRange},
		{"inverted", []SourceEdit{ReplaceSpan(span(3, 1), "x")}, ErrOutOfRange},
	}
	for _, tt := range tests {
		_, err := Apply([]byte("abcdef"), tt.edits)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: want %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestReplaceNodeCoversTrivia(t *testing.T) {
	n := parser.ParseExpr("  foo(a) ")
	call, ok := syntax.AsCall(n)
	if !ok {
		t.Fatalf("want call, got %s", n.Kind())
	}
	edit := Replace(call.Node, "bar()")
	if edit.Span.Start != 0 || edit.Span.End != 9 {
		t.Fatalf("want span 0..9, got %s", edit.Span)
	}
	if edit.IsNoop([]byte("  foo(a) ")) {
		t.Fatalf("edit is not a no-op")
	}
	if !ReplaceSpan(span(0, 2), "ab").IsNoop([]byte("abc")) {
		t.Fatalf("identical replacement is a no-op")
	}
}

func TestApplyFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.swift")
	if err := os.WriteFile(path, []byte("foo(x)\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := source.NewFileSetWithBase(dir)
	fid, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	virtual := fs.AddVirtual("mem.swift", []byte("y"))

	res, err := ApplyFiles(fs, []SourceEdit{
		{Span: source.Span{File: fid, Start: 4, End: 5}, Replacement: "z"},
		{Span: source.Span{File: virtual, Start: 0, End: 1}, Replacement: "w"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].EditCount != 1 {
		t.Fatalf("want one changed file, got %+v", res.FileChanges)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("want virtual file skipped, got %+v", res.Skipped)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "foo(z)\n" {
		t.Fatalf("want %q, got %q", "foo(z)\n", string(got))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("file mode changed to %v", info.Mode().Perm())
	}
}
