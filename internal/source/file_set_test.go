package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.swift", []byte("hello world"), 0)
	id2 := fs.Add("test.swift", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("test.swift")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest: want %d, got %d (ok=%v)", id2, latest, ok)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version lost: got %q", got)
	}
}

func TestLoadStripsBOMAndKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.swift")
	raw := []byte("\xEF\xBB\xBFfoo(\r\n  x\r\n)\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got, want := string(f.Content), "foo(\r\n  x\r\n)\r\n"; got != want {
		t.Fatalf("content: want %q, got %q", want, got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if got := f.LineEnding(); got != "\r\n" {
		t.Fatalf("LineEnding: want %q, got %q", "\r\n", got)
	}
	// 'x' лежит на байте 8 после BOM и на байте 11 в файле
	if got := f.HostOffset(8); got != 11 || raw[got] != 'x' {
		t.Fatalf("HostOffset(8): got %d", got)
	}
	if got := f.ContentOffset(11); got != 8 {
		t.Fatalf("ContentOffset(11): got %d", got)
	}
	if got := f.FormatPath("relative", dir); got != "a.swift" {
		t.Errorf("relative path: got %q", got)
	}
}

func TestLineBreakKinds(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("mem.swift", []byte("ab\r\ncd\ref\r\r\ng")))
	if f.LineEnding() != "\r\n" {
		t.Fatalf("want CRLF line ending")
	}

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{4, LineCol{2, 1}},
		{7, LineCol{3, 1}},
		{10, LineCol{4, 1}},
		{12, LineCol{5, 1}},
	}
	for _, tt := range tests {
		if got := f.LineCol(tt.off); got != tt.want {
			t.Errorf("LineCol(%d): want %+v, got %+v", tt.off, tt.want, got)
		}
	}
	for line, want := range map[uint32]string{1: "ab", 2: "cd", 3: "ef", 4: "", 5: "g"} {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d): want %q, got %q", line, want, got)
		}
	}
	if off, _ := f.Offset(LineCol{Line: 1, Col: 40}); off != 2 {
		t.Errorf("column clamp must stop before \\r: want 2, got %d", off)
	}

	plain := fs.Get(fs.AddVirtual("lf.swift", []byte("a\nb\n")))
	if plain.LineEnding() != "\n" || plain.HostOffset(1) != 1 {
		t.Fatalf("LF file must keep offsets and use \\n")
	}
}

func TestLineColRoundTrip(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.swift", []byte("ab\ncde\n\nf"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
		{8, LineCol{4, 1}},
	}
	for _, tt := range tests {
		got := f.LineCol(tt.off)
		if got != tt.want {
			t.Errorf("LineCol(%d): want %+v, got %+v", tt.off, tt.want, got)
		}
		back, ok := f.Offset(got)
		if !ok || back != tt.off {
			t.Errorf("Offset(%+v): want %d, got %d (ok=%v)", got, tt.off, back, ok)
		}
	}

	if _, ok := f.Offset(LineCol{Line: 9, Col: 1}); ok {
		t.Errorf("expected out-of-range line to fail")
	}
	if off, _ := f.Offset(LineCol{Line: 1, Col: 40}); off != 2 {
		t.Errorf("column clamp: want 2, got %d", off)
	}
	if got := f.GetLine(2); got != "cde" {
		t.Errorf("GetLine(2): got %q", got)
	}
}

func TestSpanCoverAndOverlap(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 10}
	b := Span{File: 1, Start: 8, End: 12}
	if got := a.Cover(b); got != (Span{File: 1, Start: 4, End: 12}) {
		t.Errorf("Cover: got %v", got)
	}
	if !a.Overlaps(b) {
		t.Errorf("expected overlap")
	}
	if a.Overlaps(Span{File: 1, Start: 10, End: 11}) {
		t.Errorf("adjacent spans must not overlap")
	}
	if a.Cover(Span{File: 2, Start: 0, End: 1}) != a {
		t.Errorf("spans from different files must not merge")
	}
	if !a.Contains(10) || a.Contains(11) {
		t.Errorf("Contains boundary mismatch")
	}
}
