package lexer

import (
	"testing"

	"sprig/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.swift", []byte(content)))
}

func TestCursorMarkAndReset(t *testing.T) {
	c := NewCursor(createFile("<#ab#>"))
	if !c.HasPrefix("<#") {
		t.Fatalf("expected <# prefix")
	}
	m := c.Mark()
	c.BumpN(4)
	if got := c.TextFrom(m); got != "<#ab" {
		t.Fatalf("want %q, got %q", "<#ab", got)
	}
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 4 {
		t.Fatalf("want span 0..4, got %s", sp)
	}
	c.Reset(m)
	if c.Peek() != '<' {
		t.Fatalf("reset must return to the mark")
	}
	c.BumpN(100)
	if !c.EOF() || c.Bump() != 0 || c.HasPrefix("#") {
		t.Fatalf("cursor must stop at EOF")
	}
}

func TestCursorPeek2(t *testing.T) {
	c := NewCursor(createFile("a"))
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 on a single byte must fail")
	}
	if !c.Eat('a') || c.Eat('a') {
		t.Fatalf("Eat must consume exactly once")
	}
}
