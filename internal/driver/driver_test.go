package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"sprig/internal/format"
)

const closurePlaceholder = "<#T##closure##() -> Void#>"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "b/a.swift", "")
	b := writeFile(t, dir, "a.swift", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, ".hidden/c.swift", "")
	explicit := writeFile(t, dir, "snippet.txt", "")

	files, err := CollectSourceFiles(context.Background(), []string{dir, explicit, b})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{b, a, explicit}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Fatalf("want %v, got %v", want, files)
	}
}

func TestParseCursor(t *testing.T) {
	c, err := ParseCursor("12")
	if err != nil || c.ByLine || c.Offset != 12 {
		t.Fatalf("unexpected cursor %+v, %v", c, err)
	}
	c, err = ParseCursor("2:5")
	if err != nil || !c.ByLine || c.Pos.Line != 2 || c.Pos.Col != 5 {
		t.Fatalf("unexpected cursor %+v, %v", c, err)
	}
	for _, bad := range []string{"", "x", "0:1", "1:0", "1:x"} {
		if _, err := ParseCursor(bad); err == nil {
			t.Fatalf("want error for %q", bad)
		}
	}
}

func TestExpandPathsWrites(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "one.swift", "foo("+closurePlaceholder+")\n")
	two := writeFile(t, dir, "two.swift", "let x = 1\n")

	var mu sync.Mutex
	stages := make(map[Stage]int)
	_, results, err := ExpandPaths(context.Background(), []string{dir}, ExpandOptions{
		Jobs:                2,
		PreferCallExpansion: true,
		Write:               true,
		Progress: func(ev ProgressEvent) {
			mu.Lock()
			stages[ev.Stage]++
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0].Path != one || results[1].Path != two {
		t.Fatalf("want results in input order, got %+v", results)
	}
	if !results[0].Written || results[0].Err != nil {
		t.Fatalf("want one.swift written, got %+v", results[0])
	}
	if !errors.Is(results[1].Err, ErrNoPlaceholders) {
		t.Fatalf("want ErrNoPlaceholders for two.swift, got %v", results[1].Err)
	}
	want := "foo(<#{ <#T##code##Void#> }#>)\n"
	if got := readFile(t, one); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if stages[StageDone] != 2 || stages[StageWrite] != 1 {
		t.Fatalf("unexpected progress counts %v", stages)
	}
}

func TestExpandPathsAtCursor(t *testing.T) {
	dir := t.TempDir()
	src := "let a = <#first#>\nlet b = <#second#>\n"
	path := writeFile(t, dir, "main.swift", src)

	at, err := ParseCursor("2:10")
	if err != nil {
		t.Fatal(err)
	}
	_, results, err := ExpandPaths(context.Background(), []string{path}, ExpandOptions{At: &at})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]
	if res.Err != nil {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if want := "let a = <#first#>\nlet b = second\n"; string(res.Output) != want {
		t.Fatalf("want %q, got %q", want, res.Output)
	}
	if got := readFile(t, path); got != src {
		t.Fatalf("file must stay untouched without Write, got %q", got)
	}

	at = Cursor{Offset: 2}
	_, results, err = ExpandPaths(context.Background(), []string{path}, ExpandOptions{At: &at})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(results[0].Err, ErrNoPlaceholders) || results[0].Bag.Len() != 1 {
		t.Fatalf("want no placeholder at offset 2, got %v with %d diagnostics", results[0].Err, results[0].Bag.Len())
	}
}

func TestExpandFilesKeepsLineEndingsAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "crlf.swift", "\xEF\xBB\xBFlet a = 1\r\nfoo("+closurePlaceholder+")\r\n")

	_, results, err := ExpandFiles(context.Background(), []string{path}, ExpandOptions{
		PreferCallExpansion: true,
		Write:               true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res := results[0]; res.Err != nil || !res.Written || res.Bag.HasErrors() {
		t.Fatalf("unexpected result %+v", res)
	}
	want := "\xEF\xBB\xBFlet a = 1\r\nfoo(<#{ <#T##code##Void#> }#>)\r\n"
	if got := readFile(t, path); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCursorOffsetCountsBOM(t *testing.T) {
	dir := t.TempDir()
	// на диске плейсхолдер занимает байты 11..16, в Content 8..13
	path := writeFile(t, dir, "bom.swift", "\xEF\xBB\xBFlet c = <#v#>\n")
	at := Cursor{Offset: 16}
	_, results, err := ExpandFiles(context.Background(), []string{path}, ExpandOptions{At: &at})
	if err != nil {
		t.Fatal(err)
	}
	if want := "let c = v\n"; results[0].Err != nil || string(results[0].Output) != want {
		t.Fatalf("want %q, got %q (%v)", want, results[0].Output, results[0].Err)
	}
}

func TestFilesKeepGivenOrder(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.swift", "let x:Int=1\n")
	a := writeFile(t, dir, "a.swift", "let y = <#v#>\n")

	_, formatted, err := FormatFiles(context.Background(), []string{b, a}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(formatted) != 2 || formatted[0].Path != b || !formatted[0].Changed || formatted[1].Path != a {
		t.Fatalf("want results in the given order, got %+v", formatted)
	}

	_, expanded, err := ExpandFiles(context.Background(), []string{b, a}, ExpandOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if expanded[0].Path != b || expanded[1].Path != a || len(expanded[1].Edits) != 1 {
		t.Fatalf("want results in the given order, got %+v", expanded)
	}

	if _, _, err := ExpandFiles(context.Background(), nil, ExpandOptions{}); err == nil {
		t.Fatalf("want error for an empty file list")
	}
}

func TestFormatPaths(t *testing.T) {
	dir := t.TempDir()
	messy := writeFile(t, dir, "messy.swift", "let x:Int=1\nfoo(bar:{a in a})\n")
	clean := writeFile(t, dir, "clean.swift", "let y = 2\n")
	broken := writeFile(t, dir, "broken.swift", "let = (\n")

	_, results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	byPath := make(map[string]FormatResult)
	for _, r := range results {
		byPath[r.Path] = r
	}
	if !byPath[messy].Changed || byPath[clean].Changed {
		t.Fatalf("unexpected check results %+v", results)
	}
	if !errors.Is(byPath[broken].Err, format.ErrSyntax) || byPath[broken].Bag.Len() == 0 {
		t.Fatalf("want syntax error with diagnostics for broken.swift, got %v", byPath[broken].Err)
	}

	_, results, err = FormatPaths(context.Background(), []string{messy}, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil || !results[0].Changed {
		t.Fatalf("unexpected result %+v", results[0])
	}
	want := "let x: Int = 1\nfoo(bar: { a in a })\n"
	if got := readFile(t, messy); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
