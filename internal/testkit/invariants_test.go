package testkit

import (
	"testing"

	"sprig/internal/lexer"
	"sprig/internal/parser"
	"sprig/internal/source"
)

func TestInvariantsHoldOnSamples(t *testing.T) {
	samples := []string{
		"",
		"let x = 1\n",
		"foo(a: <#T##() -> Void#>) // tail\n",
		"let f = { (a: Int) -> Int in\n    a + 1\n}\n",
		"let = (\n",
	}
	for _, src := range samples {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("sample.swift", []byte(src)))
		if err := CheckTokensCover(lexer.Tokenize(file, lexer.Options{}), file); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := CheckTreeInvariants(parser.ParseSourceFile(file, parser.Options{}), file); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestCheckTokensCoverDetectsGap(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("gap.swift", []byte("a b")))
	toks := lexer.Tokenize(file, lexer.Options{})
	if err := CheckTokensCover(toks[1:], file); err == nil {
		t.Fatalf("want error for missing first token")
	}
}
