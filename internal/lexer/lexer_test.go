package lexer_test

import (
	"strings"
	"testing"

	"sprig/internal/diag"
	"sprig/internal/lexer"
	"sprig/internal/source"
	"sprig/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.swift", []byte(input)))
	bag := diag.NewBag(0)
	return lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, bag := lexAll(t, input)
	if bag.HasErrors() {
		t.Fatalf("%q: unexpected diagnostics: %v", input, bag.Items())
	}
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: want %v, got %v", input, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d: want %v, got %v (all: %v)", input, i, want[i], got[i], got)
		}
	}
	return toks
}

func TestLexerRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"foo(bar: { baz in baz.quux })",
		"  /*c1*/foo/*c2*/(/*c3*/arg/*c4*/: x/*c6*/,/*c7*/\n    /*c8*/y/*c9*/)/*c10*/\n",
		"let x: [String: Int]? = nil // trailing\n\n\treturn x\n",
		"call(<#T##closure##() -> Void#>)",
		"a <# b\n#> c",
		"let x:Int=1\r\nfoo(bar)\r\n",
		"a // c\r\r\nb\r",
	}
	for _, in := range inputs {
		toks, _ := lexAll(t, in)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.FullText())
		}
		if sb.String() != in {
			t.Fatalf("round trip: want %q, got %q", in, sb.String())
		}
	}
}

func TestTriviaAttribution(t *testing.T) {
	toks := expectKinds(t, "a // one\n  b /*x*/ c\n",
		token.Ident, token.Ident, token.Ident)

	if got := toks[0].Trailing.String(); got != " // one" {
		t.Fatalf("trailing of a: want %q, got %q", " // one", got)
	}
	if got := toks[1].Leading.String(); got != "\n  " {
		t.Fatalf("leading of b: want %q, got %q", "\n  ", got)
	}
	if got := toks[1].Trailing.String(); got != " /*x*/ " {
		t.Fatalf("trailing of b: want %q, got %q", " /*x*/ ", got)
	}
	if got := toks[3].Leading.String(); got != "\n" {
		t.Fatalf("EOF leading: want %q, got %q", "\n", got)
	}
	if toks[2].Trailing.HasNewline() {
		t.Fatalf("trailing trivia must stop before the newline")
	}
}

func TestCRLFIsNewlineTrivia(t *testing.T) {
	toks := expectKinds(t, "let x:Int=1\r\nfoo(bar) // c\r\n\r\n  baz\rqux\r\n",
		token.KwLet, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit,
		token.Ident, token.LParen, token.Ident, token.RParen,
		token.Ident, token.Ident)

	if got := toks[6].Leading.String(); got != "\r\n" {
		t.Fatalf("leading of foo: want %q, got %q", "\r\n", got)
	}
	if !toks[6].Leading.HasNewline() {
		t.Fatalf("\\r\\n must be newline trivia")
	}
	if got := toks[9].Trailing.String(); got != " // c" {
		t.Fatalf("line comment must stop before \\r: got %q", got)
	}
	if got, ok := toks[10].Leading.Indentation(false); !ok || got != "  " {
		t.Fatalf("indentation of baz: want %q, got %q", "  ", got)
	}
	if !toks[11].Leading.HasNewline() {
		t.Fatalf("lone \\r must be newline trivia")
	}

	// плейсхолдер не пересекает \r
	toks, _ = lexAll(t, "a <# b\r\n#> c")
	if toks[1].Kind != token.Operator || toks[1].Text != "<" {
		t.Fatalf("placeholder must stop at \\r, got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestPlaceholders(t *testing.T) {
	toks := expectKinds(t, "call(<#T##closure##() -> Void#>)",
		token.Ident, token.LParen, token.Placeholder, token.RParen)
	if toks[2].Text != "<#T##closure##() -> Void#>" {
		t.Fatalf("want whole placeholder text, got %q", toks[2].Text)
	}

	toks = expectKinds(t, "<#{ <#T##code##Void#> }#>", token.Placeholder)
	if toks[0].Text != "<#{ <#T##code##Void#> }#>" {
		t.Fatalf("nested placeholder: got %q", toks[0].Text)
	}

	// незакрытый плейсхолдер не пересекает перевод строки
	toks, _ = lexAll(t, "a <# b\nc")
	if toks[1].Kind != token.Operator || toks[1].Text != "<" {
		t.Fatalf("unterminated placeholder must lex '<' as an operator, got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestOperatorsAndPunct(t *testing.T) {
	expectKinds(t, "(Int) -> String",
		token.LParen, token.Ident, token.RParen, token.Arrow, token.Ident)
	expectKinds(t, "x = a != b && !c",
		token.Ident, token.Assign, token.Ident, token.Operator, token.Ident, token.Operator, token.Bang, token.Ident)
	expectKinds(t, "Int?", token.Ident, token.Question)
	expectKinds(t, "a/*c*/+b", token.Ident, token.Operator, token.Ident)
	expectKinds(t, "{ $0.count }", token.LBrace, token.Ident, token.Dot, token.Ident, token.RBrace)

	toks := expectKinds(t, "(Int...) -> Void",
		token.LParen, token.Ident, token.Operator, token.RParen, token.Arrow, token.Ident)
	if toks[2].Text != "..." {
		t.Fatalf("want %q, got %q", "...", toks[2].Text)
	}
	expectKinds(t, "0..<n", token.IntLit, token.Operator, token.Ident)
}

func TestKeywordsAndWildcard(t *testing.T) {
	expectKinds(t, "let _ in return `in` _x",
		token.KwLet, token.Wildcard, token.KwIn, token.KwReturn, token.Ident, token.Ident)
}

func TestNumbers(t *testing.T) {
	toks := expectKinds(t, "1 1_000 0x1F 1.5 2e10 3.description",
		token.IntLit, token.IntLit, token.IntLit, token.FloatLit, token.FloatLit,
		token.IntLit, token.Dot, token.Ident)
	if toks[3].Text != "1.5" {
		t.Fatalf("want %q, got %q", "1.5", toks[3].Text)
	}
}

func TestLexerDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"\"abc", diag.LexUnterminatedString},
		{"/* open", diag.LexUnterminatedBlockComment},
		{"a ` b", diag.LexUnterminatedBacktick},
		{"a \\ b", diag.LexUnknownChar},
		{"`abc", diag.LexUnterminatedBacktick},
		{"0x", diag.LexBadNumber},
	}
	for _, tt := range tests {
		_, bag := lexAll(t, tt.input)
		if bag.Len() == 0 || bag.Items()[0].Code != tt.code {
			t.Fatalf("%q: want %s, got %v", tt.input, tt.code.ID(), bag.Items())
		}
	}
}

func TestNonNormalIdentifierWarns(t *testing.T) {
	// "é" как e + U+0301
	_, bag := lexAll(t, "cafe\u0301")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexNonNormalIdent {
		t.Fatalf("want a LexNonNormalIdent warning, got %v", bag.Items())
	}
	if bag.HasErrors() {
		t.Fatalf("non-normal identifiers are only a warning")
	}
}
