package token_test

import (
	"testing"

	"sprig/internal/token"
)

func TestSplitPlaceholder(t *testing.T) {
	tests := []struct {
		payload string
		want    token.PlaceholderText
	}{
		{"displayOnly", token.PlaceholderText{DisplayText: "displayOnly"}},
		{"", token.PlaceholderText{}},
		{"T##typed", token.PlaceholderText{DisplayText: "typed", TypeText: "typed", TypeForExpansionText: "typed", HasType: true}},
		{"T##display##Int", token.PlaceholderText{DisplayText: "display", TypeText: "Int", TypeForExpansionText: "Int", HasType: true}},
		{"T##both##Int##BetterInt", token.PlaceholderText{DisplayText: "both", TypeText: "Int", TypeForExpansionText: "BetterInt", HasType: true}},
		{"T##", token.PlaceholderText{HasType: true}},
		{"T##displayEmptyType##", token.PlaceholderText{DisplayText: "displayEmptyType", TypeText: "displayEmptyType", TypeForExpansionText: "displayEmptyType", HasType: true}},
		{"T####EmptyDisplay", token.PlaceholderText{TypeText: "EmptyDisplay", TypeForExpansionText: "EmptyDisplay", HasType: true}},
		{"T######EmptyTypeAndDisplay", token.PlaceholderText{TypeForExpansionText: "EmptyTypeAndDisplay", HasType: true}},
		{"T##firstNotEmpty##Int##", token.PlaceholderText{DisplayText: "firstNotEmpty", TypeText: "Int", TypeForExpansionText: "Int", HasType: true}},
		{"T##bothEmpty####", token.PlaceholderText{DisplayText: "bothEmpty", HasType: true}},
		{"T##closure##() -> Void", token.PlaceholderText{DisplayText: "closure", TypeText: "() -> Void", TypeForExpansionText: "() -> Void", HasType: true}},
	}
	for _, tt := range tests {
		got, ok := token.SplitPlaceholder(token.WrapPlaceholder(tt.payload))
		if !ok {
			t.Fatalf("%q: expected a placeholder", tt.payload)
		}
		if got != tt.want {
			t.Fatalf("%q: want %+v, got %+v", tt.payload, tt.want, got)
		}
	}
}

func TestSplitPlaceholderRejectsPlainText(t *testing.T) {
	for _, text := range []string{"foo", "<#", "#>", "<#x", "x#>"} {
		if _, ok := token.SplitPlaceholder(text); ok {
			t.Fatalf("%q must not split as a placeholder", text)
		}
	}
}

func TestWrapTypePlaceholder(t *testing.T) {
	if got := token.WrapTypePlaceholder("code", "Void"); got != "<#T##code##Void#>" {
		t.Fatalf("want %q, got %q", "<#T##code##Void#>", got)
	}
}

func TestTriviaIndentation(t *testing.T) {
	tests := []struct {
		name       string
		trivia     token.TriviaList
		onNewline  bool
		want       string
		wantExists bool
	}{
		{"after newline", token.Whitespace("\n  \t"), false, "  \t", true},
		{"last newline wins", token.Whitespace("\n    \n  "), false, "  ", true},
		{"no newline mid line", token.Spaces(4), false, "", false},
		{"no newline at line start", token.Spaces(4), true, "    ", true},
		{"comment stops indentation", token.TriviaList{
			{Kind: token.TriviaNewline, Text: "\n"},
			{Kind: token.TriviaSpace, Text: "  "},
			{Kind: token.TriviaBlockComment, Text: "/*c*/"},
			{Kind: token.TriviaSpace, Text: " "},
		}, false, "  ", true},
	}
	for _, tt := range tests {
		got, ok := tt.trivia.Indentation(tt.onNewline)
		if ok != tt.wantExists || got != tt.want {
			t.Fatalf("%s: want (%q, %v), got (%q, %v)", tt.name, tt.want, tt.wantExists, got, ok)
		}
	}
}

func TestTriviaTrim(t *testing.T) {
	l := token.Whitespace("  \n\t ")
	if got := l.TrimTrailingSpaces().String(); got != "  \n" {
		t.Fatalf("want %q, got %q", "  \n", got)
	}
	if got := l.TrimLeadingSpaces().String(); got != "\n\t " {
		t.Fatalf("want %q, got %q", "\n\t ", got)
	}
	if !l.HasNewline() {
		t.Fatalf("expected a newline piece")
	}
}

func TestFixedText(t *testing.T) {
	for k, want := range map[token.Kind]string{token.Arrow: "->", token.KwIn: "in", token.Wildcard: "_"} {
		got, ok := token.FixedText(k)
		if !ok || got != want {
			t.Fatalf("%v: want %q, got %q", k, want, got)
		}
	}
	if _, ok := token.FixedText(token.Ident); ok {
		t.Fatalf("identifiers have no fixed text")
	}
}
