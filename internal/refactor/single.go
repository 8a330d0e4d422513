package refactor

import (
	"strings"

	"sprig/internal/fix"
	"sprig/internal/format"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// SingleContext configures the expansion of one placeholder token.
type SingleContext struct {
	// IndentationUnit is one level of indentation; empty means four spaces.
	IndentationUnit string
	// InitialIndentation is the indentation of the line the placeholder is
	// on. It only affects lines after the first.
	InitialIndentation string
}

// ExpandSinglePlaceholder replaces tok with its expansion. The edit covers
// the token with its trivia, and the trivia is written back unchanged.
// A token that is not a placeholder gives no edits.
func ExpandSinglePlaceholder(tok *syntax.Node, ctx SingleContext) []fix.SourceEdit {
	data, ok := ExtractPlaceholder(tok)
	if !ok {
		return nil
	}

	expanded := data.DisplayText
	if fn, ok := data.FunctionType(); ok {
		text := format.Format(ClosureExpansion(fn), format.ClosureLiteral{}, format.Options{
			IndentationUnit:    ctx.IndentationUnit,
			InitialIndentation: ctx.InitialIndentation,
		})
		// начальный отступ нужен только для следующих строк
		text = strings.TrimPrefix(text, ctx.InitialIndentation)
		expanded = token.WrapPlaceholder(text)
	}

	replacement := tok.LeadingTrivia().String() + expanded + tok.TrailingTrivia().String()
	return []fix.SourceEdit{fix.Replace(tok, replacement)}
}
