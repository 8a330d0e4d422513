package refactor

import (
	"sprig/internal/parser"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// PlaceholderData is what a placeholder token expands from.
type PlaceholderData struct {
	// DisplayText is the type-for-expansion text when present, otherwise
	// the display segment.
	DisplayText string
	// TypeForExpansion is the parsed type-for-expansion, nil when absent or
	// when it did not parse cleanly.
	TypeForExpansion *syntax.Node
}

// ExtractPlaceholder reads the placeholder payload of tok. It reports false
// when tok is not a placeholder token.
func ExtractPlaceholder(tok *syntax.Node) (PlaceholderData, bool) {
	if tok == nil || !tok.IsPlaceholder() {
		return PlaceholderData{}, false
	}
	pt, ok := token.SplitPlaceholder(tok.Text())
	if !ok {
		return PlaceholderData{}, false
	}
	if pt.HasType && pt.TypeForExpansionText != "" {
		data := PlaceholderData{DisplayText: pt.TypeForExpansionText}
		if typ := parser.ParseType(pt.TypeForExpansionText); !typ.HasError() {
			data.TypeForExpansion = typ
		}
		return data, true
	}
	return PlaceholderData{DisplayText: pt.DisplayText}, true
}

// FunctionType returns the type for expansion as a function type.
func (d PlaceholderData) FunctionType() (syntax.FunctionType, bool) {
	return syntax.AsFunctionType(d.TypeForExpansion)
}

// closureTyped reports whether n is a placeholder reference whose type for
// expansion is a function type.
func closureTyped(expr *syntax.Node) (*syntax.Node, bool) {
	ref, ok := syntax.AsDeclReference(expr)
	if !ok {
		return nil, false
	}
	name := ref.BaseName()
	if name == nil || !name.IsPlaceholder() {
		return nil, false
	}
	data, ok := ExtractPlaceholder(name)
	if !ok {
		return nil, false
	}
	if _, ok := data.FunctionType(); !ok {
		return nil, false
	}
	return name, true
}
