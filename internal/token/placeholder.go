package token

import "strings"

const (
	PlaceholderStart = "<#"
	PlaceholderEnd   = "#>"

	placeholderTyped = "T##"
	placeholderSep   = "##"
)

// PlaceholderText is the split payload of an editor placeholder.
//
// The payload is one of:
//
//	display
//	T##display-and-type
//	T##display##type
//	T##display##type##type-for-expansion
//
// Empty segments fall back to the segment before them, so TypeForExpansionText
// is always set when HasType is true (it may still be empty).
type PlaceholderText struct {
	DisplayText          string
	TypeText             string
	TypeForExpansionText string
	HasType              bool
}

// IsPlaceholderText reports whether text is delimited by <# and #>.
func IsPlaceholderText(text string) bool {
	return len(text) >= len(PlaceholderStart)+len(PlaceholderEnd) &&
		strings.HasPrefix(text, PlaceholderStart) &&
		strings.HasSuffix(text, PlaceholderEnd)
}

// SplitPlaceholder splits the text of a placeholder token into its segments.
// It reports false when text is not a placeholder.
func SplitPlaceholder(text string) (PlaceholderText, bool) {
	if !IsPlaceholderText(text) {
		return PlaceholderText{}, false
	}
	payload := text[len(PlaceholderStart) : len(text)-len(PlaceholderEnd)]

	typed, ok := strings.CutPrefix(payload, placeholderTyped)
	if !ok {
		return PlaceholderText{DisplayText: payload}, true
	}

	display, rest, _ := strings.Cut(typed, placeholderSep)
	if rest == "" {
		return PlaceholderText{
			DisplayText:          display,
			TypeText:             display,
			TypeForExpansionText: display,
			HasType:              true,
		}, true
	}

	typ, expansion, _ := strings.Cut(rest, placeholderSep)
	if expansion == "" {
		expansion = typ
	}
	return PlaceholderText{
		DisplayText:          display,
		TypeText:             typ,
		TypeForExpansionText: expansion,
		HasType:              true,
	}, true
}

// WrapPlaceholder wraps s as a display-only placeholder.
func WrapPlaceholder(s string) string {
	return PlaceholderStart + s + PlaceholderEnd
}

// WrapTypePlaceholder wraps label and typ as a typed placeholder.
func WrapTypePlaceholder(label, typ string) string {
	return WrapPlaceholder(placeholderTyped + label + placeholderSep + typ)
}
