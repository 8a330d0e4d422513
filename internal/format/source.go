package format

import (
	"errors"
	"fmt"
	"slices"

	"sprig/internal/parser"
	"sprig/internal/source"
	"sprig/internal/syntax"
)

// ErrSyntax is returned for files the formatter refuses to touch.
var ErrSyntax = errors.New("source has syntax errors")

// FormatSource formats a whole file with the ClosureLiteral style.
func FormatSource(sf *source.File, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	root := parser.ParseSourceFile(sf, parser.Options{})
	if root.HasError() {
		return nil, fmt.Errorf("format %s: %w", sf.Path, ErrSyntax)
	}
	if opt.LineEnding == "" {
		opt.LineEnding = sf.LineEnding()
	}
	return []byte(Format(root, ClosureLiteral{}, opt)), nil
}

// CheckRoundTrip re-parses formatted output of sf and makes sure formatting
// only touched trivia: the reparse has no errors, the top-level items have
// the same kinds and the token texts are identical.
func CheckRoundTrip(sf *source.File, formatted []byte) (ok bool, msg string) {
	first := parser.ParseSourceFile(sf, parser.Options{})
	if first.HasError() {
		return false, "fmt-check: initial parse has errors"
	}

	fs := source.NewFileSetWithBase("")
	second := parser.ParseSourceFile(fs.Get(fs.AddVirtual(sf.Path, formatted)), parser.Options{})
	if second.HasError() {
		return false, "fmt-check: reparse failed"
	}
	if !slices.Equal(topItemKinds(first), topItemKinds(second)) {
		return false, "fmt-check: top-level item kinds differ after round-trip"
	}
	if !slices.Equal(tokenTexts(first), tokenTexts(second)) {
		return false, "fmt-check: token sequence differs after round-trip"
	}
	return true, "fmt-check: OK"
}

func topItemKinds(root *syntax.Node) []syntax.Kind {
	list := root.Child(syntax.SlotSourceFileItems)
	if list == nil {
		return nil
	}
	var kinds []syntax.Kind
	for _, item := range list.Children() {
		if inner := item.Child(syntax.SlotCodeBlockItemItem); inner != nil {
			kinds = append(kinds, inner.Kind())
		}
	}
	return kinds
}

func tokenTexts(root *syntax.Node) []string {
	toks := root.Tokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text()
	}
	return out
}
