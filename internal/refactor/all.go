package refactor

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"sprig/internal/fix"
	"sprig/internal/syntax"
	"sprig/internal/trace"
)

// BatchOptions configures ExpandAll.
type BatchOptions struct {
	IndentationUnit string
	// PreferCallExpansion expands trailing closure runs of calls with the
	// call line's indentation, as ExpandPlaceholder does for one token.
	PreferCallExpansion bool
}

// ExpandAll expands every placeholder in root, one edit per placeholder
// token. Edits are sorted by position and never overlap: an argument of a
// call-level expansion is replaced on its own, with the text the call-level
// expansion would give it.
func ExpandAll(ctx context.Context, root *syntax.Node, opts BatchOptions) []fix.SourceEdit {
	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "expand")

	var edits []fix.SourceEdit
	done := make(map[uint32]bool)

	if opts.PreferCallExpansion {
		syntax.Inspect(root, func(n *syntax.Node) bool {
			call, ok := syntax.AsCall(n)
			if !ok {
				return true
			}
			expanded, ok := ExpandTrailingClosures(call, nil, Context{IndentationUnit: opts.IndentationUnit})
			if !ok {
				return true
			}
			newCall, _ := syntax.AsCall(expanded)
			before, after := call.ArgumentList(), newCall.ArgumentList()
			for i := range before {
				old, repl := before[i].Expression(), after[i].Expression().String()
				if old.String() == repl {
					continue
				}
				edits = append(edits, fix.Replace(old, repl))
				done[old.FirstToken().Span().Start] = true
				trace.Point(ctx, trace.ScopeNode, "expand_call_argument", old.TrimmedString(), nil)
			}
			return true
		})
	}

	for _, tok := range root.Tokens() {
		if !tok.IsPlaceholder() || done[tok.Span().Start] {
			continue
		}
		edits = append(edits, ExpandSinglePlaceholder(tok, SingleContext{IndentationUnit: opts.IndentationUnit})...)
		trace.Point(ctx, trace.ScopeNode, "expand_placeholder", tok.Text(), nil)
	}

	slices.SortStableFunc(edits, func(a, b fix.SourceEdit) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})
	span.WithExtra("edits", strconv.Itoa(len(edits))).End("")
	return edits
}

// FindPlaceholderAt returns the placeholder token whose text contains off,
// the offset right after the closing #> included. It returns nil when there
// is none.
func FindPlaceholderAt(root *syntax.Node, off uint32) *syntax.Node {
	var found *syntax.Node
	syntax.Inspect(root, func(n *syntax.Node) bool {
		if found != nil {
			return false
		}
		sp := n.Span()
		if off < sp.Start || off > sp.End {
			return false
		}
		if !n.IsToken() {
			return true
		}
		if n.IsPlaceholder() {
			if ts := n.TrimmedSpan(); ts.Start <= off && off <= ts.End {
				found = n
			}
		}
		return false
	})
	return found
}
