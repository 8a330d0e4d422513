package syntax

import (
	"fmt"
	"strings"
)

// Inspect walks n depth-first in source order. When f returns false the
// children of the current node are skipped.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, f)
	}
}

// Find returns the first node in n (n included) that satisfies pred.
func Find(n *Node, pred func(*Node) bool) *Node {
	var found *Node
	Inspect(n, func(cur *Node) bool {
		if found != nil {
			return false
		}
		if pred(cur) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// Dump renders the tree structure of n, one node per line.
func Dump(n *Node) string {
	var sb strings.Builder
	var walk func(*Node, int)
	walk = func(cur *Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		sp := cur.Span()
		if cur.IsToken() {
			fmt.Fprintf(&sb, "%s %q", cur.TokenKind(), cur.Text())
			if cur.IsMissing() {
				sb.WriteString(" missing")
			}
		} else {
			sb.WriteString(cur.Kind().String())
		}
		fmt.Fprintf(&sb, " %d..%d\n", sp.Start, sp.End)
		for _, c := range cur.Children() {
			walk(c, depth+1)
		}
	}
	if n != nil {
		walk(n, 0)
	}
	return sb.String()
}
