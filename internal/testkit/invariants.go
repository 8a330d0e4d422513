// Package testkit holds checks shared by parser, refactor and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// CheckTreeInvariants runs the structural checks on a parsed file:
// 1) the tree prints back to the file content byte for byte
// 2) the root span covers the whole file
// 3) children of every node follow each other without gaps and fill it
func CheckTreeInvariants(root *syntax.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got := root.String(); got != string(sf.Content) {
		return fmt.Errorf("tree text differs from source: %d bytes vs %d", len(got), len(sf.Content))
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if sp := root.Span(); sp.Start != 0 || sp.End != lenContent {
		return fmt.Errorf("root span %v does not cover file of %d bytes", sp, lenContent)
	}

	var walkErr error
	syntax.Inspect(root, func(n *syntax.Node) bool {
		parent := n.Span()
		children := n.Children()
		next := parent.Start
		for _, c := range children {
			sp := c.Span()
			if sp.Start != next {
				walkErr = fmt.Errorf("%v child starts at %d, want %d", c.Kind(), sp.Start, next)
				return false
			}
			next = sp.End
		}
		if len(children) > 0 && next != parent.End {
			walkErr = fmt.Errorf("%v children end at %d, parent ends at %d", n.Kind(), next, parent.End)
			return false
		}
		return true
	})
	return walkErr
}

// CheckTokensCover reports whether the tokens with their trivia reproduce
// the file exactly, in order.
func CheckTokensCover(toks []token.Token, sf *source.File) error {
	next := 0
	for i, tok := range toks {
		lead := len(tok.Leading.String())
		start, err := safecast.Conv[int](tok.Span.Start)
		if err != nil {
			return err
		}
		if start-lead != next {
			return fmt.Errorf("token %d (%v) starts at %d, want %d", i, tok.Kind, start-lead, next)
		}
		next = start - lead + len(tok.FullText())
	}
	if next != len(sf.Content) {
		return fmt.Errorf("tokens cover %d bytes, file has %d", next, len(sf.Content))
	}
	return nil
}
