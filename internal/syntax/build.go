package syntax

import (
	"fmt"

	"sprig/internal/source"
	"sprig/internal/token"
)

// MakeToken builds a detached token node.
func MakeToken(kind token.Kind, text string, leading, trailing token.TriviaList) *Node {
	return newRoot(newRawToken(kind, text, leading, trailing, false), 0)
}

// MakeKeyword builds a detached token for a kind with fixed spelling.
func MakeKeyword(kind token.Kind) *Node {
	text, ok := token.FixedText(kind)
	if !ok {
		panic(fmt.Sprintf("syntax: %s has no fixed text", kind))
	}
	return MakeToken(kind, text, nil, nil)
}

// MakeMissing builds a zero-width token standing in for one the parser
// expected but did not find.
func MakeMissing(kind token.Kind) *Node {
	return newRoot(newRawToken(kind, "", nil, nil, true), 0)
}

// MakeNode builds a detached node of a fixed-layout kind. Nil children are
// empty slots.
func MakeNode(kind Kind, children ...*Node) *Node {
	if kind.IsList() {
		panic(fmt.Sprintf("syntax: %s is a list kind, use MakeList", kind))
	}
	return newRoot(newRawNode(kind, raws(children)), 0)
}

// MakeList builds a detached list node. Nil items are skipped.
func MakeList(kind Kind, items ...*Node) *Node {
	if !kind.IsList() {
		panic(fmt.Sprintf("syntax: %s is not a list kind", kind))
	}
	rs := make([]*raw, 0, len(items))
	for _, it := range items {
		if it != nil {
			rs = append(rs, it.raw)
		}
	}
	return newRoot(newRawNode(kind, rs), 0)
}

func raws(nodes []*Node) []*raw {
	out := make([]*raw, len(nodes))
	for i, n := range nodes {
		if n != nil {
			out[i] = n.raw
		}
	}
	return out
}

// Detached returns n as the root of its own tree. The raw node is shared.
func (n *Node) Detached() *Node {
	if n == nil {
		return nil
	}
	return newRoot(n.raw, 0)
}

// InFile returns a detached copy of n whose spans refer to file.
func (n *Node) InFile(file source.FileID) *Node {
	return newRoot(n.raw, file)
}

// With returns a detached copy of n with slot i replaced by child (nil clears
// the slot). n and its tree are left untouched.
func (n *Node) With(i int, child *Node) *Node {
	if i < 0 || i >= len(n.raw.slots) {
		panic(fmt.Sprintf("syntax: %s has no slot %d", n.raw.kind, i))
	}
	var cr *raw
	if child != nil {
		cr = child.raw
	}
	return newRoot(n.raw.withSlot(i, cr), 0)
}

// WithLeadingTrivia returns a detached copy of n whose first token carries
// the given leading trivia.
func (n *Node) WithLeadingTrivia(tr token.TriviaList) *Node {
	path, t := n.raw.firstToken(nil)
	if t == nil {
		return n.Detached()
	}
	tok := newRawToken(t.tok.kind, t.tok.text, tr, t.tok.trailing, false)
	return newRoot(n.raw.replaceAt(path, tok), 0)
}

// WithTrailingTrivia returns a detached copy of n whose last token carries
// the given trailing trivia.
func (n *Node) WithTrailingTrivia(tr token.TriviaList) *Node {
	path, t := n.raw.lastToken(nil)
	if t == nil {
		return n.Detached()
	}
	tok := newRawToken(t.tok.kind, t.tok.text, t.tok.leading, tr, false)
	return newRoot(n.raw.replaceAt(path, tok), 0)
}

// WithoutTrivia strips the outer trivia of n.
func (n *Node) WithoutTrivia() *Node {
	return n.WithLeadingTrivia(nil).WithTrailingTrivia(nil)
}

// ReplacingSelf rebuilds the whole tree n belongs to with n replaced by repl
// and returns the new root together with the replacement positioned in it.
func (n *Node) ReplacingSelf(repl *Node) (root, replaced *Node) {
	var path []int
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.index)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	old := n.Root()
	root = newRoot(old.raw.replaceAt(path, repl.raw), old.file)
	return root, root.descend(path)
}
