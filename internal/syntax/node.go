package syntax

import (
	"strings"

	"sprig/internal/source"
	"sprig/internal/token"
)

// Node is a positioned view of an immutable raw node.
type Node struct {
	raw    *raw
	parent *Node
	index  int
	offset uint32
	file   source.FileID
}

// newRoot positions r as the root of a tree that belongs to file.
func newRoot(r *raw, file source.FileID) *Node {
	if r == nil {
		return nil
	}
	return &Node{raw: r, index: -1, file: file}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.raw.kind }

// Is reports whether n and other denote the same node of the same tree.
func (n *Node) Is(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.raw == other.raw && n.offset == other.offset && n.Root().raw == other.Root().raw
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IndexInParent returns the slot n occupies in its parent, or -1 for a root.
func (n *Node) IndexInParent() int { return n.index }

// Root returns the root of the tree n belongs to.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// NumSlots returns the number of slots, present or not.
func (n *Node) NumSlots() int { return len(n.raw.slots) }

// Child returns the node in slot i, or nil when the slot is empty or out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.raw.slots) || n.raw.slots[i] == nil {
		return nil
	}
	off := n.offset
	for _, s := range n.raw.slots[:i] {
		if s != nil {
			off += s.width
		}
	}
	return &Node{raw: n.raw.slots[i], parent: n, index: i, offset: off, file: n.file}
}

// Children returns the present children in slot order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.raw.slots))
	off := n.offset
	for i, s := range n.raw.slots {
		if s == nil {
			continue
		}
		out = append(out, &Node{raw: s, parent: n, index: i, offset: off, file: n.file})
		off += s.width
	}
	return out
}

// Ancestor returns the closest ancestor (n included) of the given kind.
func (n *Node) Ancestor(kind Kind) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.raw.kind == kind {
			return cur
		}
	}
	return nil
}

// Span returns the full range of n, trivia included.
func (n *Node) Span() source.Span {
	return source.Span{File: n.file, Start: n.offset, End: n.offset + n.raw.width}
}

// TrimmedSpan returns the range of n without the leading trivia of its first
// token and the trailing trivia of its last token.
func (n *Node) TrimmedSpan() source.Span {
	sp := n.Span()
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return source.Span{File: n.file, Start: sp.Start, End: sp.Start}
	}
	sp.Start = first.offset + width(first.raw.tok.leading.String())
	sp.End = last.offset + last.raw.width - width(last.raw.tok.trailing.String())
	return sp
}

// String renders the full source text of n, trivia included.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.raw.write(&sb)
	return sb.String()
}

// TrimmedString renders n without its outer trivia.
func (n *Node) TrimmedString() string {
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return ""
	}
	s := n.String()
	lead := len(first.raw.tok.leading.String())
	trail := len(last.raw.tok.trailing.String())
	return s[lead : len(s)-trail]
}

// HasError reports whether n contains unexpected text or missing tokens.
func (n *Node) HasError() bool { return n.raw.hasErr }

// IsToken reports whether n is a token leaf.
func (n *Node) IsToken() bool { return n.raw.tok != nil }

// Tokens returns the present tokens of n in source order.
func (n *Node) Tokens() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.raw.tok != nil {
			if !cur.raw.tok.missing {
				out = append(out, cur)
			}
			return
		}
		for _, c := range cur.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (n *Node) descend(path []int) *Node {
	cur := n
	for _, i := range path {
		cur = cur.Child(i)
	}
	return cur
}

// FirstToken returns the first present token of n, or nil.
func (n *Node) FirstToken() *Node {
	path, t := n.raw.firstToken(nil)
	if t == nil {
		return nil
	}
	return n.descend(path)
}

// LastToken returns the last present token of n, or nil.
func (n *Node) LastToken() *Node {
	path, t := n.raw.lastToken(nil)
	if t == nil {
		return nil
	}
	return n.descend(path)
}

// PreviousToken returns the present token right before n in the whole tree.
func (n *Node) PreviousToken() *Node {
	for cur := n; cur.parent != nil; cur = cur.parent {
		p := cur.parent
		for i := cur.index - 1; i >= 0; i-- {
			if c := p.Child(i); c != nil {
				if t := c.LastToken(); t != nil {
					return t
				}
			}
		}
	}
	return nil
}

// NextToken returns the present token right after n in the whole tree.
func (n *Node) NextToken() *Node {
	for cur := n; cur.parent != nil; cur = cur.parent {
		p := cur.parent
		for i := cur.index + 1; i < len(p.raw.slots); i++ {
			if c := p.Child(i); c != nil {
				if t := c.FirstToken(); t != nil {
					return t
				}
			}
		}
	}
	return nil
}

// ===== Токены =====

// TokenKind returns the token kind of a token node and Invalid otherwise.
func (n *Node) TokenKind() token.Kind {
	if n.raw.tok == nil {
		return token.Invalid
	}
	return n.raw.tok.kind
}

// Text returns the token text without trivia. For other nodes it is the
// trimmed text.
func (n *Node) Text() string {
	if n.raw.tok == nil {
		return n.TrimmedString()
	}
	return n.raw.tok.text
}

// LeadingTrivia returns the trivia before the node's first token.
func (n *Node) LeadingTrivia() token.TriviaList {
	if n.raw.tok != nil {
		return n.raw.tok.leading
	}
	if t := n.FirstToken(); t != nil {
		return t.raw.tok.leading
	}
	return nil
}

// TrailingTrivia returns the trivia after the node's last token.
func (n *Node) TrailingTrivia() token.TriviaList {
	if n.raw.tok != nil {
		return n.raw.tok.trailing
	}
	if t := n.LastToken(); t != nil {
		return t.raw.tok.trailing
	}
	return nil
}

// IsPlaceholder reports whether n is an editor placeholder token.
func (n *Node) IsPlaceholder() bool {
	return n.raw.tok != nil && n.raw.tok.kind == token.Placeholder
}

// IsMissing reports whether n is a token inserted by parser recovery.
func (n *Node) IsMissing() bool {
	return n.raw.tok != nil && n.raw.tok.missing
}

// Token converts a token node back into a lexer token.
func (n *Node) Token() token.Token {
	if n.raw.tok == nil {
		return token.Token{Kind: token.Invalid}
	}
	lead := width(n.raw.tok.leading.String())
	start := n.offset + lead
	return token.Token{
		Kind:     n.raw.tok.kind,
		Span:     source.Span{File: n.file, Start: start, End: start + width(n.raw.tok.text)},
		Text:     n.raw.tok.text,
		Leading:  n.raw.tok.leading,
		Trailing: n.raw.tok.trailing,
	}
}

// IndentationOfLine returns the indentation of the line n's first token is on.
// It walks back to the first token of that line and reads the spaces and tabs
// after the last newline of its leading trivia. Without a previous token the
// line is the first one and all of the leading whitespace counts.
func (n *Node) IndentationOfLine() string {
	tok := n.FirstToken()
	if tok == nil {
		return ""
	}
	for {
		prev := tok.PreviousToken()
		if prev == nil {
			indent, _ := tok.LeadingTrivia().Indentation(true)
			return indent
		}
		if tok.LeadingTrivia().HasNewline() || prev.TrailingTrivia().HasNewline() {
			indent, _ := tok.LeadingTrivia().Indentation(true)
			return indent
		}
		tok = prev
	}
}
