package format

import (
	"sprig/internal/syntax"
	"sprig/internal/token"
)

type level struct {
	open  string // отступ строки с открывающей скобкой
	inner string // отступ содержимого
}

type formatter struct {
	w     *Writer
	style Style
	opt   Options
	stack []level
}

// Format renders n under style. Line breaks and indentation already present
// are kept as written; the style only adds newlines and spaces where the
// source has none. Missing tokens print nothing and text inside Unexpected
// nodes is copied verbatim.
func Format(n *syntax.Node, style Style, opt Options) string {
	if n == nil {
		return ""
	}
	opt = opt.withDefaults()
	f := &formatter{
		w:     NewWriter(int(n.Span().Len())+len(opt.InitialIndentation), opt.LineEnding),
		style: style,
		opt:   opt,
	}
	f.w.WriteString(opt.InitialIndentation)
	var prev *syntax.Node
	for _, tok := range n.Tokens() {
		f.token(prev, tok)
		prev = tok
	}
	return string(f.w.Bytes())
}

func (f *formatter) token(prev, tok *syntax.Node) {
	lead := tok.LeadingTrivia()
	opaque := inUnexpected(tok) || (prev != nil && inUnexpected(prev))
	switch {
	case opaque || lead.HasNewline():
		f.w.WriteTrivia(lead)
	case f.style.RequiresNewline(prev, tok):
		f.w.Newline(f.indentFor(tok))
		f.w.WriteTrivia(lead.TrimLeadingSpaces())
	default:
		if f.style.RequiresWhitespace(prev, tok) && !lead.StartsWithSpace() {
			f.w.Space()
		}
		f.w.WriteTrivia(lead)
	}
	f.w.WriteString(tok.Text())
	f.w.WriteTrivia(tok.TrailingTrivia())
	f.track(tok)
}

// indentFor: закрывающая скобка встаёт на отступ строки своей открывающей,
// всё остальное получает отступ содержимого.
func (f *formatter) indentFor(tok *syntax.Node) string {
	if len(f.stack) == 0 {
		return f.w.LineIndent()
	}
	top := f.stack[len(f.stack)-1]
	if isCloserKind(tok.TokenKind()) {
		return top.open
	}
	return top.inner
}

func (f *formatter) track(tok *syntax.Node) {
	switch tok.TokenKind() {
	case token.LParen, token.LBracket, token.LBrace:
		indent := f.w.LineIndent()
		f.stack = append(f.stack, level{open: indent, inner: indent + f.opt.IndentationUnit})
	case token.RParen, token.RBracket, token.RBrace:
		if len(f.stack) > 0 {
			f.stack = f.stack[:len(f.stack)-1]
		}
	}
}

func inUnexpected(n *syntax.Node) bool {
	return n.Ancestor(syntax.KindUnexpected) != nil
}
