package format

import (
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// Style decides what goes between two adjacent tokens. Either token is nil at
// the edges of the formatted node.
type Style interface {
	RequiresNewline(prev, next *syntax.Node) bool
	RequiresWhitespace(prev, next *syntax.Node) bool
}

// Basic puts closure bodies and ';'-separated statements on their own lines
// and spaces out punctuation the usual way.
type Basic struct{}

func (Basic) RequiresNewline(prev, next *syntax.Node) bool {
	if prev == nil || next == nil || next.TokenKind() == token.EOF {
		return false
	}
	if c, ok := closureOfBrace(prev, syntax.SlotClosureLeftBrace); ok && c.Signature() == nil && c.StatementCount() > 0 {
		return true
	}
	if c, ok := closureOfSignatureEnd(prev); ok && c.StatementCount() > 0 {
		return true
	}
	if c, ok := closureOfBrace(next, syntax.SlotClosureRightBrace); ok && c.StatementCount() > 0 {
		return true
	}
	// после ';' следующая инструкция идёт с новой строки
	return prev.TokenKind() == token.Semicolon && isSlot(prev, syntax.KindCodeBlockItem, syntax.SlotCodeBlockItemSemicolon)
}

func (Basic) RequiresWhitespace(prev, next *syntax.Node) bool {
	if prev == nil || next == nil {
		return false
	}
	pk, nk := prev.TokenKind(), next.TokenKind()
	switch {
	case nk == token.EOF:
		return false
	case isBinaryOperator(prev) || isBinaryOperator(next):
		return true
	case pk == token.Arrow || nk == token.Arrow || pk == token.Assign || nk == token.Assign:
		return true
	case isSignatureIn(prev) || isSignatureIn(next):
		return true
	case pk == token.Comma || pk == token.Colon:
		return !isCloserKind(nk)
	}
	if c, ok := closureOfBrace(prev, syntax.SlotClosureLeftBrace); ok {
		return !isSlot(next, syntax.KindClosureExpr, syntax.SlotClosureRightBrace) || !next.Parent().Is(c.Node)
	}
	if c, ok := closureOfBrace(next, syntax.SlotClosureRightBrace); ok {
		return !isSlot(prev, syntax.KindClosureExpr, syntax.SlotClosureLeftBrace) || !prev.Parent().Is(c.Node)
	}
	if c, ok := closureOfBrace(next, syntax.SlotClosureLeftBrace); ok && isSlot(c.Node, syntax.KindFunctionCallExpr, syntax.SlotCallTrailingClosure) {
		return true
	}
	switch {
	case pk.IsWordLike() && nk.IsWordLike():
		return true
	case nk == token.KwAsync || nk == token.KwThrows || nk == token.KwRethrows:
		return true
	case pk.IsKeyword() && !isLiteralKeyword(pk):
		return !isCloserKind(nk) && nk != token.Comma && nk != token.Semicolon && nk != token.Colon && nk != token.Dot
	case isSlot(prev, syntax.KindAttribute, syntax.SlotAttributeName):
		return true
	}
	return false
}

// ClosureLiteral keeps closures with at most one statement on a single line
// and otherwise behaves like Basic.
type ClosureLiteral struct {
	Basic
}

func (s ClosureLiteral) RequiresNewline(prev, next *syntax.Node) bool {
	if prev != nil {
		if c, ok := closureOfSignatureEnd(prev); ok && c.StatementCount() <= 1 {
			return false
		}
		if c, ok := closureOfBrace(prev, syntax.SlotClosureLeftBrace); ok && c.StatementCount() <= 1 {
			return false
		}
	}
	if next != nil {
		if c, ok := closureOfBrace(next, syntax.SlotClosureRightBrace); ok && c.StatementCount() <= 1 {
			return false
		}
	}
	return s.Basic.RequiresNewline(prev, next)
}

// isSlot reports whether n sits in the given slot of a parent of the given kind.
func isSlot(n *syntax.Node, parent syntax.Kind, slot int) bool {
	p := n.Parent()
	return p != nil && p.Kind() == parent && n.IndexInParent() == slot
}

// closureOfBrace returns the closure whose brace in slot tok is.
func closureOfBrace(tok *syntax.Node, slot int) (syntax.ClosureExpr, bool) {
	if !isSlot(tok, syntax.KindClosureExpr, slot) {
		return syntax.ClosureExpr{}, false
	}
	return syntax.AsClosure(tok.Parent())
}

// closureOfSignatureEnd returns the closure when tok is the last token of
// its signature.
func closureOfSignatureEnd(tok *syntax.Node) (syntax.ClosureExpr, bool) {
	sig := tok.Ancestor(syntax.KindClosureSignature)
	if sig == nil {
		return syntax.ClosureExpr{}, false
	}
	last := sig.LastToken()
	if last == nil || !last.Is(tok) {
		return syntax.ClosureExpr{}, false
	}
	return syntax.AsClosure(sig.Parent())
}

func isBinaryOperator(tok *syntax.Node) bool {
	return isSlot(tok, syntax.KindInfixOperatorExpr, syntax.SlotInfixOperator)
}

func isSignatureIn(tok *syntax.Node) bool {
	return tok.TokenKind() == token.KwIn && isSlot(tok, syntax.KindClosureSignature, syntax.SlotClosureSignatureIn)
}

func isCloserKind(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

func isLiteralKeyword(k token.Kind) bool {
	return k == token.KwTrue || k == token.KwFalse || k == token.KwNil
}
