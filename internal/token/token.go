package token

import (
	"sprig/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  TriviaList
	Trailing TriviaList
}

// IsLiteral reports whether the token is a numeric, boolean, nil, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind.IsPunctOrOp()
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPlaceholder reports whether the token is an editor placeholder.
func (t Token) IsPlaceholder() bool { return t.Kind == Placeholder }

// FullText renders the token together with its trivia.
func (t Token) FullText() string {
	return t.Leading.String() + t.Text + t.Trailing.String()
}

// IsKeyword reports whether k is a language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwIn && k <= KwInout
}

// IsPunctOrOp reports whether k is a punctuation or operator.
func (k Kind) IsPunctOrOp() bool {
	return k >= LParen && k <= Operator
}

// IsWordLike reports whether k is spelled with identifier characters, so two
// adjacent word-like tokens need whitespace between them.
func (k Kind) IsWordLike() bool {
	switch k {
	case Ident, Placeholder, Wildcard, IntLit, FloatLit, StringLit:
		return true
	}
	return k.IsKeyword()
}
