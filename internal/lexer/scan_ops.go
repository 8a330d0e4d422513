package lexer

import (
	"sprig/internal/diag"
	"sprig/internal/token"
)

// scanOperatorOrPunct: пунктуация занимает один байт, операторы сканируются жадно
// из набора operatorChars, затем "=", "->", "?", "!" получают свои Kind.
// Диапазоны "..." и "..<" сканируются отдельно.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	ch := lx.cursor.Peek()
	// "..." и "..<" операторы, одиночная точка пунктуация
	if ch == '.' && (lx.cursor.HasPrefix("...") || lx.cursor.HasPrefix("..<")) {
		lx.cursor.BumpN(3)
		return lx.emit(token.Operator, start)
	}
	if k, ok := punct[ch]; ok {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}

	if !isOperatorChar(ch) {
		lx.bumpRune()
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
		return tok
	}

	lx.cursor.Bump()
	for isOperatorChar(lx.cursor.Peek()) {
		// комментарий или плейсхолдер обрывают оператор
		if lx.cursor.HasPrefix("//") || lx.cursor.HasPrefix("/*") || lx.cursor.HasPrefix(token.PlaceholderStart) {
			break
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Operator, start)
	switch tok.Text {
	case "=":
		tok.Kind = token.Assign
	case "->":
		tok.Kind = token.Arrow
	case "?":
		tok.Kind = token.Question
	case "!":
		tok.Kind = token.Bang
	}
	return tok
}

var punct = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'.': token.Dot,
	'@': token.At,
}

func isOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', '?':
		return true
	}
	return false
}
