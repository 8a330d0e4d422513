package lexer

import (
	"sprig/internal/diag"
	"sprig/internal/token"
)

// Однострочные "..." с escape-последовательностями; интерполяция \(...) не
// разбирается, её содержимое просто входит в текст литерала.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if !isNewline(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			continue
		}
		if isNewline(b) {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "newline in string literal")
			return tok
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
