package lexer

import (
	"sprig/internal/diag"
	"sprig/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.5, 1e-3, 1.0e+10.
// Точка входит в число только если за ней цифра: "1.description" это
// member access.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			var digit func(byte) bool
			switch b1 {
			case 'b':
				digit = func(b byte) bool { return b == '0' || b == '1' }
			case 'o':
				digit = func(b byte) bool { return b >= '0' && b <= '7' }
			case 'x':
				digit = isHex
			}
			if digit != nil {
				lx.cursor.BumpN(2)
				if !digit(lx.cursor.Peek()) {
					tok := lx.emit(token.Invalid, start)
					lx.errLex(diag.LexBadNumber, tok.Span, "expected digit after base prefix")
					return tok
				}
				for digit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
					lx.cursor.Bump()
				}
				return lx.emit(kind, start)
			}
		}
	}

	lx.eatDigits()

	// дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits()
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(mark)
			tok := lx.emit(kind, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected digit after exponent")
			return tok
		}
		kind = token.FloatLit
		lx.eatDigits()
	}

	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}
