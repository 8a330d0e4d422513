package lexer

import (
	"sprig/internal/diag"
	"sprig/internal/token"
)

// collectTrivia собирает подряд идущие trivia.
//   - пробелы и табы коалесцируются в TriviaSpace / TriviaTab
//   - последовательные переводы строк (\n, \r\n, \r) коалесцируются в один TriviaNewline
//   - //... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (с вложенностью)
//
// Trailing trivia (trailing=true) останавливается перед '\n': перевод строки
// всегда начинает leading trivia следующего токена.
func (lx *Lexer) collectTrivia(trailing bool) token.TriviaList {
	var out token.TriviaList
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t':
			kind := token.TriviaSpace
			if b == '\t' {
				kind = token.TriviaTab
			}
			for lx.cursor.Peek() == b {
				lx.cursor.Bump()
			}
			out = append(out, token.Trivia{Kind: kind, Text: lx.cursor.TextFrom(start)})

		case isNewline(b):
			if trailing {
				return out
			}
			for !lx.cursor.EOF() && isNewline(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			out = append(out, token.Trivia{Kind: token.TriviaNewline, Text: lx.cursor.TextFrom(start)})

		case b == '/' && lx.cursor.HasPrefix("//"):
			for !lx.cursor.EOF() && !isNewline(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			out = append(out, token.Trivia{Kind: token.TriviaLineComment, Text: lx.cursor.TextFrom(start)})

		case b == '/' && lx.cursor.HasPrefix("/*"):
			lx.scanBlockComment()
			out = append(out, token.Trivia{Kind: token.TriviaBlockComment, Text: lx.cursor.TextFrom(start)})

		default:
			return out
		}
	}
	return out
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch {
		case lx.cursor.HasPrefix("/*"):
			lx.cursor.BumpN(2)
			depth++
		case lx.cursor.HasPrefix("*/"):
			lx.cursor.BumpN(2)
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}
