package lexer

import (
	"golang.org/x/text/unicode/norm"

	"sprig/internal/diag"
	"sprig/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text это ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		return lx.scanOperatorOrPunct()
	}
	ascii := true
	for {
		r, sz = lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		if r >= utf8RuneSelf {
			ascii = false
		}
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if tok.Text == "_" {
		tok.Kind = token.Wildcard
		return tok
	}
	if ascii {
		if k, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = k
		}
		return tok
	}
	// Идентификаторы сравниваются в NFC; предупреждаем о других формах.
	if !norm.NFC.IsNormalString(tok.Text) {
		lx.warnLex(diag.LexNonNormalIdent, tok.Span, "identifier "+tok.Text+" is not NFC-normalized")
	}
	return tok
}

// scanBacktickIdent сканирует `name`; ключевые слова в обратных кавычках
// становятся обычными идентификаторами.
func (lx *Lexer) scanBacktickIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			lx.cursor.Bump()
			return lx.emit(token.Ident, start)
		case '\n', '\r':
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedBacktick, tok.Span, "unterminated backtick identifier")
			return tok
		}
		lx.bumpRune()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedBacktick, tok.Span, "unterminated backtick identifier")
	return tok
}

// scanDollarIdent сканирует анонимные параметры замыканий: $0, $1, ...
func (lx *Lexer) scanDollarIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if !isIdentContinueByte(lx.cursor.Peek()) {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected character '$'")
		return tok
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Ident, start)
}

// scanPlaceholder сканирует <#...#> с учётом вложенности. Плейсхолдер не
// может пересекать перевод строки; в этом случае курсор возвращается назад.
func (lx *Lexer) scanPlaceholder() (token.Token, bool) {
	start := lx.cursor.Mark()
	depth := 0
	for !lx.cursor.EOF() {
		switch {
		case lx.cursor.HasPrefix(token.PlaceholderStart):
			lx.cursor.BumpN(len(token.PlaceholderStart))
			depth++
		case lx.cursor.HasPrefix(token.PlaceholderEnd):
			lx.cursor.BumpN(len(token.PlaceholderEnd))
			depth--
			if depth == 0 {
				return lx.emit(token.Placeholder, start), true
			}
		case isNewline(lx.cursor.Peek()):
			lx.cursor.Reset(start)
			return token.Token{}, false
		default:
			lx.cursor.Bump()
		}
	}
	lx.cursor.Reset(start)
	return token.Token{}, false
}
