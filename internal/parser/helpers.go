package parser

import (
	"slices"

	"sprig/internal/diag"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// getDiagnosticSpan: возвращает лучший span для диагностики.
// На EOF используем позицию сразу после последнего токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.errors++
	}
	if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
		if p.errors == p.opts.MaxErrors+1 {
			p.opts.Reporter.Report(diag.SynTooManyErrors, diag.SevError, sp, "too many errors, giving up reporting", nil)
		}
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

func isCloser(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

func isOpener(k token.Kind) bool {
	return k == token.LParen || k == token.LBracket || k == token.LBrace
}

// skipUnexpected собирает токены, которые не удалось разобрать, в узел
// Unexpected. Скобки учитываются: группа (...) / [...] / {...} уходит целиком.
// Останавливается на ';', на закрывающей скобке верхнего уровня или на
// токене с новой строки. Хотя бы один токен съедается всегда (кроме EOF).
func (p *Parser) skipUnexpected() *syntax.Node {
	var toks []*syntax.Node
	depth := 0
	for !p.at(token.EOF) {
		k := p.peek().Kind
		if depth == 0 && len(toks) > 0 {
			if k == token.Semicolon || isCloser(k) || p.atLineStart() {
				break
			}
		}
		switch {
		case isOpener(k):
			depth++
		case isCloser(k) && depth > 0:
			depth--
		}
		toks = append(toks, p.tokenNode(p.advance()))
	}
	return syntax.MakeList(syntax.KindUnexpected, toks...)
}

// splitAngle отрезает первый '>' от операторного токена вида ">>" или ">?"
// (закрытие generic-аргументов); остаток остаётся следующим токеном.
func (p *Parser) splitAngle() bool {
	tok := p.peek()
	if tok.Kind != token.Operator || len(tok.Text) < 2 || tok.Text[0] != '>' {
		return false
	}
	p.splitFirst()
	return true
}

// splitFirst делит текущий операторный токен на первый символ и остаток.
func (p *Parser) splitFirst() {
	tok := p.peek()
	first := token.Token{
		Kind:    operatorKind(tok.Text[:1]),
		Span:    source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1},
		Text:    tok.Text[:1],
		Leading: tok.Leading,
	}
	rest := token.Token{
		Kind:     operatorKind(tok.Text[1:]),
		Span:     source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End},
		Text:     tok.Text[1:],
		Trailing: tok.Trailing,
	}
	p.toks[p.pos] = first
	p.toks = slices.Insert(p.toks, p.pos+1, rest)
}

func operatorKind(text string) token.Kind {
	switch text {
	case "=":
		return token.Assign
	case "->":
		return token.Arrow
	case "?":
		return token.Question
	case "!":
		return token.Bang
	}
	return token.Operator
}
