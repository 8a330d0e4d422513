package parser

import (
	"sprig/internal/diag"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// Приоритеты бинарных операторов. Всё, чего нет в таблице, считаем
// аддитивным.
const (
	precAssign = iota + 1
	precOr
	precAnd
	precCompare
	precCoalesce
	precRange
	precAdd
	precMul
)

var binaryPrec = map[string]int{
	"=": precAssign, "+=": precAssign, "-=": precAssign, "*=": precAssign, "/=": precAssign, "%=": precAssign,
	"||": precOr,
	"&&": precAnd,
	"==": precCompare, "!=": precCompare, "===": precCompare, "!==": precCompare,
	"<": precCompare, ">": precCompare, "<=": precCompare, ">=": precCompare, "~=": precCompare,
	"??":  precCoalesce,
	"...": precRange, "..<": precRange,
	"+": precAdd, "-": precAdd, "|": precAdd, "^": precAdd,
	"*": precMul, "/": precMul, "%": precMul, "&": precMul,
}

func (p *Parser) parseExpr() *syntax.Node {
	return p.parseBinary(precAssign)
}

// parseBinary: классический precedence climbing; присваивание
// правоассоциативно, остальные операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parsePrefix()
	for {
		tok := p.peek()
		if tok.Kind != token.Operator && tok.Kind != token.Assign {
			return left
		}
		prec, ok := binaryPrec[tok.Text]
		if !ok {
			prec = precAdd
		}
		if prec < minPrec {
			return left
		}
		op := p.tokenNode(p.advance())
		next := prec + 1
		if prec == precAssign {
			next = prec
		}
		right := p.parseBinary(next)
		left = syntax.MakeNode(syntax.KindInfixOperatorExpr, left, op, right)
	}
}

func (p *Parser) parsePrefix() *syntax.Node {
	if p.atOr(token.Operator, token.Bang) {
		op := p.tokenNode(p.advance())
		return syntax.MakeNode(syntax.KindPrefixOperatorExpr, op, p.parsePrefix())
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePrimary() *syntax.Node {
	switch p.peek().Kind {
	case token.Ident, token.Placeholder, token.Wildcard:
		return syntax.MakeNode(syntax.KindDeclReferenceExpr, p.tokenNode(p.advance()))
	case token.IntLit:
		return syntax.MakeNode(syntax.KindIntegerLiteralExpr, p.tokenNode(p.advance()))
	case token.FloatLit:
		return syntax.MakeNode(syntax.KindFloatLiteralExpr, p.tokenNode(p.advance()))
	case token.StringLit:
		return syntax.MakeNode(syntax.KindStringLiteralExpr, p.tokenNode(p.advance()))
	case token.KwTrue, token.KwFalse:
		return syntax.MakeNode(syntax.KindBooleanLiteralExpr, p.tokenNode(p.advance()))
	case token.KwNil:
		return syntax.MakeNode(syntax.KindNilLiteralExpr, p.tokenNode(p.advance()))
	case token.LParen:
		lp := p.tokenNode(p.advance())
		elems := p.parseLabeledList(token.RParen)
		rp := p.expect(token.RParen, diag.SynUnclosedParen, "expected \")\"")
		return syntax.MakeNode(syntax.KindTupleExpr, lp, elems, rp)
	case token.LBracket:
		lb := p.tokenNode(p.advance())
		elems := p.parseLabeledList(token.RBracket)
		rb := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected \"]\"")
		return syntax.MakeNode(syntax.KindArrayExpr, lb, elems, rb)
	case token.LBrace:
		return p.parseClosure()
	case token.Dot:
		// неявный член: .some
		dot := p.tokenNode(p.advance())
		return syntax.MakeNode(syntax.KindMemberAccessExpr, nil, dot, p.parseMemberName())
	}
	p.err(diag.SynExpectExpression, "expected expression, got \""+p.peek().Text+"\"")
	return syntax.MakeNode(syntax.KindDeclReferenceExpr, syntax.MakeMissing(token.Ident))
}

func (p *Parser) parseMemberName() *syntax.Node {
	k := p.peek().Kind
	if k == token.IntLit || k.IsKeyword() {
		return p.tokenNode(p.advance())
	}
	return p.expectName()
}

// parsePostfix: .member, вызов (...), сабскрипт [...], постфиксные ! и ?,
// замыкание в хвосте. Скобки вызова должны стоять на той же строке.
func (p *Parser) parsePostfix(expr *syntax.Node) *syntax.Node {
	for {
		switch tok := p.peek(); {
		case tok.Kind == token.Dot:
			dot := p.tokenNode(p.advance())
			expr = syntax.MakeNode(syntax.KindMemberAccessExpr, expr, dot, p.parseMemberName())
		case tok.Kind == token.LParen && !p.atLineStart():
			lp := p.tokenNode(p.advance())
			args := p.parseLabeledList(token.RParen)
			rp := p.expect(token.RParen, diag.SynUnclosedParen, "expected \")\" to close argument list")
			expr = syntax.MakeNode(syntax.KindFunctionCallExpr, expr, lp, args, rp, p.parseTrailingClosure())
		case tok.Kind == token.LBracket && !p.atLineStart():
			lb := p.tokenNode(p.advance())
			args := p.parseLabeledList(token.RBracket)
			rb := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected \"]\" to close subscript")
			expr = syntax.MakeNode(syntax.KindSubscriptCallExpr, expr, lb, args, rb, p.parseTrailingClosure())
		case tok.Kind == token.LBrace && !p.atLineStart():
			empty := syntax.MakeList(syntax.KindLabeledExprList)
			expr = syntax.MakeNode(syntax.KindFunctionCallExpr, expr, nil, empty, nil, p.parseClosure())
		case p.atPostfixOperator():
			op := p.tokenNode(p.advance())
			expr = syntax.MakeNode(syntax.KindPostfixOperatorExpr, expr, op)
		default:
			return expr
		}
	}
}

func (p *Parser) parseTrailingClosure() *syntax.Node {
	if p.at(token.LBrace) && !p.atLineStart() {
		return p.parseClosure()
	}
	return nil
}

// atPostfixOperator: оператор прилеплен к операнду слева и отделён справа
// (пробелом, закрывающей скобкой, запятой, точкой или концом текста).
func (p *Parser) atPostfixOperator() bool {
	tok := p.peek()
	if tok.Kind != token.Bang && tok.Kind != token.Question && tok.Kind != token.Operator {
		return false
	}
	if len(tok.Leading) > 0 {
		return false
	}
	if len(tok.Trailing) > 0 {
		return tok.Kind != token.Operator || !isBinaryText(tok.Text)
	}
	switch p.peekAt(1).Kind {
	case token.RParen, token.RBracket, token.RBrace, token.Comma, token.Dot,
		token.Semicolon, token.Colon, token.EOF:
		return true
	case token.LParen, token.LBracket:
		// f?(x), a![0]
		return tok.Kind != token.Operator
	}
	return p.peekAt(1).Leading.HasNewline()
}

func isBinaryText(text string) bool {
	_, ok := binaryPrec[text]
	return ok
}

// parseLabeledList: аргументы вызова или элементы кортежа/массива.
// Метка: идентификатор или ключевое слово, за которым следует ':'.
func (p *Parser) parseLabeledList(closer token.Kind) *syntax.Node {
	var elems []*syntax.Node
	for !p.at(token.EOF) && !isCloser(p.peek().Kind) {
		start := p.pos
		var label, colon *syntax.Node
		if k := p.peek().Kind; (k == token.Ident || k == token.Wildcard || k.IsKeyword()) && p.peekAt(1).Kind == token.Colon {
			label = p.tokenNode(p.advance())
			colon = p.tokenNode(p.advance())
		}
		var value *syntax.Node
		if closer == token.RBracket && label == nil && p.at(token.Colon) {
			// словарный литерал [:] и [k: v] держим как ошибку разбора
			value = p.skipUnexpected()
		} else {
			value = p.parseExpr()
		}
		comma := p.eat(token.Comma)
		elems = append(elems, syntax.MakeNode(syntax.KindLabeledExpr, label, colon, value, comma))
		if comma == nil || p.pos == start {
			break
		}
	}
	return syntax.MakeList(syntax.KindLabeledExprList, elems...)
}
