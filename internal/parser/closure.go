package parser

import (
	"sprig/internal/diag"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// parseClosure: { [signature in] statements }
func (p *Parser) parseClosure() *syntax.Node {
	lb := p.tokenNode(p.advance())
	var sig *syntax.Node
	if p.atClosureSignature() {
		sig = p.parseClosureSignature()
	}
	stmts := p.parseCodeBlockItemList(true)
	rb := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected \"}\" to close closure")
	return syntax.MakeNode(syntax.KindClosureExpr, lb, sig, stmts, rb)
}

func isNameKind(k token.Kind) bool {
	return k == token.Ident || k == token.Wildcard || k == token.Placeholder
}

// atClosureSignature: заглядываем вперёд: есть ли после '{' список
// параметров вида "a, b in" или "(a: T) -> R in".
func (p *Parser) atClosureSignature() bool {
	i := p.pos
	switch p.toks[i].Kind {
	case token.Ident, token.Wildcard, token.Placeholder:
		for isNameKind(p.toks[i].Kind) {
			i++
			if p.toks[i].Kind != token.Comma {
				break
			}
			i++
		}
	case token.LParen:
		depth := 0
		for ; p.toks[i].Kind != token.EOF; i++ {
			k := p.toks[i].Kind
			if k == token.LBrace || k == token.RBrace {
				return false
			}
			if k == token.LParen {
				depth++
			} else if k == token.RParen {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if p.toks[i].Kind != token.RParen {
			return false
		}
		i++
	default:
		return false
	}
	switch p.toks[i].Kind {
	case token.KwIn:
		return true
	case token.Arrow:
		return p.scanToIn(i + 1)
	}
	return false
}

// scanToIn ищет 'in' на нулевой глубине, не выходя за пределы текущего
// замыкания.
func (p *Parser) scanToIn(i int) bool {
	depth := 0
	for ; p.toks[i].Kind != token.EOF; i++ {
		switch k := p.toks[i].Kind; {
		case k == token.KwIn && depth == 0:
			return true
		case k == token.LBrace || k == token.RBrace || k == token.Semicolon:
			return false
		case k == token.LParen || k == token.LBracket:
			depth++
		case k == token.RParen || k == token.RBracket:
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return false
}

func (p *Parser) parseClosureSignature() *syntax.Node {
	var params *syntax.Node
	if p.at(token.LParen) {
		params = p.parseClosureParameterClause()
	} else {
		var names []*syntax.Node
		for isNameKind(p.peek().Kind) {
			name := p.tokenNode(p.advance())
			comma := p.eat(token.Comma)
			names = append(names, syntax.MakeNode(syntax.KindClosureShorthandParameter, name, comma))
			if comma == nil {
				break
			}
		}
		params = syntax.MakeList(syntax.KindClosureShorthandParameterList, names...)
	}
	var ret *syntax.Node
	if p.at(token.Arrow) {
		ret = p.parseReturnClause()
	}
	in := p.expect(token.KwIn, diag.SynExpectCodeBlockIn, "expected \"in\" after closure signature")
	return syntax.MakeNode(syntax.KindClosureSignature, params, ret, in)
}

// (first [second] [: Type], ...)
func (p *Parser) parseClosureParameterClause() *syntax.Node {
	lp := p.tokenNode(p.advance())
	var params []*syntax.Node
	for !p.at(token.EOF) && !isCloser(p.peek().Kind) {
		start := p.pos
		first := p.expectName()
		var second, colon, typ *syntax.Node
		if isNameKind(p.peek().Kind) {
			second = p.tokenNode(p.advance())
		}
		if colon = p.eat(token.Colon); colon != nil {
			typ = p.parseType()
		}
		comma := p.eat(token.Comma)
		params = append(params, syntax.MakeNode(syntax.KindClosureParameter, first, second, colon, typ, comma))
		if comma == nil || p.pos == start {
			break
		}
	}
	list := syntax.MakeList(syntax.KindClosureParameterList, params...)
	rp := p.expect(token.RParen, diag.SynUnclosedParen, "expected \")\" to close closure parameters")
	return syntax.MakeNode(syntax.KindClosureParameterClause, lp, list, rp)
}

func (p *Parser) parseReturnClause() *syntax.Node {
	arrow := p.expect(token.Arrow, diag.SynExpectArrow, "expected \"->\"")
	return syntax.MakeNode(syntax.KindReturnClause, arrow, p.parseType())
}
