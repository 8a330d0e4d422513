package parser

import (
	"sprig/internal/diag"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// parseType: [@attr...] [inout] [some|any] base {? ! .Member}
func (p *Parser) parseType() *syntax.Node {
	var attrs []*syntax.Node
	for p.at(token.At) {
		at := p.tokenNode(p.advance())
		attrs = append(attrs, syntax.MakeNode(syntax.KindAttribute, at, p.expectName()))
	}
	spec := p.eat(token.KwInout)
	var base *syntax.Node
	if p.atOr(token.KwSome, token.KwAny) {
		kw := p.tokenNode(p.advance())
		base = syntax.MakeNode(syntax.KindSomeOrAnyType, kw, p.parseTypeSuffix(p.parseTypePrimary()))
	} else {
		base = p.parseTypeSuffix(p.parseTypePrimary())
	}
	if len(attrs) == 0 && spec == nil {
		return base
	}
	var list *syntax.Node
	if len(attrs) > 0 {
		list = syntax.MakeList(syntax.KindAttributeList, attrs...)
	}
	return syntax.MakeNode(syntax.KindAttributedType, list, spec, base)
}

func (p *Parser) parseTypeSuffix(typ *syntax.Node) *syntax.Node {
	for {
		tok := p.peek()
		switch {
		case (tok.Kind == token.Question || tok.Kind == token.Bang) && len(tok.Leading) == 0:
			typ = syntax.MakeNode(syntax.KindOptionalType, typ, p.tokenNode(p.advance()))
		case tok.Kind == token.Operator && len(tok.Leading) == 0 && (tok.Text[0] == '?' || tok.Text[0] == '!'):
			// "??" или "?>" склеились лексером: отрезаем по одному символу
			p.splitFirst()
		case tok.Kind == token.Dot:
			dot := p.tokenNode(p.advance())
			name := p.expectName()
			typ = syntax.MakeNode(syntax.KindMemberType, typ, dot, name, p.parseGenericArguments())
		default:
			return typ
		}
	}
}

func (p *Parser) parseTypePrimary() *syntax.Node {
	switch p.peek().Kind {
	case token.Ident, token.Placeholder, token.Wildcard:
		name := p.tokenNode(p.advance())
		return syntax.MakeNode(syntax.KindIdentifierType, name, p.parseGenericArguments())
	case token.KwAny:
		// Any без ограничения: обычное имя типа
		name := p.tokenNode(p.advance())
		return syntax.MakeNode(syntax.KindIdentifierType, name, nil)
	case token.LParen:
		return p.parseTupleOrFunctionType()
	case token.LBracket:
		lb := p.tokenNode(p.advance())
		key := p.parseType()
		if colon := p.eat(token.Colon); colon != nil {
			value := p.parseType()
			rb := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected \"]\" to close dictionary type")
			return syntax.MakeNode(syntax.KindDictionaryType, lb, key, colon, value, rb)
		}
		rb := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected \"]\" to close array type")
		return syntax.MakeNode(syntax.KindArrayType, lb, key, rb)
	}
	p.err(diag.SynExpectType, "expected type, got \""+p.peek().Text+"\"")
	return syntax.MakeNode(syntax.KindIdentifierType, syntax.MakeMissing(token.Ident), nil)
}

// parseGenericArguments: <T, U> сразу после имени, без пробела.
func (p *Parser) parseGenericArguments() *syntax.Node {
	tok := p.peek()
	if tok.Kind != token.Operator || tok.Text != "<" || len(tok.Leading) > 0 {
		return nil
	}
	la := p.tokenNode(p.advance())
	var args []*syntax.Node
	for !p.at(token.EOF) && !p.atAngleClose() {
		start := p.pos
		typ := p.parseType()
		comma := p.eat(token.Comma)
		args = append(args, syntax.MakeNode(syntax.KindGenericArgument, typ, comma))
		if comma == nil || p.pos == start {
			break
		}
	}
	list := syntax.MakeList(syntax.KindGenericArgumentList, args...)
	p.splitAngle()
	var ra *syntax.Node
	if p.at(token.Operator) && p.peek().Text == ">" {
		ra = p.tokenNode(p.advance())
	} else {
		p.err(diag.SynUnexpectedToken, "expected \">\" to close generic arguments")
		ra = syntax.MakeMissing(token.Operator)
	}
	return syntax.MakeNode(syntax.KindGenericArgumentClause, la, list, ra)
}

func (p *Parser) atAngleClose() bool {
	tok := p.peek()
	return tok.Kind == token.Operator && tok.Text[0] == '>'
}

// (elements) это кортеж, а (elements) [async] [throws] -> R это функциональный тип.
func (p *Parser) parseTupleOrFunctionType() *syntax.Node {
	lp := p.tokenNode(p.advance())
	var elems []*syntax.Node
	for !p.at(token.EOF) && !isCloser(p.peek().Kind) {
		start := p.pos
		elems = append(elems, p.parseTupleTypeElement())
		if p.pos == start || elems[len(elems)-1].Child(syntax.SlotTupleTypeElementComma) == nil {
			break
		}
	}
	list := syntax.MakeList(syntax.KindTupleTypeElementList, elems...)
	rp := p.expect(token.RParen, diag.SynUnclosedParen, "expected \")\" to close tuple type")
	if !p.atOr(token.KwAsync, token.KwThrows, token.KwRethrows, token.Arrow) {
		return syntax.MakeNode(syntax.KindTupleType, lp, list, rp)
	}
	async := p.eat(token.KwAsync)
	throws := p.eat(token.KwThrows)
	if throws == nil {
		throws = p.eat(token.KwRethrows)
	}
	ret := p.parseReturnClause()
	return syntax.MakeNode(syntax.KindFunctionType, lp, list, rp, async, throws, ret)
}

// [first] [second] : Type [...]  или просто Type [...]
func (p *Parser) parseTupleTypeElement() *syntax.Node {
	var first, second, colon *syntax.Node
	if isLabelKind(p.peek().Kind) {
		switch {
		case p.peekAt(1).Kind == token.Colon:
			first = p.tokenNode(p.advance())
			colon = p.tokenNode(p.advance())
		case isLabelKind(p.peekAt(1).Kind) && p.peekAt(2).Kind == token.Colon:
			first = p.tokenNode(p.advance())
			second = p.tokenNode(p.advance())
			colon = p.tokenNode(p.advance())
		}
	}
	typ := p.parseType()
	var ellipsis *syntax.Node
	if tok := p.peek(); tok.Kind == token.Operator && tok.Text == "..." {
		ellipsis = p.tokenNode(p.advance())
	}
	comma := p.eat(token.Comma)
	return syntax.MakeNode(syntax.KindTupleTypeElement, first, second, colon, typ, ellipsis, comma)
}

func isLabelKind(k token.Kind) bool {
	return k == token.Ident || k == token.Wildcard || (k.IsKeyword() && k != token.KwInout)
}
