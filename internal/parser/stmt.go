package parser

import (
	"sprig/internal/diag"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// parseCodeBlockItemList: список инструкций файла или тела замыкания.
// Внутри замыкания останавливаемся на '}'.
func (p *Parser) parseCodeBlockItemList(inClosure bool) *syntax.Node {
	var items []*syntax.Node
	for !p.at(token.EOF) {
		if p.at(token.RBrace) && inClosure {
			break
		}
		start := p.pos
		items = append(items, p.parseCodeBlockItem(inClosure))
		if p.pos == start {
			break
		}
	}
	return syntax.MakeList(syntax.KindCodeBlockItemList, items...)
}

func (p *Parser) parseCodeBlockItem(inClosure bool) *syntax.Node {
	var item *syntax.Node
	switch k := p.peek().Kind; {
	case k == token.Semicolon:
		// пустая инструкция: только ';'
	case k == token.KwReturn:
		item = p.parseReturn()
	case k == token.KwLet || k == token.KwVar:
		item = p.parseVariableDecl()
	case canStartExpr(k):
		item = p.parseExpr()
	default:
		if !inClosure || k != token.RBrace {
			p.err(diag.SynUnexpectedToken, "unexpected \""+p.peek().Text+"\"")
			item = p.skipUnexpected()
		}
	}
	semi := p.eat(token.Semicolon)
	return syntax.MakeNode(syntax.KindCodeBlockItem, item, semi)
}

func (p *Parser) parseReturn() *syntax.Node {
	kw := p.tokenNode(p.advance())
	var value *syntax.Node
	if canStartExpr(p.peek().Kind) {
		value = p.parseExpr()
	}
	return syntax.MakeNode(syntax.KindReturnStmt, kw, value)
}

// parseVariableDecl: let|var name [: Type] [= expr]
func (p *Parser) parseVariableDecl() *syntax.Node {
	kw := p.tokenNode(p.advance())
	name := p.expectName()
	var colon, typ, assign, init *syntax.Node
	if colon = p.eat(token.Colon); colon != nil {
		typ = p.parseType()
	}
	if assign = p.eat(token.Assign); assign != nil {
		init = p.parseExpr()
	}
	return syntax.MakeNode(syntax.KindVariableDecl, kw, name, colon, typ, assign, init)
}

func canStartExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.Placeholder, token.Wildcard,
		token.IntLit, token.FloatLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNil,
		token.LParen, token.LBracket, token.LBrace,
		token.Dot, token.Operator, token.Bang:
		return true
	}
	return false
}
