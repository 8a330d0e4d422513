package refactor

import (
	"sprig/internal/syntax"
	"sprig/internal/token"
)

// ClosureExpansion builds the closure a function type expands into: one
// shorthand parameter per parameter of fn (omitted entirely when fn takes
// none) and a single placeholder statement standing for the body.
func ClosureExpansion(fn syntax.FunctionType) *syntax.Node {
	var signature *syntax.Node
	if params := fn.Parameters(); len(params) > 0 {
		items := make([]*syntax.Node, len(params))
		for i, p := range params {
			var comma *syntax.Node
			if i < len(params)-1 {
				comma = syntax.MakeKeyword(token.Comma)
			}
			items[i] = syntax.MakeNode(syntax.KindClosureShorthandParameter, expansionName(p), comma)
		}
		signature = syntax.MakeNode(syntax.KindClosureSignature,
			syntax.MakeList(syntax.KindClosureShorthandParameterList, items...),
			nil,
			syntax.MakeKeyword(token.KwIn),
		)
	}

	body := syntax.MakeNode(syntax.KindCodeBlockItem,
		syntax.MakeNode(syntax.KindDeclReferenceExpr,
			syntax.MakeToken(token.Placeholder, bodyPlaceholder(fn), nil, nil)),
		nil,
	)

	return syntax.MakeNode(syntax.KindClosureExpr,
		syntax.MakeKeyword(token.LBrace),
		signature,
		syntax.MakeList(syntax.KindCodeBlockItemList, body),
		syntax.MakeKeyword(token.RBrace),
	)
}

// bodyPlaceholder: <#T##code##Void#> для Void и (), иначе <#T##R##R#>.
func bodyPlaceholder(fn syntax.FunctionType) string {
	ret := ""
	if rt := fn.ReturnType(); rt != nil {
		ret = rt.TrimmedString()
	}
	if ret == "Void" || ret == "()" {
		return token.WrapTypePlaceholder("code", "Void")
	}
	return token.WrapTypePlaceholder(ret, ret)
}

// expansionName picks the second name, then the first name, skipping
// wildcards; a parameter without a usable name becomes a placeholder of its
// type.
func expansionName(p syntax.TupleTypeElement) *syntax.Node {
	for _, name := range []*syntax.Node{p.SecondName(), p.FirstName()} {
		if name != nil && !name.IsMissing() && name.TokenKind() != token.Wildcard {
			return syntax.MakeToken(name.TokenKind(), name.Text(), nil, nil)
		}
	}
	typ := ""
	if t := p.Type(); t != nil {
		typ = t.TrimmedString()
	}
	if e := p.Ellipsis(); e != nil {
		typ += e.Text()
	}
	return syntax.MakeToken(token.Placeholder, token.WrapPlaceholder(typ), nil, nil)
}
