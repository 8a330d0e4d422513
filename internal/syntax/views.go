package syntax

// Typed views over nodes. Each view wraps a node of one kind and names its
// slots; the As* helpers report false for any other kind.

type CallExpr struct{ *Node }

func AsCall(n *Node) (CallExpr, bool) {
	if n == nil || n.Kind() != KindFunctionCallExpr {
		return CallExpr{}, false
	}
	return CallExpr{n}, true
}

func (c CallExpr) Callee() *Node          { return c.Child(SlotCallCallee) }
func (c CallExpr) LeftParen() *Node       { return c.Child(SlotCallLeftParen) }
func (c CallExpr) Arguments() *Node       { return c.Child(SlotCallArguments) }
func (c CallExpr) RightParen() *Node      { return c.Child(SlotCallRightParen) }
func (c CallExpr) TrailingClosure() *Node { return c.Child(SlotCallTrailingClosure) }

// ArgumentList returns the arguments inside the parentheses in source order.
func (c CallExpr) ArgumentList() []LabeledExpr {
	list := c.Arguments()
	if list == nil {
		return nil
	}
	children := list.Children()
	out := make([]LabeledExpr, 0, len(children))
	for _, ch := range children {
		if arg, ok := AsLabeledExpr(ch); ok {
			out = append(out, arg)
		}
	}
	return out
}

// WithArguments returns a detached call with the argument list replaced.
func (c CallExpr) WithArguments(list *Node) CallExpr {
	return CallExpr{c.With(SlotCallArguments, list)}
}

type LabeledExpr struct{ *Node }

func AsLabeledExpr(n *Node) (LabeledExpr, bool) {
	if n == nil || n.Kind() != KindLabeledExpr {
		return LabeledExpr{}, false
	}
	return LabeledExpr{n}, true
}

func (a LabeledExpr) Label() *Node      { return a.Child(SlotLabeledExprLabel) }
func (a LabeledExpr) Colon() *Node      { return a.Child(SlotLabeledExprColon) }
func (a LabeledExpr) Expression() *Node { return a.Child(SlotLabeledExprExpression) }
func (a LabeledExpr) Comma() *Node      { return a.Child(SlotLabeledExprComma) }

// WithExpression returns a detached argument with its expression replaced;
// label, colon and comma are kept.
func (a LabeledExpr) WithExpression(expr *Node) LabeledExpr {
	return LabeledExpr{a.With(SlotLabeledExprExpression, expr)}
}

type ClosureExpr struct{ *Node }

func AsClosure(n *Node) (ClosureExpr, bool) {
	if n == nil || n.Kind() != KindClosureExpr {
		return ClosureExpr{}, false
	}
	return ClosureExpr{n}, true
}

func (c ClosureExpr) LeftBrace() *Node  { return c.Child(SlotClosureLeftBrace) }
func (c ClosureExpr) Signature() *Node  { return c.Child(SlotClosureSignature) }
func (c ClosureExpr) Statements() *Node { return c.Child(SlotClosureStatements) }
func (c ClosureExpr) RightBrace() *Node { return c.Child(SlotClosureRightBrace) }

// StatementCount returns the number of code block items in the body.
func (c ClosureExpr) StatementCount() int {
	if s := c.Statements(); s != nil {
		return s.NumSlots()
	}
	return 0
}

type ClosureSignature struct{ *Node }

func AsClosureSignature(n *Node) (ClosureSignature, bool) {
	if n == nil || n.Kind() != KindClosureSignature {
		return ClosureSignature{}, false
	}
	return ClosureSignature{n}, true
}

func (s ClosureSignature) Parameters() *Node   { return s.Child(SlotClosureSignatureParameters) }
func (s ClosureSignature) ReturnClause() *Node { return s.Child(SlotClosureSignatureReturnClause) }
func (s ClosureSignature) In() *Node           { return s.Child(SlotClosureSignatureIn) }

// ParameterCount counts shorthand or parenthesized parameters.
func (s ClosureSignature) ParameterCount() int {
	p := s.Parameters()
	if p == nil {
		return 0
	}
	if p.Kind() == KindClosureParameterClause {
		p = p.Child(SlotClosureParameterClauseParameters)
		if p == nil {
			return 0
		}
	}
	return p.NumSlots()
}

type FunctionType struct{ *Node }

func AsFunctionType(n *Node) (FunctionType, bool) {
	if n == nil || n.Kind() != KindFunctionType {
		return FunctionType{}, false
	}
	return FunctionType{n}, true
}

func (f FunctionType) ReturnClause() *Node { return f.Child(SlotFunctionTypeReturnClause) }

// Parameters returns the parameter elements in order.
func (f FunctionType) Parameters() []TupleTypeElement {
	list := f.Child(SlotFunctionTypeParameters)
	if list == nil {
		return nil
	}
	children := list.Children()
	out := make([]TupleTypeElement, 0, len(children))
	for _, ch := range children {
		if el, ok := AsTupleTypeElement(ch); ok {
			out = append(out, el)
		}
	}
	return out
}

// ReturnType returns the type after the arrow, or nil when it is missing.
func (f FunctionType) ReturnType() *Node {
	if rc := f.ReturnClause(); rc != nil {
		return rc.Child(SlotReturnClauseType)
	}
	return nil
}

type TupleTypeElement struct{ *Node }

func AsTupleTypeElement(n *Node) (TupleTypeElement, bool) {
	if n == nil || n.Kind() != KindTupleTypeElement {
		return TupleTypeElement{}, false
	}
	return TupleTypeElement{n}, true
}

func (e TupleTypeElement) FirstName() *Node  { return e.Child(SlotTupleTypeElementFirstName) }
func (e TupleTypeElement) SecondName() *Node { return e.Child(SlotTupleTypeElementSecondName) }
func (e TupleTypeElement) Type() *Node       { return e.Child(SlotTupleTypeElementType) }

// Ellipsis is the "..." of a variadic parameter, or nil.
func (e TupleTypeElement) Ellipsis() *Node { return e.Child(SlotTupleTypeElementEllipsis) }

type DeclReferenceExpr struct{ *Node }

func AsDeclReference(n *Node) (DeclReferenceExpr, bool) {
	if n == nil || n.Kind() != KindDeclReferenceExpr {
		return DeclReferenceExpr{}, false
	}
	return DeclReferenceExpr{n}, true
}

func (d DeclReferenceExpr) BaseName() *Node { return d.Child(SlotDeclReferenceBaseName) }
