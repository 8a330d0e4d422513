package refactor

import (
	"sprig/internal/fix"
	"sprig/internal/parser"
	"sprig/internal/syntax"
)

// Context configures placeholder expansion.
type Context struct {
	// IndentationUnit is one level of indentation; empty means four spaces.
	IndentationUnit string
}

// ExpandPlaceholder expands the placeholder tok. When tok is an argument in
// the trailing run of closure placeholders of a call, the whole run is
// expanded and the edit replaces the call. Otherwise only tok is replaced.
func ExpandPlaceholder(tok *syntax.Node, ctx Context) []fix.SourceEdit {
	if call, arg, ok := enclosingCall(tok); ok {
		if expanded, ok := ExpandTrailingClosures(call, arg, ctx); ok {
			return []fix.SourceEdit{fix.Replace(call.Node, expanded.String())}
		}
	}
	return ExpandSinglePlaceholder(tok, SingleContext{IndentationUnit: ctx.IndentationUnit})
}

// ExpandCallPlaceholders expands the trailing run of closure placeholders in
// call. It returns no edits when there is nothing to expand.
func ExpandCallPlaceholders(call syntax.CallExpr, ctx Context) []fix.SourceEdit {
	expanded, ok := ExpandTrailingClosures(call, nil, ctx)
	if !ok {
		return nil
	}
	return []fix.SourceEdit{fix.Replace(call.Node, expanded.String())}
}

// ExpandTrailingClosures rewrites the trailing run of arguments that are
// closure-typed placeholders into closure placeholders formatted for the
// call's line. With a non-nil target the expansion happens only if target
// is one of those arguments. The result is detached from the input tree.
//
// It reports false when the call has a trailing closure already, when the
// run is empty, when target is outside the run, and when an argument fails
// to expand.
func ExpandTrailingClosures(call syntax.CallExpr, target *syntax.Node, ctx Context) (*syntax.Node, bool) {
	if call.Node == nil || call.TrailingClosure() != nil || call.Arguments() == nil {
		return nil, false
	}
	args := call.ArgumentList()

	run, included := 0, false
	for i := len(args) - 1; i >= 0; i-- {
		if _, ok := closureTyped(args[i].Expression()); !ok {
			break
		}
		if target != nil && args[i].Is(target) {
			included = true
		}
		run++
	}
	if run == 0 || (target != nil && !included) {
		return nil, false
	}

	single := SingleContext{
		IndentationUnit:    ctx.IndentationUnit,
		InitialIndentation: call.IndentationOfLine(),
	}
	items := make([]*syntax.Node, 0, len(args))
	for _, arg := range args[:len(args)-run] {
		items = append(items, arg.Node)
	}
	for _, arg := range args[len(args)-run:] {
		name, _ := closureTyped(arg.Expression())
		edits := ExpandSinglePlaceholder(name, single)
		if len(edits) != 1 || edits[0].Replacement == "" {
			return nil, false
		}
		expr := parser.ParseExpr(edits[0].Replacement)
		if expr == nil || expr.HasError() {
			return nil, false
		}
		items = append(items, arg.WithExpression(expr).Node)
	}

	return call.WithArguments(syntax.MakeList(syntax.KindLabeledExprList, items...)).Node, true
}

// enclosingCall finds the call whose argument is exactly the reference
// around tok: DeclReferenceExpr, LabeledExpr, LabeledExprList, call.
func enclosingCall(tok *syntax.Node) (syntax.CallExpr, *syntax.Node, bool) {
	if tok == nil || !tok.IsPlaceholder() {
		return syntax.CallExpr{}, nil, false
	}
	ref := tok.Parent()
	if _, ok := syntax.AsDeclReference(ref); !ok {
		return syntax.CallExpr{}, nil, false
	}
	arg, ok := syntax.AsLabeledExpr(ref.Parent())
	if !ok {
		return syntax.CallExpr{}, nil, false
	}
	list := arg.Parent()
	if list == nil || list.Kind() != syntax.KindLabeledExprList {
		return syntax.CallExpr{}, nil, false
	}
	call, ok := syntax.AsCall(list.Parent())
	if !ok || list.IndexInParent() != syntax.SlotCallArguments {
		return syntax.CallExpr{}, nil, false
	}
	return call, arg.Node, true
}
