package refactor

import (
	"context"
	"strings"
	"testing"

	"sprig/internal/fix"
	"sprig/internal/format"
	"sprig/internal/parser"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

var (
	closurePlaceholder        = token.WrapPlaceholder("T##closure##() -> Void")
	closureWithArgPlaceholder = token.WrapPlaceholder("T##(Int) -> String##(Int) -> String##(_ someInt: Int) -> String")
	voidPlaceholder           = token.WrapPlaceholder("T##code##Void")
	intPlaceholder            = token.WrapPlaceholder("T##Int##Int")
	stringPlaceholder         = token.WrapPlaceholder("T##String##String")

	expandedVoidClosure = token.WrapPlaceholder("{ " + voidPlaceholder + " }")
	expandedArgClosure  = token.WrapPlaceholder("{ someInt in " + stringPlaceholder + " }")
)

func parseFile(t *testing.T, src string) (*source.File, *syntax.Node) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.swift", []byte(src)))
	return file, parser.ParseSourceFile(file, parser.Options{})
}

func firstCall(t *testing.T, root *syntax.Node) syntax.CallExpr {
	t.Helper()
	n := syntax.Find(root, func(n *syntax.Node) bool { return n.Kind() == syntax.KindFunctionCallExpr })
	call, ok := syntax.AsCall(n)
	if !ok {
		t.Fatalf("no call in\n%s", syntax.Dump(root))
	}
	return call
}

func argPlaceholder(t *testing.T, call syntax.CallExpr, i int) *syntax.Node {
	t.Helper()
	args := call.ArgumentList()
	if i >= len(args) {
		t.Fatalf("call has %d arguments, want index %d", len(args), i)
	}
	ref, ok := syntax.AsDeclReference(args[i].Expression())
	if !ok || !ref.BaseName().IsPlaceholder() {
		t.Fatalf("argument %d is not a placeholder: %q", i, args[i].String())
	}
	return ref.BaseName()
}

func assertEdit(t *testing.T, edits []fix.SourceEdit, target *syntax.Node, want string) {
	t.Helper()
	if len(edits) != 1 {
		t.Fatalf("want 1 edit, got %d: %+v", len(edits), edits)
	}
	if edits[0].Span != target.Span() {
		t.Fatalf("edit span: want %v, got %v", target.Span(), edits[0].Span)
	}
	if edits[0].Replacement != want {
		t.Fatalf("want %q, got %q", want, edits[0].Replacement)
	}
}

// assertPlaceholder expands the first placeholder token of src.
func assertPlaceholder(t *testing.T, src, want string) {
	t.Helper()
	_, root := parseFile(t, src)
	var tok *syntax.Node
	for _, n := range root.Tokens() {
		if n.IsPlaceholder() {
			tok = n
			break
		}
	}
	if tok == nil {
		t.Fatalf("no placeholder in %q", src)
	}
	assertEdit(t, ExpandPlaceholder(tok, Context{}), tok, want)
}

func assertCallExpansion(t *testing.T, src string, arg int, want string) {
	t.Helper()
	_, root := parseFile(t, src)
	call := firstCall(t, root)
	assertEdit(t, ExpandPlaceholder(argPlaceholder(t, call, arg), Context{}), call.Node, want)
}

func assertTokenExpansion(t *testing.T, src string, arg int, want string) {
	t.Helper()
	_, root := parseFile(t, src)
	tok := argPlaceholder(t, firstCall(t, root), arg)
	assertEdit(t, ExpandPlaceholder(tok, Context{}), tok, want)
}

func assertTrailingClosures(t *testing.T, src, want string, ctx Context) {
	t.Helper()
	_, root := parseFile(t, src)
	call := firstCall(t, root)
	assertEdit(t, ExpandCallPlaceholders(call, ctx), call.Node, want)
}

func TestExpandSimple(t *testing.T) {
	cases := []struct{ payload, want string }{
		{"displayOnly", "displayOnly"},
		{"T##typed", "typed"},
		{"T##displayAndType##Int", "Int"},
		{"T##bothTypes##Int##BetterInt", "BetterInt"},
		{"T##bothTypesFirstEmpty####BetterInt", "BetterInt"},
	}
	for _, tc := range cases {
		assertPlaceholder(t, token.WrapPlaceholder(tc.payload), tc.want)
	}
}

func TestExpandEmpty(t *testing.T) {
	cases := []struct{ payload, want string }{
		{"", ""},
		{"T##", ""},
		{"T##displayEmptyType##", "displayEmptyType"},
		{"T####EmptyDisplay", "EmptyDisplay"},
		{"T######EmptyTypeAndDisplay", "EmptyTypeAndDisplay"},
		{"T##bothTypesFirstNotEmpty##Int##", "Int"},
		{"T##bothTypesEmpty####", "bothTypesEmpty"},
	}
	for _, tc := range cases {
		assertPlaceholder(t, token.WrapPlaceholder(tc.payload), tc.want)
	}
}

func TestExpandClosures(t *testing.T) {
	argClosure := token.WrapPlaceholder("{ arg in " + intPlaceholder + " }")
	cases := []struct{ payload, want string }{
		{"T##display##() -> Void", expandedVoidClosure},
		{"T##display##() -> ()", expandedVoidClosure},
		{"T##display##() -> Int", token.WrapPlaceholder("{ " + intPlaceholder + " }")},
		{"T##display##(arg: String) -> Int", argClosure},
		{"T##display##(_ arg: String) -> Int", argClosure},
		{"T##display##(arg: String, arg2: String) -> Int", token.WrapPlaceholder("{ arg, arg2 in " + intPlaceholder + " }")},
		{"T##x##(Int...) -> Void", token.WrapPlaceholder("{ " + token.WrapPlaceholder("Int...") + " in " + voidPlaceholder + " }")},
		{"T##x##(values: Int..., _: String) -> Void", token.WrapPlaceholder("{ values, " + token.WrapPlaceholder("String") + " in " + voidPlaceholder + " }")},
	}
	for _, tc := range cases {
		assertPlaceholder(t, token.WrapPlaceholder(tc.payload), tc.want)
	}
}

func TestExpandKeepsComments(t *testing.T) {
	assertPlaceholder(t, "/*c1*/"+token.WrapPlaceholder("simple")+"/*c2*/", "/*c1*/simple/*c2*/")

	closure := token.WrapPlaceholder("T##display##(arg: String) -> Int")
	want := "/*c1*/" + token.WrapPlaceholder("{ arg in "+intPlaceholder+" }") + "/*c2*/"
	assertPlaceholder(t, "/*c1*/"+closure+"/*c2*/", want)
}

func TestExpandSingleClosureArg(t *testing.T) {
	assertCallExpansion(t, "call("+closurePlaceholder+")", 0, "call("+expandedVoidClosure+")")
}

func TestExpandSingleNonClosureArg(t *testing.T) {
	assertTokenExpansion(t, "call("+intPlaceholder+")", 0, "Int")
}

func TestTypeForExpansionPreferred(t *testing.T) {
	ph := token.WrapPlaceholder("T##closure##BadType##() -> Int")
	assertCallExpansion(t, "call("+ph+")", 0, "call("+token.WrapPlaceholder("{ "+intPlaceholder+" }")+")")
}

func TestPlaceholderWithoutExplicitText(t *testing.T) {
	ph := token.WrapPlaceholder("T##(Int) -> Void")
	want := "call(" + token.WrapPlaceholder("{ "+token.WrapPlaceholder("Int")+" in "+voidPlaceholder+" }") + ")"
	assertCallExpansion(t, "call("+ph+")", 0, want)
}

func TestMultipleClosureArgs(t *testing.T) {
	src := "call(arg1: " + closurePlaceholder + ", arg2: " + closurePlaceholder + ")"
	want := "call(arg1: " + expandedVoidClosure + ", arg2: " + expandedVoidClosure + ")"
	assertCallExpansion(t, src, 0, want)
	assertCallExpansion(t, src, 1, want)
}

func TestNonClosureAfterClosure(t *testing.T) {
	src := "call(arg1: " + closurePlaceholder + ", arg2: " + intPlaceholder + ")"
	assertTokenExpansion(t, src, 0, expandedVoidClosure)
}

func TestCallComments(t *testing.T) {
	src := "/*c1*/foo/*c2*/(/*c3*/arg/*c4*/: /*c5*/" + closurePlaceholder + "/*c6*/,/*c7*/\n" +
		"    /*c8*/" + closurePlaceholder + "/*c9*/)/*c10*/"
	want := "/*c1*/foo/*c2*/(/*c3*/arg/*c4*/: /*c5*/" + expandedVoidClosure + "/*c6*/,/*c7*/\n" +
		"    /*c8*/" + expandedVoidClosure + "/*c9*/)/*c10*/"
	assertCallExpansion(t, src, 1, want)
}

func TestExpandTrailingClosures(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		want     string
		unitSize int
	}{
		{
			name: "single",
			src:  "foo(arg: " + intPlaceholder + ", closure: " + closureWithArgPlaceholder + ")",
			want: "foo(arg: " + intPlaceholder + ", closure: " + expandedArgClosure + ")",
		},
		{
			name: "multiple",
			src:  "foo(arg: " + intPlaceholder + ", firstClosure: " + closureWithArgPlaceholder + ", secondClosure: " + closureWithArgPlaceholder + ")",
			want: "foo(arg: " + intPlaceholder + ", firstClosure: " + expandedArgClosure + ", secondClosure: " + expandedArgClosure + ")",
		},
		{
			name: "closure before normal args",
			src:  "foo(pre: " + closurePlaceholder + ", arg: " + intPlaceholder + ", closure: " + closureWithArgPlaceholder + ")",
			want: "foo(pre: " + closurePlaceholder + ", arg: " + intPlaceholder + ", closure: " + expandedArgClosure + ")",
		},
		{
			name: "initial indentation",
			src:  "    foo(arg: 1, closure: " + closureWithArgPlaceholder + ")",
			want: "    foo(arg: 1, closure: " + expandedArgClosure + ")",
		},
		{
			name:     "custom width",
			src:      "foo(arg: 1, closure: " + closureWithArgPlaceholder + ")",
			want:     "foo(arg: 1, closure: " + expandedArgClosure + ")",
			unitSize: 2,
		},
		{
			name:     "custom width with initial indentation",
			src:      "  foo(arg: 1, closure: " + closureWithArgPlaceholder + ")",
			want:     "  foo(arg: 1, closure: " + expandedArgClosure + ")",
			unitSize: 2,
		},
		{
			name: "multiline call",
			src:  "foo(\n    arg: 1,\n    closure: " + closureWithArgPlaceholder + "\n)",
			want: "foo(\n    arg: 1,\n    closure: " + expandedArgClosure + "\n)",
		},
		{
			name: "multiline indented call",
			src:  "    foo(\n        arg: 1,\n        closure: " + closureWithArgPlaceholder + "\n    )",
			want: "    foo(\n        arg: 1,\n        closure: " + expandedArgClosure + "\n    )",
		},
		{
			name: "multiline call without other arguments",
			src:  "foo(\n    closure: " + closureWithArgPlaceholder + "\n)",
			want: "foo(\n    closure: " + expandedArgClosure + "\n)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertTrailingClosures(t, tc.src, tc.want, Context{IndentationUnit: format.IndentUnit(tc.unitSize, false)})
		})
	}
}

func TestExpandTrailingClosuresRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no placeholders", "foo(a, b)"},
		{"non-closure last", "foo(" + closurePlaceholder + ", " + intPlaceholder + ")"},
		{"existing trailing closure", "foo(" + closurePlaceholder + ") { }"},
		{"badly typed", "foo(" + token.WrapPlaceholder("T##x##(Int") + ")"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, root := parseFile(t, tc.src)
			call := firstCall(t, root)
			if got, ok := ExpandTrailingClosures(call, nil, Context{}); ok {
				t.Fatalf("want no expansion, got %q", got.String())
			}
			if edits := ExpandCallPlaceholders(call, Context{}); len(edits) != 0 {
				t.Fatalf("want no edits, got %+v", edits)
			}
		})
	}
}

func TestExpandTrailingClosuresTargetOutsideRun(t *testing.T) {
	_, root := parseFile(t, "foo(pre: "+closurePlaceholder+", x: 1, post: "+closurePlaceholder+")")
	call := firstCall(t, root)
	if _, ok := ExpandTrailingClosures(call, call.ArgumentList()[0].Node, Context{}); ok {
		t.Fatalf("want no expansion for a target outside the trailing run")
	}
	got, ok := ExpandTrailingClosures(call, call.ArgumentList()[2].Node, Context{})
	if !ok {
		t.Fatalf("want expansion for a target in the trailing run")
	}
	want := "foo(pre: " + closurePlaceholder + ", x: 1, post: " + expandedVoidClosure + ")"
	if got.String() != want {
		t.Fatalf("want %q, got %q", want, got.String())
	}
}

func TestExtractPlaceholder(t *testing.T) {
	_, root := parseFile(t, token.WrapPlaceholder("T##x##(Int"))
	data, ok := ExtractPlaceholder(root.FirstToken())
	if !ok {
		t.Fatalf("want placeholder data")
	}
	if data.DisplayText != "(Int" || data.TypeForExpansion != nil {
		t.Fatalf("want display %q and no type, got %q, %v", "(Int", data.DisplayText, data.TypeForExpansion)
	}

	_, root = parseFile(t, "plain")
	if _, ok := ExtractPlaceholder(root.FirstToken()); ok {
		t.Fatalf("identifier must not be a placeholder")
	}
}

func TestClosureExpansionNames(t *testing.T) {
	fn, ok := syntax.AsFunctionType(parser.ParseType("(a: Int, _: String, _ b: Int, [Int]) async throws -> ()"))
	if !ok {
		t.Fatalf("not a function type")
	}
	got := format.Format(ClosureExpansion(fn), format.ClosureLiteral{}, format.Options{})
	want := "{ a, <#String#>, b, <#[Int]#> in " + voidPlaceholder + " }"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestExpandAll(t *testing.T) {
	src := "foo(arg: " + intPlaceholder + ", closure: " + closureWithArgPlaceholder + ")\n" +
		"let x = " + token.WrapPlaceholder("value") + "\n" +
		"bar(" + closurePlaceholder + ", 1)\n"
	file, root := parseFile(t, src)

	edits := ExpandAll(context.Background(), root, BatchOptions{PreferCallExpansion: true})
	if len(edits) != 4 {
		t.Fatalf("want 4 edits, got %d: %+v", len(edits), edits)
	}
	out, err := fix.Apply(file.Content, edits)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := "foo(arg: Int, closure: " + expandedArgClosure + ")\n" +
		"let x = value\n" +
		"bar(" + expandedVoidClosure + ", 1)\n"
	if string(out) != want {
		t.Fatalf("want %q, got %q", want, string(out))
	}
}

func TestExpandAllIndentsLikeTheCall(t *testing.T) {
	src := "  foo(" + closurePlaceholder + ")"
	_, root := parseFile(t, src)
	call := firstCall(t, root)

	batch := ExpandAll(context.Background(), root, BatchOptions{PreferCallExpansion: true})
	whole := ExpandCallPlaceholders(call, Context{})
	if len(batch) != 1 || len(whole) != 1 {
		t.Fatalf("want one edit each, got %d and %d", len(batch), len(whole))
	}
	if !strings.Contains(whole[0].Replacement, batch[0].Replacement) {
		t.Fatalf("argument edit %q is not part of call edit %q", batch[0].Replacement, whole[0].Replacement)
	}
}

func TestFindPlaceholderAt(t *testing.T) {
	src := "let a = <#x#> + b"
	_, root := parseFile(t, src)
	start := uint32(strings.Index(src, "<#"))
	end := uint32(strings.Index(src, "#>") + 2)

	for _, off := range []uint32{start, start + 2, end} {
		if tok := FindPlaceholderAt(root, off); tok == nil || tok.Text() != "<#x#>" {
			t.Fatalf("offset %d: want placeholder, got %v", off, tok)
		}
	}
	for _, off := range []uint32{0, start - 1, end + 1} {
		if tok := FindPlaceholderAt(root, off); tok != nil {
			t.Fatalf("offset %d: want nothing, got %q", off, tok.Text())
		}
	}
}
