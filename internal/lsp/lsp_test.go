package lsp

import (
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sprig/internal/source"
	"sprig/internal/token"
)

const testURI = "file:///work/main.swift"

var closurePlaceholder = token.WrapPlaceholder("T##closure##() -> Void")

func newFile(t *testing.T, text string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("span.swift", []byte(text)))
}

func openServer(t *testing.T, text string) *Server {
	t.Helper()
	s := New(Options{})
	s.docs.open(testURI, 1, text)
	return s
}

type recorder struct {
	notified []protocol.PublishDiagnosticsParams
	applied  []protocol.ApplyWorkspaceEditParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(protocol.PublishDiagnosticsParams); ok {
				r.notified = append(r.notified, p)
			}
		},
		Call: func(method string, params any, result any) {
			if p, ok := params.(protocol.ApplyWorkspaceEditParams); ok {
				r.applied = append(r.applied, p)
			}
			if resp, ok := result.(*protocol.ApplyWorkspaceEditResponse); ok {
				resp.Applied = true
			}
		},
	}
}

func TestUTF16Positions(t *testing.T) {
	// 🙂 занимает две UTF-16 единицы и четыре байта
	text := "let a = 1\nlet s = \"🙂\" + <#x#>\n"
	file := newFile(t, text)
	off := uint32(strings.Index(text, "<#x#>"))

	pos := positionForOffset(file, off)
	if pos != (protocol.Position{Line: 1, Character: 15}) {
		t.Fatalf("unexpected position %+v", pos)
	}
	if got := offsetForPosition(file, pos); got != off {
		t.Fatalf("want offset %d, got %d", off, got)
	}
	// за концом строки прижимаемся к '\n'
	if got := offsetForPosition(file, protocol.Position{Line: 0, Character: 99}); got != 9 {
		t.Fatalf("want 9, got %d", got)
	}
	if got := offsetForPosition(file, protocol.Position{Line: 7}); got != uint32(len(text)) {
		t.Fatalf("want end of file, got %d", got)
	}
}

func TestDocumentStoreChanges(t *testing.T) {
	store := newDocumentStore()
	store.open(testURI, 1, "let a = 1\n")

	r := protocol.Range{Start: protocol.Position{Line: 0, Character: 8}, End: protocol.Position{Line: 0, Character: 9}}
	doc, err := store.change(testURI, 2, []any{
		protocol.TextDocumentContentChangeEvent{Range: &r, Text: "42"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc.text != "let a = 42\n" || doc.version != 2 {
		t.Fatalf("unexpected document %+v", doc)
	}

	doc, err = store.change(testURI, 3, []any{protocol.TextDocumentContentChangeEventWhole{Text: "x\n"}})
	if err != nil || doc.text != "x\n" {
		t.Fatalf("unexpected whole change %+v, %v", doc, err)
	}

	store.close(testURI)
	if _, ok := store.get(testURI); ok {
		t.Fatalf("document still open after close")
	}
	if _, err := store.change(testURI, 4, nil); err == nil {
		t.Fatalf("want error for closed document")
	}
}

func TestCodeActionExpandsCall(t *testing.T) {
	src := "call(" + closurePlaceholder + ")\n"
	s := openServer(t, src)

	actions := s.codeActions(&protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Range:        protocol.Range{Start: protocol.Position{Line: 0, Character: 7}},
	})
	if len(actions) != 1 || actions[0].Title != expandTitle || actions[0].Edit == nil {
		t.Fatalf("unexpected actions %+v", actions)
	}
	edits := actions[0].Edit.Changes[testURI]
	if len(edits) != 1 {
		t.Fatalf("want 1 edit, got %d", len(edits))
	}
	want := "call(" + token.WrapPlaceholder("{ "+token.WrapPlaceholder("T##code##Void")+" }") + ")"
	if edits[0].NewText != want {
		t.Fatalf("want %q, got %q", want, edits[0].NewText)
	}
	if edits[0].Range.Start != (protocol.Position{}) {
		t.Fatalf("edit must start at the call, got %+v", edits[0].Range.Start)
	}
}

func TestCodeActionOutsidePlaceholder(t *testing.T) {
	s := openServer(t, "let a = 1\n")
	actions := s.codeActions(&protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Range:        protocol.Range{Start: protocol.Position{Line: 0, Character: 4}},
	})
	if len(actions) != 0 {
		t.Fatalf("want no actions, got %+v", actions)
	}
}

func TestExecuteCommandAppliesEdit(t *testing.T) {
	s := openServer(t, "let v = "+token.WrapPlaceholder("T##Int##Int")+"\n")
	rec := &recorder{}
	_, err := s.workspaceExecuteCommand(rec.context(), &protocol.ExecuteCommandParams{
		Command:   CommandExpandPlaceholder,
		Arguments: []any{testURI, map[string]any{"line": float64(0), "character": float64(10)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.applied) != 1 {
		t.Fatalf("want one applyEdit call, got %d", len(rec.applied))
	}
	edits := rec.applied[0].Edit.Changes[testURI]
	if len(edits) != 1 || strings.TrimSpace(edits[0].NewText) != "Int" {
		t.Fatalf("unexpected edits %+v", edits)
	}
}

func TestParseExpandArgs(t *testing.T) {
	if _, err := parseExpandArgs([]any{testURI}); err == nil {
		t.Fatalf("want error for missing position")
	}
	if _, err := parseExpandArgs([]any{1, map[string]any{}}); err == nil {
		t.Fatalf("want error for non-string uri")
	}
	got, err := parseExpandArgs([]any{testURI, map[string]any{"line": 2, "character": 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got.URI != testURI || got.Position != (protocol.Position{Line: 2, Character: 3}) {
		t.Fatalf("unexpected args %+v", got)
	}
}

func TestFormatting(t *testing.T) {
	s := openServer(t, "let x:Int=1\n")
	edits, err := s.formatEdits(testURI, protocol.FormattingOptions{"tabSize": float64(2), "insertSpaces": true})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || edits[0].NewText != "let x: Int = 1\n" {
		t.Fatalf("unexpected edits %+v", edits)
	}

	s = openServer(t, "let x: Int = 1\n")
	edits, err = s.formatEdits(testURI, nil)
	if err != nil || len(edits) != 0 {
		t.Fatalf("want no edits for formatted text, got %+v, %v", edits, err)
	}
}

func TestCRLFDocument(t *testing.T) {
	s := New(Options{})
	rec := &recorder{}
	err := s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, Version: 1, Text: "let x:Int=1\r\nfoo(bar)\r\n"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.notified) != 1 || len(rec.notified[0].Diagnostics) != 0 {
		t.Fatalf("CRLF document must have no diagnostics, got %+v", rec.notified)
	}
	edits, err := s.formatEdits(testURI, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || edits[0].NewText != "let x: Int = 1\r\nfoo(bar)\r\n" {
		t.Fatalf("unexpected edits %+v", edits)
	}

	s = openServer(t, "let a = 1\r\ncall("+closurePlaceholder+")\r\n")
	actions := s.codeActions(&protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Range:        protocol.Range{Start: protocol.Position{Line: 1, Character: 7}},
	})
	if len(actions) != 1 {
		t.Fatalf("want one action on line 2, got %+v", actions)
	}
	// правка начинается с ведущего \r\n вызова: \r остаётся колонкой 9 строки 0
	edit := actions[0].Edit.Changes[testURI][0]
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 9},
		End:   protocol.Position{Line: 1, Character: uint32(len("call(" + closurePlaceholder + ")"))},
	}
	if edit.Range != want || !strings.HasPrefix(edit.NewText, "\r\ncall(") {
		t.Fatalf("want range %+v, got %+v (%q)", want, edit.Range, edit.NewText)
	}

	// за концом строки прижимаемся к '\r', а не к '\n'
	file := newFile(t, "let a = 1\r\nb\r\n")
	if off := offsetForPosition(file, protocol.Position{Line: 0, Character: 99}); off != 9 {
		t.Fatalf("want 9, got %d", off)
	}
	if pos := positionForOffset(file, 11); pos != (protocol.Position{Line: 1}) {
		t.Fatalf("want line 1 start, got %+v", pos)
	}
}

func TestIndentFromFormatting(t *testing.T) {
	tests := []struct {
		opts protocol.FormattingOptions
		want string
	}{
		{nil, "    "},
		{protocol.FormattingOptions{"tabSize": float64(2), "insertSpaces": true}, "  "},
		{protocol.FormattingOptions{"tabSize": float64(8), "insertSpaces": false}, "\t"},
		{protocol.FormattingOptions{"tabSize": float64(0)}, "    "},
	}
	for _, tt := range tests {
		if got := indentFromFormatting(tt.opts, "    "); got != tt.want {
			t.Fatalf("%v: want %q, got %q", tt.opts, tt.want, got)
		}
	}
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	s := New(Options{})
	rec := &recorder{}
	err := s.textDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, Version: 1, Text: "let = (\n"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.notified) != 1 || len(rec.notified[0].Diagnostics) == 0 {
		t.Fatalf("want syntax diagnostics, got %+v", rec.notified)
	}
	d := rec.notified[0].Diagnostics[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError || !strings.HasPrefix(d.Code.Value.(string), "SYN") {
		t.Fatalf("unexpected diagnostic %+v", d)
	}

	if err := s.textDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}); err != nil {
		t.Fatal(err)
	}
	if last := rec.notified[len(rec.notified)-1]; len(last.Diagnostics) != 0 {
		t.Fatalf("close must clear diagnostics")
	}
}

func TestURIToPath(t *testing.T) {
	if got := uriToPath("file:///tmp/a%20b.swift"); got != "/tmp/a b.swift" {
		t.Fatalf("want %q, got %q", "/tmp/a b.swift", got)
	}
	if got := uriToPath("untitled:Untitled-1"); got != "" {
		t.Fatalf("want empty path, got %q", got)
	}
	if got := displayPath("untitled:Untitled-1"); got != "untitled:Untitled-1" {
		t.Fatalf("want uri fallback, got %q", got)
	}
}
