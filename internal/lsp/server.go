// Package lsp serves placeholder expansion and formatting over the Language
// Server Protocol.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sprig/internal/format"
	"sprig/internal/version"
)

const serverName = "sprig"

var log = commonlog.GetLogger("sprig.lsp")

// Options configures the server. Zero values fall back to defaults.
type Options struct {
	IndentWidth    int
	UseTabs        bool
	MaxDiagnostics int
}

func (o Options) indentUnit() string {
	w := o.IndentWidth
	if w <= 0 {
		w = 4
	}
	return format.IndentUnit(w, o.UseTabs)
}

// Server holds open documents and answers requests.
type Server struct {
	opts    Options
	docs    *documentStore
	handler *protocol.Handler
}

// New builds a Server with its handler table.
func New(opts Options) *Server {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 256
	}
	s := &Server{opts: opts, docs: newDocumentStore()}
	s.handler = &protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		SetTrace:                s.setTrace,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidChange:   s.textDocumentDidChange,
		TextDocumentDidClose:    s.textDocumentDidClose,
		TextDocumentCodeAction:  s.textDocumentCodeAction,
		TextDocumentFormatting:  s.textDocumentFormatting,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
	}
	return s
}

// RunStdio serves on stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	return server.NewServer(s.handler, serverName, false).RunStdio()
}

func (s *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CodeActionProvider = &protocol.CodeActionOptions{
		CodeActionKinds: []protocol.CodeActionKind{protocol.CodeActionKindRefactorRewrite},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{CommandExpandPlaceholder},
	}

	v := version.Current()
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &v,
		},
	}, nil
}

func (s *Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	log.Info("shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	s.docs.open(item.URI, item.Version, item.Text)
	s.publishDiagnostics(context, item.URI)
	return nil
}

func (s *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if _, err := s.docs.change(params.TextDocument.URI, params.TextDocument.Version, params.ContentChanges); err != nil {
		log.Errorf("didChange: %s", err)
		return err
	}
	s.publishDiagnostics(context, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.close(params.TextDocument.URI)
	// снимаем старые диагностики
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentCodeAction(context *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	return s.codeActions(params), nil
}

func (s *Server) textDocumentFormatting(context *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return s.formatEdits(params.TextDocument.URI, params.Options)
}

func (s *Server) workspaceExecuteCommand(context *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != CommandExpandPlaceholder {
		log.Warningf("unknown command %q", params.Command)
		return nil, nil
	}
	args, err := parseExpandArgs(params.Arguments)
	if err != nil {
		return nil, err
	}
	edit, ok := s.expandAt(args.URI, args.Position)
	if !ok {
		return nil, nil
	}
	label := expandTitle
	var resp protocol.ApplyWorkspaceEditResponse
	context.Call(protocol.ServerWorkspaceApplyEdit, protocol.ApplyWorkspaceEditParams{Label: &label, Edit: *edit}, &resp)
	if !resp.Applied && resp.FailureReason != nil {
		log.Warningf("client rejected edit: %s", *resp.FailureReason)
	}
	return nil, nil
}

func (s *Server) publishDiagnostics(context *glsp.Context, uri protocol.DocumentUri) {
	doc, ok := s.docs.get(uri)
	if !ok {
		return
	}
	snap := analyze(doc, s.opts.MaxDiagnostics)
	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: snap.diagnostics(),
	})
}
