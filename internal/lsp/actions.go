package lsp

import (
	"encoding/json"
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sprig/internal/fix"
	"sprig/internal/format"
	"sprig/internal/refactor"
	"sprig/internal/source"
)

const (
	// CommandExpandPlaceholder expands the placeholder at a position.
	// Arguments: [uri, {line, character}].
	CommandExpandPlaceholder = "sprig.expandPlaceholder"

	expandTitle = "Expand placeholder"
)

// expandAt computes the workspace edit that expands the placeholder under pos.
// ok is false when there is no placeholder there.
func (s *Server) expandAt(uri protocol.DocumentUri, pos protocol.Position) (*protocol.WorkspaceEdit, bool) {
	doc, ok := s.docs.get(uri)
	if !ok {
		return nil, false
	}
	snap := analyze(doc, s.opts.MaxDiagnostics)
	tok := refactor.FindPlaceholderAt(snap.root, offsetForPosition(snap.file, pos))
	if tok == nil {
		return nil, false
	}
	edits := refactor.ExpandPlaceholder(tok, refactor.Context{IndentationUnit: s.opts.indentUnit()})
	if len(edits) == 0 {
		return nil, false
	}
	return &protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{uri: textEdits(snap.file, edits)},
	}, true
}

func textEdits(file *source.File, edits []fix.SourceEdit) []protocol.TextEdit {
	out := make([]protocol.TextEdit, len(edits))
	for i, e := range edits {
		out[i] = protocol.TextEdit{Range: rangeForSpan(file, e.Span), NewText: e.Replacement}
	}
	return out
}

// codeActions offers an expansion when the range starts on a placeholder.
func (s *Server) codeActions(params *protocol.CodeActionParams) []protocol.CodeAction {
	edit, ok := s.expandAt(params.TextDocument.URI, params.Range.Start)
	if !ok {
		return nil
	}
	kind := protocol.CodeActionKindRefactorRewrite
	preferred := true
	return []protocol.CodeAction{{
		Title:       expandTitle,
		Kind:        &kind,
		IsPreferred: &preferred,
		Edit:        edit,
	}}
}

// expandArgs decodes [uri, position] as sent by a client.
type expandArgs struct {
	URI      protocol.DocumentUri
	Position protocol.Position
}

func parseExpandArgs(args []any) (expandArgs, error) {
	if len(args) != 2 {
		return expandArgs{}, fmt.Errorf("%s: want 2 arguments, got %d", CommandExpandPlaceholder, len(args))
	}
	uri, ok := args[0].(string)
	if !ok {
		return expandArgs{}, fmt.Errorf("%s: argument 1 must be a URI string", CommandExpandPlaceholder)
	}
	raw, err := json.Marshal(args[1])
	if err != nil {
		return expandArgs{}, err
	}
	var pos protocol.Position
	if err := json.Unmarshal(raw, &pos); err != nil {
		return expandArgs{}, fmt.Errorf("%s: argument 2 must be a position: %w", CommandExpandPlaceholder, err)
	}
	return expandArgs{URI: uri, Position: pos}, nil
}

// formatEdits returns one whole-document edit, or none when the text is
// already formatted. Documents with syntax errors are left alone.
func (s *Server) formatEdits(uri protocol.DocumentUri, opts protocol.FormattingOptions) ([]protocol.TextEdit, error) {
	doc, ok := s.docs.get(uri)
	if !ok {
		return nil, fmt.Errorf("no document loaded for %s", uri)
	}
	snap := analyze(doc, s.opts.MaxDiagnostics)
	out, err := format.FormatSource(snap.file, format.Options{IndentationUnit: indentFromFormatting(opts, s.opts.indentUnit())})
	if err != nil {
		log.Debugf("formatting %s skipped: %v", uri, err)
		return nil, nil
	}
	if string(out) == doc.text {
		return []protocol.TextEdit{}, nil
	}
	whole := source.Span{File: snap.file.ID, Start: 0, End: safeUint32(len(snap.file.Content))}
	return []protocol.TextEdit{{Range: rangeForSpan(snap.file, whole), NewText: string(out)}}, nil
}

// indentFromFormatting reads tabSize and insertSpaces, as JSON-decoded by
// the transport.
func indentFromFormatting(opts protocol.FormattingOptions, fallback string) string {
	size, ok := opts["tabSize"].(float64)
	if !ok || size < 1 || size > 16 {
		return fallback
	}
	spaces, ok := opts["insertSpaces"].(bool)
	return format.IndentUnit(int(size), ok && !spaces)
}
