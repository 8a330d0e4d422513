package lsp

import (
	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sprig/internal/diag"
	"sprig/internal/parser"
	"sprig/internal/source"
	"sprig/internal/syntax"
)

const diagnosticSource = "sprig"

// snapshot is one parse of a document. The tree is never mutated.
type snapshot struct {
	file *source.File
	root *syntax.Node
	bag  *diag.Bag
}

func analyze(doc document, maxDiagnostics int) *snapshot {
	fs := source.NewFileSet()
	id := fs.AddVirtual(displayPath(doc.uri), []byte(doc.text))
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	root := parser.ParseSourceFile(file, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	return &snapshot{file: file, root: root, bag: bag}
}

func (s *snapshot) diagnostics() []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, s.bag.Len())
	src := diagnosticSource
	for _, d := range s.bag.Items() {
		sev := severity(d.Severity)
		out = append(out, protocol.Diagnostic{
			Range:    rangeForSpan(s.file, d.Primary),
			Severity: &sev,
			Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
			Source:   &src,
			Message:  d.Message,
		})
	}
	return out
}

func severity(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
