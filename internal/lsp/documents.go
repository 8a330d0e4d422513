package lsp

import (
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// document is an open editor buffer.
type document struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	text    string
}

// documentStore keeps open buffers. Safe for concurrent use.
type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[protocol.DocumentUri]*document)}
}

func (s *documentStore) open(uri protocol.DocumentUri, version protocol.Integer, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{uri: uri, version: version, text: text}
}

// change applies content changes in order. Whole-document events replace the
// text; ranged events splice it.
func (s *documentStore) change(uri protocol.DocumentUri, version protocol.Integer, changes []any) (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return document{}, fmt.Errorf("no document loaded for %s", uri)
	}
	text := doc.text
	for _, raw := range changes {
		switch ch := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = ch.Text
		case protocol.TextDocumentContentChangeEvent:
			if ch.Range == nil {
				text = ch.Text
				continue
			}
			from, to := ch.Range.IndexesIn(text)
			if from < 0 || to < from || to > len(text) {
				return document{}, fmt.Errorf("change range %v out of bounds for %s", *ch.Range, uri)
			}
			text = text[:from] + ch.Text + text[to:]
		default:
			return document{}, fmt.Errorf("unexpected change event type %T", raw)
		}
	}
	doc.text = text
	doc.version = version
	return *doc, nil
}

func (s *documentStore) close(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *documentStore) get(uri protocol.DocumentUri) (document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return document{}, false
	}
	return *doc, true
}
