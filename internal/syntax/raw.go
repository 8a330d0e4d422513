package syntax

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"sprig/internal/token"
)

// raw is the position-independent, immutable half of a node.
type raw struct {
	kind   Kind
	tok    *rawToken // only for KindToken
	slots  []*raw    // nil entries are absent children
	width  uint32    // full width, trivia included
	hasErr bool
}

type rawToken struct {
	kind     token.Kind
	text     string
	leading  token.TriviaList
	trailing token.TriviaList
	missing  bool
}

func width(s string) uint32 {
	w, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("syntax: text too long: %w", err))
	}
	return w
}

func newRawToken(kind token.Kind, text string, leading, trailing token.TriviaList, missing bool) *raw {
	t := &rawToken{kind: kind, text: text, leading: leading, trailing: trailing, missing: missing}
	return &raw{
		kind:   KindToken,
		tok:    t,
		width:  width(leading.String()) + width(text) + width(trailing.String()),
		hasErr: missing,
	}
}

func newRawNode(kind Kind, slots []*raw) *raw {
	if n := kind.SlotCount(); n >= 0 && len(slots) != n {
		panic(fmt.Sprintf("syntax: %s takes %d slots, got %d", kind, n, len(slots)))
	}
	r := &raw{kind: kind, slots: slots, hasErr: kind == KindUnexpected}
	for _, s := range slots {
		if s == nil {
			continue
		}
		r.width += s.width
		r.hasErr = r.hasErr || s.hasErr
	}
	return r
}

// withSlot returns a copy of r with slot i replaced.
func (r *raw) withSlot(i int, child *raw) *raw {
	slots := make([]*raw, len(r.slots))
	copy(slots, r.slots)
	slots[i] = child
	return newRawNode(r.kind, slots)
}

func (r *raw) write(sb *strings.Builder) {
	if r.tok != nil {
		sb.WriteString(r.tok.leading.String())
		sb.WriteString(r.tok.text)
		sb.WriteString(r.tok.trailing.String())
		return
	}
	for _, s := range r.slots {
		if s != nil {
			s.write(sb)
		}
	}
}

// firstToken returns the path to the first present token in r.
func (r *raw) firstToken(path []int) ([]int, *raw) {
	if r.tok != nil {
		if r.tok.missing {
			return nil, nil
		}
		return path, r
	}
	for i, s := range r.slots {
		if s == nil {
			continue
		}
		if p, t := s.firstToken(append(path, i)); t != nil {
			return p, t
		}
	}
	return nil, nil
}

func (r *raw) lastToken(path []int) ([]int, *raw) {
	if r.tok != nil {
		if r.tok.missing {
			return nil, nil
		}
		return path, r
	}
	for i := len(r.slots) - 1; i >= 0; i-- {
		s := r.slots[i]
		if s == nil {
			continue
		}
		if p, t := s.lastToken(append(path, i)); t != nil {
			return p, t
		}
	}
	return nil, nil
}

// replaceAt rebuilds r with the node at path replaced by repl.
func (r *raw) replaceAt(path []int, repl *raw) *raw {
	if len(path) == 0 {
		return repl
	}
	return r.withSlot(path[0], r.slots[path[0]].replaceAt(path[1:], repl))
}
