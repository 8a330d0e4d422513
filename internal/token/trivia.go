package token

import "strings"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaTab
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaTab:
		return "Tab"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}

// Trivia is one piece of non-semantic text attached to a token.
// Space, tab and newline pieces hold a run of the same character.
type Trivia struct {
	Kind TriviaKind
	Text string
}

func (t Trivia) isSpaceOrTab() bool {
	return t.Kind == TriviaSpace || t.Kind == TriviaTab
}

// TriviaList is the ordered trivia on one side of a token.
type TriviaList []Trivia

// Spaces returns a trivia list holding n spaces.
func Spaces(n int) TriviaList {
	if n <= 0 {
		return nil
	}
	return TriviaList{{Kind: TriviaSpace, Text: strings.Repeat(" ", n)}}
}

// Tabs returns a trivia list holding n tabs.
func Tabs(n int) TriviaList {
	if n <= 0 {
		return nil
	}
	return TriviaList{{Kind: TriviaTab, Text: strings.Repeat("\t", n)}}
}

// Newline returns a trivia list with a single newline.
func Newline() TriviaList {
	return TriviaList{{Kind: TriviaNewline, Text: "\n"}}
}

// Whitespace splits a run of spaces, tabs and newlines into trivia pieces.
// Any other character ends the scan.
func Whitespace(s string) TriviaList {
	var out TriviaList
	for i := 0; i < len(s); {
		var kind TriviaKind
		switch s[i] {
		case ' ':
			kind = TriviaSpace
		case '\t':
			kind = TriviaTab
		case '\n':
			kind = TriviaNewline
		default:
			return out
		}
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		out = append(out, Trivia{Kind: kind, Text: s[i:j]})
		i = j
	}
	return out
}

func (l TriviaList) String() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	var sb strings.Builder
	for _, p := range l {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// HasNewline reports whether any piece is a newline.
func (l TriviaList) HasNewline() bool {
	for _, p := range l {
		if p.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// HasComment reports whether any piece is a comment.
func (l TriviaList) HasComment() bool {
	for _, p := range l {
		if p.Kind == TriviaLineComment || p.Kind == TriviaBlockComment {
			return true
		}
	}
	return false
}

// Indentation returns the spaces and tabs that follow the last newline in l.
// Without a newline the list only counts as indentation when the token
// already starts a line (isOnNewline), otherwise ok is false.
func (l TriviaList) Indentation(isOnNewline bool) (indent string, ok bool) {
	start := -1
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Kind == TriviaNewline {
			start = i + 1
			break
		}
	}
	if start < 0 {
		if !isOnNewline {
			return "", false
		}
		start = 0
	}
	var sb strings.Builder
	for _, p := range l[start:] {
		if !p.isSpaceOrTab() {
			break
		}
		sb.WriteString(p.Text)
	}
	return sb.String(), true
}

// TrimTrailingSpaces drops spaces and tabs at the end of the list.
func (l TriviaList) TrimTrailingSpaces() TriviaList {
	end := len(l)
	for end > 0 && l[end-1].isSpaceOrTab() {
		end--
	}
	return l[:end:end]
}

// TrimLeadingSpaces drops spaces and tabs at the start of the list.
func (l TriviaList) TrimLeadingSpaces() TriviaList {
	start := 0
	for start < len(l) && l[start].isSpaceOrTab() {
		start++
	}
	return l[start:]
}

// EndsWithSpace reports whether the last piece is horizontal whitespace.
func (l TriviaList) EndsWithSpace() bool {
	return len(l) > 0 && l[len(l)-1].isSpaceOrTab()
}

// StartsWithSpace reports whether the first piece is whitespace of any kind.
func (l TriviaList) StartsWithSpace() bool {
	return len(l) > 0 && (l[0].isSpaceOrTab() || l[0].Kind == TriviaNewline)
}
