package parser

import (
	"slices"

	"sprig/internal/diag"
	"sprig/internal/lexer"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/token"
)

type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser: состояние парсера на один фрагмент текста
type Parser struct {
	toks     []token.Token
	pos      int
	file     *source.File
	opts     Options
	errors   uint
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

func newParser(file *source.File, opts Options) *Parser {
	if opts.Reporter != nil {
		opts.Reporter = diag.NewDedupReporter(opts.Reporter)
	}
	return &Parser{
		toks:     lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter}),
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
}

// ParseSourceFile parses a whole file. The result always covers every byte of
// the input; text that does not parse ends up in Unexpected nodes.
func ParseSourceFile(file *source.File, opts Options) *syntax.Node {
	p := newParser(file, opts)
	items := p.parseCodeBlockItemList(false)
	eof := p.tokenNode(p.advance())
	return syntax.MakeNode(syntax.KindSourceFile, items, eof).InFile(file.ID)
}

// ParseExpr parses text as a single expression. Tokens left over after the
// expression are kept in an Unexpected node wrapping it, so the result
// reports HasError. Trivia after the last token is dropped.
func ParseExpr(text string) *syntax.Node {
	p := newParser(snippet(text), Options{})
	return p.finishSnippet(p.parseExpr())
}

// ParseType parses text as a single type, with the same rules as ParseExpr.
func ParseType(text string) *syntax.Node {
	p := newParser(snippet(text), Options{})
	return p.finishSnippet(p.parseType())
}

func snippet(text string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("<snippet>", []byte(text)))
}

func (p *Parser) finishSnippet(n *syntax.Node) *syntax.Node {
	if p.at(token.EOF) {
		return n
	}
	rest := []*syntax.Node{n}
	for !p.at(token.EOF) {
		rest = append(rest, p.tokenNode(p.advance()))
	}
	return syntax.MakeList(syntax.KindUnexpected, rest...)
}

// ===== токены =====

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atLineStart reports whether the next token starts a new line.
func (p *Parser) atLineStart() bool {
	return p.peek().Leading.HasNewline()
}

// advance: съедает следующий токен и обновляет lastSpan. EOF не съедается.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) tokenNode(t token.Token) *syntax.Node {
	return syntax.MakeToken(t.Kind, t.Text, t.Leading, t.Trailing)
}

// eat consumes the next token when it has kind k.
func (p *Parser) eat(k token.Kind) *syntax.Node {
	if p.at(k) {
		return p.tokenNode(p.advance())
	}
	return nil
}

// expect: ожидаем конкретный токен. Если нет, репортим и вставляем
// отсутствующий токен нулевой ширины.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) *syntax.Node {
	if p.at(k) {
		return p.tokenNode(p.advance())
	}
	p.err(code, msg)
	return syntax.MakeMissing(k)
}

// expectName accepts an identifier, a wildcard or a placeholder.
func (p *Parser) expectName() *syntax.Node {
	if p.atOr(token.Ident, token.Wildcard, token.Placeholder) {
		return p.tokenNode(p.advance())
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.peek().Text+"\"")
	return syntax.MakeMissing(token.Ident)
}
