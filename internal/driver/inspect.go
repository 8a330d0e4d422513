package driver

import (
	"context"

	"sprig/internal/diag"
	"sprig/internal/lexer"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/token"
	"sprig/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := newBag(maxDiagnostics)

	span, _ := trace.StartSpan(ctx, trace.ScopePass, "lex")
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	span.End(path)

	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *syntax.Node
	Bag     *diag.Bag
}

// Parse parses one file.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := newBag(maxDiagnostics)
	root := parseFile(ctx, file, bag)
	return &ParseResult{FileSet: fs, File: file, Root: root, Bag: bag}, nil
}
