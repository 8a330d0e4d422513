package fuzztests

import (
	"context"
	"testing"
	"time"

	"sprig/internal/diag"
	"sprig/internal/fix"
	"sprig/internal/lexer"
	"sprig/internal/parser"
	"sprig/internal/refactor"
	"sprig/internal/source"
	"sprig/internal/testkit"
)

// parseTimeout bounds one input; longer means error recovery is looping.
const parseTimeout = 5 * time.Second

func load(input []byte) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fuzz.swift", clampInput(input)))
}

func FuzzLexerCoversInput(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := load(input)
		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokensCover(toks, file); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzParserRoundTrip(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := load(input)
		done := make(chan error, 1)
		go func() {
			bag := diag.NewBag(128)
			root := parser.ParseSourceFile(file, parser.Options{MaxErrors: 128, Reporter: diag.BagReporter{Bag: bag}})
			done <- testkit.CheckTreeInvariants(root, file)
		}()
		select {
		case err := <-done:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang on %d bytes", len(file.Content))
		}
	})
}

func FuzzExpandAllApplies(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := load(input)
		root := parser.ParseSourceFile(file, parser.Options{})
		edits := refactor.ExpandAll(context.Background(), root, refactor.BatchOptions{
			IndentationUnit:     "    ",
			PreferCallExpansion: true,
		})
		if _, err := fix.Apply(file.Content, edits); err != nil {
			t.Fatalf("expansion edits do not apply: %v", err)
		}
	})
}
