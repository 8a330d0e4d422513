package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"sprig/internal/diag"
	"sprig/internal/parser"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/trace"
)

const defaultMaxDiagnostics = 256

// loaded is one input file after the sequential load step.
type loaded struct {
	path string
	file *source.File
	err  error
}

// loadAll reads every path into one FileSet up front, so workers only read
// from it.
func loadAll(paths []string) (*source.FileSet, []loaded) {
	fs := source.NewFileSetWithBase(".")
	out := make([]loaded, len(paths))
	for i, p := range paths {
		out[i].path = p
		id, err := fs.Load(p)
		if err != nil {
			out[i].err = err
			continue
		}
		out[i].file = fs.Get(id)
	}
	return fs, out
}

func newBag(maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	return diag.NewBag(maxDiagnostics)
}

func loadError(bag *diag.Bag, path string, err error) {
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, fmt.Sprintf("failed to load %s: %v", path, err)))
}

// parseFile parses file and reports syntax problems into bag.
func parseFile(ctx context.Context, file *source.File, bag *diag.Bag) *syntax.Node {
	span, _ := trace.StartSpan(ctx, trace.ScopePass, "parse")
	defer span.End(file.Path)

	maxErrors, err := safecast.Conv[uint](bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	return parser.ParseSourceFile(file, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  diag.BagReporter{Bag: bag},
	})
}

// forEach runs fn for every index with at most jobs workers. Each fn writes
// only its own result slot.
func forEach(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
