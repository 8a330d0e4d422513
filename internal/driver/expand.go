package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"sprig/internal/diag"
	"sprig/internal/fix"
	"sprig/internal/refactor"
	"sprig/internal/source"
	"sprig/internal/syntax"
	"sprig/internal/trace"
)

// ErrNoPlaceholders is set on a result whose file (or cursor) has no
// placeholder to expand.
var ErrNoPlaceholders = errors.New("no editor placeholders to expand")

// ExpandOptions configures ExpandPaths.
type ExpandOptions struct {
	Jobs                int
	MaxDiagnostics      int
	IndentationUnit     string
	PreferCallExpansion bool
	// At restricts expansion to the placeholder under the cursor.
	At *Cursor
	// Write applies the edits to the files on disk.
	Write    bool
	Progress ProgressFunc
}

// ExpandResult is the outcome for one file.
type ExpandResult struct {
	Path  string
	File  *source.File
	Edits []fix.SourceEdit
	// Output is the file content with Edits applied.
	Output  []byte
	Written bool
	Bag     *diag.Bag
	Err     error
}

// ExpandPaths expands placeholders in every source file under paths. Results
// come back in input order; per-file failures are reported in
// ExpandResult.Err and only cancellation or collection errors fail the call.
func ExpandPaths(ctx context.Context, paths []string, opts ExpandOptions) (*source.FileSet, []ExpandResult, error) {
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	return ExpandFiles(ctx, files, opts)
}

// ExpandFiles is ExpandPaths over files already collected by
// CollectSourceFiles. Results follow the order of files.
func ExpandFiles(ctx context.Context, files []string, opts ExpandOptions) (*source.FileSet, []ExpandResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "expand_files")
	defer span.End("")

	if len(files) == 0 {
		return nil, nil, errors.New("expand: no source files found")
	}
	span.WithExtra("files", strconv.Itoa(len(files)))

	fileSet, inputs := loadAll(files)
	results := make([]ExpandResult, len(inputs))
	for i, in := range inputs {
		opts.Progress.emit(ProgressEvent{Path: in.path, Index: i, Total: len(inputs), Stage: StageQueued})
	}

	err := forEach(ctx, len(inputs), opts.Jobs, func(ctx context.Context, i int) error {
		results[i] = expandOne(ctx, inputs[i], i, len(inputs), opts)
		return nil
	})
	if err != nil {
		return fileSet, results, err
	}

	if opts.Write {
		writeExpanded(ctx, fileSet, results, opts)
	}
	for i := range results {
		opts.Progress.emit(ProgressEvent{Path: results[i].Path, Index: i, Total: len(results), Stage: StageDone, Err: results[i].Err})
	}
	return fileSet, results, nil
}

func expandOne(ctx context.Context, in loaded, index, total int, opts ExpandOptions) ExpandResult {
	res := ExpandResult{Path: in.path, File: in.file, Bag: newBag(opts.MaxDiagnostics)}
	if in.err != nil {
		loadError(res.Bag, in.path, in.err)
		res.Err = in.err
		return res
	}

	fileSpan, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+in.path)
	defer func() { fileSpan.End(strconv.Itoa(len(res.Edits)) + " edits") }()

	opts.Progress.emit(ProgressEvent{Path: in.path, Index: index, Total: total, Stage: StageParse})
	root := parseFile(ctx, in.file, res.Bag)

	opts.Progress.emit(ProgressEvent{Path: in.path, Index: index, Total: total, Stage: StageExpand})
	if opts.At != nil {
		res.Edits, res.Err = expandAtCursor(root, in.file, *opts.At, opts, res.Bag)
	} else {
		res.Edits = refactor.ExpandAll(ctx, root, refactor.BatchOptions{
			IndentationUnit:     opts.IndentationUnit,
			PreferCallExpansion: opts.PreferCallExpansion,
		})
		if len(res.Edits) == 0 {
			res.Err = ErrNoPlaceholders
		}
	}
	if res.Err != nil {
		return res
	}

	out, err := fix.Apply(in.file.Content, res.Edits)
	if err != nil {
		res.Bag.Add(diag.NewError(diag.RefEditConflict, source.Span{File: in.file.ID}, err.Error()))
		res.Err = err
		return res
	}
	res.Output = out
	return res
}

func expandAtCursor(root *syntax.Node, file *source.File, at Cursor, opts ExpandOptions, bag *diag.Bag) ([]fix.SourceEdit, error) {
	off, ok := at.Resolve(file)
	if !ok {
		return nil, fmt.Errorf("position %s is outside %s", at, file.Path)
	}
	tok := refactor.FindPlaceholderAt(root, off)
	if tok == nil {
		bag.Add(diag.New(diag.SevWarning, diag.RefNoPlaceholder,
			source.Span{File: file.ID, Start: off, End: off}, "no editor placeholder at "+at.String()))
		return nil, ErrNoPlaceholders
	}
	if opts.PreferCallExpansion {
		return refactor.ExpandPlaceholder(tok, refactor.Context{IndentationUnit: opts.IndentationUnit}), nil
	}
	return refactor.ExpandSinglePlaceholder(tok, refactor.SingleContext{IndentationUnit: opts.IndentationUnit}), nil
}

// writeExpanded writes every successful result back to disk in one pass.
func writeExpanded(ctx context.Context, fileSet *source.FileSet, results []ExpandResult, opts ExpandOptions) {
	byID := make(map[source.FileID]int)
	var edits []fix.SourceEdit
	for i := range results {
		if results[i].Err != nil || len(results[i].Edits) == 0 {
			continue
		}
		byID[results[i].File.ID] = i
		edits = append(edits, results[i].Edits...)
		opts.Progress.emit(ProgressEvent{Path: results[i].Path, Index: i, Total: len(results), Stage: StageWrite})
	}
	if len(edits) == 0 {
		return
	}

	applied, err := fix.ApplyFiles(fileSet, edits)
	for _, ch := range applied.FileChanges {
		if i, ok := byID[ch.File]; ok {
			results[i].Written = true
		}
	}
	for _, sk := range applied.Skipped {
		if i, ok := byID[sk.File]; ok {
			results[i].Err = errors.New(sk.Reason)
		}
	}
	if err != nil {
		// ApplyFiles stops at the first failed write; the rest stay unwritten.
		for _, i := range byID {
			if !results[i].Written && results[i].Err == nil {
				results[i].Err = err
				results[i].Bag.Add(diag.NewError(diag.IOWriteError, source.Span{File: results[i].File.ID}, err.Error()))
			}
		}
	}
	trace.Point(ctx, trace.ScopeFile, "write", strconv.Itoa(len(applied.FileChanges))+" files", err)
}
