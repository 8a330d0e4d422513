package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"sprig/internal/diag"
	"sprig/internal/format"
	"sprig/internal/source"
	"sprig/internal/trace"
)

// ErrUnstable is set on a result whose formatted output does not reparse to
// the same tokens.
var ErrUnstable = errors.New("formatting changed the syntax tree")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	Jobs           int
	MaxDiagnostics int
	Options        format.Options
	Progress       ProgressFunc
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	File      *source.File
	Changed   bool
	Formatted []byte
	Bag       *diag.Bag
	Err       error
}

// FormatPaths formats provided files or directories (recursively collecting
// source files). With opts.Check files are not modified and Changed tells
// whether formatting would update them. With opts.Stdout the formatted
// content is returned in the results without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles is FormatPaths over files already collected by
// CollectSourceFiles.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "format_files")
	defer span.End("")

	if len(files) == 0 {
		return nil, nil, errors.New("format: no source files found")
	}

	fileSet, inputs := loadAll(files)
	results := make([]FormatResult, len(inputs))
	err := forEach(ctx, len(inputs), opts.Jobs, func(ctx context.Context, i int) error {
		results[i] = formatOne(ctx, inputs[i], i, len(inputs), opts)
		opts.Progress.emit(ProgressEvent{Path: inputs[i].path, Index: i, Total: len(inputs), Stage: StageDone, Err: results[i].Err})
		return nil
	})
	return fileSet, results, err
}

func formatOne(ctx context.Context, in loaded, index, total int, opts FormatOptions) FormatResult {
	res := FormatResult{Path: in.path, File: in.file, Bag: newBag(opts.MaxDiagnostics)}
	if in.err != nil {
		loadError(res.Bag, in.path, in.err)
		res.Err = in.err
		return res
	}

	fileSpan, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+in.path)
	defer fileSpan.End("")

	opts.Progress.emit(ProgressEvent{Path: in.path, Index: index, Total: total, Stage: StageParse})
	if root := parseFile(ctx, in.file, res.Bag); root.HasError() {
		res.Err = fmt.Errorf("format %s: %w", in.path, format.ErrSyntax)
		return res
	}

	opts.Progress.emit(ProgressEvent{Path: in.path, Index: index, Total: total, Stage: StageFormat})
	span, _ := trace.StartSpan(ctx, trace.ScopePass, "format")
	formatted, err := format.FormatSource(in.file, opts.Options)
	span.End("")
	if err != nil {
		res.Err = err
		return res
	}
	if ok, msg := format.CheckRoundTrip(in.file, formatted); !ok {
		res.Bag.Add(diag.NewError(diag.RefFormatChangedTree, source.Span{File: in.file.ID}, msg))
		res.Err = fmt.Errorf("%s: %w", in.path, ErrUnstable)
		return res
	}

	res.Changed = !bytes.Equal(in.file.Content, formatted)
	switch {
	case opts.Check:
	case opts.Stdout:
		res.Formatted = formatted
	case res.Changed:
		opts.Progress.emit(ProgressEvent{Path: in.path, Index: index, Total: total, Stage: StageWrite})
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(in.path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(in.path, in.file.HostContent(formatted), mode.Perm()); err != nil {
			res.Bag.Add(diag.NewError(diag.IOWriteError, source.Span{File: in.file.ID}, err.Error()))
			res.Err = err
		}
		trace.Point(ctx, trace.ScopeFile, "write", in.path, err)
	}
	return res
}
