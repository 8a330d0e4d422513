package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sprig/internal/diagfmt"
	"sprig/internal/driver"
	"sprig/internal/editio"
	"sprig/internal/fix"
	"sprig/internal/source"
	"sprig/internal/ui"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <path> [path...]",
	Short: "Expand editor placeholders",
	Long: `Expand replaces editor placeholders with their expansions. Closure-typed
placeholders become closure literals; trailing closure arguments of a call
are expanded together. Without --write the edits are printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().String("at", "", "expand only the placeholder at OFFSET or LINE:COL")
	expandCmd.Flags().Bool("write", false, "apply the edits to the files")
	expandCmd.Flags().String("output", "text", "edit list encoding (text|json|msgpack)")
	expandCmd.Flags().Bool("preview", false, "print a diff-like preview instead of the edit list")
	expandCmd.Flags().Bool("call-expansion", true, "expand trailing closure arguments at the call")
}

type expandOutcome struct {
	fs      *source.FileSet
	results []driver.ExpandResult
}

func runExpand(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	atStr, err := flags.GetString("at")
	if err != nil {
		return err
	}
	write, err := flags.GetBool("write")
	if err != nil {
		return err
	}
	outputStr, err := flags.GetString("output")
	if err != nil {
		return err
	}
	preview, err := flags.GetBool("preview")
	if err != nil {
		return err
	}
	callExpansion, err := flags.GetBool("call-expansion")
	if err != nil {
		return err
	}
	if !flags.Changed("call-expansion") {
		callExpansion = state.cfg.Expand.PreferCallExpansion
	}
	encoding, err := editio.ParseEncoding(outputStr)
	if err != nil {
		return err
	}
	jobs, err := intFlag(cmd, "jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := intFlag(cmd, "max-diagnostics")
	if err != nil {
		return err
	}

	opts := driver.ExpandOptions{
		Jobs:                jobs,
		MaxDiagnostics:      maxDiagnostics,
		IndentationUnit:     state.cfg.IndentationUnit(),
		PreferCallExpansion: callExpansion,
		Write:               write,
	}
	if atStr != "" {
		if len(args) != 1 {
			return errors.New("expand: --at needs exactly one file")
		}
		at, err := driver.ParseCursor(atStr)
		if err != nil {
			return err
		}
		opts.At = &at
	}

	ctx := cmd.Context()
	endCollect := phase("collect")
	files, err := driver.CollectSourceFiles(ctx, args)
	if err != nil {
		return err
	}
	endCollect(fmt.Sprintf("%d files", len(files)))
	work := func(progress driver.ProgressFunc) (expandOutcome, error) {
		opts.Progress = progress
		fs, results, err := driver.ExpandFiles(ctx, files, opts)
		return expandOutcome{fs: fs, results: results}, err
	}

	tui, err := shouldUseTUI(cmd, len(files))
	if err != nil {
		return err
	}
	endExpand := phase("expand")
	var out expandOutcome
	if tui {
		out, err = ui.Run(ctx, os.Stderr, "expand", files, work)
	} else {
		out, err = work(nil)
	}
	if err != nil {
		return err
	}
	endExpand("")
	endOutput := phase("output")
	defer func() { endOutput("") }()

	var edits []fix.SourceEdit
	failed := 0
	for _, res := range out.results {
		switch {
		case res.Err == nil:
			edits = append(edits, res.Edits...)
			if err := printDiagnostics(cmd, res.Bag, out.fs); err != nil {
				return err
			}
		case errors.Is(res.Err, driver.ErrNoPlaceholders) && opts.At == nil:
			// файлы без плейсхолдеров в пакетном режиме не ошибка
		default:
			failed++
			reportFailure(cmd, "expand", res.Path, res.File, res.Bag, out.fs, res.Err)
		}
	}

	switch {
	case write:
		if !isQuiet(cmd) {
			printExpandSummary(cmd, out.results, len(edits))
		}
	case preview:
		if err := diagfmt.WritePreviews(cmd.OutOrStdout(), out.fs, edits, useColor(cmd, os.Stdout)); err != nil {
			return err
		}
	default:
		if err := editio.Encode(cmd.OutOrStdout(), editio.NewDocument(out.fs, edits), encoding); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("expand: %d of %d files failed", failed, len(out.results))
	}
	return nil
}

func printExpandSummary(cmd *cobra.Command, results []driver.ExpandResult, edits int) {
	written := 0
	for _, res := range results {
		if res.Written {
			written++
			fmt.Fprintf(cmd.OutOrStdout(), "expanded %s (%d edits)\n", res.Path, len(res.Edits))
		}
	}
	ok := color.New(color.FgGreen, color.Bold)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d edits in %d files\n", ok.Sprint("done:"), edits, written)
}
