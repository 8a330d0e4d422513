package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sprig/internal/driver"
	"sprig/internal/format"
	"sprig/internal/source"
	"sprig/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format source files in the closure-literal style",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
}

type fmtOutcome struct {
	fs      *source.FileSet
	results []driver.FormatResult
}

type fmtFileJSON struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	jobs, err := intFlag(cmd, "jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := intFlag(cmd, "max-diagnostics")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	endCollect := phase("collect")
	files, err := driver.CollectSourceFiles(ctx, args)
	if err != nil {
		return err
	}
	endCollect(fmt.Sprintf("%d files", len(files)))
	work := func(progress driver.ProgressFunc) (fmtOutcome, error) {
		fs, results, err := driver.FormatFiles(ctx, files, driver.FormatOptions{
			Check:          check,
			Stdout:         writeToStdout,
			Jobs:           jobs,
			MaxDiagnostics: maxDiagnostics,
			Options:        format.Options{IndentationUnit: state.cfg.IndentationUnit()},
			Progress:       progress,
		})
		return fmtOutcome{fs: fs, results: results}, err
	}

	tui, err := shouldUseTUI(cmd, len(files))
	if err != nil {
		return err
	}
	endFormat := phase("format")
	var out fmtOutcome
	if tui && !writeToStdout {
		out, err = ui.Run(ctx, os.Stderr, "fmt", files, work)
	} else {
		out, err = work(nil)
	}
	if err != nil {
		return err
	}
	endFormat("")
	endOutput := phase("output")
	defer func() { endOutput("") }()

	var hasErrors, hasChanges bool
	report := make([]fmtFileJSON, 0, len(out.results))
	for _, res := range out.results {
		entry := fmtFileJSON{Path: res.Path, Changed: res.Changed}
		if res.Err != nil {
			hasErrors = true
			entry.Error = res.Err.Error()
			reportFailure(cmd, "fmt", res.Path, res.File, res.Bag, out.fs, res.Err)
		} else if res.Changed {
			hasChanges = true
		}
		report = append(report, entry)

		if res.Err != nil || outputFormat != "text" {
			continue
		}
		switch {
		case writeToStdout:
			_, _ = cmd.OutOrStdout().Write(res.Formatted)
		case check && res.Changed:
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", res.Path)
		case !check && res.Changed && !isQuiet(cmd):
			fmt.Fprintf(cmd.OutOrStdout(), "formatted %s\n", res.Path)
		}
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}
