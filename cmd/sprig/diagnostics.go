package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sprig/internal/diag"
	"sprig/internal/diagfmt"
	"sprig/internal/source"
)

// printDiagnostics renders bag to stderr in the --diagnostics format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || fs == nil || bag.Len() == 0 {
		return nil
	}
	mode, err := cmd.Root().PersistentFlags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch strings.ToLower(mode) {
	case "pretty", "":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   1,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		})
	case "short":
		if out := diag.FormatShort(bag.Items(), fs, true); out != "" {
			_, err = io.WriteString(w, out+"\n")
		}
	case "json":
		err = diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         diagfmt.PathModeRelative,
		})
	default:
		return fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json)", mode)
	}
	return err
}

// reportFailure prints a per-file failure. Load failures have no file to
// point into, so they are printed as a plain line.
func reportFailure(cmd *cobra.Command, command, path string, file *source.File, bag *diag.Bag, fs *source.FileSet, err error) {
	if file != nil && bag != nil && bag.Len() > 0 {
		if perr := printDiagnostics(cmd, bag, fs); perr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", command, perr)
		}
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %v\n", command, path, err)
	}
}
