package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sprig/internal/driver"
	"sprig/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.swift",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("source", false, "print the tree's source text instead of the dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	printSource, err := cmd.Flags().GetBool("source")
	if err != nil {
		return err
	}
	maxDiagnostics, err := intFlag(cmd, "max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	text := syntax.Dump(result.Root)
	if printSource {
		text = result.Root.String()
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("parse: %s has syntax errors", args[0])
	}
	return nil
}
