package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"sprig/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the language server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runLSP,
}

func init() {
	lspCmd.Flags().Int("log-verbosity", 1, "commonlog verbosity (0 = quiet)")
	lspCmd.Flags().String("log-file", "", "write server logs to this file instead of stderr")
}

func runLSP(cmd *cobra.Command, args []string) error {
	verbosity, err := cmd.Flags().GetInt("log-verbosity")
	if err != nil {
		return err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}
	commonlog.Configure(verbosity, logPath)

	maxDiagnostics, err := intFlag(cmd, "max-diagnostics")
	if err != nil {
		return err
	}
	server := lsp.New(lsp.Options{
		IndentWidth:    state.cfg.Format.IndentWidth,
		UseTabs:        state.cfg.Format.UseTabs,
		MaxDiagnostics: maxDiagnostics,
	})
	return server.RunStdio()
}
