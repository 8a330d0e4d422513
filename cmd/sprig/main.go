package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sprig/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sprig",
	Short: "Editor placeholder expansion and closure formatting",
	Long: `sprig expands editor placeholders (<#T##display##type#>) into closure
literals and formats source in the compact closure style.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareRun,
}

// main registers subcommands and global flags and runs the root command.
// A command error exits with status 1.
func main() {
	rootCmd.Version = version.Current()

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.String("ui", "auto", "progress UI (auto|on|off)")
	pf.Int("jobs", 0, "parallel file workers (0 = GOMAXPROCS)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("diagnostics", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("config", "", "path to sprig.toml (default: search upwards)")
	pf.String("trace", "", "trace output file (\"-\" for stderr)")
	pf.String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 0, "ring buffer size for --trace-mode=ring|both")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval")
	pf.Bool("timings", false, "print phase timings to stderr")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	err := rootCmd.Execute()
	finishRun()
	if err != nil {
		if !isQuiet(rootCmd) {
			fmt.Fprintln(os.Stderr, errorColor(os.Stderr).Sprint("error: ")+err.Error())
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- дескриптор помещается в int
}
