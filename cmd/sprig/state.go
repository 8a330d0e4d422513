package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sprig/internal/config"
	"sprig/internal/observ"
	"sprig/internal/prof"
)

// runState is what PersistentPreRunE prepares for every subcommand.
type runState struct {
	cfg     config.Config
	timer   *observ.Timer
	cleanup func()
}

var state = runState{cfg: config.Default(), cleanup: func() {}}

func prepareRun(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state.cfg = cfg

	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	session, err := startProfiling(cmd)
	if err != nil {
		cleanup()
		return err
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		state.timer = observ.NewTimer()
	}
	state.cleanup = func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profiling: %v\n", err)
		}
		cleanup()
	}
	return nil
}

func finishRun() {
	if state.timer != nil {
		fmt.Fprint(os.Stderr, state.timer.Summary())
		state.timer = nil
	}
	state.cleanup()
	state.cleanup = func() {}
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPUPath, err = pf.GetString("cpu-profile"); err != nil {
		return nil, err
	}
	if opts.MemPath, err = pf.GetString("mem-profile"); err != nil {
		return nil, err
	}
	if opts.TracePath, err = pf.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if !opts.Enabled() {
		return nil, nil
	}
	return prof.Start(opts)
}

// phase starts a timed phase when --timings is on. The returned func ends it.
func phase(name string) func(note string) {
	if state.timer == nil {
		return func(string) {}
	}
	t := state.timer
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// applyColorMode sets fatih/color's global switch from --color.
func applyColorMode(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// useColor reports whether output to f should be colorized.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch strings.ToLower(mode) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f) && os.Getenv("NO_COLOR") == ""
	}
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

func errorColor(f *os.File) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if !isTerminal(f) {
		c.DisableColor()
	}
	return c
}

func intFlag(cmd *cobra.Command, name string) (int, error) {
	v, err := cmd.Root().PersistentFlags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}
