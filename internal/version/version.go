// Package version holds build metadata for the sprig CLI.
// Variables are overridden at build time via -ldflags "-X sprig/internal/version.Version=...".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Current returns the trimmed version string, "dev" when empty.
func Current() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// Colored renders Current with major, minor and patch painted apart.
// Anything that is not "X.Y.Z[-suffix]" is returned as is.
func Colored(enabled bool) string {
	v := Current()
	core, suffix, hasSuffix := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if !enabled || len(parts) != 3 {
		return v
	}
	out := paint(parts[0], color.FgYellow) + "." + paint(parts[1], color.FgGreen) + "." + paint(parts[2], color.FgBlue)
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}

// paint ignores the global NoColor switch; the caller decides.
func paint(s string, fg color.Attribute) string {
	c := color.New(fg, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
