// Package config loads sprig.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sprig/internal/format"
	"sprig/internal/trace"
)

// FileName is the name looked up from the working directory upwards.
const FileName = "sprig.toml"

// Config is the effective configuration. Zero values are never used
// directly; Default fills them in.
type Config struct {
	Format FormatConfig `toml:"format"`
	Expand ExpandConfig `toml:"expand"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is the file the configuration came from, empty for defaults.
	Path string `toml:"-"`
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

type ExpandConfig struct {
	PreferCallExpansion bool `toml:"prefer_call_expansion"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the configuration used when no sprig.toml is found.
func Default() Config {
	return Config{
		Format: FormatConfig{IndentWidth: 4},
		Expand: ExpandConfig{PreferCallExpansion: true},
		Trace:  TraceConfig{Level: "off", Output: "-"},
	}
}

// IndentationUnit is the unit the formatter and the expanders use.
func (c Config) IndentationUnit() string {
	return format.IndentUnit(c.Format.IndentWidth, c.Format.UseTabs)
}

// TraceLevel parses Trace.Level.
func (c Config) TraceLevel() (trace.Level, error) {
	return trace.ParseLevel(c.Trace.Level)
}

// Find walks up from startDir looking for sprig.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads sprig.toml above startDir, falling back to
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads one file. Keys the file leaves out keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("format", "indent_width") && (cfg.Format.IndentWidth < 1 || cfg.Format.IndentWidth > 16) {
		return Config{}, fmt.Errorf("%s: [format].indent_width must be between 1 and 16, got %d", path, cfg.Format.IndentWidth)
	}
	if meta.IsDefined("trace", "level") {
		if _, err := cfg.TraceLevel(); err != nil {
			return Config{}, fmt.Errorf("%s: [trace].level: %w", path, err)
		}
	}
	if meta.IsDefined("trace", "output") && strings.TrimSpace(cfg.Trace.Output) == "" {
		return Config{}, fmt.Errorf("%s: [trace].output must not be empty", path)
	}
	cfg.Path = path
	return cfg, nil
}
