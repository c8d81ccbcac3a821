// Package config handles command-line argument parsing, the settings
// file, and its live reload.
package config

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/absop/quickbrowse/pkg/filesystem"
)

// Config holds the application configuration.
type Config struct {
	Path      string `arg:"positional" help:"File or directory to browse (local path or sftp://user@host/path)"`
	Recursive bool   `arg:"-r,--recursive" help:"List all files under the starting directory recursively"`
	Settings  string `arg:"--settings" help:"Settings file path (default ~/.config/quickbrowse/settings.json)"`

	// InteractiveInput is set when no path was given: the TUI opens with
	// the path-input screen instead of a listing.
	InteractiveInput bool `arg:"-"`
}

// Description returns the program description for go-arg.
func (Config) Description() string {
	return "An interactive file browser with a searchable selection panel"
}

// Version returns the version string for go-arg.
func (Config) Version() string {
	return "quickbrowse 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags() (*Config, error) {
	cfg := &Config{}
	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config.
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Path == "" {
		cfg.InteractiveInput = true
		return cfg, nil
	}

	if err := cfg.ValidatePath(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidatePath validates that the starting path exists. Remote URLs are
// only checked for shape here; their existence is checked on connect.
func (cfg *Config) ValidatePath() error {
	parsed, err := filesystem.ParsePath(cfg.Path)
	if err != nil {
		return err
	}

	if parsed.IsRemote {
		return nil
	}

	if _, err := os.Stat(parsed.LocalPath); err != nil {
		return fmt.Errorf("no such file or directory:\n    %s", parsed.LocalPath)
	}

	return nil
}
