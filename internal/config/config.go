// Package config holds all application configuration settings
package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Mode selection
	StructureOnly bool
	StructureAll  bool
	HelpOnly      bool

	// Filtering settings
	CustomIgnore string
	UseGitignore bool

	// Output settings
	OutputFile      string
	CopyToClipboard bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Version info
	Version string
}

// New creates a Config with default values. Flag binding happens in the
// command layer; this only establishes defaults.
func New() *Config {
	return &Config{
		LogLevel: "INFO",
		Version:  "1.0.0", // Update this when releasing new versions
	}
}

// DetectColors decides whether colored output should be used, based on the
// no-color flag, whether stderr is a terminal, and the output destination.
func (c *Config) DetectColors() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""
}
