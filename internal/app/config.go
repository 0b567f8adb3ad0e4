package app

import (
	"io"
	"os"

	"lon/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is a single directory holding config.yaml. Empty means the
	// layered user and project configuration.
	ConfigPath string

	// Out receives the CLI summary. Defaults to stdout.
	Out io.Writer

	// Lon configuration, filled in by NewApplication
	LonConfig *config.LonConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		Out:        os.Stdout,
	}
}
