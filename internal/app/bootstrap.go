package app

import (
	"context"
	"fmt"
	"os"

	"lon/internal/config"
	"lon/pkg/logging"
)

// Application is the main application structure that bootstraps and runs lon
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and the colour catalog. Any failure
// here is fatal for the process.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr so command output on stdout stays machine readable.
	// The TUI replaces this with the channel logger.
	logging.InitForCLI(appLogLevel, os.Stderr)

	lonCfg, err := LoadConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg.LonConfig = &lonCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// LoadConfig reads the lon configuration the way cfg asks for: a single
// directory when ConfigPath is set, the layered lookup otherwise.
func LoadConfig(cfg *Config) (config.LonConfig, error) {
	if cfg.ConfigPath != "" {
		lonCfg, err := config.LoadConfigFromDir(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return config.LonConfig{}, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
		return lonCfg, nil
	}

	lonCfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return config.LonConfig{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	return lonCfg, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the application in non-interactive CLI mode
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.services)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
