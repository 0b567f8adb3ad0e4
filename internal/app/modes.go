package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"lon/internal/tui/controller"
	"lon/internal/tui/design"
	"lon/internal/tui/model"
	"lon/pkg/logging"
)

// runCLIMode prints a summary of the loaded libraries and exits.
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Running in no-TUI mode.")
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return writeSummary(out, services)
}

func writeSummary(out io.Writer, services *Services) error {
	cat := services.Catalog

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"LIBRARY", "KEY", "COLOURS"})
	for _, lib := range cat.Libraries() {
		t.AppendRow(table.Row{lib.String(), lib.Key(), cat.Count(lib)})
	}
	t.AppendFooter(table.Row{"", "total", cat.Total()})
	t.Render()

	_, err := fmt.Fprintln(out, "Run 'lon' without --no-tui to browse.")
	return err
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	ui := config.LonConfig.UI
	design.Initialize(ui.DarkMode)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		Catalog:   services.Catalog,
		UI:        ui,
		DebugMode: config.Debug,
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}
