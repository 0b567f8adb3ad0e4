package controller

import (
	"lon/internal/tui/model"
	"lon/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...any) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message when the TUI runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...any) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogError logs an error message.
func LogError(subsystem string, err error, format string, a ...any) {
	logging.Error(subsystem, err, format, a...)
}
