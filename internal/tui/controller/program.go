package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/tui/model"
	"lon/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the colour browser.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen()), nil
}
