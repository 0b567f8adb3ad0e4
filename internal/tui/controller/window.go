package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/tui/model"
)

// handleWindowSizeMsg records the terminal size. The first one is the point
// where the layout is known, so it also seeds every tab to the middle of its
// logical range and leaves ModeInitializing.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	cols, rows := m.GridSize()
	if !m.Seeded {
		for _, tab := range m.Tabs {
			tab.SeedMiddle(cols, rows)
		}
		m.Seeded = true
		LogDebug(m, controllerSubsystem, "seeded %d tabs at %dx%d (%d columns, %d rows)", len(m.Tabs), msg.Width, msg.Height, cols, rows)
	} else {
		for _, tab := range m.Tabs {
			tab.EnsureVisible(cols, rows)
		}
	}

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeBrowse
	}
	return m, nil
}
