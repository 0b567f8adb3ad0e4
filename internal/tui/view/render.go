package view

import (
	"github.com/charmbracelet/lipgloss"

	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

// DefaultSwatch is the renderer used for grid cells and the detail swatch.
var DefaultSwatch SwatchRenderer = BlockRenderer{}

// Render draws the whole screen for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextStyle.Render("Bye.")
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return design.TextStyle.Render("Initializing... (waiting for window size)")
		}
		return design.TextStyle.Render("Initializing...")
	case model.ModeDetailOverlay:
		return renderDetailOverlay(m, DefaultSwatch)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderBrowse(m, DefaultSwatch)
	}
}

// renderBrowse lays out the tab bar, the grid and the status bar.
func renderBrowse(m *model.Model, swatch SwatchRenderer) string {
	header := renderHeader(m, m.Width)
	status := renderStatusBar(m, m.Width)
	gridHeight := max(m.Height-lipgloss.Height(header)-lipgloss.Height(status), 1)
	grid := renderGrid(m, swatch, m.Width, gridHeight)
	grid = lipgloss.NewStyle().Height(gridHeight).Render(grid)
	return lipgloss.JoinVertical(lipgloss.Left, header, grid, status)
}
