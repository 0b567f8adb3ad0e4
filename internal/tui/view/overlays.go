package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

const (
	detailSwatchWidth  = 24
	detailSwatchHeight = 5
)

// renderDetailOverlay shows every derived field of the selected colour and
// its closest neighbours across libraries.
func renderDetailOverlay(m *model.Model, swatch SwatchRenderer) string {
	c := m.Detail

	row := func(label, value string) string {
		return design.DetailLabelStyle.Render(label) + design.TextStyle.Render(value)
	}
	fields := []string{
		design.HelpTitleStyle.Render(c.DisplayName()),
		row("Name", c.Name),
		row("Hex", c.Hex),
		row("RGB", c.RGB.String()),
		row("HSL", c.HSL.String()),
		row("Family", c.Family.String()),
		row("Library", c.Library.String()),
	}
	info := strings.Join(fields, "\n")
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		swatch.Render(c, detailSwatchWidth, detailSwatchHeight, false),
		"  ",
		info,
	)

	var nearby []string
	if len(m.DetailNearby) > 0 {
		nearby = append(nearby, "", design.TextSecondaryStyle.Render("Nearest"))
		for _, match := range m.DetailNearby {
			chip := lipgloss.NewStyle().Background(lipgloss.Color(match.Color.NormalizedHex())).Render("    ")
			nearby = append(nearby, fmt.Sprintf("%s %-24s %-12s ΔE %5.2f",
				chip, match.Color.DisplayName(), match.Color.Library.ShortName(), match.Distance*100))
		}
	}

	footer := design.DimStyle.Render("y copy  •  esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(nearby, "\n"), "", footer)
	return placeOverlay(m, design.CenteredOverlayContainerStyle.Render(content))
}

// renderHelpOverlay lists every key binding.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())
	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpView)
	return placeOverlay(m, container)
}

// renderLogOverlay sizes the log viewport to 80% of the window and refreshes
// its content when the log or the width changed.
func renderLogOverlay(m *model.Model) string {
	titleView := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := max(overlayTotalWidth-design.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	newViewportHeight := max(overlayTotalHeight-design.LogOverlayStyle.GetVerticalFrameSize()-titleHeight, 0)

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight

	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		m.LogViewportLastWidth = m.LogViewport.Width
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
	return placeOverlay(m, overlay)
}

// PrepareLogContent wraps log lines to width and colours them by level.
func PrepareLogContent(lines []string, width int) string {
	if len(lines) == 0 {
		return design.DimStyle.Render("No log entries yet.")
	}
	wrap := lipgloss.NewStyle().Width(max(width, 1))

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, logLineStyle(line).Inherit(wrap).Render(line))
	}
	return strings.Join(out, "\n")
}

func logLineStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, " ERROR "):
		return design.LogErrorStyle
	case strings.Contains(line, " WARN "):
		return design.LogWarnStyle
	case strings.Contains(line, " DEBUG "):
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}

// placeOverlay centres an overlay above the status bar.
func placeOverlay(m *model.Model, overlay string) string {
	canvas := lipgloss.Place(m.Width, max(m.Height-1, 1), lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}
