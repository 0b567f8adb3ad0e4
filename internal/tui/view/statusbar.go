package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

// renderStatusBar shows, in priority order: the search input, a pending
// toast, or the colour under the cursor with the short key help.
func renderStatusBar(m *model.Model, width int) string {
	if m.CurrentAppMode == model.ModeSearchInput {
		return design.StatusBarStyle.Width(width).Render(m.SearchInput.View())
	}

	if m.StatusBarMessage != "" {
		return statusStyle(m.StatusBarMessageType).Width(width).Render(m.StatusBarMessage)
	}

	left := ""
	if tab := m.CurrentTab(); tab != nil {
		if c, ok := tab.Current(); ok {
			idx, _ := tab.RealCursor()
			left = fmt.Sprintf("%s  %s  %s  %d/%d", c.DisplayName(), c.NormalizedHex(), c.Family, idx+1, tab.Index.RealLen())
		}
	}
	right := m.Help.ShortHelpView(m.Keys.ShortHelp())

	inner := width - design.StatusBarStyle.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return design.StatusBarStyle.Width(width).MaxHeight(1).Render(left)
	}
	return design.StatusBarStyle.Width(width).Render(left + spaces(gap) + right)
}

func statusStyle(t model.MessageType) lipgloss.Style {
	switch t {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
