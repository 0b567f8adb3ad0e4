package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

// renderHeader draws one tab per library plus the active sort order.
func renderHeader(m *model.Model, width int) string {
	var tabs []string
	for i, tab := range m.Tabs {
		label := fmt.Sprintf("%s (%d)", tab.Library.ShortName(), tab.Index.RealLen())
		if i == m.ActiveTab {
			tabs = append(tabs, design.TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, design.TabStyle.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	right := ""
	if tab := m.CurrentTab(); tab != nil {
		right = design.TextSecondaryStyle.Render("sort: " + tab.Order.String() + " ")
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return design.TabBarStyle.Width(width).Render(left + spaces(gap) + right)
}

func spaces(n int) string {
	return lipgloss.NewStyle().Width(n).Render("")
}
