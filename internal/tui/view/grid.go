package view

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

// renderGrid draws the visible rows of the active tab. Cell width stretches
// to fill width evenly; height is the space left between header and status bar.
func renderGrid(m *model.Model, swatch SwatchRenderer, width, height int) string {
	tab := m.CurrentTab()
	if tab == nil || tab.Index.RealLen() == 0 {
		msg := design.DimStyle.Render("No colours in this library")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	cols, rows := m.GridSize()
	cellWidth := max(width/cols, 1)
	cellHeight := max(m.UI.CellHeight, 1)
	blank := strings.Repeat(" ", cellWidth)

	var lines []string
	for r := 0; r < rows; r++ {
		row := tab.Top + r
		cells := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			pos, ok := logicalPosition(row, c, cols)
			if !ok || pos >= tab.Index.Len() {
				cells = append(cells, lipgloss.NewStyle().Width(cellWidth).Height(cellHeight).Render(blank))
				continue
			}
			col, _ := tab.Index.At(pos)
			cells = append(cells, swatch.Render(col, cellWidth, cellHeight, pos == tab.Cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(strings.Join(lines, "\n"))
}

// logicalPosition converts a grid coordinate to a position, reporting false
// when the result would not fit in an int.
func logicalPosition(row, col, cols int) (int, bool) {
	if row < 0 || row > (math.MaxInt-col)/cols {
		return 0, false
	}
	return row*cols + col, true
}
