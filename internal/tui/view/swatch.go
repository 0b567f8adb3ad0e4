package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"lon/internal/color"
	"lon/internal/tui/design"
)

// SwatchRenderer draws a single colour into a grid cell of the given size.
type SwatchRenderer interface {
	Render(c color.Color, width, height int, selected bool) string
}

// BlockRenderer fills the cell with the colour and prints the name and hex
// on top in whichever of black or white reads better.
type BlockRenderer struct{}

var _ SwatchRenderer = BlockRenderer{}

func (BlockRenderer) Render(c color.Color, width, height int, selected bool) string {
	if width < 1 || height < 1 {
		return ""
	}
	textWidth := max(width-2, 0)

	name := c.DisplayName()
	if selected {
		name = "▸ " + name
	}
	lines := []string{runewidth.Truncate(name, textWidth, "…")}
	if height > 1 {
		lines = append(lines, runewidth.Truncate(c.NormalizedHex(), textWidth, "…"))
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		PaddingLeft(1).
		Background(lipgloss.Color(c.NormalizedHex())).
		Foreground(LabelColor(c)).
		Bold(selected)
	return style.Render(strings.Join(lines, "\n"))
}

// LabelIsDark reports whether text on c should be dark, based on CIE L*.
func LabelIsDark(c color.Color) bool {
	l, _, _ := colorful.Color{
		R: float64(c.RGB.R) / 255,
		G: float64(c.RGB.G) / 255,
		B: float64(c.RGB.B) / 255,
	}.Lab()
	return l > 0.6
}

// LabelColor picks the label colour for text drawn on c.
func LabelColor(c color.Color) lipgloss.Color {
	if LabelIsDark(c) {
		return design.ColorLabelDark
	}
	return design.ColorLabelLight
}
