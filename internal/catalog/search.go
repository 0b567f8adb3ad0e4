package catalog

import (
	"cmp"
	"slices"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"lon/internal/color"
)

// Match is a colour paired with its perceptual distance from a query.
type Match struct {
	Color    color.Color `json:"color" yaml:"color"`
	Distance float64     `json:"distance" yaml:"distance"`
}

// Find looks up a colour by exact name (ignoring case, with or without
// hyphens) or by hex value. Libraries are searched in tab order.
func (c *Catalog) Find(query string) (color.Color, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return color.Color{}, false
	}

	rgb, isHex := color.ParseHex(query)
	for _, lib := range c.Libraries() {
		for _, col := range c.colors[lib] {
			if strings.EqualFold(col.Name, query) || strings.EqualFold(col.DisplayName(), query) {
				return col, true
			}
			if isHex && col.RGB == rgb {
				return col, true
			}
		}
	}
	return color.Color{}, false
}

// Nearest returns up to n colours across all libraries ordered by CIEDE2000
// distance from hex. It returns nil when hex does not parse or n < 1.
func (c *Catalog) Nearest(hex string, n int) []Match {
	rgb, ok := color.ParseHex(hex)
	if !ok || n < 1 {
		return nil
	}
	target := toColorful(rgb)

	matches := make([]Match, 0, c.Total())
	for _, lib := range c.Libraries() {
		for _, col := range c.colors[lib] {
			matches = append(matches, Match{
				Color:    col,
				Distance: target.DistanceCIEDE2000(toColorful(col.RGB)),
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

func toColorful(c color.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
