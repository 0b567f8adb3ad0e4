package model

import (
	"strings"

	"lon/internal/catalog"
	"lon/internal/color"
	"lon/internal/config"
	"lon/internal/virtual"
)

// ChromeHeight is the number of lines taken by the tab bar and status bar.
const ChromeHeight = 2

// Tab is one library's grid: a virtual index over the library's colours
// plus the cursor and scroll position within the logical range.
type Tab struct {
	Library color.Library
	Order   color.SortOrder

	Items *virtual.List[color.Color]
	Index *virtual.Model[color.Color]

	// Cursor is a logical position in [0, Index.Len()).
	Cursor int
	// Top is the first visible logical row.
	Top int
}

// NewTab builds a tab over library, sorted by order.
func NewTab(cat *catalog.Catalog, library color.Library, order color.SortOrder, multiplier int) (*Tab, error) {
	items := virtual.NewList(color.Sort(cat.Get(library), order))
	index, err := virtual.New[color.Color](items, multiplier)
	if err != nil {
		return nil, err
	}
	return &Tab{
		Library: library,
		Order:   order,
		Items:   items,
		Index:   index,
	}, nil
}

// Current returns the colour under the cursor.
func (t *Tab) Current() (color.Color, bool) {
	return t.Index.At(t.Cursor)
}

// RealCursor returns the backing index under the cursor.
func (t *Tab) RealCursor() (int, bool) {
	return t.Index.RealPosition(t.Cursor)
}

// Move shifts the cursor by delta, wrapping around the ends of the logical
// range.
func (t *Tab) Move(delta int) {
	n := t.Index.Len()
	if n == 0 {
		return
	}
	t.Cursor = wrapAdd(t.Cursor, delta, n)
}

// SeedMiddle puts the cursor on the middle position, which maps to the first
// colour, and centres it in a viewport of rows rows.
func (t *Tab) SeedMiddle(columns, rows int) {
	t.Cursor = t.Index.MiddlePosition()
	t.Top = max(0, t.Cursor/max(columns, 1)-rows/2)
}

// EnsureVisible scrolls the minimum amount needed for the cursor row to fall
// inside a viewport of rows rows.
func (t *Tab) EnsureVisible(columns, rows int) {
	columns, rows = max(columns, 1), max(rows, 1)
	row := t.Cursor / columns
	switch {
	case row < t.Top:
		t.Top = row
	case row >= t.Top+rows:
		t.Top = row - rows + 1
	}
}

// Resort replaces the backing with the library re-sorted by order and
// re-seeds the cursor.
func (t *Tab) Resort(cat *catalog.Catalog, order color.SortOrder, columns, rows int) {
	t.Order = order
	t.Items.Replace(color.Sort(cat.Get(t.Library), order))
	t.SeedMiddle(columns, rows)
}

// Search finds the colour whose name contains query, or whose hex equals it,
// nearest to the cursor. It returns the logical position to jump to.
func (t *Tab) Search(query string) (int, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	n := t.Items.Len()
	if query == "" || n == 0 {
		return 0, false
	}
	rgb, isHex := color.ParseHex(query)

	realCursor, _ := t.RealCursor()
	base := t.Cursor - realCursor
	best, found := 0, false
	bestDist := 0

	for i := range n {
		c := t.Items.At(i)
		if !(isHex && c.RGB == rgb) &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.DisplayName()), query) {
			continue
		}
		// The same colour recurs every n positions; consider the copies
		// in the cursor's block and its neighbours.
		for _, pos := range []int{base + i - n, base + i, base + i + n} {
			if pos < 0 || pos >= t.Index.Len() {
				continue
			}
			dist := abs(pos - t.Cursor)
			if !found || dist < bestDist {
				best, bestDist, found = pos, dist, true
			}
		}
	}
	return best, found
}

// GridDimensions fits cells of the configured size into width by height.
// Columns are clamped to the configured range; at least one row is returned.
func GridDimensions(width, height int, ui config.UIConfig) (columns, rows int) {
	columns = width / max(ui.CellWidth, 1)
	columns = min(max(columns, ui.MinColumns), ui.MaxColumns)
	columns = max(columns, 1)
	rows = max(height/max(ui.CellHeight, 1), 1)
	return columns, rows
}

// wrapAdd returns (pos + delta) mod length without overflowing when pos is
// close to math.MaxInt.
func wrapAdd(pos, delta, length int) int {
	delta %= length
	if delta < 0 {
		delta += length
	}
	if pos >= length-delta {
		return pos - (length - delta)
	}
	return pos + delta
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
