package color

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortOrder selects the key colours are ordered by for display.
type SortOrder int

const (
	SortName SortOrder = iota
	SortHue
	SortSaturation
	SortLightness
)

// SortOrders returns every order in the sequence the UI cycles through.
func SortOrders() []SortOrder {
	return []SortOrder{SortName, SortHue, SortSaturation, SortLightness}
}

func (o SortOrder) String() string {
	switch o {
	case SortName:
		return "Name"
	case SortHue:
		return "Hue"
	case SortSaturation:
		return "Saturation"
	case SortLightness:
		return "Lightness"
	default:
		return "Unknown"
	}
}

// Next returns the order after o, wrapping around.
func (o SortOrder) Next() SortOrder {
	orders := SortOrders()
	return orders[(int(o)+1)%len(orders)]
}

// ParseSortOrder matches an order by name, ignoring case.
func ParseSortOrder(s string) (SortOrder, error) {
	for _, o := range SortOrders() {
		if strings.EqualFold(strings.TrimSpace(s), o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}

// Sort returns a stably sorted copy of colors. The input is left untouched,
// so it is safe to pass a slice owned by the catalog.
func Sort(colors []Color, order SortOrder) []Color {
	sorted := slices.Clone(colors)
	slices.SortStableFunc(sorted, func(a, b Color) int {
		switch order {
		case SortHue:
			return cmp.Compare(a.HSL.H, b.HSL.H)
		case SortSaturation:
			return cmp.Compare(a.HSL.S, b.HSL.S)
		case SortLightness:
			return cmp.Compare(a.HSL.L, b.HSL.L)
		default:
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	})
	return sorted
}

// FilterFamily returns the colours belonging to family, in input order.
func FilterFamily(colors []Color, family Family) []Color {
	var out []Color
	for _, c := range colors {
		if c.Family == family {
			out = append(out, c)
		}
	}
	return out
}
