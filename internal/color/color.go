package color

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RGB is a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String renders the colour in CSS functional notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages [0,100].
type HSL struct {
	H float32 `json:"h" yaml:"h"`
	S float32 `json:"s" yaml:"s"`
	L float32 `json:"l" yaml:"l"`
}

// String renders the colour in CSS functional notation with whole numbers.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S, h.L)
}

// Color is a catalog entry. RGB, HSL and Family are derived from Hex once,
// in New, and are never recomputed.
type Color struct {
	Name    string  `json:"name" yaml:"name"`
	Hex     string  `json:"hex" yaml:"hex"`
	RGB     RGB     `json:"rgb" yaml:"rgb"`
	HSL     HSL     `json:"hsl" yaml:"hsl"`
	Family  Family  `json:"family" yaml:"family"`
	Library Library `json:"library" yaml:"library"`
}

// New builds a Color from a name and hex string. It reports false when the
// hex string does not parse, in which case the entry should be skipped.
func New(name, hex string, library Library) (Color, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return Color{}, false
	}
	hsl := RGBToHSL(rgb)
	return Color{
		Name:    name,
		Hex:     hex,
		RGB:     rgb,
		HSL:     hsl,
		Family:  ClassifyFamily(hsl),
		Library: library,
	}, true
}

// DisplayName returns the name title-cased for presentation, with hyphens
// rendered as spaces ("snow-white" becomes "Snow White").
func (c Color) DisplayName() string {
	name := strings.TrimSpace(strings.ReplaceAll(c.Name, "-", " "))
	return cases.Title(language.English).String(name)
}

// NormalizedHex returns the canonical "#rrggbb" form of the colour.
func (c Color) NormalizedHex() string {
	return FormatHex(c.RGB)
}
