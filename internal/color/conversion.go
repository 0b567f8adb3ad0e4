package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses a six digit hex colour, with or without leading '#'.
// It reports false for any other length or for non hex digits.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimLeft(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// FormatHex renders a colour as lowercase "#rrggbb".
func FormatHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBToHSL converts 8-bit RGB to HSL. Hue is in degrees [0,360),
// saturation and lightness are percentages.
func RGBToHSL(c RGB) HSL {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	maxC := max(r, g, b)
	minC := min(r, g, b)
	delta := maxC - minC

	l := (maxC + minC) / 2

	var s float32
	if delta != 0 {
		s = delta / (1 - abs32(2*l-1))
	}

	var h float32
	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * mod32((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// ClassifyFamily files an HSL colour into a Family. The rules are ordered and
// the first match wins; hue buckets are half-open [lo, hi).
func ClassifyFamily(c HSL) Family {
	if c.S < 10 || c.L < 5 || c.L > 95 {
		return Neutral
	}

	if c.S < 50 && c.L < 50 && (c.H < 40 || c.H > 340) {
		return Brown
	}

	switch {
	case c.H < 15:
		return Red
	case c.H < 45:
		return Orange
	case c.H < 70:
		return Yellow
	case c.H < 150:
		return Green
	case c.H < 190:
		return Cyan
	case c.H < 260:
		return Blue
	case c.H < 290:
		return Purple
	case c.H < 340:
		return Pink
	default:
		return Red
	}
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// mod32 is the truncated remainder, sign follows the dividend.
func mod32(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
