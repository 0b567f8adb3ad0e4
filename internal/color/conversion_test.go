package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGB
		wantOK bool
	}{
		{"with marker", "#ff0000", RGB{R: 255}, true},
		{"without marker", "00ff00", RGB{G: 255}, true},
		{"upper case", "#0000FF", RGB{B: 255}, true},
		{"mixed case", "#Fa0B1c", RGB{R: 250, G: 11, B: 28}, true},
		{"repeated marker", "##102030", RGB{R: 16, G: 32, B: 48}, true},
		{"short form", "#fff", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"marker only", "#", RGB{}, false},
		{"too long", "#ff00000", RGB{}, false},
		{"trailing space", "ff0000 ", RGB{}, false},
		{"non hex digit", "#gg0000", RGB{}, false},
		{"sign in pair", "#+f0000", RGB{}, false},
		{"non ascii", "#ff00é", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHexRoundTrip(t *testing.T) {
	inputs := []string{"#ff0000", "00ff00", "#0000FF", "AbCdEf", "#000000", "ffffff", "#7f7F80"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			rgb, ok := ParseHex(in)
			require.True(t, ok)
			assert.Equal(t, "#"+strings.ToLower(strings.TrimPrefix(in, "#")), FormatHex(rgb))
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{"red", RGB{R: 255}, HSL{H: 0, S: 100, L: 50}},
		{"green", RGB{G: 255}, HSL{H: 120, S: 100, L: 50}},
		{"blue", RGB{B: 255}, HSL{H: 240, S: 100, L: 50}},
		{"magenta wraps negative hue", RGB{R: 255, B: 255}, HSL{H: 300, S: 100, L: 50}},
		{"yellow", RGB{R: 255, G: 255}, HSL{H: 60, S: 100, L: 50}},
		{"black", RGB{}, HSL{H: 0, S: 0, L: 0}},
		{"white", RGB{R: 255, G: 255, B: 255}, HSL{H: 0, S: 0, L: 100}},
		{"mid grey", RGB{R: 128, G: 128, B: 128}, HSL{H: 0, S: 0, L: 50.196}},
		{"dark orange", RGB{R: 204, G: 102}, HSL{H: 30, S: 100, L: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			assert.InDelta(t, tt.want.H, got.H, 0.01, "hue")
			assert.InDelta(t, tt.want.S, got.S, 0.01, "saturation")
			assert.InDelta(t, tt.want.L, got.L, 0.01, "lightness")
			assert.GreaterOrEqual(t, got.H, float32(0))
			assert.Less(t, got.H, float32(360))
		})
	}
}

func TestClassifyFamily(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want Family
	}{
		{"pure red", HSL{H: 0, S: 100, L: 50}, Red},
		{"blue", HSL{H: 220, S: 100, L: 50}, Blue},
		{"grey ignores hue", HSL{H: 0, S: 0, L: 50}, Neutral},
		{"near black", HSL{H: 120, S: 80, L: 4.9}, Neutral},
		{"near white", HSL{H: 120, S: 80, L: 95.1}, Neutral},
		{"saturation boundary is not neutral", HSL{H: 120, S: 10, L: 50}, Green},
		{"lightness lower boundary is not neutral", HSL{H: 120, S: 80, L: 5}, Green},
		{"lightness upper boundary is not neutral", HSL{H: 120, S: 80, L: 95}, Green},
		{"brown below hue 40", HSL{H: 39.9, S: 30, L: 30}, Brown},
		{"hue 40 falls through to orange", HSL{H: 40, S: 30, L: 30}, Orange},
		{"brown above hue 340", HSL{H: 340.1, S: 30, L: 30}, Brown},
		{"hue 340 falls through to red", HSL{H: 340, S: 30, L: 30}, Red},
		{"saturation 50 is not brown", HSL{H: 20, S: 50, L: 30}, Orange},
		{"lightness 50 is not brown", HSL{H: 20, S: 30, L: 50}, Orange},
		{"red upper bound", HSL{H: 14.99, S: 100, L: 50}, Red},
		{"orange", HSL{H: 15, S: 100, L: 50}, Orange},
		{"yellow", HSL{H: 45, S: 100, L: 50}, Yellow},
		{"green", HSL{H: 70, S: 100, L: 50}, Green},
		{"cyan", HSL{H: 150, S: 100, L: 50}, Cyan},
		{"blue lower bound", HSL{H: 190, S: 100, L: 50}, Blue},
		{"purple", HSL{H: 260, S: 100, L: 50}, Purple},
		{"pink", HSL{H: 290, S: 100, L: 50}, Pink},
		{"wrap around red", HSL{H: 340, S: 100, L: 50}, Red},
		{"wrap around red near 360", HSL{H: 359.9, S: 100, L: 50}, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFamily(tt.hsl))
		})
	}
}

func TestNewDerivesFields(t *testing.T) {
	c, ok := New("scarlet", "#FF0000", FashionHomeTCX)
	require.True(t, ok)

	assert.Equal(t, "#FF0000", c.Hex, "hex is kept as given")
	assert.Equal(t, RGB{R: 255}, c.RGB)
	assert.Equal(t, RGBToHSL(c.RGB), c.HSL)
	assert.Equal(t, ClassifyFamily(c.HSL), c.Family)
	assert.Equal(t, Red, c.Family)
	assert.Equal(t, FashionHomeTCX, c.Library)
	assert.Equal(t, "#ff0000", c.NormalizedHex())

	_, ok = New("broken", "#12345", SolidCoated)
	assert.False(t, ok)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "rgb(255, 0, 16)", RGB{R: 255, B: 16}.String())
	assert.Equal(t, "hsl(220, 100%, 50%)", HSL{H: 220.2, S: 100, L: 49.8}.String())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Snow White", Color{Name: "snow-white"}.DisplayName())
	assert.Equal(t, "Cloud Dancer", Color{Name: "Cloud Dancer"}.DisplayName())
}
