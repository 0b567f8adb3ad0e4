package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"lon/internal/color"
)

const (
	fixtureTCX = `{
  "names": ["egret", "snow-white", "broken", "true-red"],
  "values": ["#f3ece0", "#f2f0eb", "#zzzzzz", "#bf1932"]
}`
	fixtureSolid = `[
  {"name": "Yellow C", "hex": "#FEDD00"},
  {"name": "Reflex Blue C", "hex": "#001489"},
  {"name": "Black C", "hex": "2D2926"}
]`
)

func fixtureSource(tcx, solid string) Source {
	fsys := fstest.MapFS{}
	if tcx != "" {
		fsys["tcx.json"] = &fstest.MapFile{Data: []byte(tcx)}
	}
	if solid != "" {
		fsys["solid_coated.json"] = &fstest.MapFile{Data: []byte(solid)}
	}
	return FSSource(fsys)
}

func names(colors []color.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Name
	}
	return out
}

func TestLoadPreservesSourceOrder(t *testing.T) {
	cat, err := Load(fixtureSource(fixtureTCX, fixtureSolid))
	require.NoError(t, err)

	assert.Equal(t, []string{"egret", "snow-white", "true-red"}, names(cat.Get(color.FashionHomeTCX)))
	assert.Equal(t, []string{"Yellow C", "Reflex Blue C", "Black C"}, names(cat.Get(color.SolidCoated)))
	assert.Equal(t, 3, cat.Count(color.FashionHomeTCX))
	assert.Equal(t, 3, cat.Count(color.SolidCoated))
	assert.Equal(t, 6, cat.Total())
	assert.Equal(t, color.Libraries(), cat.Libraries())
}

func TestLoadDerivesColorFields(t *testing.T) {
	cat, err := Load(fixtureSource(fixtureTCX, fixtureSolid))
	require.NoError(t, err)

	for _, lib := range cat.Libraries() {
		for _, c := range cat.Get(lib) {
			assert.Equal(t, lib, c.Library, c.Name)
			assert.Equal(t, color.RGBToHSL(c.RGB), c.HSL, c.Name)
			assert.Equal(t, color.ClassifyFamily(c.HSL), c.Family, c.Name)
		}
	}

	black := cat.Get(color.SolidCoated)[2]
	assert.Equal(t, "2D2926", black.Hex, "hex is kept as given")
	assert.Equal(t, color.RGB{R: 0x2d, G: 0x29, B: 0x26}, black.RGB)
}

func TestLoadDropsSingleInvalidEntry(t *testing.T) {
	tcx := `{"names": ["a", "b", "c", "d"], "values": ["#111111", "#222222", "#12345", "#444444"]}`
	cat, err := Load(fixtureSource(tcx, `[]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "d"}, names(cat.Get(color.FashionHomeTCX)))
	assert.Empty(t, cat.Get(color.SolidCoated))
}

func TestLoadTCXUnequalArrays(t *testing.T) {
	tests := []struct {
		name string
		tcx  string
		want []string
	}{
		{
			name: "more names",
			tcx:  `{"names": ["a", "b", "c"], "values": ["#111111"]}`,
			want: []string{"a"},
		},
		{
			name: "more values",
			tcx:  `{"names": ["a", "b"], "values": ["#111111", "#222222", "#333333"]}`,
			want: []string{"a", "b"},
		},
		{
			name: "empty",
			tcx:  `{"names": [], "values": []}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := LoadLibrary(fixtureSource(tt.tcx, ""), color.FashionHomeTCX)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(colors))
		})
	}
}

func TestLoadFatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     Source
		wantErr error
		library string
	}{
		{
			name:    "tcx missing",
			src:     fixtureSource("", fixtureSolid),
			wantErr: ErrSourceMissing,
			library: "tcx",
		},
		{
			name:    "solid coated missing",
			src:     fixtureSource(fixtureTCX, ""),
			wantErr: ErrSourceMissing,
			library: "solid-coated",
		},
		{
			name:    "not utf-8",
			src:     fixtureSource("{\"names\": [\"\xff\"], \"values\": []}", fixtureSolid),
			wantErr: ErrSourceEncoding,
			library: "tcx",
		},
		{
			name:    "tcx is an array",
			src:     fixtureSource(fixtureSolid, fixtureSolid),
			wantErr: ErrSourceShape,
			library: "tcx",
		},
		{
			name:    "tcx without values",
			src:     fixtureSource(`{"names": ["a"]}`, fixtureSolid),
			wantErr: ErrSourceShape,
			library: "tcx",
		},
		{
			name:    "solid coated is an object",
			src:     fixtureSource(fixtureTCX, fixtureTCX),
			wantErr: ErrSourceShape,
			library: "solid-coated",
		},
		{
			name:    "solid coated record without hex",
			src:     fixtureSource(fixtureTCX, `[{"name": "Yellow C"}]`),
			wantErr: ErrSourceShape,
			library: "solid-coated",
		},
		{
			name:    "invalid json",
			src:     fixtureSource(`{"names": [`, fixtureSolid),
			wantErr: ErrSourceShape,
			library: "tcx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Load(tt.src)
			require.Error(t, err)
			assert.Nil(t, cat)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.library, zErr.Metadata()["library"])
		})
	}
}

func TestGetUnknownLibrary(t *testing.T) {
	cat, err := Load(fixtureSource(fixtureTCX, fixtureSolid))
	require.NoError(t, err)

	unknown := color.Library(42)
	assert.NotNil(t, cat.Get(unknown))
	assert.Empty(t, cat.Get(unknown))
	assert.Zero(t, cat.Count(unknown))
}

func TestFingerprint(t *testing.T) {
	a, err := Load(fixtureSource(fixtureTCX, fixtureSolid))
	require.NoError(t, err)
	b, err := Load(fixtureSource(fixtureTCX, fixtureSolid))
	require.NoError(t, err)
	c, err := Load(fixtureSource(fixtureTCX, `[]`))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestEmbeddedSource(t *testing.T) {
	cat, err := Load(EmbeddedSource())
	require.NoError(t, err)

	assert.Equal(t, 124, cat.Count(color.FashionHomeTCX))
	assert.Equal(t, 88, cat.Count(color.SolidCoated))

	first := cat.Get(color.FashionHomeTCX)[0]
	assert.Equal(t, "egret", first.Name)
	assert.Equal(t, "#f3ece0", first.Hex)
}

func TestDirSource(t *testing.T) {
	cat, err := Load(DirSource("testdata"))
	require.NoError(t, err)

	assert.Equal(t, []string{"cloud-dancer", "peach-fuzz"}, names(cat.Get(color.FashionHomeTCX)))
	assert.Equal(t, []string{"Warm Red C"}, names(cat.Get(color.SolidCoated)))
}
