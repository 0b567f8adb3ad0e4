package model

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"lon/internal/catalog"
	"lon/internal/config"
)

const (
	testTCX = `{
  "names": ["true-red", "emerald", "classic-blue", "egret", "tangerine-tango"],
  "values": ["#bf1932", "#009473", "#0f4c81", "#f3ece0", "#dd4124"]
}`
	testSolid = `[
  {"name": "Yellow C", "hex": "#FEDD00"},
  {"name": "Reflex Blue C", "hex": "#001489"}
]`
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(catalog.FSSource(fstest.MapFS{
		"tcx.json":          &fstest.MapFile{Data: []byte(testTCX)},
		"solid_coated.json": &fstest.MapFile{Data: []byte(testSolid)},
	}))
	require.NoError(t, err)
	return cat
}

func newTestModel(t *testing.T, mutate func(*config.UIConfig)) *Model {
	t.Helper()
	ui := config.GetDefaultConfig().UI
	ui.Multiplier = 10
	if mutate != nil {
		mutate(&ui)
	}
	m, err := InitializeModel(TUIConfig{Catalog: newTestCatalog(t), UI: ui}, nil)
	require.NoError(t, err)
	return m
}
