package controller

import (
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"lon/internal/catalog"
	"lon/internal/config"
	"lon/internal/tui/model"
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

// clipboardSpy records writes instead of touching the system clipboard.
type clipboardSpy struct {
	writes []string
	err    error
}

func (c *clipboardSpy) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, s)
	return nil
}

func newTestModel(t *testing.T) (*model.Model, *clipboardSpy) {
	t.Helper()
	cat, err := catalog.Load(catalog.FSSource(fstest.MapFS{
		"tcx.json":          &fstest.MapFile{Data: []byte(testTCX)},
		"solid_coated.json": &fstest.MapFile{Data: []byte(testSolid)},
	}))
	require.NoError(t, err)

	ui := config.GetDefaultConfig().UI
	ui.Multiplier = 10
	m, err := model.InitializeModel(model.TUIConfig{Catalog: cat, UI: ui}, nil)
	require.NoError(t, err)

	spy := &clipboardSpy{}
	m.WriteClipboard = spy.write
	return m, spy
}

// newSizedModel returns a model that has seen its first window size:
// 60x11 gives 4 columns and 3 rows of 3-line cells.
func newSizedModel(t *testing.T) (*model.Model, *clipboardSpy) {
	t.Helper()
	m, spy := newTestModel(t)
	m, _ = mainControllerDispatch(m, tea.WindowSizeMsg{Width: 60, Height: 11})
	return m, spy
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	t.Helper()
	return mainControllerDispatch(m, msg)
}
