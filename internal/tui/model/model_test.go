package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lon/internal/color"
	"lon/internal/config"
	"lon/pkg/logging"
)

func TestInitializeModel(t *testing.T) {
	m := newTestModel(t, nil)

	require.Len(t, m.Tabs, 2)
	assert.Equal(t, color.FashionHomeTCX, m.Tabs[0].Library)
	assert.Equal(t, color.SolidCoated, m.Tabs[1].Library)
	assert.Equal(t, 0, m.ActiveTab)
	assert.Equal(t, ModeInitializing, m.CurrentAppMode)
	assert.False(t, m.Seeded)
	assert.True(t, m.DarkMode)
	assert.NotNil(t, m.WriteClipboard)
	for _, tab := range m.Tabs {
		assert.Equal(t, color.SortHue, tab.Order)
		assert.Equal(t, 10, tab.Index.Multiplier())
	}
}

func TestInitializeModelDefaultLibrary(t *testing.T) {
	m := newTestModel(t, func(ui *config.UIConfig) { ui.DefaultLibrary = "solid-coated" })
	assert.Equal(t, 1, m.ActiveTab)
	assert.Equal(t, color.SolidCoated, m.CurrentTab().Library)
}

func TestInitializeModelErrors(t *testing.T) {
	ui := config.GetDefaultConfig().UI

	_, err := InitializeModel(TUIConfig{UI: ui}, nil)
	assert.Error(t, err)

	bad := ui
	bad.SortOrder = "chroma"
	_, err = InitializeModel(TUIConfig{Catalog: newTestCatalog(t), UI: bad}, nil)
	assert.Error(t, err)

	bad = ui
	bad.Multiplier = 0
	_, err = InitializeModel(TUIConfig{Catalog: newTestCatalog(t), UI: bad}, nil)
	assert.Error(t, err)
}

func TestSwitchTabWraps(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, color.SolidCoated, m.SwitchTab(1).Library)
	assert.Equal(t, color.FashionHomeTCX, m.SwitchTab(1).Library)
	assert.Equal(t, color.SolidCoated, m.SwitchTab(-1).Library)
	assert.Equal(t, 1, m.ActiveTab)

	empty := &Model{}
	assert.Nil(t, empty.SwitchTab(1))
	assert.Nil(t, empty.CurrentTab())
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := m.SetStatusMessage("Copied", StatusBarSuccess, time.Second)
	require.NotNil(t, cmd)
	assert.Equal(t, "Copied", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
	first := m.StatusBarClearCancel

	m.SetStatusMessage("TCX", StatusBarInfo, time.Second)
	_, open := <-first
	assert.False(t, open, "replacing a message cancels the previous clear")

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}

func TestOpenDetail(t *testing.T) {
	m := newTestModel(t, nil)
	tab := m.CurrentTab()
	tab.SeedMiddle(3, 2)
	m.CurrentAppMode = ModeBrowse

	require.True(t, m.OpenDetail())
	assert.Equal(t, ModeDetailOverlay, m.CurrentAppMode)
	assert.Equal(t, ModeBrowse, m.LastAppMode)
	assert.Equal(t, "tangerine-tango", m.Detail.Name)
	assert.Len(t, m.DetailNearby, NearestInDetail)
	for _, match := range m.DetailNearby {
		assert.NotEqual(t, "tangerine-tango", match.Color.Name)
	}
}

func TestAddRawLineToActivityLogCaps(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Subsystem: "Test", Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entry, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "Browse", ModeBrowse.String())
	assert.Equal(t, "DetailOverlay", ModeDetailOverlay.String())
	assert.True(t, ModeHelpOverlay.IsOverlay())
	assert.False(t, ModeSearchInput.IsOverlay())
}
