package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/catalog"
	"lon/internal/color"
	"lon/internal/config"
	"lon/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeBrowse
	ModeDetailOverlay
	ModeSearchInput
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeBrowse:
		return "Browse"
	case ModeDetailOverlay:
		return "DetailOverlay"
	case ModeSearchInput:
		return "SearchInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// IsOverlay reports whether the mode draws over the grid.
func (m AppMode) IsOverlay() bool {
	switch m {
	case ModeDetailOverlay, ModeHelpOverlay, ModeLogOverlay:
		return true
	default:
		return false
	}
}

// TUI configuration struct
type TUIConfig struct {
	Catalog   *catalog.Catalog
	UI        config.UIConfig
	DebugMode bool
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	NearestInDetail     = 5
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Esc        key.Binding
	Copy       key.Binding
	Search     key.Binding
	Sort       key.Binding
	ToggleLog  key.Binding
	Help       key.Binding
	ToggleDark key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Copy, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Tab, k.ShiftTab, k.Enter, k.Copy, k.Search, k.Sort},
		{k.ToggleLog, k.ToggleDark, k.Help, k.Esc, k.Quit},
	}
}

// Model represents the state of the colour browser.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool
	DarkMode       bool
	Seeded         bool

	Catalog *catalog.Catalog
	UI      config.UIConfig

	// One tab per library, in catalog order.
	Tabs      []*Tab
	ActiveTab int

	// Overlay state
	Detail       color.Color
	DetailNearby []catalog.Match

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	SearchInput          textinput.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// WriteClipboard is swapped out in tests.
	WriteClipboard func(string) error

	// Logging
	LogChannel <-chan logging.LogEntry
}

// CurrentTab returns the tab being shown, or nil before initialization.
func (m *Model) CurrentTab() *Tab {
	if m.ActiveTab < 0 || m.ActiveTab >= len(m.Tabs) {
		return nil
	}
	return m.Tabs[m.ActiveTab]
}

// SwitchTab moves delta tabs along, wrapping at either end.
func (m *Model) SwitchTab(delta int) *Tab {
	n := len(m.Tabs)
	if n == 0 {
		return nil
	}
	m.ActiveTab = ((m.ActiveTab+delta)%n + n) % n
	return m.Tabs[m.ActiveTab]
}

// GridSize returns the number of columns and visible rows the current
// window fits.
func (m *Model) GridSize() (columns, rows int) {
	return GridDimensions(m.Width, m.Height-ChromeHeight, m.UI)
}

// SetStatusMessage updates the status bar message and schedules it to clear.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage drops the current status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
