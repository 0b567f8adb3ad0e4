package model

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/color"
	"lon/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next library"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous library"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y", "c"),
			key.WithHelp("y/c", "copy hex"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dark/light"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitializeModel builds one tab per catalog library and selects the
// configured default library.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("tui: catalog is required")
	}

	order, err := color.ParseSortOrder(cfg.UI.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	defaultLib, err := color.ParseLibrary(cfg.UI.DefaultLibrary)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	m := &Model{
		CurrentAppMode: ModeInitializing,
		DebugMode:      cfg.DebugMode,
		DarkMode:       cfg.UI.DarkMode,
		Catalog:        cfg.Catalog,
		UI:             cfg.UI,
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		WriteClipboard: clipboard.WriteAll,
		LogChannel:     logChannel,
	}

	for i, lib := range cfg.Catalog.Libraries() {
		tab, err := NewTab(cfg.Catalog, lib, order, cfg.UI.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("tui: build %s tab: %w", lib.Key(), err)
		}
		m.Tabs = append(m.Tabs, tab)
		if lib == defaultLib {
			m.ActiveTab = i
		}
	}

	ti := textinput.New()
	ti.Placeholder = "name or #hex"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 32
	m.SearchInput = ti

	return m, nil
}

// Init starts listening for log entries.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
