package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/color"
	"lon/internal/tui/design"
	"lon/internal/tui/model"
)

const keySubsystem = "KeyHandler"

// handleKeyMsgGlobal processes key presses outside the search input.
// Overlays get the first look at a key; anything they do not consume falls
// through to the browse bindings.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeBrowse
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			if err := m.WriteClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(keySubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, toastTimeout(m))
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}

	case model.ModeDetailOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Enter):
			m.CurrentAppMode = model.ModeBrowse
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			return m, copyHex(m, m.Detail)
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil

	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeBrowse
			return m, nil
		}
		if key.Matches(keyMsg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil

	case model.ModeInitializing, model.ModeQuitting:
		if key.Matches(keyMsg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil
	}

	tab := m.CurrentTab()
	cols, rows := m.GridSize()

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		design.Initialize(m.DarkMode)
		label := "Light mode"
		if m.DarkMode {
			label = "Dark mode"
		}
		return m, m.SetStatusMessage(label, model.StatusBarInfo, toastTimeout(m))

	case key.Matches(keyMsg, m.Keys.Tab), key.Matches(keyMsg, m.Keys.ShiftTab):
		delta := 1
		if key.Matches(keyMsg, m.Keys.ShiftTab) {
			delta = -1
		}
		next := m.SwitchTab(delta)
		if next == nil {
			return m, nil
		}
		next.EnsureVisible(cols, rows)
		return m, m.SetStatusMessage(next.Library.ShortName(), model.StatusBarInfo, toastTimeout(m))
	}

	if tab == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Left):
		moveCursor(tab, -1, cols, rows)
	case key.Matches(keyMsg, m.Keys.Right):
		moveCursor(tab, 1, cols, rows)
	case key.Matches(keyMsg, m.Keys.Up):
		moveCursor(tab, -cols, cols, rows)
	case key.Matches(keyMsg, m.Keys.Down):
		moveCursor(tab, cols, cols, rows)
	case key.Matches(keyMsg, m.Keys.PageUp):
		moveCursor(tab, -cols*rows, cols, rows)
	case key.Matches(keyMsg, m.Keys.PageDown):
		moveCursor(tab, cols*rows, cols, rows)

	case key.Matches(keyMsg, m.Keys.Enter):
		m.OpenDetail()

	case key.Matches(keyMsg, m.Keys.Copy):
		if c, ok := tab.Current(); ok {
			return m, copyHex(m, c)
		}

	case key.Matches(keyMsg, m.Keys.Search):
		m.CurrentAppMode = model.ModeSearchInput
		m.SearchInput.SetValue("")
		m.SearchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.Keys.Sort):
		order := tab.Order.Next()
		tab.Resort(m.Catalog, order, cols, rows)
		LogDebug(m, keySubsystem, "%s sorted by %s", tab.Library.Key(), order)
		return m, m.SetStatusMessage("Sort: "+order.String(), model.StatusBarInfo, toastTimeout(m))
	}

	return m, nil
}

// handleKeyMsgSearchInput feeds keys to the search box until enter or esc.
func handleKeyMsgSearchInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		closeSearch(m)
		return m, nil

	case "enter":
		query := m.SearchInput.Value()
		closeSearch(m)
		tab := m.CurrentTab()
		if tab == nil || strings.TrimSpace(query) == "" {
			return m, nil
		}
		pos, ok := tab.Search(query)
		if !ok {
			return m, m.SetStatusMessage(fmt.Sprintf("No colour matches %q", query), model.StatusBarWarning, 2*toastTimeout(m))
		}
		tab.Cursor = pos
		cols, rows := m.GridSize()
		tab.EnsureVisible(cols, rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(keyMsg)
	return m, cmd
}

func closeSearch(m *model.Model) {
	m.SearchInput.Blur()
	m.SearchInput.SetValue("")
	m.CurrentAppMode = model.ModeBrowse
}

func moveCursor(tab *model.Tab, delta, cols, rows int) {
	tab.Move(delta)
	tab.EnsureVisible(cols, rows)
}

// copyHex puts the colour's hex value on the clipboard and reports the
// outcome in the status bar. A failure never leaves the browser.
func copyHex(m *model.Model, c color.Color) tea.Cmd {
	hex := c.NormalizedHex()
	if err := m.WriteClipboard(hex); err != nil {
		LogError(keySubsystem, err, "Failed to copy %s", hex)
		return m.SetStatusMessage("Copy failed: "+err.Error(), model.StatusBarError, 3*time.Second)
	}
	LogInfo(keySubsystem, "Copied %s (%s)", hex, c.Name)
	return m.SetStatusMessage("Copied "+hex, model.StatusBarSuccess, toastTimeout(m))
}

func toastTimeout(m *model.Model) time.Duration {
	if m.UI.ToastTimeout <= 0 {
		return time.Second
	}
	return m.UI.ToastTimeout
}
