package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"lon/internal/tui/model"
	"lon/internal/tui/view"
	"lon/pkg/logging"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update applies msg to m. It is the entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler based
// on the message type and the current mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case model.NewLogEntryMsg, tea.MouseMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeSearchInput {
			return handleKeyMsgSearchInput(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.CurrentAppMode == model.ModeSearchInput {
			var cmd tea.Cmd
			m.SearchInput, cmd = m.SearchInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty && m.LogViewport.Width > 0 {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleNewLogEntry formats an entry into the activity log. Debug entries
// are only kept in debug mode.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	if msg.Entry.Level < logging.LevelInfo && !m.DebugMode {
		return
	}
	model.AddRawLineToActivityLog(m, msg.Entry.String())
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
