package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rawisara/villaboard/internal/events"
)

// Update handles all messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch m.mode {
		case editPendingMode:
			return m.updateEditor(msg)
		case helpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case boardChangedMsg:
		ev := events.Event(msg)
		if ev.Type == events.EventWriteBackFailed {
			m.setError(ev.Detail)
		}
		return m, listenForChanges(m.changes)
	}

	return m, nil
}

// handleHelpMode dismisses the help screen on any of the usual exits.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc", "enter", " ", "space":
		m.mode = normalMode
	}
	return m, nil
}
