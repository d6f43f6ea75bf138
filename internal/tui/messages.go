package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rawisara/villaboard/internal/events"
)

// boardChangedMsg delivers a board change notification into the update loop.
type boardChangedMsg events.Event

// listenForChanges waits for the next notification. The returned command is
// re-issued after every delivery so the subscription stays alive.
func listenForChanges(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return boardChangedMsg(ev)
	}
}
