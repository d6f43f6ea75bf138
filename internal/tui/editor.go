package tui

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/services/allocation"
	"github.com/rawisara/villaboard/internal/timeline"
)

// Field order in the pending edit form.
const (
	fieldTitle = iota
	fieldArrival
	fieldDeparture
	fieldCategory
	fieldNotes
	fieldCount
)

var editorLabels = [fieldCount]string{
	"Title", "Arrival (YYYY-MM-DD)", "Departure (YYYY-MM-DD)", "Category", "Notes",
}

// pendingEditor is the inline form for a pooled booking.
type pendingEditor struct {
	itemID  string
	inputs  [fieldCount]textinput.Model
	focused int
}

func newPendingEditor(it models.Item) *pendingEditor {
	e := &pendingEditor{itemID: it.ID}
	values := [fieldCount]string{
		it.Title,
		timeline.DayKey(it.Arrival),
		timeline.DayKey(it.Departure),
		it.Category,
		it.Notes,
	}
	for i := range e.inputs {
		ti := textinput.New()
		ti.SetValue(values[i])
		e.inputs[i] = ti
	}
	e.inputs[0].Focus()
	return e
}

func (e *pendingEditor) focusField(i int) tea.Cmd {
	e.inputs[e.focused].Blur()
	e.focused = (i + fieldCount) % fieldCount
	return e.inputs[e.focused].Focus()
}

// startPendingEdit opens the form for the selected pool row. Edits only
// make sense on pending items, so there is no lane equivalent.
func (m Model) startPendingEdit() (tea.Model, tea.Cmd) {
	pool := m.board.Pool()
	if m.poolSel < 0 || m.poolSel >= len(pool) {
		return m, nil
	}
	m.editor = newPendingEditor(pool[m.poolSel])
	m.mode = editPendingMode
	m.setStatus("")
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	if e == nil {
		m.mode = normalMode
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.editor = nil
		m.mode = normalMode
		m.setStatus("edit cancelled")
		return m, nil
	case "tab", "down":
		return m, e.focusField(e.focused + 1)
	case "shift+tab", "up":
		return m, e.focusField(e.focused - 1)
	case "enter":
		return m.savePendingEdit()
	}

	var cmd tea.Cmd
	e.inputs[e.focused], cmd = e.inputs[e.focused].Update(msg)
	return m, cmd
}

func (m Model) savePendingEdit() (tea.Model, tea.Cmd) {
	e := m.editor

	arrival, err := timeline.ParseDayKey(strings.TrimSpace(e.inputs[fieldArrival].Value()))
	if err != nil {
		m.setError("arrival must be YYYY-MM-DD")
		return m, nil
	}
	departure, err := timeline.ParseDayKey(strings.TrimSpace(e.inputs[fieldDeparture].Value()))
	if err != nil {
		m.setError("departure must be YYYY-MM-DD")
		return m, nil
	}

	title := strings.TrimSpace(e.inputs[fieldTitle].Value())
	category := strings.TrimSpace(e.inputs[fieldCategory].Value())
	notes := e.inputs[fieldNotes].Value()

	req := allocation.EditRequest{
		ItemID:    e.itemID,
		Title:     &title,
		Arrival:   &arrival,
		Departure: &departure,
		Category:  &category,
		Notes:     &notes,
	}
	if err := m.svc.EditPending(context.Background(), req); err != nil {
		m.setError(placementMessage(err))
		return m, nil
	}

	m.editor = nil
	m.mode = normalMode
	m.setStatus("booking updated")
	return m, nil
}
