package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rawisara/villaboard/internal/board"
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/services/allocation"
	"github.com/rawisara/villaboard/internal/timeline"
)

// handleNormalMode dispatches key events on the board itself.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "space" {
		key = " "
	}
	km := m.config.KeyMappings

	// The pool drawer steals its own bindings while open, so the same
	// keys can mean lane navigation when it is closed.
	if m.poolOpen {
		switch key {
		case km.PrevPoolItem:
			if m.poolSel > 0 {
				m.poolSel--
			}
			return m, nil
		case km.NextPoolItem:
			if m.poolSel < len(m.board.Pool())-1 {
				m.poolSel++
			}
			return m, nil
		case km.EditPending:
			return m.startPendingEdit()
		case km.PickUp:
			return m.pickUpFromPool()
		}
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.mode = helpMode

	case km.ToggleView:
		m.view = m.view.Next()
		m.focus = m.cursorDay()
		m.rebuildColumns(m.focus)
	case km.ToggleEdit:
		on := !m.board.EditMode()
		m.board.SetEditMode(on)
		if on {
			m.setStatus("edit mode on")
		} else {
			m.board.EndDrag()
			m.setStatus("edit mode off")
		}
	case km.TogglePool:
		m.poolOpen = !m.poolOpen
		m.poolSel = 0

	case km.PrevPerson, "up":
		m.selPerson--
		m.selLane = 0
		m.clampSelection()
	case km.NextPerson, "down":
		m.selPerson++
		m.selLane = 0
		m.clampSelection()
	case km.PrevLane:
		m.selLane--
		m.clampSelection()
	case km.NextLane:
		m.selLane++
		m.clampSelection()

	case km.PrevDay, "left":
		m.moveCursor(-1)
	case km.NextDay, "right":
		m.moveCursor(1)
	case km.PrevWeek:
		m.moveCursor(-7)
	case km.NextWeek:
		m.moveCursor(7)
	case km.PrevMonth:
		m.shiftMonth(-1)
	case km.NextMonth:
		m.shiftMonth(1)
	case km.Today:
		m.focus = timeline.Noon(time.Now())
		m.rebuildColumns(m.focus)

	case km.PickUp:
		return m.pickUpFromLane()
	case km.Drop:
		return m.drop()
	case km.CancelDrag:
		m.board.EndDrag()
		m.setStatus("")
	case km.Unassign:
		return m.unassign()
	case km.ToggleOffDay:
		return m.toggleOffDay()
	}

	return m, nil
}

// moveCursor walks the day cursor, sliding the window when it runs off
// either edge.
func (m *Model) moveCursor(delta int) {
	target := timeline.AddDays(m.cursorDay(), delta)
	if i, ok := m.cols.Index(target); ok {
		m.cursor = i
		return
	}
	m.focus = target
	m.rebuildColumns(target)
}

func (m *Model) shiftMonth(delta int) {
	keep := m.cursorDay()
	m.focus = timeline.Noon(m.focus.AddDate(0, delta, 0))
	target := timeline.Noon(keep.AddDate(0, delta, 0))
	m.rebuildColumns(target)
}

func (m Model) pickUpFromPool() (tea.Model, tea.Cmd) {
	pool := m.board.Pool()
	if m.poolSel < 0 || m.poolSel >= len(pool) {
		return m, nil
	}
	// The mode gate refuses silently; the EDIT/VIEW badge already says why.
	if !m.board.EditMode() {
		return m, nil
	}
	it := pool[m.poolSel]
	m.board.BeginDrag(board.Drag{Source: board.FromPool, Item: it})
	m.setStatus(fmt.Sprintf("picked up %q, move to a lane and drop", it.Title))
	return m, nil
}

func (m Model) pickUpFromLane() (tea.Model, tea.Cmd) {
	if !m.board.EditMode() {
		return m, nil
	}
	it, ok := m.itemUnderCursor()
	if !ok {
		return m, nil
	}
	m.board.BeginDrag(board.Drag{
		Source: board.FromLane,
		Person: m.selPerson,
		Lane:   m.selLane,
		Item:   it,
	})
	m.setStatus(fmt.Sprintf("moving %q, pick a new lane and drop", it.Title))
	return m, nil
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	d, ok := m.board.CurrentDrag()
	if !ok {
		return m, nil
	}
	ctx := context.Background()

	var err error
	switch d.Source {
	case board.FromPool:
		err = m.svc.PlaceFromPool(ctx, m.selPerson, d.Item.ID, m.selLane)
	default:
		err = m.svc.MovePlaced(ctx, d.Person, d.Lane, d.Item.ID, m.selPerson, m.selLane)
	}
	if err != nil {
		if !errors.Is(err, models.ErrNotEditable) {
			m.setError(placementMessage(err))
		}
		return m, nil
	}

	m.board.EndDrag()
	m.setStatus(fmt.Sprintf("placed %q", d.Item.Title))
	return m, nil
}

func (m Model) unassign() (tea.Model, tea.Cmd) {
	it, ok := m.itemUnderCursor()
	if !ok {
		return m, nil
	}
	if err := m.svc.Unassign(context.Background(), m.selPerson, m.selLane, it.ID); err != nil {
		if !errors.Is(err, models.ErrNotEditable) {
			m.setError(placementMessage(err))
		}
		return m, nil
	}
	m.clampSelection()
	m.setStatus(fmt.Sprintf("returned %q to the pool", it.Title))
	return m, nil
}

func (m Model) toggleOffDay() (tea.Model, tea.Cmd) {
	day := m.cursorDay()
	on, err := m.svc.ToggleOffDay(m.selPerson, day)
	if err != nil {
		if !errors.Is(err, models.ErrNotEditable) {
			m.setError(placementMessage(err))
		}
		return m, nil
	}
	if on {
		m.setStatus("off day added on " + timeline.DayKey(day))
	} else {
		m.setStatus("off day removed on " + timeline.DayKey(day))
	}
	return m, nil
}

// placementMessage turns service errors into something the status line
// can show.
func placementMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrNotEditable):
		return "enable edit mode first"
	case errors.Is(err, models.ErrOffDayConflict):
		return "arrival lands on an off day"
	case errors.Is(err, models.ErrArrivalConflict):
		return "an arrival already lands on that day"
	case errors.Is(err, models.ErrNoLaneAvailable):
		return "no free lane for those dates"
	case errors.Is(err, models.ErrItemNotFound):
		return "that booking is gone, the board may have changed"
	case errors.Is(err, models.ErrDepartureBeforeArrival):
		return "departure must be on or after arrival"
	case errors.Is(err, allocation.ErrEmptyTitle):
		return "title cannot be empty"
	default:
		return err.Error()
	}
}
