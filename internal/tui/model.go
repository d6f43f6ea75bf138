// Package tui renders the allocation board as a terminal UI: a scrolling
// calendar grid with one row group per person, a pending pool drawer, and
// vim-style navigation.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rawisara/villaboard/internal/app"
	"github.com/rawisara/villaboard/internal/board"
	"github.com/rawisara/villaboard/internal/config"
	"github.com/rawisara/villaboard/internal/events"
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/services/allocation"
	"github.com/rawisara/villaboard/internal/timeline"
)

// mode selects which key handler receives input.
type mode int

const (
	normalMode mode = iota
	editPendingMode
	helpMode
)

// Model represents the application state for the TUI.
type Model struct {
	svc    allocation.Service
	board  *board.Board
	config *config.Config

	people []*models.Person
	colors models.ColorMap

	view  timeline.ViewMode
	focus time.Time
	cols  timeline.Columns

	selPerson int
	selLane   int
	cursor    int // column index of the day cursor

	poolOpen bool
	poolSel  int

	mode   mode
	editor *pendingEditor

	changes <-chan events.Event

	status    string
	statusErr bool

	width  int
	height int
}

// InitialModel loads the board and builds the starting view. A nil changes
// channel just disables live write-back notifications.
func InitialModel(container *app.App, cfg *config.Config, changes <-chan events.Event) Model {
	ctx := context.Background()

	people, colors, err := container.Allocations.Load(ctx, time.Now())
	if err != nil {
		slog.Error("board load failed", "error", err)
	}

	// Config colors override what the store holds.
	merged := make(models.ColorMap, len(colors)+len(cfg.Colors))
	for name, color := range colors {
		merged[name] = color
	}
	for name, color := range cfg.Colors {
		merged[models.NormalizeCategory(name)] = color
	}

	view := timeline.ViewMode(cfg.DefaultView)
	focus := timeline.Noon(time.Now())
	cols := timeline.Build(view, focus)

	return Model{
		svc:     container.Allocations,
		board:   container.Board,
		config:  cfg,
		people:  people,
		colors:  merged,
		view:    view,
		focus:   focus,
		cols:    cols,
		cursor:  cols.Offset(focus),
		changes: changes,
	}
}

// Init starts listening for board change notifications.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return listenForChanges(m.changes)
}

// rebuildColumns recomputes the window after a view or focus change and
// keeps the cursor on the same calendar day when it stays visible.
func (m *Model) rebuildColumns(keep time.Time) {
	m.cols = timeline.Build(m.view, m.focus)
	m.cursor = m.cols.Offset(keep)
}

// cursorDay returns the date under the day cursor.
func (m Model) cursorDay() time.Time {
	if m.cols.Len() == 0 {
		return timeline.Noon(time.Now())
	}
	if m.cursor < 0 || m.cursor >= m.cols.Len() {
		return m.cols.Start()
	}
	return m.cols.Days[m.cursor]
}

// clampSelection keeps person and lane selection inside the board shape.
func (m *Model) clampSelection() {
	if len(m.people) == 0 {
		m.selPerson, m.selLane = 0, 0
		return
	}
	if m.selPerson < 0 {
		m.selPerson = 0
	}
	if m.selPerson >= len(m.people) {
		m.selPerson = len(m.people) - 1
	}
	lanes := m.board.LaneCount(m.selPerson)
	if lanes == 0 {
		m.selLane = 0
		return
	}
	if m.selLane < 0 {
		m.selLane = 0
	}
	if m.selLane >= lanes {
		m.selLane = lanes - 1
	}
}

// itemUnderCursor finds the bar covering the cursor day on the selected lane.
func (m Model) itemUnderCursor() (models.Item, bool) {
	lanes := m.board.Lanes(m.selPerson)
	if m.selLane < 0 || m.selLane >= len(lanes) {
		return models.Item{}, false
	}
	day := timeline.Noon(m.cursorDay())
	for _, it := range lanes[m.selLane] {
		if !day.Before(timeline.Noon(it.Arrival)) && !day.After(timeline.Noon(it.Departure)) {
			return it, true
		}
	}
	return models.Item{}, false
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
