package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

const (
	nameWidth = 16
	cellWidth = 2
)

// View renders the current state of the application.
func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	// Wait for terminal size to be initialized.
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == helpMode {
		return m.helpView()
	}
	if m.mode == editPendingMode && m.editor != nil {
		return m.editorView()
	}

	start, n := m.visibleRange()

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.monthRow(start, n))
	b.WriteString("\n")
	b.WriteString(m.dayRow(start, n))
	b.WriteString("\n")

	if len(m.people) == 0 {
		b.WriteString(PersonStyle.Render("No people on the roster yet."))
		b.WriteString("\n")
	}
	for p := range m.people {
		b.WriteString(m.personRows(p, start, n))
	}

	if m.poolOpen {
		b.WriteString("\n")
		b.WriteString(m.poolView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

// visibleRange picks the slice of columns that fits the terminal, keeping
// the cursor roughly centered.
func (m Model) visibleRange() (start, n int) {
	n = (m.width - nameWidth) / cellWidth
	if n < 7 {
		n = 7
	}
	if n > m.cols.Len() {
		n = m.cols.Len()
	}
	start = m.cursor - n/2
	if start > m.cols.Len()-n {
		start = m.cols.Len() - n
	}
	if start < 0 {
		start = 0
	}
	return start, n
}

func (m Model) headerView() string {
	badge := ViewBadgeStyle.Render("VIEW")
	if m.board.EditMode() {
		badge = EditBadgeStyle.Render("EDIT")
	}
	title := TitleStyle.Render(fmt.Sprintf("Villa Board  %s", m.focus.Format("January 2006")))
	viewLabel := DayHeaderStyle.Render(fmt.Sprintf("[%s]", m.view))

	if d, ok := m.board.CurrentDrag(); ok {
		return title + "  " + viewLabel + "  " + badge + "  " +
			DragStyle.Render(" moving: "+d.Item.Title+" ")
	}
	return title + "  " + viewLabel + "  " + badge
}

// monthRow writes month names above the first day of each visible month.
func (m Model) monthRow(start, n int) string {
	row := make([]byte, n*cellWidth)
	for i := range row {
		row[i] = ' '
	}
	for i := 0; i < n; i++ {
		day := m.cols.Days[start+i]
		if day.Day() != 1 && i != 0 {
			continue
		}
		label := day.Format("Jan")
		pos := i * cellWidth
		for j := 0; j < len(label) && pos+j < len(row); j++ {
			row[pos+j] = label[j]
		}
	}
	return strings.Repeat(" ", nameWidth) + MonthHeaderStyle.Render(string(row))
}

func (m Model) dayRow(start, n int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameWidth))
	today := timeline.DayKey(timeline.Noon(time.Now()))
	for i := 0; i < n; i++ {
		day := m.cols.Days[start+i]
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case timeline.DayKey(day) == today:
			b.WriteString(TodayHeaderStyle.Render(cell))
		case start+i == m.cursor:
			b.WriteString(CursorStyle.Render(cell))
		default:
			b.WriteString(DayHeaderStyle.Render(cell))
		}
	}
	return b.String()
}

// personRows renders every lane of one person.
func (m Model) personRows(p, start, n int) string {
	lanes := m.board.Lanes(p)
	var b strings.Builder
	for laneIdx, lane := range lanes {
		b.WriteString(m.laneGutter(p, laneIdx))
		b.WriteString(m.laneCells(p, laneIdx, lane, start, n))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) laneGutter(p, lane int) string {
	var name string
	if lane == 0 {
		name = m.people[p].DisplayName()
		if len(name) > nameWidth-2 {
			name = name[:nameWidth-2]
		}
	}
	marker := "  "
	if p == m.selPerson && lane == m.selLane {
		marker = "▶ "
	}
	gutter := fmt.Sprintf("%s%-*s", marker, nameWidth-2, name)
	if p == m.selPerson {
		return SelectedPersonStyle.Render(gutter)
	}
	return PersonStyle.Render(gutter)
}

func (m Model) laneCells(p, laneIdx int, lane []models.Item, start, n int) string {
	var b strings.Builder
	selected := p == m.selPerson && laneIdx == m.selLane

	for i := 0; i < n; i++ {
		day := m.cols.Days[start+i]
		cursorHere := selected && start+i == m.cursor

		if it, ok := coveringItem(lane, day); ok {
			bg := m.colors.ColorFor(it.Category)
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(bg)).
				Foreground(lipgloss.Color(ContrastColor(bg)))
			if cursorHere {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(barCell(it, day)))
			continue
		}

		var cell string
		var style lipgloss.Style
		if m.board.IsOffDay(p, day) {
			cell, style = "××", OffDayCellStyle
		} else {
			cell, style = "· ", EmptyCellStyle
		}
		if cursorHere {
			style = CursorStyle
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

// barCell picks the text for one day of a bar: the start of the label on
// the arrival day, solid fill after.
func barCell(it models.Item, day time.Time) string {
	if timeline.DayKey(day) != timeline.DayKey(timeline.Noon(it.Arrival)) {
		return "  "
	}
	label := it.GuestName
	if label == "" {
		label = it.Title
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "▏ "
	}
	r := []rune(label)
	if len(r) == 1 {
		return "▏" + string(r[0])
	}
	return string(r[:2])
}

func coveringItem(lane []models.Item, day time.Time) (models.Item, bool) {
	d := timeline.Noon(day)
	for _, it := range lane {
		if !d.Before(timeline.Noon(it.Arrival)) && !d.After(timeline.Noon(it.Departure)) {
			return it, true
		}
	}
	return models.Item{}, false
}

// poolView renders the pending drawer, scrolled around the selection.
func (m Model) poolView() string {
	pool := m.board.Pool()
	var b strings.Builder
	b.WriteString(PoolHeaderStyle.Render(fmt.Sprintf("Pending (%d)", len(pool))))
	b.WriteString("\n")
	if len(pool) == 0 {
		b.WriteString(PoolItemStyle.Render("  nothing waiting"))
		b.WriteString("\n")
		return b.String()
	}

	const window = 8
	first := 0
	if m.poolSel >= window {
		first = m.poolSel - window + 1
	}
	last := first + window
	if last > len(pool) {
		last = len(pool)
	}

	for i := first; i < last; i++ {
		it := pool[i]
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.colors.ColorFor(it.Category))).
			Render("■")
		line := fmt.Sprintf(" %s %s  %s → %s  %s",
			swatch, it.Title,
			it.Arrival.Format("Jan 2"), it.Departure.Format("Jan 2"),
			it.Category)
		if !timeline.WithinWindow(it, m.cols) {
			line += "  (outside view)"
		}
		if i == m.poolSel {
			b.WriteString(SelectedPoolItemStyle.Render(">" + line))
		} else {
			b.WriteString(PoolItemStyle.Render(" " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusView() string {
	if m.status == "" {
		hint := fmt.Sprintf("%s help  %s edit  %s pool  %s view",
			m.config.KeyMappings.ShowHelp,
			m.config.KeyMappings.ToggleEdit,
			m.config.KeyMappings.TogglePool,
			m.config.KeyMappings.ToggleView)
		return StatusStyle.Render(hint)
	}
	if m.statusErr {
		return ErrorStatusStyle.Render(m.status)
	}
	return StatusStyle.Render(m.status)
}

// editorView centers the pending edit form, like a dialog.
func (m Model) editorView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Edit booking"))
	b.WriteString("\n\n")
	for i := range m.editor.inputs {
		b.WriteString(FieldLabelStyle.Render(editorLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.editor.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render("enter save   tab next field   esc cancel"))
	if m.statusErr {
		b.WriteString("\n")
		b.WriteString(ErrorStatusStyle.Render(m.status))
	}

	box := FormBoxStyle.Width(m.width / 2).Render(b.String())
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
