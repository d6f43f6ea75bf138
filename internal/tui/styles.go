package tui

import (
	"strconv"

	"charm.land/lipgloss/v2"
)

// Style definitions for the allocation board UI.
var (
	// TitleStyle renders the header line with the year and view label.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// EditBadgeStyle marks the board as editable.
	EditBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0f172a")).
			Background(lipgloss.Color("#fbbf24")).
			Padding(0, 1)

	// ViewBadgeStyle marks the board as read-only.
	ViewBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	// MonthHeaderStyle renders the month names above the day digits.
	MonthHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("110"))

	// DayHeaderStyle renders the day-of-month digits.
	DayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// TodayHeaderStyle highlights today's column in the header.
	TodayHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#0f172a")).
				Background(lipgloss.Color("#38bdf8"))

	// PersonStyle renders the name gutter.
	PersonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SelectedPersonStyle highlights the selected person's name.
	SelectedPersonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	// EmptyCellStyle renders days with nothing scheduled.
	EmptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("237"))

	// OffDayCellStyle renders registered off days.
	OffDayCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	// CursorStyle marks the day cursor on the selected lane.
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	// PoolHeaderStyle titles the pending pool drawer.
	PoolHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	// PoolItemStyle renders unselected pool rows.
	PoolItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// SelectedPoolItemStyle highlights the selected pool row.
	SelectedPoolItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#0f172a")).
				Background(lipgloss.Color("110"))

	// StatusStyle renders the status line.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// ErrorStatusStyle renders failures on the status line.
	ErrorStatusStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	// DragStyle marks the item currently picked up.
	DragStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0f172a")).
			Background(lipgloss.Color("#fbbf24"))

	// FieldLabelStyle titles inputs in the pending edit form.
	FieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// FormBoxStyle frames the pending edit form.
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// ContrastColor picks black or white text for a bar background, using the
// same YIQ weighting browsers use for perceived brightness.
func ContrastColor(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "#f8fafc"
	}
	yiq := (r*299 + g*587 + b*114) / 1000
	if yiq >= 128 {
		return "#0f172a"
	}
	return "#f8fafc"
}

// parseHex reads "#rgb" or "#rrggbb".
func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) == 0 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	hex = hex[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(hex[0:2], 16, 0)
	gv, err2 := strconv.ParseInt(hex[2:4], 16, 0)
	bv, err3 := strconv.ParseInt(hex[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
