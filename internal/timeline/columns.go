// Package timeline holds the pure calendar math for the board: building
// the visible column window from a view mode and focus date, and deciding
// whether two allocations' date ranges collide.
package timeline

import "time"

// ViewMode selects how wide the visible column window is.
type ViewMode string

const (
	// ViewYear shows Jan 1 through Dec 31 of the focus year.
	ViewYear ViewMode = "YEAR"
	// ViewThree shows a rolling three month window centered on the focus month.
	ViewThree ViewMode = "THREE"
	// ViewMonth shows the focus month only.
	ViewMonth ViewMode = "MONTH"
)

// Next cycles YEAR -> THREE -> MONTH -> YEAR for the view toggle.
func (v ViewMode) Next() ViewMode {
	switch v {
	case ViewYear:
		return ViewThree
	case ViewThree:
		return ViewMonth
	default:
		return ViewYear
	}
}

// dayKeyLayout is the canonical date key format used for off-day sets and
// column index lookups.
const dayKeyLayout = "2006-01-02"

// Noon normalizes a time to 12:00 local on the same calendar day.
// Anchoring every date at noon keeps cross-column day arithmetic stable
// across DST transitions, where midnight-based math drifts by an hour.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// AddDays returns the noon-normalized date n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	return Noon(t.AddDate(0, 0, n))
}

// DayKey formats a date as its canonical "YYYY-MM-DD" key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a canonical "YYYY-MM-DD" key back to a noon date.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return Noon(t), nil
}

// DaysInclusive counts calendar days from a through b, both ends included.
func DaysInclusive(a, b time.Time) int {
	return daysBetween(Noon(a), Noon(b)) + 1
}

// daysBetween counts calendar days from a to b, both noon-normalized.
// The elapsed duration can be off a whole multiple of 24h by up to an hour
// around DST transitions; rounding by half a day absorbs that.
func daysBetween(a, b time.Time) int {
	if b.Before(a) {
		return -daysBetween(b, a)
	}
	return int((b.Sub(a) + 12*time.Hour) / (24 * time.Hour))
}

// Columns is the visible timeline: an ordered run of consecutive noon
// dates plus a reverse index from day key to column position. It is built
// once per view change and never mutated.
type Columns struct {
	Days  []time.Time
	index map[string]int
}

// Build computes the column window for a view mode and focus date.
func Build(mode ViewMode, focus time.Time) Columns {
	var start, end time.Time
	switch mode {
	case ViewYear:
		start = time.Date(focus.Year(), time.January, 1, 0, 0, 0, 0, focus.Location())
		end = time.Date(focus.Year(), time.December, 31, 0, 0, 0, 0, focus.Location())
	case ViewThree:
		start = time.Date(focus.Year(), focus.Month()-1, 1, 0, 0, 0, 0, focus.Location())
		// Day zero of the month after next is the last day of next month.
		end = time.Date(focus.Year(), focus.Month()+2, 0, 0, 0, 0, 0, focus.Location())
	default:
		start = time.Date(focus.Year(), focus.Month(), 1, 0, 0, 0, 0, focus.Location())
		end = time.Date(focus.Year(), focus.Month()+1, 0, 0, 0, 0, 0, focus.Location())
	}

	s, e := Noon(start), Noon(end)
	n := daysBetween(s, e) + 1
	days := make([]time.Time, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		d := AddDays(s, i)
		days[i] = d
		index[DayKey(d)] = i
	}
	return Columns{Days: days, index: index}
}

// Len returns the number of visible columns.
func (c Columns) Len() int { return len(c.Days) }

// Start returns the first visible date. Zero time when empty.
func (c Columns) Start() time.Time {
	if len(c.Days) == 0 {
		return time.Time{}
	}
	return c.Days[0]
}

// End returns the last visible date. Zero time when empty.
func (c Columns) End() time.Time {
	if len(c.Days) == 0 {
		return time.Time{}
	}
	return c.Days[len(c.Days)-1]
}

// Index returns the column position of a date, keyed by calendar day.
func (c Columns) Index(t time.Time) (int, bool) {
	i, ok := c.index[DayKey(t)]
	return i, ok
}

// Offset returns the number of days from the window start to t, clamped
// to the window; used to position bars that start before the window.
func (c Columns) Offset(t time.Time) int {
	if len(c.Days) == 0 {
		return 0
	}
	off := daysBetween(c.Start(), Noon(t))
	if off < 0 {
		return 0
	}
	if off > len(c.Days)-1 {
		return len(c.Days) - 1
	}
	return off
}
