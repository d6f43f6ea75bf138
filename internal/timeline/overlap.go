package timeline

import (
	"time"

	"github.com/rawisara/villaboard/internal/models"
)

// Overlaps reports whether two allocations' inclusive date ranges collide.
// Comparison is strict on noon-normalized days, so a departure touching the
// next arrival (checkout and checkin on the same day) does not overlap and
// both items may share a lane.
func Overlaps(a, b models.Item) bool {
	aS, aE := Noon(a.Arrival), Noon(a.Departure)
	bS, bE := Noon(b.Arrival), Noon(b.Departure)
	return aE.After(bS) && bE.After(aS)
}

// WithinWindow reports whether any part of the item's range falls inside
// the visible columns. This only gates rendering; the data model keeps
// items that scroll out of view.
func WithinWindow(it models.Item, cols Columns) bool {
	if cols.Len() == 0 {
		return true
	}
	s, e := Noon(it.Arrival), Noon(it.Departure)
	return !e.Before(Noon(cols.Start())) && !s.After(Noon(cols.End()))
}

// RangeValid reports whether departure is on or after arrival.
func RangeValid(arrival, departure time.Time) bool {
	return !Noon(departure).Before(Noon(arrival))
}
