package board

import (
	"sort"
	"time"

	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// ToggleOffDay flips the off state of one calendar date for one person and
// reports whether the date is off after the call. Removing an off day
// always succeeds; adding one fails with ErrArrivalConflict when any of
// the person's placed items arrives exactly that day, leaving the set
// unchanged.
func (b *Board) ToggleOffDay(person int, day time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.editMode {
		return false, models.ErrNotEditable
	}
	if person < 0 || person >= len(b.offDays) {
		return false, models.ErrUnknownPerson
	}

	key := timeline.DayKey(timeline.Noon(day))
	if _, off := b.offDays[person][key]; off {
		delete(b.offDays[person], key)
		return false, nil
	}
	if b.hasArrivalOnLocked(person, key) {
		return false, models.ErrArrivalConflict
	}
	b.offDays[person][key] = struct{}{}
	return true, nil
}

// IsOffDay reports whether a date is blacked out for a person.
func (b *Board) IsOffDay(person int, day time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.offDays) {
		return false
	}
	_, off := b.offDays[person][timeline.DayKey(timeline.Noon(day))]
	return off
}

// OffDays returns a person's blacked-out dates as sorted day keys.
func (b *Board) OffDays(person int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.offDays) {
		return nil
	}
	keys := make([]string, 0, len(b.offDays[person]))
	for k := range b.offDays[person] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
