package board

import (
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// Place runs the lane assignment rules for one item against one person and
// returns the lane index that accepted it. Evaluated in order:
//
//  1. the board must be in edit mode (ErrNotEditable, silent refusal)
//  2. the item's arrival must not be one of the person's off days
//     (ErrOffDayConflict)
//  3. the preferred lane is tried first, then every other existing lane in
//     index order; a lane accepts when none of its items overlaps
//  4. with every lane full and fewer than MaxLanes lanes, a fresh lane is
//     appended and takes the item
//  5. otherwise ErrNoLaneAvailable
//
// On success the item is removed from the pending pool if it was pooled.
// On any failure the board is untouched.
func (b *Board) Place(person int, it models.Item, preferredLane int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.editMode {
		return 0, models.ErrNotEditable
	}
	if person < 0 || person >= len(b.lanes) {
		return 0, models.ErrUnknownPerson
	}

	arrivalKey := timeline.DayKey(timeline.Noon(it.Arrival))
	if _, off := b.offDays[person][arrivalKey]; off {
		return 0, models.ErrOffDayConflict
	}

	if preferredLane < 0 || preferredLane >= len(b.lanes[person]) {
		preferredLane = models.DefaultLane
	}
	if b.laneAcceptsLocked(person, preferredLane, it) {
		b.placeLocked(person, preferredLane, it)
		return preferredLane, nil
	}

	for lane := range b.lanes[person] {
		if lane == preferredLane {
			continue
		}
		if b.laneAcceptsLocked(person, lane, it) {
			b.placeLocked(person, lane, it)
			return lane, nil
		}
	}

	if len(b.lanes[person]) < models.MaxLanes {
		b.lanes[person] = append(b.lanes[person], []models.Item{})
		lane := len(b.lanes[person]) - 1
		b.placeLocked(person, lane, it)
		return lane, nil
	}

	return 0, models.ErrNoLaneAvailable
}

// laneAcceptsLocked reports whether no existing item in the lane overlaps
// the candidate.
func (b *Board) laneAcceptsLocked(person, lane int, it models.Item) bool {
	for _, existing := range b.lanes[person][lane] {
		if timeline.Overlaps(it, existing) {
			return false
		}
	}
	return true
}

func (b *Board) placeLocked(person, lane int, it models.Item) {
	b.lanes[person][lane] = append(b.lanes[person][lane], it)
	b.removeFromPoolLocked(it.ID)
}

// Unassign removes an item from a lane and returns a copy of it, stripped
// of placement, to the pending pool. Like Place it is gated on edit mode.
func (b *Board) Unassign(person, lane int, id string) (models.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.editMode {
		return models.Item{}, models.ErrNotEditable
	}
	it, ok := b.removeFromLaneLocked(person, lane, id)
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	pooled := it.Unassigned()
	b.pool = append(b.pool, pooled)
	return pooled, nil
}
