// Package board holds the in-memory state of the allocation board: the
// pending pool, each person's lanes and off-day set, and the lane
// assignment rules. All reads hand out copies; all mutation goes through
// methods guarded by a single mutex so asynchronous write-back rollbacks
// cannot interleave with a placement mid-mutation.
package board

import (
	"sort"
	"sync"
	"time"

	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// Board aggregates the mutable state the lane assignment engine operates
// over. Person identity is positional: index i everywhere refers to the
// i-th person of the roster the board was normalized against.
type Board struct {
	mu       sync.Mutex
	editMode bool

	pool    []models.Item
	lanes   [][][]models.Item
	offDays []map[string]struct{}
	drag    *Drag
}

// New returns an empty board shaped for n people.
func New(n int) *Board {
	b := &Board{}
	b.normalizeLocked(n)
	return b
}

// Normalize repairs the board's shape for a roster of n people: lane lists
// and off-day sets are padded or truncated, and every person keeps at least
// one (possibly empty) lane. Idempotent; run after any roster change and
// before placements.
func (b *Board) Normalize(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.normalizeLocked(n)
}

func (b *Board) normalizeLocked(n int) {
	if n < 0 {
		n = 0
	}

	for len(b.lanes) < n {
		b.lanes = append(b.lanes, [][]models.Item{{}})
	}
	if len(b.lanes) > n {
		b.lanes = b.lanes[:n]
	}
	for i := range b.lanes {
		if len(b.lanes[i]) == 0 {
			b.lanes[i] = [][]models.Item{{}}
		}
	}

	for len(b.offDays) < n {
		b.offDays = append(b.offDays, map[string]struct{}{})
	}
	if len(b.offDays) > n {
		b.offDays = b.offDays[:n]
	}
	for i := range b.offDays {
		if b.offDays[i] == nil {
			b.offDays[i] = map[string]struct{}{}
		}
	}
}

// People returns how many people the board is currently shaped for.
func (b *Board) People() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lanes)
}

// SetEditMode flips the mode gate for mutating operations.
func (b *Board) SetEditMode(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editMode = on
}

// EditMode reports whether mutations are currently allowed.
func (b *Board) EditMode() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editMode
}

// Pool returns a copy of the pending pool sorted by arrival date.
func (b *Board) Pool() []models.Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Item, len(b.pool))
	copy(out, b.pool)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Arrival.Before(out[j].Arrival)
	})
	return out
}

// PoolItem looks up a pending item by id.
func (b *Board) PoolItem(id string) (models.Item, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, it := range b.pool {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

// AddToPool appends an item to the pending pool, replacing any existing
// pool entry with the same id (re-imported sheet rows overwrite).
func (b *Board) AddToPool(it models.Item) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeFromPoolLocked(it.ID)
	b.pool = append(b.pool, it)
}

// UpdatePoolItem replaces the pool entry with the same id, keeping the item
// pending. Returns ErrItemNotFound when the id is not pooled.
func (b *Board) UpdatePoolItem(it models.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.pool {
		if b.pool[i].ID == it.ID {
			b.pool[i] = it
			return nil
		}
	}
	return models.ErrItemNotFound
}

// RemoveFromPool removes and returns a pool entry. Used both by placement
// and by the compensation path when an unassign write-back fails.
func (b *Board) RemoveFromPool(id string) (models.Item, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.removeFromPoolLocked(id)
}

func (b *Board) removeFromPoolLocked(id string) (models.Item, bool) {
	for i, it := range b.pool {
		if it.ID == id {
			b.pool = append(b.pool[:i], b.pool[i+1:]...)
			return it, true
		}
	}
	return models.Item{}, false
}

// RestoreToPool puts an item back into the pool without the id-replacement
// semantics of AddToPool; compensation path for a failed assign write-back.
func (b *Board) RestoreToPool(it models.Item) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pool = append(b.pool, it)
}

// Lanes returns a deep copy of a person's lanes, each sorted by arrival.
func (b *Board) Lanes(person int) [][]models.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.lanes) {
		return nil
	}

	out := make([][]models.Item, len(b.lanes[person]))
	for i, lane := range b.lanes[person] {
		out[i] = make([]models.Item, len(lane))
		copy(out[i], lane)
		sort.SliceStable(out[i], func(a, c int) bool {
			return out[i][a].Arrival.Before(out[i][c].Arrival)
		})
	}
	return out
}

// LaneCount returns how many lanes a person currently has.
func (b *Board) LaneCount(person int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.lanes) {
		return 0
	}
	return len(b.lanes[person])
}

// Seed places an already-assigned item directly into a lane at load time,
// growing the lane list as needed (capped at MaxLanes). No overlap or
// off-day checks: stored state is trusted, as the original board trusted
// its own collection.
func (b *Board) Seed(person, lane int, it models.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.lanes) {
		return models.ErrUnknownPerson
	}
	if lane < 0 || lane >= models.MaxLanes {
		lane = 0
	}
	for len(b.lanes[person]) <= lane {
		b.lanes[person] = append(b.lanes[person], []models.Item{})
	}
	b.lanes[person][lane] = append(b.lanes[person][lane], it)
	return nil
}

// SortLanes re-sorts every lane by arrival; run once after seeding.
func (b *Board) SortLanes() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, person := range b.lanes {
		for _, lane := range person {
			sort.SliceStable(lane, func(i, j int) bool {
				return lane[i].Arrival.Before(lane[j].Arrival)
			})
		}
	}
}

// RemoveFromLane removes and returns an item from a specific lane; shared
// by placed-item drags, unassignment, and assign-rollback compensation.
func (b *Board) RemoveFromLane(person, lane int, id string) (models.Item, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.removeFromLaneLocked(person, lane, id)
}

func (b *Board) removeFromLaneLocked(person, lane int, id string) (models.Item, bool) {
	if person < 0 || person >= len(b.lanes) || lane < 0 || lane >= len(b.lanes[person]) {
		return models.Item{}, false
	}
	laneArr := b.lanes[person][lane]
	for i, it := range laneArr {
		if it.ID == id {
			b.lanes[person][lane] = append(laneArr[:i], laneArr[i+1:]...)
			return it, true
		}
	}
	return models.Item{}, false
}

// RestoreToLane puts an item back into the lane it was removed from,
// growing the lane list if a rollback races a lane truncation.
func (b *Board) RestoreToLane(person, lane int, it models.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if person < 0 || person >= len(b.lanes) {
		return models.ErrUnknownPerson
	}
	if lane < 0 {
		return models.ErrUnknownLane
	}
	for len(b.lanes[person]) <= lane {
		b.lanes[person] = append(b.lanes[person], []models.Item{})
	}
	b.lanes[person][lane] = append(b.lanes[person][lane], it)
	return nil
}

// FindPlacement locates an item anywhere on the board, returning its
// person and lane indexes.
func (b *Board) FindPlacement(id string) (person, lane int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for p, lanes := range b.lanes {
		for l, laneArr := range lanes {
			for _, it := range laneArr {
				if it.ID == id {
					return p, l, true
				}
			}
		}
	}
	return 0, 0, false
}

// hasArrivalOnLocked reports whether any lane item of a person arrives
// exactly on the given day key.
func (b *Board) hasArrivalOnLocked(person int, key string) bool {
	if person < 0 || person >= len(b.lanes) {
		return false
	}
	for _, lane := range b.lanes[person] {
		for _, it := range lane {
			if timeline.DayKey(timeline.Noon(it.Arrival)) == key {
				return true
			}
		}
	}
	return false
}

// HasArrivalOn reports whether any of the person's placed items arrives on
// the given date.
func (b *Board) HasArrivalOn(person int, day time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasArrivalOnLocked(person, timeline.DayKey(timeline.Noon(day)))
}
