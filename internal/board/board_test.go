package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawisara/villaboard/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func item(id string, arrival, departure time.Time) models.Item {
	return models.Item{ID: id, Title: id, Arrival: arrival, Departure: departure, Category: "Other"}
}

func editable(n int) *Board {
	b := New(n)
	b.SetEditMode(true)
	return b
}

func TestNormalizeShapes(t *testing.T) {
	b := New(3)
	assert.Equal(t, 3, b.People())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, b.LaneCount(i), "person %d should start with one empty lane", i)
		assert.Empty(t, b.OffDays(i))
	}
}

func TestNormalizeTruncatesShrunkRoster(t *testing.T) {
	b := editable(5)
	_, err := b.Place(4, item("x", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)

	b.Normalize(3)
	assert.Equal(t, 3, b.People())
	assert.Equal(t, 0, b.LaneCount(4))

	// Repair is idempotent.
	b.Normalize(3)
	assert.Equal(t, 3, b.People())
}

func TestPlaceIntoPreferredLane(t *testing.T) {
	b := editable(1)
	lane, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, lane)
}

func TestPlaceFallsThroughToFreeLane(t *testing.T) {
	b := editable(1)
	_, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)

	// Overlapping item cannot share lane 0; a second lane is grown.
	lane, err := b.Place(0, item("b", date(2025, time.August, 2), date(2025, time.August, 4)), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, lane)

	// A third overlapping item prefers lane 0, gets rejected there and by
	// lane 1, and grows lane 2.
	lane, err = b.Place(0, item("c", date(2025, time.August, 2), date(2025, time.August, 5)), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, lane)
}

func TestPlacePrefersExistingFreeLaneOverGrowth(t *testing.T) {
	b := editable(1)
	_, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)
	_, err = b.Place(0, item("b", date(2025, time.August, 2), date(2025, time.August, 4)), 0)
	require.NoError(t, err)

	// Lane 1 is occupied Aug 2-4 but free from Aug 10; no growth needed.
	lane, err := b.Place(0, item("c", date(2025, time.August, 2), date(2025, time.August, 4)), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, lane)

	lane, err = b.Place(0, item("d", date(2025, time.August, 10), date(2025, time.August, 12)), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, lane)
	assert.Equal(t, 3, b.LaneCount(0))
}

func TestPlaceTouchingRangesShareLane(t *testing.T) {
	b := editable(1)
	_, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)

	// Checkout Aug 3, checkin Aug 3: same lane is fine.
	lane, err := b.Place(0, item("b", date(2025, time.August, 3), date(2025, time.August, 6)), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, lane)
}

func TestPlaceHonorsPreferredLane(t *testing.T) {
	b := editable(1)
	_, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)
	_, err = b.Place(0, item("b", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)

	// Both lanes free for this range; the lane under the cursor wins.
	lane, err := b.Place(0, item("c", date(2025, time.August, 10), date(2025, time.August, 12)), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, lane)
}

func TestPlaceLaneCapExhausted(t *testing.T) {
	b := editable(1)
	blocking := func(id string) models.Item {
		return item(id, date(2025, time.August, 1), date(2025, time.August, 30))
	}
	for i := 0; i < models.MaxLanes; i++ {
		_, err := b.Place(0, blocking(string(rune('a'+i))), 0)
		require.NoError(t, err)
	}
	assert.Equal(t, models.MaxLanes, b.LaneCount(0))

	_, err := b.Place(0, blocking("overflow"), 0)
	assert.ErrorIs(t, err, models.ErrNoLaneAvailable)
	assert.Equal(t, models.MaxLanes, b.LaneCount(0))
}

func TestPlaceRejectedOutsideEditMode(t *testing.T) {
	b := New(1)
	_, err := b.Place(0, item("a", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	assert.ErrorIs(t, err, models.ErrNotEditable)
	assert.Empty(t, b.Lanes(0)[0])
}

func TestPlaceOffDayConflict(t *testing.T) {
	b := editable(1)
	_, err := b.ToggleOffDay(0, date(2025, time.August, 5))
	require.NoError(t, err)

	_, err = b.Place(0, item("a", date(2025, time.August, 5), date(2025, time.August, 8)), 0)
	assert.ErrorIs(t, err, models.ErrOffDayConflict)
	assert.Empty(t, b.Lanes(0)[0])

	// Departing across an off day is fine; only the arrival is gated.
	_, err = b.Place(0, item("b", date(2025, time.August, 3), date(2025, time.August, 8)), 0)
	assert.NoError(t, err)
}

func TestPlaceRemovesItemFromPool(t *testing.T) {
	b := editable(1)
	it := item("a", date(2025, time.August, 1), date(2025, time.August, 3))
	b.AddToPool(it)

	_, err := b.Place(0, it, 0)
	require.NoError(t, err)
	_, pooled := b.PoolItem("a")
	assert.False(t, pooled)
}

func TestUnassignReturnsItemToPool(t *testing.T) {
	b := editable(1)
	it := item("a", date(2025, time.August, 1), date(2025, time.August, 3))
	b.AddToPool(it)
	lane, err := b.Place(0, it, 0)
	require.NoError(t, err)

	pooled, err := b.Unassign(0, lane, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", pooled.ID)
	assert.Empty(t, b.Lanes(0)[lane])
	_, inPool := b.PoolItem("a")
	assert.True(t, inPool)

	// Re-placing drains the pool again: membership stays exclusive.
	_, err = b.Place(0, pooled, 0)
	require.NoError(t, err)
	_, inPool = b.PoolItem("a")
	assert.False(t, inPool)
}

func TestLanesNeverOverlapAfterPlacements(t *testing.T) {
	b := editable(2)
	items := []models.Item{
		item("a", date(2025, time.August, 1), date(2025, time.August, 5)),
		item("b", date(2025, time.August, 2), date(2025, time.August, 6)),
		item("c", date(2025, time.August, 5), date(2025, time.August, 9)),
		item("d", date(2025, time.August, 4), date(2025, time.August, 7)),
		item("e", date(2025, time.August, 1), date(2025, time.August, 2)),
	}
	for _, it := range items {
		_, err := b.Place(0, it, 0)
		require.NoError(t, err)
	}

	for _, lane := range b.Lanes(0) {
		for i := 0; i < len(lane); i++ {
			for j := i + 1; j < len(lane); j++ {
				assert.False(t,
					lane[i].Departure.After(lane[j].Arrival) && lane[j].Departure.After(lane[i].Arrival),
					"items %s and %s overlap in one lane", lane[i].ID, lane[j].ID)
			}
		}
	}
}

func TestLanesReadSortedByArrival(t *testing.T) {
	b := editable(1)
	_, err := b.Place(0, item("late", date(2025, time.August, 20), date(2025, time.August, 22)), 0)
	require.NoError(t, err)
	_, err = b.Place(0, item("early", date(2025, time.August, 1), date(2025, time.August, 3)), 0)
	require.NoError(t, err)

	lane := b.Lanes(0)[0]
	require.Len(t, lane, 2)
	assert.Equal(t, "early", lane[0].ID)
	assert.Equal(t, "late", lane[1].ID)
}

func TestSeedGrowsLanesAndSorts(t *testing.T) {
	b := New(1)
	require.NoError(t, b.Seed(0, 2, item("b", date(2025, time.August, 10), date(2025, time.August, 12))))
	require.NoError(t, b.Seed(0, 2, item("a", date(2025, time.August, 1), date(2025, time.August, 3))))
	b.SortLanes()

	assert.Equal(t, 3, b.LaneCount(0))
	lane := b.Lanes(0)[2]
	require.Len(t, lane, 2)
	assert.Equal(t, "a", lane[0].ID)
}

func TestDragSlot(t *testing.T) {
	b := New(1)
	_, active := b.CurrentDrag()
	assert.False(t, active)

	first := Drag{Source: FromPool, Item: item("a", date(2025, time.August, 1), date(2025, time.August, 2))}
	b.BeginDrag(first)
	d, active := b.CurrentDrag()
	assert.True(t, active)
	assert.Equal(t, "a", d.Item.ID)

	// A new drag replaces the prior one.
	b.BeginDrag(Drag{Source: FromLane, Person: 0, Lane: 1, Item: item("b", date(2025, time.August, 1), date(2025, time.August, 2))})
	d, _ = b.CurrentDrag()
	assert.Equal(t, "b", d.Item.ID)

	b.EndDrag()
	_, active = b.CurrentDrag()
	assert.False(t, active)
	b.EndDrag() // releasing an empty slot is fine
}
