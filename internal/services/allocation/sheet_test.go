package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawisara/villaboard/internal/models"
)

func row(id string, arrival, departure time.Time) SheetRow {
	return SheetRow{
		ID:        id,
		Title:     "Stay " + id,
		GuestName: "Guest " + id,
		Villa:     "V9",
		Arrival:   arrival,
		Departure: departure,
		Category:  "Maldives",
	}
}

func TestImportSheet(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	n, err := f.svc.ImportSheet(ctx, []SheetRow{
		row("s1", date(2026, 5, 1), date(2026, 5, 8)),
		row("s2", date(2026, 5, 10), date(2026, 5, 14)),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok := f.board.PoolItem("s1")
	assert.True(t, ok)
	_, ok = f.board.PoolItem("s2")
	assert.True(t, ok)

	_, pending, err := f.repo.GetAllocations(ctx, date(2026, 1, 1), date(2026, 12, 31))
	require.NoError(t, err)
	assert.Len(t, pending, 4) // b1, b2 from setup plus the two imported
}

func TestImportSheetSkipsBlankRows(t *testing.T) {
	f := setup(t)

	n, err := f.svc.ImportSheet(context.Background(), []SheetRow{
		row("s1", date(2026, 5, 1), date(2026, 5, 8)),
		{},
		{Villa: "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportSheetDuplicateIDFailsWholeBatch(t *testing.T) {
	f := setup(t)

	_, err := f.svc.ImportSheet(context.Background(), []SheetRow{
		row("s1", date(2026, 5, 1), date(2026, 5, 8)),
		row("s2", date(2026, 5, 10), date(2026, 5, 14)),
		row("s1", date(2026, 6, 1), date(2026, 6, 8)),
	})
	require.ErrorIs(t, err, ErrDuplicateSheetID)

	// All or nothing: no row landed in the pool.
	_, ok := f.board.PoolItem("s1")
	assert.False(t, ok)
	_, ok = f.board.PoolItem("s2")
	assert.False(t, ok)
}

func TestImportSheetRejectsIDAlreadyPlaced(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.svc.PlaceFromPool(ctx, 0, "b1", 0))
	f.svc.Wait()

	_, err := f.svc.ImportSheet(ctx, []SheetRow{
		row("b1", date(2026, 5, 1), date(2026, 5, 8)),
	})
	assert.ErrorIs(t, err, ErrDuplicateSheetID)
}

func TestImportSheetReplacesPooledID(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	// b1 is pending, so a re-import updates it in place.
	n, err := f.svc.ImportSheet(ctx, []SheetRow{
		row("b1", date(2026, 4, 1), date(2026, 4, 8)),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	it, ok := f.board.PoolItem("b1")
	require.True(t, ok)
	assert.Equal(t, time.April, it.Arrival.Month())
	assert.Len(t, f.board.Pool(), 2)
}

func TestImportSheetValidatesRows(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.ImportSheet(ctx, []SheetRow{
		{Title: "No id", Arrival: date(2026, 5, 1), Departure: date(2026, 5, 8)},
	})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = f.svc.ImportSheet(ctx, []SheetRow{
		{ID: "s1", Arrival: date(2026, 5, 1), Departure: date(2026, 5, 8)},
	})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = f.svc.ImportSheet(ctx, []SheetRow{
		row("s1", date(2026, 5, 8), date(2026, 5, 1)),
	})
	assert.ErrorIs(t, err, models.ErrDepartureBeforeArrival)

	_, err = f.svc.ImportSheet(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestImportSheetKeepsRowsLocallyWhenStoreFails(t *testing.T) {
	f := setup(t)
	f.store.failCreate = true

	n, err := f.svc.ImportSheet(context.Background(), []SheetRow{
		row("s1", date(2026, 5, 1), date(2026, 5, 8)),
	})
	assert.ErrorIs(t, err, ErrSheetNotPersisted)
	assert.Equal(t, 1, n)

	_, ok := f.board.PoolItem("s1")
	assert.True(t, ok)
}
