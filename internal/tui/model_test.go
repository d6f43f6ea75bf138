package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawisara/villaboard/internal/app"
	"github.com/rawisara/villaboard/internal/config"
	"github.com/rawisara/villaboard/internal/database"
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

func setupModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := database.NewRepository(db)

	_, err = repo.CreatePerson(ctx, "Siriporn Chaiyasit", "Siri")
	require.NoError(t, err)
	_, err = repo.CreatePerson(ctx, "Anan Wongsawat", "")
	require.NoError(t, err)

	now := timeline.Noon(time.Now())
	require.NoError(t, repo.CreateAllocations(ctx, []models.Item{
		{
			ID:        "b1",
			Title:     "Beach stay",
			GuestName: "Nok",
			Arrival:   now,
			Departure: timeline.AddDays(now, 6),
			Category:  "Maldives",
		},
	}))

	container := app.New(repo, nil)
	t.Cleanup(func() { _ = container.Close() })

	m := InitialModel(container, config.Default(), nil)
	m.width, m.height = 120, 40
	return m, container
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var k tea.Key
	switch key {
	case "enter":
		k = tea.Key{Code: tea.KeyEnter}
	case "esc":
		k = tea.Key{Code: tea.KeyEscape}
	case " ":
		k = tea.Key{Code: tea.KeySpace, Text: " "}
	default:
		k = tea.Key{Text: key, Code: rune(key[0])}
	}
	next, _ := m.Update(tea.KeyPressMsg(k))
	return next.(Model)
}

func TestToggleEditMode(t *testing.T) {
	m, _ := setupModel(t)
	require.False(t, m.board.EditMode())

	m = press(t, m, "e")
	assert.True(t, m.board.EditMode())

	m = press(t, m, "e")
	assert.False(t, m.board.EditMode())
}

func TestToggleViewCycles(t *testing.T) {
	m, _ := setupModel(t)
	require.Equal(t, timeline.ViewYear, m.view)

	m = press(t, m, "v")
	assert.Equal(t, timeline.ViewThree, m.view)
	m = press(t, m, "v")
	assert.Equal(t, timeline.ViewMonth, m.view)
	m = press(t, m, "v")
	assert.Equal(t, timeline.ViewYear, m.view)
}

func TestDayNavigationMovesCursor(t *testing.T) {
	m, _ := setupModel(t)
	before := m.cursorDay()

	m = press(t, m, "l")
	assert.Equal(t, timeline.DayKey(timeline.AddDays(before, 1)), timeline.DayKey(m.cursorDay()))

	m = press(t, m, "h")
	m = press(t, m, "h")
	assert.Equal(t, timeline.DayKey(timeline.AddDays(before, -1)), timeline.DayKey(m.cursorDay()))
}

func TestPersonNavigationClamps(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "j")
	assert.Equal(t, 1, m.selPerson)
	m = press(t, m, "j")
	assert.Equal(t, 1, m.selPerson)
	m = press(t, m, "k")
	m = press(t, m, "k")
	assert.Equal(t, 0, m.selPerson)
}

func TestPickUpAndDropFromPool(t *testing.T) {
	m, container := setupModel(t)

	m = press(t, m, "e") // edit mode
	m = press(t, m, "p") // open pool
	m = press(t, m, " ") // pick up selected pool row
	_, dragging := m.board.CurrentDrag()
	require.True(t, dragging)

	m = press(t, m, "enter") // drop on person 0, lane 0
	container.Allocations.Wait()

	_, dragging = m.board.CurrentDrag()
	assert.False(t, dragging)
	assert.Empty(t, m.board.Pool())

	lanes := m.board.Lanes(0)
	require.NotEmpty(t, lanes)
	require.Len(t, lanes[0], 1)
	assert.Equal(t, "b1", lanes[0][0].ID)
}

func TestPickUpRequiresEditMode(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "p")
	m = press(t, m, " ")
	// The mode gate refuses silently.
	_, dragging := m.board.CurrentDrag()
	assert.False(t, dragging)
	assert.Empty(t, m.status)
}

func TestCancelDragReleasesSlot(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "e")
	m = press(t, m, "p")
	m = press(t, m, " ")
	_, dragging := m.board.CurrentDrag()
	require.True(t, dragging)

	m = press(t, m, "esc")
	_, dragging = m.board.CurrentDrag()
	assert.False(t, dragging)
}

func TestOffDayToggleFromKeyboard(t *testing.T) {
	m, _ := setupModel(t)
	day := m.cursorDay()

	m = press(t, m, "e")
	m = press(t, m, "o")
	assert.True(t, m.board.IsOffDay(0, day))

	m = press(t, m, "o")
	assert.False(t, m.board.IsOffDay(0, day))
}

func TestHelpModeRoundTrip(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "?")
	assert.Equal(t, helpMode, m.mode)

	// Quit key dismisses help instead of quitting.
	m = press(t, m, "q")
	assert.Equal(t, normalMode, m.mode)
}

func TestEditorOpensForPoolRow(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "p")
	m = press(t, m, "i")
	require.Equal(t, editPendingMode, m.mode)
	require.NotNil(t, m.editor)
	assert.Equal(t, "b1", m.editor.itemID)

	m = press(t, m, "esc")
	assert.Equal(t, normalMode, m.mode)
	assert.Nil(t, m.editor)
}

func TestViewRendersBoard(t *testing.T) {
	m, _ := setupModel(t)

	out := m.View().Content
	assert.Contains(t, out, "Villa Board")
	assert.Contains(t, out, "Siri")

	m = press(t, m, "p")
	out = m.View().Content
	assert.Contains(t, out, "Pending (1)")
	assert.Contains(t, out, "Beach stay")
}

func TestWindowSizeUpdates(t *testing.T) {
	m, _ := setupModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, "#0f172a", ContrastColor("#f8fafc"))
	assert.Equal(t, "#f8fafc", ContrastColor("#0f172a"))
	assert.Equal(t, "#f8fafc", ContrastColor("not-a-color"))
	assert.Equal(t, "#0f172a", ContrastColor("#fff"))
}
