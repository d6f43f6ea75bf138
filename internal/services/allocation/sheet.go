package allocation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rawisara/villaboard/internal/events"
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// SheetRow is one row of a bulk import, as parsed from the source file.
type SheetRow struct {
	ID        string
	Title     string
	GuestName string
	Villa     string
	Arrival   time.Time
	Departure time.Time
	Category  string
	Notes     string
}

// blank reports whether every cell of the row is empty; such rows are
// skipped rather than rejected so trailing filler lines don't kill an
// import.
func (r SheetRow) blank() bool {
	return strings.TrimSpace(r.ID) == "" &&
		strings.TrimSpace(r.Title) == "" &&
		r.Arrival.IsZero() && r.Departure.IsZero()
}

func (s *service) ImportSheet(ctx context.Context, rows []SheetRow) (int, error) {
	items := make([]models.Item, 0, len(rows))
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		if row.blank() {
			continue
		}
		line := i + 1

		id := strings.TrimSpace(row.ID)
		if id == "" {
			return 0, fmt.Errorf("row %d: %w", line, ErrMissingID)
		}
		if strings.TrimSpace(row.Title) == "" {
			return 0, fmt.Errorf("row %d (%s): %w", line, id, ErrEmptyTitle)
		}
		if prev, ok := seen[id]; ok {
			return 0, fmt.Errorf("rows %d and %d share id %q: %w", prev, line, id, ErrDuplicateSheetID)
		}
		if _, _, placed := s.board.FindPlacement(id); placed {
			return 0, fmt.Errorf("row %d: id %q is already placed on the board: %w", line, id, ErrDuplicateSheetID)
		}
		seen[id] = line

		arrival := timeline.Noon(row.Arrival)
		departure := timeline.Noon(row.Departure)
		if !timeline.RangeValid(arrival, departure) {
			return 0, fmt.Errorf("row %d (%s): %w", line, id, models.ErrDepartureBeforeArrival)
		}

		items = append(items, models.Item{
			ID:        id,
			Title:     strings.TrimSpace(row.Title),
			GuestName: strings.TrimSpace(row.GuestName),
			Villa:     strings.TrimSpace(row.Villa),
			Arrival:   arrival,
			Departure: departure,
			Category:  models.NormalizeCategory(row.Category),
			Notes:     strings.TrimSpace(row.Notes),
		})
	}

	if len(items) == 0 {
		return 0, ErrEmptySheet
	}

	// Validation passed for every row; only now does the board change.
	// A row whose id already sits in the pool replaces it.
	for _, it := range items {
		s.board.AddToPool(it)
	}

	if err := s.store.CreateAllocations(ctx, items); err != nil {
		slog.Warn("sheet import kept locally, store write failed",
			"rows", len(items), "error", err)
		return len(items), fmt.Errorf("%w: %v", ErrSheetNotPersisted, err)
	}

	s.events.Publish(events.NewEvent(events.EventBoardChanged, "",
		fmt.Sprintf("imported %d rows", len(items))))
	return len(items), nil
}
