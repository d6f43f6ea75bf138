package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// AllocationRepo provides data access for allocation records.
type AllocationRepo struct {
	db *sql.DB
}

// Dates are stored as RFC 3339 UTC strings, which order lexicographically,
// so the range filter can compare them directly in SQL.
func encodeDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// decodeDate parses a stored timestamp and normalizes it to local noon on
// entry, per the board's canonical date form.
func decodeDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return timeline.Noon(t.Local()), nil
}

const allocationColumns = `id, title, guest_name, villa, arrival, departure, category, notes`

func scanItem(rows *sql.Rows, extra ...any) (models.Item, error) {
	var it models.Item
	var arrival, departure string
	dest := []any{&it.ID, &it.Title, &it.GuestName, &it.Villa, &arrival, &departure, &it.Category, &it.Notes}
	dest = append(dest, extra...)
	if err := rows.Scan(dest...); err != nil {
		return models.Item{}, err
	}

	var err error
	if it.Arrival, err = decodeDate(arrival); err != nil {
		return models.Item{}, fmt.Errorf("allocation %s: bad arrival: %w", it.ID, err)
	}
	if it.Departure, err = decodeDate(departure); err != nil {
		return models.Item{}, fmt.Errorf("allocation %s: bad departure: %w", it.ID, err)
	}
	it.Category = models.NormalizeCategory(it.Category)
	return it, nil
}

// GetByRange returns assigned allocations intersecting [from, to] plus all
// pending allocations sorted by arrival. Assigned rows carry the person id
// and lane index they were saved with.
func (r *AllocationRepo) GetByRange(ctx context.Context, from, to time.Time) ([]*models.AssignedItem, []models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+allocationColumns+`, assigned_to, lane
		FROM allocations
		WHERE status = ? AND arrival < ? AND departure > ?
	`, models.StatusAssigned, encodeDate(to), encodeDate(from))
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var assigned []*models.AssignedItem
	for rows.Next() {
		var personID sql.NullString
		var lane sql.NullInt64
		it, err := scanItem(rows, &personID, &lane)
		if err != nil {
			return nil, nil, err
		}
		a := &models.AssignedItem{Item: it, PersonID: personID.String}
		if lane.Valid {
			a.Lane = int(lane.Int64)
		}
		assigned = append(assigned, a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	pendingRows, err := r.db.QueryContext(ctx, `
		SELECT `+allocationColumns+`
		FROM allocations
		WHERE status = ?
		ORDER BY arrival
	`, models.StatusPending)
	if err != nil {
		return nil, nil, err
	}
	defer pendingRows.Close()

	var pending []models.Item
	for pendingRows.Next() {
		it, err := scanItem(pendingRows)
		if err != nil {
			return nil, nil, err
		}
		pending = append(pending, it)
	}
	return assigned, pending, pendingRows.Err()
}

// Upsert writes an allocation record keyed by item id, resetting it to
// pending. Idempotent under retry.
func (r *AllocationRepo) Upsert(ctx context.Context, it models.Item) error {
	return upsertTx(ctx, r.db, it)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertTx(ctx context.Context, ex execer, it models.Item) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO allocations
			(id, title, guest_name, villa, arrival, departure, category, notes, status, assigned_to, lane)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			guest_name = excluded.guest_name,
			villa = excluded.villa,
			arrival = excluded.arrival,
			departure = excluded.departure,
			category = excluded.category,
			notes = excluded.notes,
			status = excluded.status,
			assigned_to = NULL,
			lane = NULL,
			updated_at = CURRENT_TIMESTAMP
	`,
		it.ID, it.Title, it.GuestName, it.Villa,
		encodeDate(it.Arrival), encodeDate(it.Departure),
		models.NormalizeCategory(it.Category), it.Notes, models.StatusPending,
	)
	return err
}

// Assign marks an allocation as placed on a person's lane.
func (r *AllocationRepo) Assign(ctx context.Context, itemID, personID string, lane int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE allocations
		SET status = ?, assigned_to = ?, lane = ?, version = version + 1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.StatusAssigned, personID, lane, itemID)
	if err != nil {
		return err
	}
	return requireRow(res, itemID)
}

// Unassign returns an allocation to the pending pool.
func (r *AllocationRepo) Unassign(ctx context.Context, itemID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE allocations
		SET status = ?, assigned_to = NULL, lane = NULL, version = version + 1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, models.StatusPending, itemID)
	if err != nil {
		return err
	}
	return requireRow(res, itemID)
}

// CreateBatch upserts a set of imported allocations in one transaction, so
// a failed sheet import leaves no partial rows behind.
func (r *AllocationRepo) CreateBatch(ctx context.Context, items []models.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := upsertTx(ctx, tx, it); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("rollback failed: %v (after: %w)", rbErr, err)
			}
			return err
		}
	}
	return tx.Commit()
}

func requireRow(res sql.Result, itemID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("allocation %s: %w", itemID, models.ErrItemNotFound)
	}
	return nil
}
