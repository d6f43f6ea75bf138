package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rawisara/villaboard/internal/models"
)

// PersonRepo provides data access for the roster.
type PersonRepo struct {
	db *sql.DB
}

// GetAll retrieves the roster ordered by display name (preferred name when
// present, full name otherwise).
func (r *PersonRepo) GetAll(ctx context.Context) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, fullname, COALESCE(preferred_name, ''), status
		FROM people
		ORDER BY CASE WHEN COALESCE(preferred_name, '') != '' THEN preferred_name ELSE fullname END
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		p := &models.Person{}
		if err := rows.Scan(&p.ID, &p.FullName, &p.PreferredName, &p.Status); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// Create inserts a new roster member with a generated id.
func (r *PersonRepo) Create(ctx context.Context, fullName, preferredName string) (*models.Person, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO people (id, fullname, preferred_name, status) VALUES (?, ?, ?, ?)`,
		id, fullName, preferredName, models.PersonActive,
	)
	if err != nil {
		return nil, err
	}
	return &models.Person{
		ID:            id,
		FullName:      fullName,
		PreferredName: preferredName,
		Status:        models.PersonActive,
	}, nil
}

// SetStatus flips a person between active and inactive.
func (r *PersonRepo) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE people SET status = ? WHERE id = ?`, status, id)
	return err
}
