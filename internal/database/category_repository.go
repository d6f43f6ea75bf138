package database

import (
	"context"
	"database/sql"

	"github.com/rawisara/villaboard/internal/models"
)

// CategoryRepo provides data access for the category color map.
type CategoryRepo struct {
	db *sql.DB
}

// GetAll returns the category color map. The fallback entry is enforced
// here as well as at seed time, so callers can always resolve a color.
func (r *CategoryRepo) GetAll(ctx context.Context) (models.ColorMap, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, color FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := models.ColorMap{}
	for rows.Next() {
		var name, color string
		if err := rows.Scan(&name, &color); err != nil {
			return nil, err
		}
		if name = models.NormalizeCategory(name); name != "" && color != "" {
			colors[name] = color
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if _, ok := colors[models.FallbackCategory]; !ok {
		colors[models.FallbackCategory] = models.FallbackColor
	}
	return colors, nil
}

// Upsert creates or recolors a category.
func (r *CategoryRepo) Upsert(ctx context.Context, name, color string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, color) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET color = excluded.color`,
		models.NormalizeCategory(name), color,
	)
	return err
}
