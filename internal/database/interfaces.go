// Package database defines the repository interface the board's services
// depend on, so tests can swap the sqlite store for a mock.
package database

import (
	"context"
	"time"

	"github.com/rawisara/villaboard/internal/models"
)

// DataStore is the persistence gateway contract. Every write is keyed by a
// stable id and safe to re-issue after a transient failure.
type DataStore interface {
	// People
	GetAllPeople(ctx context.Context) ([]*models.Person, error)
	CreatePerson(ctx context.Context, fullName, preferredName string) (*models.Person, error)
	SetPersonStatus(ctx context.Context, id, status string) error

	// Categories
	GetCategories(ctx context.Context) (models.ColorMap, error)
	UpsertCategory(ctx context.Context, name, color string) error

	// Allocations
	GetAllocations(ctx context.Context, from, to time.Time) (assigned []*models.AssignedItem, pending []models.Item, err error)
	UpsertAllocation(ctx context.Context, it models.Item) error
	AssignAllocation(ctx context.Context, itemID, personID string, lane int) error
	UnassignAllocation(ctx context.Context, itemID string) error
	CreateAllocations(ctx context.Context, items []models.Item) error
}
