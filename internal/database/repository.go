package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/rawisara/villaboard/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes the per-entity repositories using struct embedding.
type Repository struct {
	*PersonRepo
	*CategoryRepo
	*AllocationRepo
}

// NewRepository creates a new Repository wrapping the given connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		PersonRepo:     &PersonRepo{db: db},
		CategoryRepo:   &CategoryRepo{db: db},
		AllocationRepo: &AllocationRepo{db: db},
	}
}

// Compile-time verification that *Repository satisfies DataStore.
var _ DataStore = (*Repository)(nil)

func (r *Repository) GetAllPeople(ctx context.Context) ([]*models.Person, error) {
	return r.PersonRepo.GetAll(ctx)
}

func (r *Repository) CreatePerson(ctx context.Context, fullName, preferredName string) (*models.Person, error) {
	return r.PersonRepo.Create(ctx, fullName, preferredName)
}

func (r *Repository) SetPersonStatus(ctx context.Context, id, status string) error {
	return r.PersonRepo.SetStatus(ctx, id, status)
}

func (r *Repository) GetCategories(ctx context.Context) (models.ColorMap, error) {
	return r.CategoryRepo.GetAll(ctx)
}

func (r *Repository) UpsertCategory(ctx context.Context, name, color string) error {
	return r.CategoryRepo.Upsert(ctx, name, color)
}

func (r *Repository) GetAllocations(ctx context.Context, from, to time.Time) ([]*models.AssignedItem, []models.Item, error) {
	return r.AllocationRepo.GetByRange(ctx, from, to)
}

func (r *Repository) UpsertAllocation(ctx context.Context, it models.Item) error {
	return r.AllocationRepo.Upsert(ctx, it)
}

func (r *Repository) AssignAllocation(ctx context.Context, itemID, personID string, lane int) error {
	return r.AllocationRepo.Assign(ctx, itemID, personID, lane)
}

func (r *Repository) UnassignAllocation(ctx context.Context, itemID string) error {
	return r.AllocationRepo.Unassign(ctx, itemID)
}

func (r *Repository) CreateAllocations(ctx context.Context, items []models.Item) error {
	return r.AllocationRepo.CreateBatch(ctx, items)
}
