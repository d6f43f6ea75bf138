package allocation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rawisara/villaboard/internal/board"
	"github.com/rawisara/villaboard/internal/database"
	"github.com/rawisara/villaboard/internal/events"
	"github.com/rawisara/villaboard/internal/models"
	"github.com/rawisara/villaboard/internal/timeline"
)

// Service defines all allocation-related business operations.
//
// Every placement mutation is optimistic: the in-memory board changes
// first and the matching store write runs asynchronously. When a write
// fails, the inverse mutation is applied and an EventWriteBackFailed is
// published; the failure is never raised to the gesture that caused it.
type Service interface {
	// Load boots the board from the store for the focus year. Each source
	// degrades independently: a failed load logs and falls back to an
	// empty roster, an Other-only color map, or an empty board.
	Load(ctx context.Context, focus time.Time) ([]*models.Person, models.ColorMap, error)

	// People returns the roster from the last Load.
	People() []*models.Person

	// PlaceFromPool moves a pending item onto a person's lane.
	PlaceFromPool(ctx context.Context, person int, itemID string, preferredLane int) error

	// MovePlaced moves an already placed item to another person or lane.
	// When no lane accepts it, the item is restored to where it came from.
	MovePlaced(ctx context.Context, fromPerson, fromLane int, itemID string, toPerson, preferredLane int) error

	// Unassign returns a placed item to the pending pool.
	Unassign(ctx context.Context, person, lane int, itemID string) error

	// ToggleOffDay flips an off day; purely in-memory.
	ToggleOffDay(person int, day time.Time) (bool, error)

	// EditPending applies an inline edit to a pooled item.
	EditPending(ctx context.Context, req EditRequest) error

	// ImportSheet validates and adds a batch of pending items.
	ImportSheet(ctx context.Context, rows []SheetRow) (int, error)

	// Wait blocks until in-flight write-backs settle; used by tests and
	// by shutdown.
	Wait()
}

// EditRequest carries an inline edit of a pending item.
// Nil fields are left unchanged.
type EditRequest struct {
	ItemID    string
	Title     *string
	Arrival   *time.Time
	Departure *time.Time
	Category  *string
	Notes     *string
}

// writeBackTimeout bounds each asynchronous store write.
const writeBackTimeout = 10 * time.Second

// service implements Service.
type service struct {
	board  *board.Board
	store  database.DataStore
	events events.Publisher
	people []*models.Person
	wg     sync.WaitGroup
}

// NewService creates a new allocation service operating on the given board.
func NewService(b *board.Board, store database.DataStore, pub events.Publisher) Service {
	if pub == nil {
		pub = events.NilPublisher{}
	}
	return &service{board: b, store: store, events: pub}
}

func (s *service) Load(ctx context.Context, focus time.Time) ([]*models.Person, models.ColorMap, error) {
	from := time.Date(focus.Year(), time.January, 1, 0, 0, 0, 0, focus.Location())
	to := time.Date(focus.Year(), time.December, 31, 23, 59, 59, 0, focus.Location())

	all, err := s.store.GetAllPeople(ctx)
	if err != nil {
		slog.Error("people load failed, starting with empty roster", "error", err)
	}
	// Only active people get a row on the board.
	people := make([]*models.Person, 0, len(all))
	for _, p := range all {
		if p.Status != models.PersonInactive {
			people = append(people, p)
		}
	}
	s.people = people
	s.board.Normalize(len(people))

	idxByID := make(map[string]int, len(people))
	for i, p := range people {
		idxByID[p.ID] = i
	}

	colors, err := s.store.GetCategories(ctx)
	if err != nil {
		slog.Warn("category load failed, using fallback colors", "error", err)
		colors = models.ColorMap{models.FallbackCategory: models.FallbackColor}
	}

	assigned, pending, err := s.store.GetAllocations(ctx, from, to)
	if err != nil {
		slog.Error("allocation load failed, starting with empty board", "error", err)
		return people, colors, nil
	}

	for _, it := range pending {
		s.board.AddToPool(it)
	}
	for _, a := range assigned {
		idx, ok := idxByID[a.PersonID]
		if !ok {
			slog.Warn("allocation assigned to unknown person, skipping",
				"item", a.ID, "person", a.PersonID)
			continue
		}
		if err := s.board.Seed(idx, a.Lane, a.Item); err != nil {
			slog.Warn("could not seed allocation", "item", a.ID, "error", err)
		}
	}
	s.board.SortLanes()

	slog.Info("board loaded",
		"people", len(people), "assigned", len(assigned), "pending", len(pending))
	return people, colors, nil
}

func (s *service) People() []*models.Person {
	return s.people
}

func (s *service) personID(idx int) (string, error) {
	if idx < 0 || idx >= len(s.people) {
		return "", models.ErrUnknownPerson
	}
	return s.people[idx].ID, nil
}

func (s *service) PlaceFromPool(ctx context.Context, person int, itemID string, preferredLane int) error {
	personID, err := s.personID(person)
	if err != nil {
		return err
	}
	it, ok := s.board.PoolItem(itemID)
	if !ok {
		return models.ErrItemNotFound
	}

	lane, err := s.board.Place(person, it, preferredLane)
	if err != nil {
		return err
	}

	s.writeBack(func(wctx context.Context) error {
		return s.store.AssignAllocation(wctx, it.ID, personID, lane)
	}, func() {
		// Inverse of the placement: back out of the lane, into the pool.
		s.board.RemoveFromLane(person, lane, it.ID)
		s.board.RestoreToPool(it)
	}, it.ID, "assign")
	return nil
}

func (s *service) MovePlaced(ctx context.Context, fromPerson, fromLane int, itemID string, toPerson, preferredLane int) error {
	personID, err := s.personID(toPerson)
	if err != nil {
		return err
	}
	if !s.board.EditMode() {
		return models.ErrNotEditable
	}

	it, ok := s.board.RemoveFromLane(fromPerson, fromLane, itemID)
	if !ok {
		return models.ErrItemNotFound
	}

	lane, err := s.board.Place(toPerson, it, preferredLane)
	if err != nil {
		// Failed drop: the item snaps back to where it came from.
		if restoreErr := s.board.RestoreToLane(fromPerson, fromLane, it); restoreErr != nil {
			slog.Error("could not restore item after failed move",
				"item", itemID, "error", restoreErr)
		}
		return err
	}

	s.writeBack(func(wctx context.Context) error {
		return s.store.AssignAllocation(wctx, it.ID, personID, lane)
	}, func() {
		s.board.RemoveFromLane(toPerson, lane, it.ID)
		if err := s.board.RestoreToLane(fromPerson, fromLane, it); err != nil {
			slog.Error("rollback could not restore lane", "item", it.ID, "error", err)
		}
	}, it.ID, "move")
	return nil
}

func (s *service) Unassign(ctx context.Context, person, lane int, itemID string) error {
	pooled, err := s.board.Unassign(person, lane, itemID)
	if err != nil {
		return err
	}

	s.writeBack(func(wctx context.Context) error {
		return s.store.UnassignAllocation(wctx, itemID)
	}, func() {
		s.board.RemoveFromPool(itemID)
		if err := s.board.RestoreToLane(person, lane, pooled); err != nil {
			slog.Error("rollback could not restore lane", "item", itemID, "error", err)
		}
	}, itemID, "unassign")
	return nil
}

func (s *service) ToggleOffDay(person int, day time.Time) (bool, error) {
	return s.board.ToggleOffDay(person, day)
}

func (s *service) EditPending(ctx context.Context, req EditRequest) error {
	it, ok := s.board.PoolItem(req.ItemID)
	if !ok {
		return models.ErrItemNotFound
	}

	if req.Title != nil {
		if *req.Title == "" {
			return ErrEmptyTitle
		}
		it.Title = *req.Title
	}
	if req.Arrival != nil {
		it.Arrival = timeline.Noon(*req.Arrival)
	}
	if req.Departure != nil {
		it.Departure = timeline.Noon(*req.Departure)
	}
	if !timeline.RangeValid(it.Arrival, it.Departure) {
		return models.ErrDepartureBeforeArrival
	}
	if req.Category != nil {
		it.Category = models.NormalizeCategory(*req.Category)
	}
	if req.Notes != nil {
		it.Notes = *req.Notes
	}

	if err := s.board.UpdatePoolItem(it); err != nil {
		return err
	}

	// Best effort: a failed save keeps the local edit, like the board
	// keeps working offline.
	s.writeBack(func(wctx context.Context) error {
		return s.store.UpsertAllocation(wctx, it)
	}, nil, it.ID, "edit")
	return nil
}

// writeBack runs one store write off the gesture path. On failure the
// compensation (when any) is applied and the rollback is announced.
func (s *service) writeBack(write func(context.Context) error, compensate func(), itemID, op string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		wctx, cancel := context.WithTimeout(context.Background(), writeBackTimeout)
		defer cancel()

		if err := write(wctx); err != nil {
			slog.Error("write-back failed", "op", op, "item", itemID, "error", err)
			if compensate != nil {
				compensate()
				s.events.Publish(events.NewEvent(events.EventWriteBackFailed, itemID,
					fmt.Sprintf("%s of %s failed, change undone", op, itemID)))
				return
			}
			s.events.Publish(events.NewEvent(events.EventWriteBackFailed, itemID,
				fmt.Sprintf("%s of %s not saved", op, itemID)))
			return
		}
		s.events.Publish(events.NewEvent(events.EventBoardChanged, itemID, op+" saved"))
	}()
}

func (s *service) Wait() {
	s.wg.Wait()
}
