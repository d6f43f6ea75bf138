package models

import "time"

// Item represents a single villa allocation: an inclusive arrival/departure
// date range plus guest metadata. An item lives either in the pending pool
// or in exactly one lane of one person, never both.
type Item struct {
	ID        string
	Title     string
	Arrival   time.Time
	Departure time.Time
	Category  string
	Notes     string
	GuestName string
	Villa     string
}

// AssignedItem is an Item together with its placement, as returned by the
// persistence layer for allocations that are already on the board.
type AssignedItem struct {
	Item
	PersonID string
	Lane     int
}

// Unassigned returns a copy of the item stripped of anything placement
// related; used when an item is returned to the pending pool.
func (it Item) Unassigned() Item {
	return Item{
		ID:        it.ID,
		Title:     it.Title,
		Arrival:   it.Arrival,
		Departure: it.Departure,
		Category:  it.Category,
		Notes:     it.Notes,
		GuestName: it.GuestName,
		Villa:     it.Villa,
	}
}
