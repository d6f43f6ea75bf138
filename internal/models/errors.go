package models

import "errors"

// Placement errors. These are synchronous validation failures: the board is
// left untouched and the caller decides how (or whether) to surface them.
var (
	// ErrNotEditable indicates a mutation was attempted outside edit mode.
	// It is a mode gate, not a data error, and is refused silently.
	ErrNotEditable = errors.New("board is not in edit mode")

	// ErrOffDayConflict indicates the item's arrival falls on one of the
	// person's off days.
	ErrOffDayConflict = errors.New("arrival date is an off day for this person")

	// ErrNoLaneAvailable indicates every lane rejected the item and the
	// person is already at the lane cap.
	ErrNoLaneAvailable = errors.New("no lane can accept this item")

	// ErrArrivalConflict indicates an off-day toggle was blocked because an
	// allocation arrives exactly on that date.
	ErrArrivalConflict = errors.New("an allocation arrives on this date")
)

// Lookup errors
var (
	ErrUnknownPerson = errors.New("unknown person index")
	ErrUnknownLane   = errors.New("unknown lane index")
	ErrItemNotFound  = errors.New("item not found")
)

// ErrDepartureBeforeArrival indicates an item with an inverted date range.
var ErrDepartureBeforeArrival = errors.New("departure cannot be before arrival")
