package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType indicates what kind of board change occurred.
type EventType string

const (
	// EventBoardChanged signals that board state mutated and views should
	// repaint.
	EventBoardChanged EventType = "board_changed"
	// EventWriteBackFailed signals that an asynchronous persistence write
	// failed and its optimistic mutation was rolled back.
	EventWriteBackFailed EventType = "write_back_failed"
)

// Event is one board change notification.
type Event struct {
	ID        string
	Type      EventType
	ItemID    string // which allocation the change concerns, when known
	Detail    string // human-readable summary for the status line
	Timestamp time.Time
}

// NewEvent stamps a notification with an id and the current time.
func NewEvent(t EventType, itemID, detail string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		ItemID:    itemID,
		Detail:    detail,
		Timestamp: time.Now(),
	}
}
