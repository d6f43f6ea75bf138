package board

import "github.com/rawisara/villaboard/internal/models"

// DragSource tells where a drag gesture picked its item up from.
type DragSource int

const (
	// FromPool marks a drag that started on a pending pool card.
	FromPool DragSource = iota
	// FromLane marks a drag that started on an already placed bar.
	FromLane
)

// Drag is the short-lived context of one pick-up/drop gesture. The board
// keeps a single slot: starting a new drag implicitly invalidates any
// prior one, and the slot is cleared on every exit path of the gesture.
type Drag struct {
	Source DragSource
	Person int
	Lane   int
	Item   models.Item
}

// BeginDrag claims the drag slot, replacing whatever was in it.
func (b *Board) BeginDrag(d Drag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag = &d
}

// CurrentDrag returns the in-flight drag, if any.
func (b *Board) CurrentDrag() (Drag, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.drag == nil {
		return Drag{}, false
	}
	return *b.drag, true
}

// EndDrag releases the drag slot. Safe to call on every exit path whether
// or not a drag is active.
func (b *Board) EndDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag = nil
}
