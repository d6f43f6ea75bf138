package events

import "sync"

// Notifier is the in-process Publisher: a buffered fan-in channel the TUI
// drains between frames. When the buffer is full the oldest event is
// dropped; events only trigger repaints and carry no state of their own,
// so losing one under load is harmless.
type Notifier struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// NewNotifier creates a notifier with the given buffer size.
func NewNotifier(buffer int) *Notifier {
	if buffer < 1 {
		buffer = 16
	}
	return &Notifier{ch: make(chan Event, buffer)}
}

func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	for {
		select {
		case n.ch <- e:
			return
		default:
			select {
			case <-n.ch:
			default:
			}
		}
	}
}

func (n *Notifier) Events() <-chan Event {
	return n.ch
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.closed {
		n.closed = true
		close(n.ch)
	}
}

// NilPublisher discards every event; used where no view is attached,
// like the bulk import command and service unit tests.
type NilPublisher struct{}

func (NilPublisher) Publish(Event)        {}
func (NilPublisher) Events() <-chan Event { return nil }
func (NilPublisher) Close()               {}
