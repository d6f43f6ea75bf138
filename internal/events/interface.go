// Package events carries in-process board change notifications from the
// allocation service to whoever is rendering the board, most importantly
// the rollbacks applied when an asynchronous write-back fails after its
// optimistic update was already shown.
package events

// Publisher defines the interface for emitting and receiving board events.
// Depending on behavior rather than the concrete notifier keeps the
// service testable.
type Publisher interface {
	// Publish queues an event; it must never block board mutation.
	Publish(e Event)

	// Events returns the stream consumers listen on.
	Events() <-chan Event

	// Close stops the stream.
	Close()
}

// Compile-time verification of the implementations.
var (
	_ Publisher = (*Notifier)(nil)
	_ Publisher = (*NilPublisher)(nil)
)
