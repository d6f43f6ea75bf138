// Package app wires the board's services together and manages their
// lifecycles.
package app

import (
	"github.com/rawisara/villaboard/internal/board"
	"github.com/rawisara/villaboard/internal/database"
	"github.com/rawisara/villaboard/internal/events"
	"github.com/rawisara/villaboard/internal/services/allocation"
)

// App is the application container.
type App struct {
	repo     database.DataStore
	notifier events.Publisher

	Board       *board.Board
	Allocations allocation.Service
}

// New creates the container. A nil notifier disables change
// notifications, which is what the import command wants.
func New(repo database.DataStore, notifier events.Publisher) *App {
	b := board.New(0)
	return &App{
		repo:        repo,
		notifier:    notifier,
		Board:       b,
		Allocations: allocation.NewService(b, repo, notifier),
	}
}

// Repo returns the underlying repository for direct store access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close flushes in-flight write-backs and shuts down notifications.
func (a *App) Close() error {
	a.Allocations.Wait()
	if a.notifier != nil {
		a.notifier.Close()
	}
	return nil
}
