// Package cli defines the villaboard command tree. The bare command runs
// the board TUI; subcommands cover bulk import and roster management.
package cli

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/rawisara/villaboard/internal/app"
	"github.com/rawisara/villaboard/internal/config"
	"github.com/rawisara/villaboard/internal/database"
	"github.com/rawisara/villaboard/internal/events"
	"github.com/rawisara/villaboard/internal/logging"
	"github.com/rawisara/villaboard/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "villaboard",
	Short: "Villaboard - a terminal villa allocation board",
	Long: `Villaboard is a terminal scheduling board for villa bookings:
a calendar grid with one row per person, colored booking bars, and a
pending pool that bookings are placed from.`,
	RunE: runBoard,
}

func Execute() error {
	return rootCmd.Execute()
}

func runBoard(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file.
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(cmd.Context(), cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	notifier := events.NewNotifier(32)
	container := app.New(database.NewRepository(db), notifier)
	defer container.Close()

	model := tui.InitialModel(container, cfg, notifier.Events())
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// openStore is the shared setup for non-TUI subcommands: config plus a
// repository, logging left on stderr defaults.
func openStore(cmd *cobra.Command) (*database.Repository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.InitDB(cmd.Context(), cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.NewRepository(db), func() { _ = db.Close() }, nil
}
