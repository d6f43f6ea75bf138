package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rawisara/villaboard/internal/app"
	"github.com/rawisara/villaboard/internal/services/allocation"
	"github.com/rawisara/villaboard/internal/timeline"
)

// sheetFile is the on-disk import format: a list of booking rows with
// dates as YYYY-MM-DD strings.
type sheetFile struct {
	Rows []sheetFileRow `yaml:"rows"`
}

type sheetFileRow struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Guest     string `yaml:"guest"`
	Villa     string `yaml:"villa"`
	Arrival   string `yaml:"arrival"`
	Departure string `yaml:"departure"`
	Category  string `yaml:"category"`
	Notes     string `yaml:"notes"`
}

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import a sheet of bookings into the pending pool",
	Long: `Import reads a YAML sheet of booking rows and adds every row to the
pending pool. The whole sheet is validated first: a duplicate or missing
id, a missing title, or an inverted date range rejects the entire file.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read sheet: %w", err)
	}

	var sheet sheetFile
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse sheet: %w", err)
	}

	rows := make([]allocation.SheetRow, 0, len(sheet.Rows))
	for i, r := range sheet.Rows {
		row := allocation.SheetRow{
			ID:        r.ID,
			Title:     r.Title,
			GuestName: r.Guest,
			Villa:     r.Villa,
			Category:  r.Category,
			Notes:     r.Notes,
		}
		if r.Arrival != "" {
			if row.Arrival, err = timeline.ParseDayKey(r.Arrival); err != nil {
				return fmt.Errorf("row %d: bad arrival %q, want YYYY-MM-DD", i+1, r.Arrival)
			}
		}
		if r.Departure != "" {
			if row.Departure, err = timeline.ParseDayKey(r.Departure); err != nil {
				return fmt.Errorf("row %d: bad departure %q, want YYYY-MM-DD", i+1, r.Departure)
			}
		}
		rows = append(rows, row)
	}

	repo, closeStore, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	container := app.New(repo, nil)
	defer container.Close()

	n, err := container.Allocations.ImportSheet(cmd.Context(), rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bookings into the pending pool\n", n)
	return nil
}
