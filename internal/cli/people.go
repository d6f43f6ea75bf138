package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawisara/villaboard/internal/models"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Manage the roster",
}

var preferredName string

var peopleAddCmd = &cobra.Command{
	Use:   "add <full name>",
	Short: "Add a person to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := repo.CreatePerson(cmd.Context(), args[0], preferredName)
		if err != nil {
			return fmt.Errorf("failed to add person: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.DisplayName(), p.ID)
		return nil
	},
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		people, err := repo.GetAllPeople(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list people: %w", err)
		}
		for _, p := range people {
			marker := " "
			if p.Status == models.PersonInactive {
				marker = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s %s\n", marker, p.DisplayName(), p.ID)
		}
		return nil
	},
}

var peopleDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Remove a person from the board without deleting their history",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(models.PersonInactive, "Deactivated"),
}

var peopleActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Return a person to the board",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(models.PersonActive, "Activated"),
}

func setStatusRun(status, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := repo.SetPersonStatus(cmd.Context(), args[0], status); err != nil {
			return fmt.Errorf("failed to update person: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, args[0])
		return nil
	}
}

func init() {
	peopleAddCmd.Flags().StringVarP(&preferredName, "preferred", "p", "", "preferred display name")
	peopleCmd.AddCommand(peopleAddCmd, peopleListCmd, peopleDeactivateCmd, peopleActivateCmd)
	rootCmd.AddCommand(peopleCmd)
}
