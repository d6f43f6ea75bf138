package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage booking categories and their bar colors",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		colors, err := repo.GetCategories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		for _, name := range colors.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, colors[name])
		}
		return nil
	},
}

var categoriesSetCmd = &cobra.Command{
	Use:   "set <name> <color>",
	Short: "Create or recolor a category",
	Long:  `Set creates the category if it does not exist, or changes its bar color. Colors are hex values like "#0ea5e9".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := repo.UpsertCategory(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to set category: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesSetCmd)
	rootCmd.AddCommand(categoriesCmd)
}
