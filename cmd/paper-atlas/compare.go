// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Manage the side-by-side comparison list",
	Long: `Compare maintains an ordered list of papers for side-by-side review.
Papers are unique by identifier; adding an unknown or already-listed
identifier is a no-op. The list persists across runs.`,
}

var compareAddCmd = &cobra.Command{
	Use:   "add <paper-id>...",
	Short: "Add papers to the comparison list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		for _, id := range args {
			if mgr.AddToComparison(id) {
				fmt.Printf("added   %s\n", id)
			} else {
				fmt.Printf("skipped %s\n", id)
			}
		}
		return nil
	},
}

var compareRemoveCmd = &cobra.Command{
	Use:   "remove <paper-id>...",
	Short: "Remove papers from the comparison list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		for _, id := range args {
			if mgr.RemoveFromComparison(id) {
				fmt.Printf("removed %s\n", id)
			} else {
				fmt.Printf("absent  %s\n", id)
			}
		}
		return nil
	},
}

var compareListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the comparison list",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		papers := mgr.ComparisonList()
		logCompareView(cmd, papers)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, papers)
		}
		formatResults(os.Stdout, papers)
		return nil
	},
}

var compareClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the comparison list",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		mgr.ClearComparison()
		fmt.Println("Comparison list cleared.")
		return nil
	},
}

func init() {
	compareListCmd.Flags().Bool("json", false, "output the list as JSON")

	compareCmd.AddCommand(compareAddCmd, compareRemoveCmd, compareListCmd, compareClearCmd)
	rootCmd.AddCommand(compareCmd)
}
