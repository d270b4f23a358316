// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the favorites set",
	Long: `Favorites is a persistent set of paper identifiers. Adding does not
validate the identifier, so a favorite can outlive a reload that drops its
paper; listing resolves identifiers against the current catalog and skips
ones that no longer exist.`,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <paper-id>...",
	Short: "Add papers to favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		for _, id := range args {
			if mgr.AddToFavorites(id) {
				fmt.Printf("added   %s\n", id)
			} else {
				fmt.Printf("already %s\n", id)
			}
		}
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <paper-id>...",
	Short: "Remove papers from favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		for _, id := range args {
			if mgr.RemoveFromFavorites(id) {
				fmt.Printf("removed %s\n", id)
			} else {
				fmt.Printf("absent  %s\n", id)
			}
		}
		return nil
	},
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show favorited papers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		papers := mgr.Favorites()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, papers)
		}
		formatResults(os.Stdout, papers)

		if dangling := len(mgr.FavoriteIDs()) - len(papers); dangling > 0 {
			fmt.Fprintf(os.Stderr, "%d favorite(s) no longer resolve in the current catalog\n", dangling)
		}
		return nil
	},
}

func init() {
	favoritesListCmd.Flags().Bool("json", false, "output favorites as JSON")

	favoritesCmd.AddCommand(favoritesAddCmd, favoritesRemoveCmd, favoritesListCmd)
	rootCmd.AddCommand(favoritesCmd)
}
