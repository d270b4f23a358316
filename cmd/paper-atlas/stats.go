// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the loaded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		stats := store.Statistics()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, stats)
		}

		fmt.Printf("Papers:        %d\n", stats.TotalPapers)
		fmt.Printf("Participants:  %d\n", stats.TotalStudies)
		fmt.Printf("Countries:     %d\n", stats.TotalCountries)
		fmt.Printf("Methodologies: %s\n", strings.Join(stats.Methodologies, ", "))
		fmt.Printf("Journals:      %d distinct\n", len(stats.Journals))
		if len(stats.Years) > 0 {
			fmt.Printf("Years:         %d-%d\n", stats.Years[len(stats.Years)-1], stats.Years[0])
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}
