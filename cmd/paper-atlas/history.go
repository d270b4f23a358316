// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)
		mgr, closeSession := openSession(cmd, store, os.Stderr)
		defer closeSession()

		entries := mgr.History()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, entries)
		}

		if len(entries) == 0 {
			fmt.Println("No searches recorded.")
			return nil
		}

		for i, e := range entries {
			fmt.Printf("%2d. %-30q  %3d results  %s%s\n",
				i+1, e.Query, e.ResultCount,
				e.Timestamp.Format("2006-01-02 15:04"),
				summarizeFilters(e.Filters))
		}
		return nil
	},
}

func summarizeFilters(f types.FilterSet) string {
	var parts []string
	if f.Year != 0 {
		parts = append(parts, fmt.Sprintf("year>=%d", f.Year))
	}
	if f.Journal != "" {
		parts = append(parts, "journal~"+f.Journal)
	}
	if f.Methodology != "" {
		parts = append(parts, "method="+f.Methodology)
	}
	if f.Country != "" {
		parts = append(parts, "country~"+f.Country)
	}
	if f.SampleSize != 0 {
		parts = append(parts, fmt.Sprintf("n>=%d", f.SampleSize))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  [" + strings.Join(parts, " ") + "]"
}

func init() {
	historyCmd.Flags().Bool("json", false, "output history as JSON")
	rootCmd.AddCommand(historyCmd)
}
