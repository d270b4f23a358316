// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/query"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search the catalog with free text and filters",
	Long: `Search matches every query term against each paper's title, abstract,
authors, and journal (case-insensitive substring containment), then applies
the filter flags conjunctively. Non-empty searches are recorded in the
session history.

Results can be saved to a YAML file with --save and rendered again later
with --from-file, without reloading the catalog.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("year", 0, "keep papers published in this year or later")
	searchCmd.Flags().String("journal", "", "journal name substring (case-insensitive)")
	searchCmd.Flags().String("methodology", "", "exact methodology label (e.g. Survey)")
	searchCmd.Flags().String("country", "", "country name substring (case-insensitive)")
	searchCmd.Flags().Int("sample-size", 0, "minimum sample size")
	searchCmd.Flags().String("sort", "relevance", "sort key: relevance, year, citations, sampleSize")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to this YAML file")
	searchCmd.Flags().String("from-file", "", "render a previously saved result file instead of searching")

	rootCmd.AddCommand(searchCmd)
}

func filtersFromFlags(cmd *cobra.Command) (types.FilterSet, error) {
	year, _ := cmd.Flags().GetInt("year")
	journal, _ := cmd.Flags().GetString("journal")
	methodology, _ := cmd.Flags().GetString("methodology")
	country, _ := cmd.Flags().GetString("country")
	sampleSize, _ := cmd.Flags().GetInt("sample-size")
	sortBy, _ := cmd.Flags().GetString("sort")

	switch types.SortKey(sortBy) {
	case types.SortRelevance, types.SortYear, types.SortCitations, types.SortSampleSize, "":
	default:
		return types.FilterSet{}, fmt.Errorf("unknown sort key %q: use relevance, year, citations, or sampleSize", sortBy)
	}

	return types.FilterSet{
		Year:        year,
		Journal:     journal,
		Methodology: methodology,
		Country:     country,
		SampleSize:  sampleSize,
		SortBy:      types.SortKey(sortBy),
	}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Render a saved search without touching the catalog.
	if fromFile, _ := cmd.Flags().GetString("from-file"); fromFile != "" {
		rf, err := query.ReadResultFile(fromFile)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(os.Stdout, rf.Results)
		}
		fmt.Printf("Saved search %q (%s)\n\n", rf.Query, rf.Summary.Timestamp.Format("2006-01-02 15:04"))
		formatResults(os.Stdout, rf.Results)
		return nil
	}

	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}
	queryText := strings.Join(args, " ")

	store := loadStore(cmd)
	mgr, closeSession := openSession(cmd, store, os.Stderr)
	defer closeSession()

	engine := query.NewEngine(store, mgr)
	results := engine.Search(queryText, filters)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := query.WriteResultFile(savePath, queryText, filters, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", len(results), savePath)
	}

	if jsonOutput {
		return writeJSON(os.Stdout, results)
	}
	formatResults(os.Stdout, results)
	return nil
}
