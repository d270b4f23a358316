// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// formatResults writes a result table to w. An empty result set gets an
// explicit no-results line rather than an empty table.
func formatResults(w io.Writer, papers []types.PaperRecord) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No results found. Try adjusting your search criteria.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-48s  %-22s  %-4s  %-12s  %s\n",
		"Rank", "ID", "Title", "Authors", "Year", "Method", "N")
	fmt.Fprintln(w, strings.Repeat("-", 116))

	for i, p := range papers {
		fmt.Fprintf(w, "%-4d  %-10s  %-48s  %-22s  %-4d  %-12s  %d\n",
			i+1, p.ID, truncate(p.Title, 48), formatAuthors(p.Authors),
			p.Year, truncate(p.Methodology, 12), p.SampleSize)
	}

	fmt.Fprintf(w, "\n%d results\n", len(papers))
}

// formatPaper writes a detail view of one record to w.
func formatPaper(w io.Writer, p types.PaperRecord) {
	fmt.Fprintf(w, "%s  [%s]\n", p.Title, p.ID)
	fmt.Fprintf(w, "Authors:     %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(w, "Journal:     %s, %d\n", p.Journal, p.Year)
	fmt.Fprintf(w, "Method:      %s\n", p.Methodology)
	fmt.Fprintf(w, "Sample size: %d\n", p.SampleSize)
	fmt.Fprintf(w, "Countries:   %s\n", strings.Join(p.Countries, ", "))
	fmt.Fprintf(w, "Citations:   %d\n", p.Citations)
	if p.Abstract != "" {
		fmt.Fprintf(w, "\n%s\n", p.Abstract)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 22)
	default:
		return truncate(authors[0], 16) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
