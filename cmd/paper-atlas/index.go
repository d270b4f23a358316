// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-atlas/internal/index"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain and query the SQLite full-text index",
	Long: `Index mirrors the catalog into a SQLite database with FTS5 full-text
search over title, abstract, authors, and journal, and keeps the activity
log tables (searches, comparison views, downloads). Rebuild after changing
the source data; query and export read the mirror without touching the
source.`,
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Replace the index contents with the current catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := loadStore(cmd)

		idx, err := index.Open(indexConfig(cmd))
		if err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.Rebuild(context.Background(), store.All()); err != nil {
			return err
		}
		fmt.Printf("Indexed %d papers.\n", store.Len())
		return nil
	},
}

var indexQueryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Full-text search the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := index.Open(indexConfig(cmd))
		if err != nil {
			return err
		}
		defer idx.Close()

		opts := retrieveOptsFromFlags(cmd, args)
		if opts.IsEmpty() {
			return fmt.Errorf("query or filter required: provide search terms, --year, or --methodology")
		}

		hits, err := idx.Retrieve(context.Background(), opts)
		if err != nil {
			return err
		}

		if opts.Query != "" {
			entry := types.SearchEntry{
				Query:       opts.Query,
				Filters:     types.FilterSet{Year: opts.Year, Methodology: opts.Methodology},
				Timestamp:   time.Now(),
				ResultCount: len(hits),
			}
			if err := idx.LogSearch(context.Background(), entry, "cli"); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeJSON(os.Stdout, hits)
		}

		papers := make([]types.PaperRecord, len(hits))
		for i, h := range hits {
			papers[i] = h.PaperRecord
		}
		formatResults(os.Stdout, papers)
		return nil
	},
}

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the indexed papers to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		cfg := indexConfig(cmd)
		idx, err := index.Open(cfg)
		if err != nil {
			return err
		}
		defer idx.Close()

		opts := retrieveOptsFromFlags(cmd, args)

		switch format {
		case "yaml", "":
			if err := idx.ExportYAML(context.Background(), opts); err != nil {
				return err
			}
			fmt.Println("Exported to", filepath.Join(cfg.IndexDir, "export.yaml"))
		case "json":
			if err := idx.ExportJSON(context.Background(), opts); err != nil {
				return err
			}
			fmt.Println("Exported to", filepath.Join(cfg.IndexDir, "export.json"))
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}

		if err := idx.LogDownload(context.Background(), nil, strings.ToUpper(format), "cli"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	},
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = viper.GetString("index.dir")
	}
	if indexDir == "" {
		indexDir = "index"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.IndexConfig{IndexDir: indexDir, MaxResults: maxResults}
}

func retrieveOptsFromFlags(cmd *cobra.Command, args []string) index.RetrieveOptions {
	year, _ := cmd.Flags().GetInt("year")
	methodology, _ := cmd.Flags().GetString("methodology")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.RetrieveOptions{
		Query:       strings.Join(args, " "),
		Year:        year,
		Methodology: methodology,
		MaxResults:  limit,
	}
}

// logCompareView records a comparison view in the activity log. Tracking is
// best-effort: a missing or unopenable index never fails the command.
func logCompareView(cmd *cobra.Command, papers []types.PaperRecord) {
	if len(papers) == 0 {
		return
	}
	idx, err := index.Open(indexConfig(cmd))
	if err != nil {
		return
	}
	defer idx.Close()

	ids := make([]string, len(papers))
	for i, p := range papers {
		ids[i] = p.ID
	}
	if err := idx.LogCompareView(context.Background(), ids, "cli"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func init() {
	for _, c := range []*cobra.Command{indexRebuildCmd, indexQueryCmd, indexExportCmd} {
		c.Flags().String("index-dir", "", "directory for the index database (default: index)")
		c.Flags().Int("max-results", 20, "maximum number of query results")
	}
	indexQueryCmd.Flags().Int("year", 0, "keep papers published in this year or later")
	indexQueryCmd.Flags().String("methodology", "", "exact methodology label")
	indexQueryCmd.Flags().Int("limit", 0, "override the result limit")
	indexQueryCmd.Flags().Bool("json", false, "output hits as JSON")
	indexExportCmd.Flags().Int("year", 0, "keep papers published in this year or later")
	indexExportCmd.Flags().String("methodology", "", "exact methodology label")
	indexExportCmd.Flags().Int("limit", 0, "override the result limit")
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	indexCmd.AddCommand(indexRebuildCmd, indexQueryCmd, indexExportCmd)
	rootCmd.AddCommand(indexCmd)
}
