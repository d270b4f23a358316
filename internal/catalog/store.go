// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/paper-atlas/internal/httputil"
	"github.com/pdiddy/paper-atlas/internal/tabular"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Store holds the loaded paper collection. It is constructed once per
// session and shared read-only after Load; there is no locking because the
// execution model is a single logical session. A port to a multi-request
// server must add synchronization around reload.
type Store struct {
	papers []types.PaperRecord
	byID   map[string]types.PaperRecord
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]types.PaperRecord)}
}

// Load reads the tabular source named by cfg.Source — a local file path or
// an http(s) URL — and replaces the collection with the mapped records.
// Load never fails hard: an unreachable or unreadable source leaves the
// store empty and writes a warning to w, because the surfaces built on the
// store must stay usable with no data. The returned count is the number of
// records loaded.
func (s *Store) Load(ctx context.Context, cfg types.CatalogConfig, w io.Writer) int {
	raw, err := readSource(ctx, cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: loading papers from %s: %v\n", cfg.Source, err)
		s.replace(nil)
		return 0
	}
	return s.LoadText(string(raw))
}

// LoadText parses raw delimited text and replaces the collection. The
// column table is derived from the header row, falling back to canonical
// positions for columns the header does not name.
func (s *Store) LoadText(text string) int {
	doc := tabular.ParseDocument(text)
	mapper := NewMapper(ColumnsFromHeader(doc.Header))

	papers := make([]types.PaperRecord, 0, len(doc.Rows))
	for i, row := range doc.Rows {
		papers = append(papers, mapper.MapRow(row, i+1))
	}

	s.replace(papers)
	return len(papers)
}

func (s *Store) replace(papers []types.PaperRecord) {
	byID := make(map[string]types.PaperRecord, len(papers))
	for _, p := range papers {
		byID[p.ID] = p
	}
	s.papers = papers
	s.byID = byID
}

func readSource(ctx context.Context, cfg types.CatalogConfig) ([]byte, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("no source configured")
	}
	if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
		client := httputil.NewClient(cfg.Timeout)
		return httputil.FetchText(ctx, client, cfg.Source, cfg.UserAgent)
	}
	return os.ReadFile(cfg.Source)
}

// GetByID looks up a record by identifier. The second return value is
// false when the identifier does not resolve.
func (s *Store) GetByID(id string) (types.PaperRecord, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// All returns a snapshot of the collection in load order. The snapshot
// does not reflect subsequent loads.
func (s *Store) All() []types.PaperRecord {
	out := make([]types.PaperRecord, len(s.papers))
	copy(out, s.papers)
	return out
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.papers)
}

// Statistics aggregates the collection: totals plus the distinct
// methodology, journal, and year values.
func (s *Store) Statistics() types.Statistics {
	stats := types.Statistics{
		TotalPapers:   len(s.papers),
		Methodologies: []string{},
		Journals:      []string{},
		Years:         []int{},
	}

	countrySet := make(map[string]bool)
	methodSet := make(map[string]bool)
	journalSet := make(map[string]bool)
	yearSet := make(map[int]bool)

	for _, p := range s.papers {
		stats.TotalStudies += p.SampleSize
		for _, c := range p.Countries {
			countrySet[c] = true
		}
		methodSet[p.Methodology] = true
		journalSet[p.Journal] = true
		yearSet[p.Year] = true
	}

	stats.TotalCountries = len(countrySet)
	for m := range methodSet {
		stats.Methodologies = append(stats.Methodologies, m)
	}
	for j := range journalSet {
		stats.Journals = append(stats.Journals, j)
	}
	for y := range yearSet {
		stats.Years = append(stats.Years, y)
	}

	sort.Strings(stats.Methodologies)
	sort.Strings(stats.Journals)
	sort.Sort(sort.Reverse(sort.IntSlice(stats.Years)))

	return stats
}
