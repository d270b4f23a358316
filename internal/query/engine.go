// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query executes free-text search, predicate filtering, and sorting
// over the loaded paper collection. Search reads the collection and returns
// a new ordered slice; it never mutates the store. Recording a non-empty
// search into the session history is part of the search contract, not a
// separate step the caller must remember.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/paper-atlas/internal/catalog"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Recorder receives one entry per non-empty search. Implemented by
// session.Manager; a nil Recorder disables history.
type Recorder interface {
	RecordSearch(entry types.SearchEntry)
}

// Engine runs searches against a catalog store.
type Engine struct {
	store    *catalog.Store
	recorder Recorder
	now      func() time.Time
}

// NewEngine returns an Engine over store. recorder may be nil.
func NewEngine(store *catalog.Store, recorder Recorder) *Engine {
	return &Engine{store: store, recorder: recorder, now: time.Now}
}

// Search applies the free-text query and the filter set, sorts per
// filters.SortBy, and returns the ordered results. Matching is term
// conjunction: the query is lowercased and split on whitespace, and every
// term must be a substring of the record's searchable text. Filters apply
// conjunctively; a zero filter field is no constraint.
func (e *Engine) Search(query string, filters types.FilterSet) []types.PaperRecord {
	results := e.store.All()

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) > 0 {
		matched := results[:0]
		for _, p := range results {
			if matchesTerms(p, terms) {
				matched = append(matched, p)
			}
		}
		results = matched
	}

	results = applyFilters(results, filters)
	sortResults(results, filters.SortBy)

	if strings.TrimSpace(query) != "" && e.recorder != nil {
		e.recorder.RecordSearch(types.SearchEntry{
			Query:       query,
			Filters:     filters,
			Timestamp:   e.now(),
			ResultCount: len(results),
		})
	}

	return results
}

// matchesTerms reports whether every term is contained in the record's
// searchable text: title, abstract, authors, and journal joined with
// single spaces and lowercased. Plain substring containment, no token
// boundaries.
func matchesTerms(p types.PaperRecord, terms []string) bool {
	text := strings.ToLower(strings.Join([]string{
		p.Title,
		p.Abstract,
		strings.Join(p.Authors, " "),
		p.Journal,
	}, " "))

	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

func applyFilters(results []types.PaperRecord, f types.FilterSet) []types.PaperRecord {
	kept := results[:0]
	for _, p := range results {
		if f.Year != 0 && p.Year < f.Year {
			continue
		}
		if f.Journal != "" && !containsFold(p.Journal, f.Journal) {
			continue
		}
		if f.Methodology != "" && p.Methodology != f.Methodology {
			continue
		}
		if f.Country != "" && !anyCountryContains(p.Countries, f.Country) {
			continue
		}
		if f.SampleSize != 0 && p.SampleSize < f.SampleSize {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyCountryContains(countries []string, substr string) bool {
	for _, c := range countries {
		if containsFold(c, substr) {
			return true
		}
	}
	return false
}

// sortResults orders results per key, descending, with stable ties so
// records keep their relative collection order. The relevance key is the
// identity ordering: with no scoring model, matching order is collection
// order.
func sortResults(results []types.PaperRecord, key types.SortKey) {
	switch key {
	case types.SortYear:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Year > results[j].Year
		})
	case types.SortCitations:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Citations > results[j].Citations
		})
	case types.SortSampleSize:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].SampleSize > results[j].SampleSize
		})
	}
}
