// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SortKey selects the ordering of search results.
type SortKey string

const (
	// SortRelevance preserves the order produced by matching and
	// filtering. With no scoring model this is the original collection
	// order.
	SortRelevance SortKey = "relevance"

	// SortYear orders by publication year, most recent first.
	SortYear SortKey = "year"

	// SortCitations orders by citation count, highest first.
	SortCitations SortKey = "citations"

	// SortSampleSize orders by study sample size, largest first.
	SortSampleSize SortKey = "sampleSize"
)

// FilterSet holds the optional search predicates. The zero value of each
// field means "no constraint"; predicates present are applied conjunctively.
type FilterSet struct {
	// Year keeps records published in Year or later.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Journal keeps records whose journal name contains this substring,
	// case-insensitively.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Methodology keeps records whose methodology label matches exactly.
	Methodology string `json:"methodology,omitempty" yaml:"methodology,omitempty"`

	// Country keeps records where any country name contains this
	// substring, case-insensitively.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// SampleSize keeps records with a sample size of at least this value.
	SampleSize int `json:"sampleSize,omitempty" yaml:"sample_size,omitempty"`

	// SortBy selects the result ordering. Empty means SortRelevance.
	SortBy SortKey `json:"sortBy,omitempty" yaml:"sort_by,omitempty"`
}

// IsZero reports whether no predicate is set and the sort is the default.
func (f FilterSet) IsZero() bool {
	return f.Year == 0 && f.Journal == "" && f.Methodology == "" &&
		f.Country == "" && f.SampleSize == 0 &&
		(f.SortBy == "" || f.SortBy == SortRelevance)
}

// SearchEntry logs one non-empty search invocation for the history list.
type SearchEntry struct {
	// Query is the free-text query as entered.
	Query string `json:"query" yaml:"query"`

	// Filters is a snapshot of the filter set used.
	Filters FilterSet `json:"filters" yaml:"filters"`

	// Timestamp is when the search ran.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// ResultCount is the number of records returned.
	ResultCount int `json:"resultCount" yaml:"result_count"`
}
