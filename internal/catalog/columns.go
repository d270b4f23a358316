// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the tabular paper source and holds the in-memory
// record collection. Loading replaces the collection wholesale; records are
// immutable between loads.
package catalog

import "strings"

// canonicalColumns lists the source field names in their canonical file
// order. Exactly these 46 positions are consumed; trailing fields a row
// does not carry default per field.
var canonicalColumns = []string{
	"authors",
	"authors_verbatim",
	"title",
	"title_verbatim",
	"journal",
	"journal_verbatim",
	"year",
	"citation",
	"abstract",
	"abstract_verbatim",
	"independent_variables",
	"independent_variables_verbatim",
	"dependent_variables",
	"dependent_variables_verbatim",
	"survey_questions",
	"survey_questions_verbatim",
	"incentive",
	"incentive_verbatim",
	"study_type",
	"study_type_verbatim",
	"analysis_equations",
	"analysis_equations_verbatim",
	"level_of_analysis",
	"level_of_analysis_verbatim",
	"main_effects",
	"main_effects_verbatim",
	"statistical_power",
	"statistical_power_verbatim",
	"moderators",
	"moderators_verbatim",
	"moderation_results",
	"moderation_results_verbatim",
	"demographics",
	"demographics_verbatim",
	"recruitment_source",
	"recruitment_source_verbatim",
	"sample_size",
	"sample_size_verbatim",
	"country_region",
	"sociocultural_context",
	"political_context",
	"platform_technological_context",
	"temporal_context",
	"recommended_moderators",
	"research_context",
	"intervention_insights",
}

// Columns maps a source field name to its position in a data row.
type Columns map[string]int

// CanonicalColumns returns the column table in canonical order. Schema
// changes are a data change here, not a code change in the mapper.
func CanonicalColumns() Columns {
	cols := make(Columns, len(canonicalColumns))
	for i, name := range canonicalColumns {
		cols[name] = i
	}
	return cols
}

// ColumnsFromHeader derives the column table from the header row, treating
// the header as authoritative. Names are matched case-insensitively after
// trimming. Fields the header does not name keep their canonical position,
// so a missing or partial header degrades to the canonical table rather
// than failing.
func ColumnsFromHeader(header []string) Columns {
	cols := CanonicalColumns()
	if len(header) == 0 {
		return cols
	}

	known := make(map[string]bool, len(canonicalColumns))
	for _, name := range canonicalColumns {
		known[name] = true
	}

	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if known[name] {
			cols[name] = i
		}
	}
	return cols
}
