// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Fallbacks applied during row mapping.
const (
	defaultTitle       = "Untitled"
	defaultCountry     = "USA"
	defaultMethodology = "Unknown"
	researchType       = "Experimental Research"

	// countryNotSpecified is the source sentinel for an unknown country;
	// it maps to the default, not to a literal country name.
	countryNotSpecified = "NOT SPECIFIED"
)

// corpusKeywords is the fixed keyword set applied to every record.
var corpusKeywords = []string{"social media", "politics"}

// Mapper converts a positional field row into a PaperRecord using a column
// table. Mapping is a pure function of the fields and the row index: the
// same inputs always produce the same record.
type Mapper struct {
	cols Columns
}

// NewMapper returns a Mapper over the given column table.
func NewMapper(cols Columns) Mapper {
	return Mapper{cols: cols}
}

// field returns the named column's value, or "" when the column is missing
// from the table or beyond the row's length.
func (m Mapper) field(fields []string, name string) string {
	idx, ok := m.cols[name]
	if !ok || idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// MapRow builds a PaperRecord from one data row. rowIndex is the 1-based
// position of the row in the source and determines the identifier; it is
// not derived from content, so reordering the source reorders identifiers.
func (m Mapper) MapRow(fields []string, rowIndex int) types.PaperRecord {
	rec := types.PaperRecord{
		ID:               fmt.Sprintf("paper_%03d", rowIndex),
		Title:            stringOr(m.field(fields, "title"), defaultTitle),
		TitleVerbatim:    m.field(fields, "title_verbatim"),
		Authors:          splitAuthors(m.field(fields, "authors")),
		AuthorsVerbatim:  m.field(fields, "authors_verbatim"),
		Journal:          m.field(fields, "journal"),
		JournalVerbatim:  m.field(fields, "journal_verbatim"),
		Year:             intOr(m.field(fields, "year"), time.Now().Year()),
		Citation:         m.field(fields, "citation"),
		Abstract:         m.field(fields, "abstract"),
		AbstractVerbatim: m.field(fields, "abstract_verbatim"),
		SampleSize:       sampleSize(m.field(fields, "sample_size")),
		Countries:        countries(m.field(fields, "country_region")),
		Methodology:      stringOr(m.field(fields, "study_type"), defaultMethodology),
		ResearchType:     researchType,
		Citations:        0,
		ImpactFactor:     0,
		Keywords:         corpusKeywords,
	}

	rec.Extracted = types.ExtractedFeatures{
		IndependentVariables:         m.field(fields, "independent_variables"),
		IndependentVariablesVerbatim: m.field(fields, "independent_variables_verbatim"),
		DependentVariables:           m.field(fields, "dependent_variables"),
		DependentVariablesVerbatim:   m.field(fields, "dependent_variables_verbatim"),
		SurveyQuestions:              m.field(fields, "survey_questions"),
		SurveyQuestionsVerbatim:      m.field(fields, "survey_questions_verbatim"),
		Incentive:                    m.field(fields, "incentive"),
		IncentiveVerbatim:            m.field(fields, "incentive_verbatim"),
		StudyType:                    m.field(fields, "study_type"),
		StudyTypeVerbatim:            m.field(fields, "study_type_verbatim"),
		AnalysisEquations:            m.field(fields, "analysis_equations"),
		AnalysisEquationsVerbatim:    m.field(fields, "analysis_equations_verbatim"),
		LevelOfAnalysis:              m.field(fields, "level_of_analysis"),
		LevelOfAnalysisVerbatim:      m.field(fields, "level_of_analysis_verbatim"),
		MainEffects:                  m.field(fields, "main_effects"),
		MainEffectsVerbatim:          m.field(fields, "main_effects_verbatim"),
		StatisticalPower:             m.field(fields, "statistical_power"),
		StatisticalPowerVerbatim:     m.field(fields, "statistical_power_verbatim"),
		Moderators:                   m.field(fields, "moderators"),
		ModeratorsVerbatim:           m.field(fields, "moderators_verbatim"),
		ModerationResults:            m.field(fields, "moderation_results"),
		ModerationResultsVerbatim:    m.field(fields, "moderation_results_verbatim"),
		Demographics:                 m.field(fields, "demographics"),
		DemographicsVerbatim:         m.field(fields, "demographics_verbatim"),
		RecruitmentSource:            m.field(fields, "recruitment_source"),
		RecruitmentSourceVerbatim:    m.field(fields, "recruitment_source_verbatim"),
		SampleSize:                   m.field(fields, "sample_size"),
		SampleSizeVerbatim:           m.field(fields, "sample_size_verbatim"),
		CountryRegion:                m.field(fields, "country_region"),
		SocioculturalContext:         m.field(fields, "sociocultural_context"),
		PoliticalContext:             m.field(fields, "political_context"),
		PlatformTechnologicalContext: m.field(fields, "platform_technological_context"),
		TemporalContext:              m.field(fields, "temporal_context"),
		RecommendedModerators:        m.field(fields, "recommended_moderators"),
		ResearchContext:              m.field(fields, "research_context"),
		InterventionInsights:         m.field(fields, "intervention_insights"),
	}

	return rec
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// intOr coerces s to an integer, returning fallback when s is not a valid
// integer. A valid "0" maps to 0, not to the fallback.
func intOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// sampleSize coerces the sample-size field, tolerating thousands separators
// ("1,200"). Invalid or negative values map to 0.
func sampleSize(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// splitAuthors splits a semicolon-joined author string, trimming each name
// and dropping empty entries.
func splitAuthors(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ";")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// countries returns the record's country list. The list is never empty: a
// missing value or the NOT SPECIFIED sentinel yields the default entry.
func countries(s string) []string {
	if s == "" || strings.EqualFold(s, countryNotSpecified) {
		return []string{defaultCountry}
	}
	return []string{s}
}
