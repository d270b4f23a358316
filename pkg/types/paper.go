// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-atlas catalog:
// paper records, search parameters, history entries, and stage configuration.
package types

// PaperRecord holds one structured paper entry derived from one row of the
// tabular source. Records are built once at load time and are not modified
// afterwards; a reload replaces the whole collection.
type PaperRecord struct {
	// ID is the stable identifier, generated as "paper_NNN" from the
	// 1-based data-row position. It is positional, not content-derived:
	// reordering the source changes identifiers.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, "Untitled" when the source field is empty.
	Title string `json:"title" yaml:"title"`

	// TitleVerbatim is the title exactly as extracted from the paper.
	TitleVerbatim string `json:"title_verbatim" yaml:"title_verbatim"`

	// Authors lists author names split from the semicolon-joined source
	// field, each trimmed of surrounding whitespace.
	Authors []string `json:"authors" yaml:"authors"`

	// AuthorsVerbatim is the unsplit authors string.
	AuthorsVerbatim string `json:"authors_verbatim" yaml:"authors_verbatim"`

	// Journal is the publication venue name.
	Journal         string `json:"journal" yaml:"journal"`
	JournalVerbatim string `json:"journal_verbatim" yaml:"journal_verbatim"`

	// Year is the publication year. Unparsable years fall back to the
	// current year at load time.
	Year int `json:"year" yaml:"year"`

	// Citation is the formatted citation text.
	Citation string `json:"citation" yaml:"citation"`

	Abstract         string `json:"abstract" yaml:"abstract"`
	AbstractVerbatim string `json:"abstract_verbatim" yaml:"abstract_verbatim"`

	// SampleSize is the study sample size, 0 when the source text is not
	// a valid integer. A literal "0" in the source also maps to 0; the
	// two cases are indistinguishable downstream and both are valid.
	SampleSize int `json:"sample_size" yaml:"sample_size"`

	// Countries lists the study countries. Never empty: a missing or
	// "NOT SPECIFIED" source field yields the single fallback entry.
	Countries []string `json:"countries" yaml:"countries"`

	// Methodology is the study-type label, "Unknown" when absent.
	Methodology string `json:"methodology" yaml:"methodology"`

	// ResearchType is a fixed label applied to every record in the corpus.
	ResearchType string `json:"research_type" yaml:"research_type"`

	// Citations is the citation count, initialized to zero; the tabular
	// source carries no citation data.
	Citations int `json:"citations" yaml:"citations"`

	// ImpactFactor is initialized to zero for the same reason.
	ImpactFactor float64 `json:"impact_factor" yaml:"impact_factor"`

	// Keywords is the fixed corpus keyword set.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Extracted holds the per-study extracted feature fields.
	Extracted ExtractedFeatures `json:"extracted_features" yaml:"extracted_features"`
}

// ExtractedFeatures holds the study-level fields extracted from each paper.
// Most fields come in pairs: a normalized value and a verbatim counterpart
// quoting the paper directly.
type ExtractedFeatures struct {
	IndependentVariables         string `json:"independent_variables" yaml:"independent_variables"`
	IndependentVariablesVerbatim string `json:"independent_variables_verbatim" yaml:"independent_variables_verbatim"`
	DependentVariables           string `json:"dependent_variables" yaml:"dependent_variables"`
	DependentVariablesVerbatim   string `json:"dependent_variables_verbatim" yaml:"dependent_variables_verbatim"`
	SurveyQuestions              string `json:"survey_questions" yaml:"survey_questions"`
	SurveyQuestionsVerbatim      string `json:"survey_questions_verbatim" yaml:"survey_questions_verbatim"`
	Incentive                    string `json:"incentive" yaml:"incentive"`
	IncentiveVerbatim            string `json:"incentive_verbatim" yaml:"incentive_verbatim"`
	StudyType                    string `json:"study_type" yaml:"study_type"`
	StudyTypeVerbatim            string `json:"study_type_verbatim" yaml:"study_type_verbatim"`
	AnalysisEquations            string `json:"analysis_equations" yaml:"analysis_equations"`
	AnalysisEquationsVerbatim    string `json:"analysis_equations_verbatim" yaml:"analysis_equations_verbatim"`
	LevelOfAnalysis              string `json:"level_of_analysis" yaml:"level_of_analysis"`
	LevelOfAnalysisVerbatim      string `json:"level_of_analysis_verbatim" yaml:"level_of_analysis_verbatim"`
	MainEffects                  string `json:"main_effects" yaml:"main_effects"`
	MainEffectsVerbatim          string `json:"main_effects_verbatim" yaml:"main_effects_verbatim"`
	StatisticalPower             string `json:"statistical_power" yaml:"statistical_power"`
	StatisticalPowerVerbatim     string `json:"statistical_power_verbatim" yaml:"statistical_power_verbatim"`
	Moderators                   string `json:"moderators" yaml:"moderators"`
	ModeratorsVerbatim           string `json:"moderators_verbatim" yaml:"moderators_verbatim"`
	ModerationResults            string `json:"moderation_results" yaml:"moderation_results"`
	ModerationResultsVerbatim    string `json:"moderation_results_verbatim" yaml:"moderation_results_verbatim"`
	Demographics                 string `json:"demographics" yaml:"demographics"`
	DemographicsVerbatim         string `json:"demographics_verbatim" yaml:"demographics_verbatim"`
	RecruitmentSource            string `json:"recruitment_source" yaml:"recruitment_source"`
	RecruitmentSourceVerbatim    string `json:"recruitment_source_verbatim" yaml:"recruitment_source_verbatim"`
	SampleSize                   string `json:"sample_size" yaml:"sample_size"`
	SampleSizeVerbatim           string `json:"sample_size_verbatim" yaml:"sample_size_verbatim"`
	CountryRegion                string `json:"country_region" yaml:"country_region"`
	SocioculturalContext         string `json:"sociocultural_context" yaml:"sociocultural_context"`
	PoliticalContext             string `json:"political_context" yaml:"political_context"`
	PlatformTechnologicalContext string `json:"platform_technological_context" yaml:"platform_technological_context"`
	TemporalContext              string `json:"temporal_context" yaml:"temporal_context"`
	RecommendedModerators        string `json:"recommended_moderators" yaml:"recommended_moderators"`
	ResearchContext              string `json:"research_context" yaml:"research_context"`
	InterventionInsights         string `json:"intervention_insights" yaml:"intervention_insights"`
}

// Statistics summarizes the loaded collection for the stats surfaces.
type Statistics struct {
	// TotalPapers is the number of loaded records.
	TotalPapers int `json:"totalPapers" yaml:"total_papers"`

	// TotalStudies is the sum of sample sizes across all records.
	TotalStudies int `json:"totalStudies" yaml:"total_studies"`

	// TotalCountries is the number of distinct country names.
	TotalCountries int `json:"totalCountries" yaml:"total_countries"`

	// Methodologies lists the distinct methodology labels, sorted.
	Methodologies []string `json:"methodologies" yaml:"methodologies"`

	// Journals lists the distinct journal names, sorted.
	Journals []string `json:"journals" yaml:"journals"`

	// Years lists the distinct publication years, most recent first.
	Years []int `json:"years" yaml:"years"`
}
