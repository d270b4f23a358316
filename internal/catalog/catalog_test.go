package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// --- test helpers ---

// canonicalHeader joins the canonical column names into a header line.
func canonicalHeader() string {
	return strings.Join(canonicalColumns, ",")
}

// row builds a 46-field data line from per-column overrides.
func row(overrides map[string]string) string {
	fields := make([]string, len(canonicalColumns))
	for name, val := range overrides {
		idx := CanonicalColumns()[name]
		fields[idx] = val
	}
	return strings.Join(fields, ",")
}

func sampleDoc() string {
	lines := []string{
		canonicalHeader(),
		row(map[string]string{
			"authors":        "Smith; J. Doe ;Lee",
			"title":          "Echo Chambers Online",
			"journal":        "Journal of Communication",
			"year":           "2020",
			"abstract":       "A study of media and politics.",
			"study_type":     "Survey",
			"sample_size":    "1200",
			"country_region": "Germany",
		}),
		row(map[string]string{
			"authors":     "Chen",
			"title":       "Platform Effects",
			"journal":     "Political Psychology",
			"year":        "2021",
			"sample_size": "0",
		}),
	}
	return strings.Join(lines, "\n") + "\n"
}

// --- Mapper ---

func TestMapRowDefaults(t *testing.T) {
	m := NewMapper(CanonicalColumns())
	rec := m.MapRow([]string{}, 1)

	if rec.ID != "paper_001" {
		t.Errorf("ID = %q, want %q", rec.ID, "paper_001")
	}
	if rec.Title != "Untitled" {
		t.Errorf("Title = %q, want %q", rec.Title, "Untitled")
	}
	if len(rec.Authors) != 0 {
		t.Errorf("Authors = %v, want empty", rec.Authors)
	}
	if rec.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current year", rec.Year)
	}
	if rec.SampleSize != 0 {
		t.Errorf("SampleSize = %d, want 0", rec.SampleSize)
	}
	if !reflect.DeepEqual(rec.Countries, []string{"USA"}) {
		t.Errorf("Countries = %v, want [USA]", rec.Countries)
	}
	if rec.Methodology != "Unknown" {
		t.Errorf("Methodology = %q, want Unknown", rec.Methodology)
	}
	if rec.ResearchType != "Experimental Research" {
		t.Errorf("ResearchType = %q", rec.ResearchType)
	}
}

func TestMapRowDeterministic(t *testing.T) {
	m := NewMapper(CanonicalColumns())
	fields := ParseFixture(t, sampleDoc())
	a := m.MapRow(fields, 3)
	b := m.MapRow(fields, 3)
	if !reflect.DeepEqual(a, b) {
		t.Error("MapRow is not deterministic for identical input")
	}
}

// ParseFixture returns the first data row of doc.
func ParseFixture(t *testing.T, doc string) []string {
	t.Helper()
	s := NewStore()
	if s.LoadText(doc) == 0 {
		t.Fatal("fixture yielded no rows")
	}
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	return strings.Split(lines[1], ",")
}

func TestMapRowAuthorsTrimmed(t *testing.T) {
	s := NewStore()
	s.LoadText(sampleDoc())

	rec, ok := s.GetByID("paper_001")
	if !ok {
		t.Fatal("paper_001 not found")
	}
	want := []string{"Smith", "J. Doe", "Lee"}
	if !reflect.DeepEqual(rec.Authors, want) {
		t.Errorf("Authors = %v, want %v", rec.Authors, want)
	}
}

func TestMapRowValidZeroSampleSize(t *testing.T) {
	// A literal "0" is a valid value, not a coercion failure.
	s := NewStore()
	s.LoadText(sampleDoc())
	rec, _ := s.GetByID("paper_002")
	if rec.SampleSize != 0 {
		t.Errorf("SampleSize = %d, want 0", rec.SampleSize)
	}
}

func TestSampleSizeCoercion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1200", 1200},
		{"1,200", 1200},
		{"0", 0},
		{"", 0},
		{"n/a", 0},
		{"-5", 0},
	}
	for _, tt := range tests {
		if got := sampleSize(tt.in); got != tt.want {
			t.Errorf("sampleSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCountriesNotSpecifiedSentinel(t *testing.T) {
	if got := countries("NOT SPECIFIED"); !reflect.DeepEqual(got, []string{"USA"}) {
		t.Errorf("countries(NOT SPECIFIED) = %v, want [USA]", got)
	}
	if got := countries("Brazil"); !reflect.DeepEqual(got, []string{"Brazil"}) {
		t.Errorf("countries(Brazil) = %v, want [Brazil]", got)
	}
}

// --- Columns ---

func TestColumnsFromHeaderOverridesPositions(t *testing.T) {
	// A header that reorders known names is authoritative.
	cols := ColumnsFromHeader([]string{"title", "year", "authors"})
	if cols["title"] != 0 || cols["year"] != 1 || cols["authors"] != 2 {
		t.Errorf("header-derived positions wrong: title=%d year=%d authors=%d",
			cols["title"], cols["year"], cols["authors"])
	}
	// Unnamed columns keep canonical positions.
	if cols["abstract"] != CanonicalColumns()["abstract"] {
		t.Errorf("abstract = %d, want canonical %d", cols["abstract"], CanonicalColumns()["abstract"])
	}
}

func TestColumnsFromHeaderIgnoresUnknownNames(t *testing.T) {
	cols := ColumnsFromHeader([]string{"mystery_column", "Title"})
	if cols["title"] != 1 {
		t.Errorf("title = %d, want 1 (case-insensitive match)", cols["title"])
	}
	if _, ok := cols["mystery_column"]; ok {
		t.Error("unknown header name should not enter the column table")
	}
}

// --- Store ---

func TestLoadTextSkipsBlankLines(t *testing.T) {
	doc := canonicalHeader() + "\n" +
		row(map[string]string{"title": "One"}) + "\n" +
		"\n" +
		row(map[string]string{"title": "Two"}) + "\n"

	s := NewStore()
	if n := s.LoadText(doc); n != 2 {
		t.Errorf("LoadText = %d records, want 2", n)
	}
}

func TestLoadTextIdentifiersUnique(t *testing.T) {
	s := NewStore()
	s.LoadText(sampleDoc())

	seen := make(map[string]bool)
	for _, p := range s.All() {
		if p.ID == "" {
			t.Error("empty identifier")
		}
		if seen[p.ID] {
			t.Errorf("duplicate identifier %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestLoadReplacesCollection(t *testing.T) {
	s := NewStore()
	s.LoadText(sampleDoc())
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	s.LoadText(canonicalHeader() + "\n" + row(map[string]string{"title": "Only"}) + "\n")
	if s.Len() != 1 {
		t.Errorf("Len after reload = %d, want 1", s.Len())
	}
	if _, ok := s.GetByID("paper_002"); ok {
		t.Error("paper_002 should not survive a reload")
	}
}

func TestLoadMissingFileAbsorbed(t *testing.T) {
	s := NewStore()
	var buf bytes.Buffer
	cfg := types.CatalogConfig{Source: filepath.Join(t.TempDir(), "nope.csv")}

	if n := s.Load(context.Background(), cfg, &buf); n != 0 {
		t.Errorf("Load = %d, want 0", n)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.csv")
	if err := os.WriteFile(path, []byte(sampleDoc()), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	var buf bytes.Buffer
	if n := s.Load(context.Background(), types.CatalogConfig{Source: path}, &buf); n != 2 {
		t.Errorf("Load = %d, want 2: %s", n, buf.String())
	}
}

func TestAllIsSnapshot(t *testing.T) {
	s := NewStore()
	s.LoadText(sampleDoc())
	snap := s.All()
	s.LoadText(canonicalHeader() + "\n")
	if len(snap) != 2 {
		t.Errorf("snapshot length changed after reload: %d", len(snap))
	}
}

// --- Statistics ---

func TestStatistics(t *testing.T) {
	s := NewStore()
	s.LoadText(sampleDoc())

	stats := s.Statistics()
	if stats.TotalPapers != 2 {
		t.Errorf("TotalPapers = %d, want 2", stats.TotalPapers)
	}
	if stats.TotalStudies != 1200 {
		t.Errorf("TotalStudies = %d, want 1200", stats.TotalStudies)
	}
	// Germany plus the USA fallback for the row with no country.
	if stats.TotalCountries != 2 {
		t.Errorf("TotalCountries = %d, want 2", stats.TotalCountries)
	}
	if !reflect.DeepEqual(stats.Years, []int{2021, 2020}) {
		t.Errorf("Years = %v, want [2021 2020]", stats.Years)
	}
	if !reflect.DeepEqual(stats.Methodologies, []string{"Survey", "Unknown"}) {
		t.Errorf("Methodologies = %v", stats.Methodologies)
	}
}

func TestStatisticsEmptyStore(t *testing.T) {
	stats := NewStore().Statistics()
	if stats.TotalPapers != 0 || stats.TotalCountries != 0 {
		t.Errorf("empty store stats = %+v", stats)
	}
	if stats.Methodologies == nil || stats.Journals == nil || stats.Years == nil {
		t.Error("aggregate slices should be empty, not nil")
	}
}
