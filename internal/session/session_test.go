package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-atlas/internal/state"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// --- test doubles ---

type mapLookup map[string]types.PaperRecord

func (l mapLookup) GetByID(id string) (types.PaperRecord, bool) {
	p, ok := l[id]
	return p, ok
}

func testLookup() mapLookup {
	return mapLookup{
		"paper_001": {ID: "paper_001", Title: "Echo Chambers Online"},
		"paper_002": {ID: "paper_002", Title: "Platform Effects"},
	}
}

func newTestManager(t *testing.T) (*Manager, state.KV) {
	t.Helper()
	kv := state.NewMemory()
	return NewManager(kv, testLookup(), io.Discard), kv
}

// failingKV rejects all writes.
type failingKV struct{ *state.Memory }

func (f failingKV) Set(string, []byte) error { return errors.New("disk full") }

// --- comparison ---

func TestAddToComparisonUnique(t *testing.T) {
	m, _ := newTestManager(t)

	if !m.AddToComparison("paper_001") {
		t.Error("first add should change the list")
	}
	if m.AddToComparison("paper_001") {
		t.Error("second add should be a no-op")
	}
	if got := len(m.ComparisonList()); got != 1 {
		t.Errorf("comparison length = %d, want 1", got)
	}
}

func TestAddToComparisonUnknownIDAbsorbed(t *testing.T) {
	m, _ := newTestManager(t)
	if m.AddToComparison("paper_999") {
		t.Error("unknown id should be silently absorbed")
	}
	if len(m.ComparisonList()) != 0 {
		t.Error("unknown id should not enter the list")
	}
}

func TestRemoveFromComparison(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddToComparison("paper_001")
	m.AddToComparison("paper_002")

	if !m.RemoveFromComparison("paper_001") {
		t.Error("remove of present id should report true")
	}
	if m.RemoveFromComparison("paper_001") {
		t.Error("remove of absent id should be a no-op")
	}

	list := m.ComparisonList()
	if len(list) != 1 || list[0].ID != "paper_002" {
		t.Errorf("comparison = %v", list)
	}
}

func TestComparisonOrderPreserved(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddToComparison("paper_002")
	m.AddToComparison("paper_001")

	list := m.ComparisonList()
	if list[0].ID != "paper_002" || list[1].ID != "paper_001" {
		t.Errorf("insertion order not preserved: %v", list)
	}
}

// --- favorites ---

func TestFavoritesIdempotent(t *testing.T) {
	m, _ := newTestManager(t)

	m.AddToFavorites("paper_001")
	m.AddToFavorites("paper_001")
	if got := m.FavoriteIDs(); len(got) != 1 {
		t.Errorf("favorites = %v, want exactly one entry", got)
	}

	if m.RemoveFromFavorites("paper_404") {
		t.Error("removing an absent favorite should be a no-op")
	}
	if !m.RemoveFromFavorites("paper_001") {
		t.Error("removing a present favorite should report true")
	}
	if m.IsFavorited("paper_001") {
		t.Error("paper_001 still favorited after removal")
	}
}

func TestFavoritesDanglingReferencesFiltered(t *testing.T) {
	m, _ := newTestManager(t)

	// Favoriting does not validate the identifier.
	m.AddToFavorites("paper_gone")
	m.AddToFavorites("paper_001")

	if got := len(m.FavoriteIDs()); got != 2 {
		t.Fatalf("raw favorites = %d, want 2", got)
	}
	resolved := m.Favorites()
	if len(resolved) != 1 || resolved[0].ID != "paper_001" {
		t.Errorf("resolved favorites = %v, want only paper_001", resolved)
	}
}

// --- history ---

func TestHistoryBounded(t *testing.T) {
	m, _ := newTestManager(t)

	for i := 1; i <= 11; i++ {
		m.RecordSearch(types.SearchEntry{
			Query:     fmt.Sprintf("query %d", i),
			Timestamp: time.Now(),
		})
	}

	h := m.History()
	if len(h) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(h), HistoryLimit)
	}
	if h[0].Query != "query 11" {
		t.Errorf("most recent entry = %q, want %q", h[0].Query, "query 11")
	}
	for _, e := range h {
		if e.Query == "query 1" {
			t.Error("oldest entry should have been evicted")
		}
	}
}

// --- persistence ---

func TestStateSurvivesRehydration(t *testing.T) {
	kv := state.NewMemory()
	m := NewManager(kv, testLookup(), io.Discard)
	m.AddToComparison("paper_001")
	m.AddToFavorites("paper_002")
	m.RecordSearch(types.SearchEntry{Query: "media", Timestamp: time.Now(), ResultCount: 3})

	// A fresh manager over the same store sees the persisted state.
	m2 := NewManager(kv, testLookup(), io.Discard)
	if got := m2.ComparisonList(); len(got) != 1 || got[0].ID != "paper_001" {
		t.Errorf("rehydrated comparison = %v", got)
	}
	if !m2.IsFavorited("paper_002") {
		t.Error("rehydrated favorites missing paper_002")
	}
	if h := m2.History(); len(h) != 1 || h[0].Query != "media" {
		t.Errorf("rehydrated history = %v", h)
	}
}

func TestCorruptValueDiscarded(t *testing.T) {
	kv := state.NewMemory()
	kv.Set("favorites", []byte("{not json"))

	var warnings strings.Builder
	m := NewManager(kv, testLookup(), &warnings)
	if len(m.FavoriteIDs()) != 0 {
		t.Error("corrupt favorites should start empty")
	}
	if !strings.Contains(warnings.String(), "favorites") {
		t.Errorf("expected a warning naming the key, got %q", warnings.String())
	}
}

func TestPersistFailureIsBestEffort(t *testing.T) {
	kv := failingKV{state.NewMemory()}
	var warnings strings.Builder
	m := NewManager(kv, testLookup(), &warnings)

	// The mutation itself must succeed even though the write fails.
	if !m.AddToFavorites("paper_001") {
		t.Error("mutation should succeed despite persistence failure")
	}
	if !m.IsFavorited("paper_001") {
		t.Error("in-memory state should reflect the mutation")
	}
	if !strings.Contains(warnings.String(), "disk full") {
		t.Errorf("expected persistence warning, got %q", warnings.String())
	}
}
