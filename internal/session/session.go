// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session maintains the per-user selection state: the comparison
// list, the favorites set, and the bounded search history. Every mutation
// persists the affected value to the durable key-value store immediately;
// persistence is best-effort and a failed write never fails the mutation.
package session

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/paper-atlas/internal/state"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Storage keys. Fixed names in the external key-value store; a missing key
// at startup means "start empty".
const (
	keyComparison = "comparisonList"
	keyFavorites  = "favorites"
	keyHistory    = "searchHistory"
)

// HistoryLimit caps the search history; the oldest entry is evicted on
// overflow.
const HistoryLimit = 10

// Lookup resolves identifiers against the loaded collection. Implemented
// by catalog.Store.
type Lookup interface {
	GetByID(id string) (types.PaperRecord, bool)
}

// Manager owns the selection state for one session. It is not safe for
// concurrent mutation; the execution model is a single active session.
type Manager struct {
	kv     state.KV
	lookup Lookup
	warn   io.Writer

	comparison []types.PaperRecord
	favorites  []string
	history    []types.SearchEntry
}

// NewManager rehydrates selection state from kv. Missing keys start empty;
// a value that fails to decode is discarded with a warning rather than
// aborting the session.
func NewManager(kv state.KV, lookup Lookup, warn io.Writer) *Manager {
	m := &Manager{
		kv:         kv,
		lookup:     lookup,
		warn:       warn,
		comparison: []types.PaperRecord{},
		favorites:  []string{},
		history:    []types.SearchEntry{},
	}
	m.rehydrate(keyComparison, &m.comparison)
	m.rehydrate(keyFavorites, &m.favorites)
	m.rehydrate(keyHistory, &m.history)
	if len(m.history) > HistoryLimit {
		m.history = m.history[:HistoryLimit]
	}
	return m
}

func (m *Manager) rehydrate(key string, dst any) {
	data, ok, err := m.kv.Get(key)
	if err != nil {
		fmt.Fprintf(m.warn, "warning: reading %s: %v\n", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		fmt.Fprintf(m.warn, "warning: discarding corrupt %s: %v\n", key, err)
	}
}

// persist writes value under key. Failure is logged and otherwise ignored:
// the in-memory state is already updated and the durability guarantee is
// best-effort.
func (m *Manager) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		fmt.Fprintf(m.warn, "warning: encoding %s: %v\n", key, err)
		return
	}
	if err := m.kv.Set(key, data); err != nil {
		fmt.Fprintf(m.warn, "warning: persisting %s: %v\n", key, err)
	}
}

// --- comparison list ---

// AddToComparison appends the referenced record to the comparison list if
// it resolves and is not already present. Unknown identifiers and
// duplicates are absorbed silently; the return value reports whether the
// list changed.
func (m *Manager) AddToComparison(id string) bool {
	paper, ok := m.lookup.GetByID(id)
	if !ok {
		return false
	}
	for _, p := range m.comparison {
		if p.ID == id {
			return false
		}
	}
	m.comparison = append(m.comparison, paper)
	m.persist(keyComparison, m.comparison)
	return true
}

// RemoveFromComparison removes the identified record; absent ids are a
// no-op.
func (m *Manager) RemoveFromComparison(id string) bool {
	for i, p := range m.comparison {
		if p.ID == id {
			m.comparison = append(m.comparison[:i], m.comparison[i+1:]...)
			m.persist(keyComparison, m.comparison)
			return true
		}
	}
	return false
}

// ComparisonList returns the comparison records in insertion order.
func (m *Manager) ComparisonList() []types.PaperRecord {
	out := make([]types.PaperRecord, len(m.comparison))
	copy(out, m.comparison)
	return out
}

// ClearComparison empties the comparison list.
func (m *Manager) ClearComparison() {
	m.comparison = []types.PaperRecord{}
	m.persist(keyComparison, m.comparison)
}

// --- favorites ---

// AddToFavorites records the identifier as a favorite. The identifier is
// not validated against the collection, so a favorite can dangle; resolved
// reads filter such entries. Adding an existing favorite is a no-op.
func (m *Manager) AddToFavorites(id string) bool {
	for _, f := range m.favorites {
		if f == id {
			return false
		}
	}
	m.favorites = append(m.favorites, id)
	m.persist(keyFavorites, m.favorites)
	return true
}

// RemoveFromFavorites removes the identifier; absent ids are a no-op.
func (m *Manager) RemoveFromFavorites(id string) bool {
	for i, f := range m.favorites {
		if f == id {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			m.persist(keyFavorites, m.favorites)
			return true
		}
	}
	return false
}

// IsFavorited reports whether the identifier is in the favorites set.
func (m *Manager) IsFavorited(id string) bool {
	for _, f := range m.favorites {
		if f == id {
			return true
		}
	}
	return false
}

// FavoriteIDs returns the raw favorite identifiers, including any that no
// longer resolve.
func (m *Manager) FavoriteIDs() []string {
	out := make([]string, len(m.favorites))
	copy(out, m.favorites)
	return out
}

// Favorites resolves the favorite identifiers against the collection,
// dropping entries that no longer resolve.
func (m *Manager) Favorites() []types.PaperRecord {
	out := make([]types.PaperRecord, 0, len(m.favorites))
	for _, id := range m.favorites {
		if paper, ok := m.lookup.GetByID(id); ok {
			out = append(out, paper)
		}
	}
	return out
}

// --- search history ---

// RecordSearch prepends entry to the history and truncates to the most
// recent HistoryLimit entries. The query engine calls this for every
// non-empty search.
func (m *Manager) RecordSearch(entry types.SearchEntry) {
	m.history = append([]types.SearchEntry{entry}, m.history...)
	if len(m.history) > HistoryLimit {
		m.history = m.history[:HistoryLimit]
	}
	m.persist(keyHistory, m.history)
}

// History returns the search history, most recent first.
func (m *Manager) History() []types.SearchEntry {
	out := make([]types.SearchEntry, len(m.history))
	copy(out, m.history)
	return out
}
