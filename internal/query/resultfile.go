// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// ResultFile is the on-disk representation of one search and its results.
// A search can be saved to a file and rendered later without re-running
// the query against the collection.
type ResultFile struct {
	Query   string              `yaml:"query"`
	Filters types.FilterSet     `yaml:"filters"`
	Results []types.PaperRecord `yaml:"results"`
	Summary ResultSummary       `yaml:"summary"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a search invocation and its results to a YAML file.
func WriteResultFile(path, query string, filters types.FilterSet, results []types.PaperRecord) error {
	rf := ResultFile{
		Query:   query,
		Filters: filters,
		Results: results,
		Summary: ResultSummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
