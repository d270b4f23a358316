// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the indexed papers to indexDir/export.yaml. It supports
// the same filters as Retrieve for partial exports.
func (s *Store) ExportYAML(ctx context.Context, opts RetrieveOptions) error {
	papers, err := s.exportPapers(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.indexDir, "export.yaml")
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the indexed papers to indexDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts RetrieveOptions) error {
	papers, err := s.exportPapers(ctx, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(s.indexDir, "export.json")
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportPapers(ctx context.Context, opts RetrieveOptions) ([]types.PaperRecord, error) {
	opts.MaxResults = exportLimit
	hits, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	papers := make([]types.PaperRecord, len(hits))
	for i, h := range hits {
		papers[i] = h.PaperRecord
	}
	return papers, nil
}
