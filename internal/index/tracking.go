// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// LogSearch appends one search invocation to the activity log. The filter
// set is stored as JSON in filters_used.
func (s *Store) LogSearch(ctx context.Context, entry types.SearchEntry, userSession string) error {
	filters, err := json.Marshal(entry.Filters)
	if err != nil {
		return fmt.Errorf("encoding filters: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO search_logs (search_query, filters_used, num_results, user_session)
		 VALUES (?, ?, ?, ?)`,
		entry.Query, string(filters), entry.ResultCount, userSession,
	)
	if err != nil {
		return fmt.Errorf("logging search: %w", err)
	}
	return nil
}

// LogCompareView appends one comparison view to the activity log.
func (s *Store) LogCompareView(ctx context.Context, paperIDs []string, userSession string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO compare_view_logs (paper_ids, num_papers, user_session)
		 VALUES (?, ?, ?)`,
		strings.Join(paperIDs, ","), len(paperIDs), userSession,
	)
	if err != nil {
		return fmt.Errorf("logging compare view: %w", err)
	}
	return nil
}

// LogDownload appends one export/download to the activity log.
func (s *Store) LogDownload(ctx context.Context, paperIDs []string, format, userSession string) error {
	if format == "" {
		format = "CSV"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO download_logs (paper_ids, num_papers, file_format, user_session)
		 VALUES (?, ?, ?, ?)`,
		strings.Join(paperIDs, ","), len(paperIDs), format, userSession,
	)
	if err != nil {
		return fmt.Errorf("logging download: %w", err)
	}
	return nil
}

// SearchLogCount returns the number of logged searches.
func (s *Store) SearchLogCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM search_logs`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting search logs: %w", err)
	}
	return n, nil
}
