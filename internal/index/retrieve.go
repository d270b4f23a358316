// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// RetrieveOptions holds parameters for index queries.
type RetrieveOptions struct {
	// Query is the FTS5 full-text search string over title, abstract,
	// authors, and journal.
	Query string

	// Year keeps papers published in Year or later.
	Year int

	// Methodology filters by exact methodology label.
	Methodology string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (o RetrieveOptions) IsEmpty() bool {
	return o.Query == "" && o.Year == 0 && o.Methodology == ""
}

// Hit is one retrieved paper. Rank is the FTS5 relevance rank for full-text
// queries (lower is better) and zero for structured-only queries.
type Hit struct {
	types.PaperRecord
	Rank float64 `json:"rank" yaml:"rank"`
}

// Retrieve queries the index with optional full-text search and structured
// filters. Full-text results come back in relevance order; structured-only
// results in collection order.
func (s *Store) Retrieve(ctx context.Context, opts RetrieveOptions) ([]Hit, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.record, papers_fts.rank
			FROM papers_fts
			JOIN papers p ON p.rowid = papers_fts.rowid
			WHERE papers_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT p.record, 0 AS rank
			FROM papers p
			WHERE 1=1`)
	}

	if opts.Year != 0 {
		qb.WriteString(` AND p.year >= ?`)
		args = append(args, opts.Year)
	}

	if opts.Methodology != "" {
		qb.WriteString(` AND p.methodology = ?`)
		args = append(args, opts.Methodology)
	}

	if useFTS {
		qb.WriteString(` ORDER BY papers_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			record string
			rank   sql.NullFloat64
		)
		if err := rows.Scan(&record, &rank); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		var hit Hit
		if err := json.Unmarshal([]byte(record), &hit.PaperRecord); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		if rank.Valid {
			hit.Rank = rank.Float64
		}
		hits = append(hits, hit)
	}

	return hits, rows.Err()
}
