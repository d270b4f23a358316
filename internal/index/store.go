// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains a SQLite mirror of the paper collection with an
// FTS5 retrieval index, plus the activity log tables (searches, comparison
// views, downloads). The in-memory catalog stays the source of truth:
// Rebuild replaces the indexed rows wholesale, matching the catalog's
// load-replaces-everything lifecycle.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

const dbFile = "papers.db"

// Store manages the index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// Open opens or creates the index database at cfg.IndexDir/papers.db,
// creating the schema if it does not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	if cfg.IndexDir == "" {
		return nil, fmt.Errorf("index directory not configured")
	}
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, indexDir: cfg.IndexDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			title TEXT,
			abstract TEXT,
			authors TEXT,
			journal TEXT,
			year INTEGER,
			methodology TEXT,
			sample_size INTEGER,
			record TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_methodology ON papers(methodology)`,
		`CREATE TABLE IF NOT EXISTS search_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			search_query TEXT NOT NULL,
			filters_used TEXT,
			num_results INTEGER,
			user_session TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS compare_view_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			paper_ids TEXT NOT NULL,
			num_papers INTEGER,
			user_session TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS download_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			paper_ids TEXT NOT NULL,
			num_papers INTEGER,
			file_format TEXT DEFAULT 'CSV',
			user_session TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='papers_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE papers_fts USING fts5(title, abstract, authors, journal, content=papers, content_rowid=rowid)`,
			`CREATE TRIGGER papers_ai AFTER INSERT ON papers BEGIN
				INSERT INTO papers_fts(rowid, title, abstract, authors, journal)
				VALUES (new.rowid, new.title, new.abstract, new.authors, new.journal);
			END`,
			`CREATE TRIGGER papers_ad AFTER DELETE ON papers BEGIN
				INSERT INTO papers_fts(papers_fts, rowid, title, abstract, authors, journal)
				VALUES('delete', old.rowid, old.title, old.abstract, old.authors, old.journal);
			END`,
			`CREATE TRIGGER papers_au AFTER UPDATE ON papers BEGIN
				INSERT INTO papers_fts(papers_fts, rowid, title, abstract, authors, journal)
				VALUES('delete', old.rowid, old.title, old.abstract, old.authors, old.journal);
				INSERT INTO papers_fts(rowid, title, abstract, authors, journal)
				VALUES (new.rowid, new.title, new.abstract, new.authors, new.journal);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Rebuild replaces the indexed paper rows with the given collection. Rows
// are written in collection order so structured queries without a search
// term come back in load order.
func (s *Store) Rebuild(ctx context.Context, papers []types.PaperRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing papers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, position, title, abstract, authors, journal, year, methodology, sample_size, record)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range papers {
		record, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", p.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			p.ID, i+1, p.Title, p.Abstract, joinAuthors(p.Authors), p.Journal,
			p.Year, p.Methodology, p.SampleSize, string(record),
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func joinAuthors(authors []string) string {
	out := ""
	for i, a := range authors {
		if i > 0 {
			out += "; "
		}
		out += a
	}
	return out
}
