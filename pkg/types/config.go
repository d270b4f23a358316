// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CatalogConfig holds settings for loading the tabular paper source.
type CatalogConfig struct {
	// Source is the location of the delimited text file: a local path or
	// an http(s) URL.
	Source string `json:"source" yaml:"source"`

	// Timeout is the HTTP request timeout for URL sources.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent when fetching URL sources
	// (e.g. "paper-atlas/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StateConfig holds settings for the durable selection-state store.
type StateConfig struct {
	// StateDir is the directory backing the key-value store.
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// InMemory runs the store without touching disk. Selections then
	// last only for the process lifetime.
	InMemory bool `json:"in_memory,omitempty" yaml:"in_memory,omitempty"`
}

// IndexConfig holds settings for the SQLite paper index.
type IndexConfig struct {
	// IndexDir is the directory containing papers.db.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of index query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":5001").
	Addr string `json:"addr" yaml:"addr"`
}
