// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package badgerstore implements the state.KV port on BadgerDB. Each
// selection value (comparison list, favorites, search history) is one JSON
// blob under a fixed key, so the store needs no indexes and no iteration.
package badgerstore

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/pdiddy/paper-atlas/internal/state"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Store wraps a BadgerDB instance behind the state.KV port.
type Store struct {
	db *badger.DB
}

var _ state.KV = (*Store)(nil)

// Open opens or creates the store per cfg. With cfg.InMemory the store
// lives only for the process lifetime; otherwise cfg.StateDir is created
// if needed.
func Open(cfg types.StateConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.StateDir == "" {
			return nil, fmt.Errorf("state directory not configured")
		}
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state directory %s: %w", cfg.StateDir, err)
		}
		opts = badger.DefaultOptions(cfg.StateDir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get implements state.KV. A missing key reports absent, not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements state.KV.
func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close implements state.KV.
func (s *Store) Close() error {
	return s.db.Close()
}
