// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches fetched PubMed records in a local SQLite
// database so repeated runs skip efetch calls for records already seen.
// The cache is read-through and strictly optional: classification is a
// pure function of the retrieved records either way.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

const dbFile = "pharma-papers.db"

// Store manages the record cache database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at dir/pharma-papers.db and
// creates the schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS papers (
		pmid TEXT PRIMARY KEY,
		title TEXT,
		pub_date TEXT,
		abstract TEXT,
		authors TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	return err
}

// Get returns the cached papers for the given PMIDs, keyed by PMID.
// Unknown PMIDs are simply absent from the result.
func (s *Store) Get(ctx context.Context, pmids []string) (map[string]types.Paper, error) {
	if len(pmids) == 0 {
		return map[string]types.Paper{}, nil
	}

	placeholders := strings.Repeat("?,", len(pmids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(pmids))
	for i, id := range pmids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pmid, title, pub_date, abstract, authors FROM papers WHERE pmid IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	found := make(map[string]types.Paper)
	for rows.Next() {
		var p types.Paper
		var authorsJSON string
		if err := rows.Scan(&p.PubmedID, &p.Title, &p.PublicationDate, &p.Abstract, &authorsJSON); err != nil {
			return nil, fmt.Errorf("scanning cached paper: %w", err)
		}
		if err := json.Unmarshal([]byte(authorsJSON), &p.Authors); err != nil {
			return nil, fmt.Errorf("decoding cached authors for %s: %w", p.PubmedID, err)
		}
		found[p.PubmedID] = p
	}
	return found, rows.Err()
}

// Put inserts or replaces the given papers in the cache.
func (s *Store) Put(ctx context.Context, papers []types.Paper) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO papers (pmid, title, pub_date, abstract, authors, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range papers {
		authorsJSON, err := json.Marshal(p.Authors)
		if err != nil {
			return fmt.Errorf("encoding authors for %s: %w", p.PubmedID, err)
		}
		if _, err := stmt.ExecContext(ctx, p.PubmedID, p.Title, p.PublicationDate, p.Abstract, string(authorsJSON), now); err != nil {
			return fmt.Errorf("inserting %s: %w", p.PubmedID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of cached papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers`).Scan(&n)
	return n, err
}

// Clear removes all cached papers.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM papers`)
	return err
}
