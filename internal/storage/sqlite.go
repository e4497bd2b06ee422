// Package storage maintains the ephemeral SQLite corpus index.
//
// The index is never the source of truth: it is rebuilt wholesale from
// the .bib sources by the index command and can be deleted at any time.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// IndexedEntry is one corpus entry flattened for indexing and search.
type IndexedEntry struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Year    string `json:"year,omitempty"`
	Venue   string `json:"venue,omitempty"`
	DOI     string `json:"doi,omitempty"`
	Source  string `json:"source,omitempty"` // .bib file the entry came from
}

const selectEntryFields = `key, type, title, authors, year, venue, doi, source`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT,
			authors TEXT,
			year TEXT,
			venue TEXT,
			doi TEXT,
			source TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_entries_doi ON entries(doi) WHERE doi IS NOT NULL AND doi != '';

		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			key,
			title,
			authors,
			venue
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and refills it from the given entries, all
// in one transaction so a failed rebuild leaves the old index intact.
func (d *DB) Rebuild(entries []IndexedEntry) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entryStmt, err := tx.Prepare(`
		INSERT INTO entries (key, type, title, authors, year, venue, doi, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing entries insert: %w", err)
	}
	defer entryStmt.Close()

	ftsStmt, err := tx.Prepare(`
		INSERT INTO entries_fts (key, title, authors, venue)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, e := range entries {
		_, err := entryStmt.Exec(e.Key, e.Type, e.Title, e.Authors, e.Year, e.Venue, e.DOI, e.Source)
		if err != nil {
			return 0, fmt.Errorf("inserting entry %s: %w", e.Key, err)
		}
		if _, err := ftsStmt.Exec(e.Key, e.Title, e.Authors, e.Venue); err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(entries), nil
}

// GetByKey retrieves an entry by its citation key. Returns nil when
// the key is not indexed.
func (d *DB) GetByKey(key string) (*IndexedEntry, error) {
	row := d.db.QueryRow(`SELECT `+selectEntryFields+` FROM entries WHERE key = ?`, key)
	return scanEntry(row)
}

// Search performs a full-text search over keys, titles, authors and
// venues, best matches first.
func (d *DB) Search(query string, limit int) ([]IndexedEntry, error) {
	ftsQuery := prepareFTSQuery(query)

	// The limit applies inside the FTS subquery so it keeps the
	// best-ranked matches rather than an arbitrary slice.
	rows, err := d.db.Query(`
		SELECT `+selectEntryFields+`
		FROM entries
		WHERE key IN (
			SELECT key FROM entries_fts WHERE entries_fts MATCH ?
			ORDER BY bm25(entries_fts) LIMIT ?
		)`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListAll returns all indexed entries, optionally limited, ordered by key.
func (d *DB) ListAll(limit int) ([]IndexedEntry, error) {
	query := `SELECT ` + selectEntryFields + ` FROM entries ORDER BY key`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the total number of indexed entries.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(s scanner) (*IndexedEntry, error) {
	var e IndexedEntry
	var title, authors, year, venue, doi, source sql.NullString

	err := s.Scan(&e.Key, &e.Type, &title, &authors, &year, &venue, &doi, &source)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	e.Title = title.String
	e.Authors = authors.String
	e.Year = year.String
	e.Venue = venue.String
	e.DOI = doi.String
	e.Source = source.String
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]IndexedEntry, error) {
	var entries []IndexedEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries, rows.Err()
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If the query contains FTS5 operators, quote the whole thing as
	// a phrase rather than letting it parse as syntax.
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
