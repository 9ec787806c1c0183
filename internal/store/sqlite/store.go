// Package sqlite stores documents in a single SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"statepad/internal/document"
	"statepad/internal/store/sqlite/migrations"
)

// Ensure Store implements the interface.
var _ document.Store = (*Store)(nil)

// DBFile is the database file name inside the data directory.
const DBFile = "documents.db"

// Store is a document.Store backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database in dataDir and runs
// pending migrations.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, errors.New("sqlite store: empty data directory")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the content stored under name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM documents WHERE name = ?`, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", document.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("querying document: %w", err)
	}
	return content, nil
}

// Set upserts the content under name.
func (s *Store) Set(ctx context.Context, name, content string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %w", document.ErrStoreWrite, document.ErrInvalidName)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (name, content, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`, name, content)
	if err != nil {
		return fmt.Errorf("%w: upserting document: %w", document.ErrStoreWrite, err)
	}
	return nil
}

// List returns all stored names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning document name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// schemaVersion is the user_version set once the embedded schema is applied.
const schemaVersion = 1

// migrate applies the documents schema unless user_version says it is there.
func (s *Store) migrate(fsys fs.FS) error {
	var current int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if current >= schemaVersion {
		return nil
	}

	ddl, err := fs.ReadFile(fsys, migrations.Schema)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(string(ddl)); err != nil {
		return fmt.Errorf("applying %s: %w", migrations.Schema, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return tx.Commit()
}
