// Package sqlitestore persists namespace documents in a single SQLite
// database, one row per key. It implements the same contract as the file
// backend for setups that prefer one data file over a directory of them.
package sqlitestore

import (
	"context"
	"database/sql"

	"foliot/internal/errors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key     TEXT PRIMARY KEY,
	content BLOB NOT NULL
)`

// SQLiteStore implements the repository.Store interface on SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (creating if necessary) the database at dbPath.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageError("initialize schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read returns the full document stored under key.
func (s *SQLiteStore) Read(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT content FROM documents WHERE key = ?`

	var content []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("document", key)
	}
	if err != nil {
		return nil, errors.NewStorageError("read "+key, err)
	}
	return content, nil
}

// Write replaces the document stored under key.
func (s *SQLiteStore) Write(ctx context.Context, key string, data []byte) error {
	query := `
	INSERT INTO documents (key, content) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET content = excluded.content`

	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return errors.NewStorageError("write "+key, err)
	}
	return nil
}

// Delete removes the document stored under key.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM documents WHERE key = ?`

	result, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("document", key)
	}
	return nil
}

// Exists reports whether a document is stored under key.
func (s *SQLiteStore) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT 1 FROM documents WHERE key = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("stat "+key, err)
	}
	return true, nil
}
