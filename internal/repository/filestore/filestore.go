// Package filestore persists namespace documents as plain files in the
// foliot data directory, one file per key.
package filestore

import (
	"context"
	"os"
	"path/filepath"

	"foliot/internal/errors"
)

// FileStore implements the repository.Store interface on the filesystem.
type FileStore struct {
	dir string
}

// DefaultDir returns the default data directory,
// $XDG_DATA_HOME/foliot or ~/.local/share/foliot.
func DefaultDir() (string, error) {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "foliot"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewStorageError("determine home directory", err)
	}
	return filepath.Join(home, ".local", "share", "foliot"), nil
}

// New creates a file store rooted at dir, creating the directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewStorageError("create data directory", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory all documents live in.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the absolute path of the document stored under key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key)
}

// Read returns the full document stored under key.
func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("read "+key, err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return nil, errors.NewNotFoundError("document", key)
	}
	if err != nil {
		return nil, errors.NewStorageError("read "+key, err)
	}
	return data, nil
}

// Write replaces the document stored under key. The write goes through a
// temp file and a rename so a crash never leaves a half-written document.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("write "+key, err)
	}
	path := filepath.Join(s.dir, key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return errors.NewStorageError("write "+key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.NewStorageError("write "+key, err)
	}
	return nil
}

// Delete removes the document stored under key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return errors.NewNotFoundError("document", key)
	}
	if err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	return nil
}

// Exists reports whether a document is stored under key.
func (s *FileStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.NewStorageError("stat "+key, err)
	}
	_, err := os.Stat(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("stat "+key, err)
	}
	return true, nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}
