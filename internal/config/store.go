package config

import (
	"fmt"
	"os"

	"foliot/internal/repository"
	"foliot/internal/repository/filestore"
	"foliot/internal/repository/sqlitestore"
)

// CreateStore creates a storage backend instance from the configuration.
func CreateStore(config *Config) (repository.Store, error) {
	switch config.Storage.Backend {
	case BackendYAML:
		store, err := filestore.New(config.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize data directory: %w", err)
		}
		return store, nil
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to initialize data directory: %w", err)
		}
		store, err := sqlitestore.New(config.GetSQLitePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend '%s'", config.Storage.Backend)}
	}
}
