// Package kvstore defines the persistence contract for the account core:
// a key-value store holding opaque string values, with in-memory, SQLite
// and PostgreSQL implementations.
package kvstore

import (
	"context"
	"fmt"

	"github.com/valencire/account/internal/config"
)

// Store is the only boundary between the account core and durable storage.
// Values are opaque strings (serialized JSON blobs under fixed keys).
type Store interface {
	// Get returns the value for key, or common.ErrorNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Open constructs the Store selected by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return NewMemoryStore(), nil
	case config.StorageSQLite:
		return NewSQLiteStore(ctx, cfg.DatabaseDSN)
	case config.StoragePostgres:
		return NewPostgresStore(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", cfg.Storage)
	}
}
