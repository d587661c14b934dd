package storage

import (
	"context"
	"errors"
)

// Keys used by the application
const (
	KeyConfig  = "config"
	KeyReports = "reports"
)

// Backend names
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("key not found")

// Store defines the key-value persistence used for the profile and the ledger.
// Values are opaque byte slices; callers own the encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Lifecycle
	Close() error
}
