package memory

import (
	"context"
	"ecoalerta/internal/storage"
	"errors"
	"sync"
)

// ErrWriteRejected is returned by Set while write failures are injected
var ErrWriteRejected = errors.New("write rejected: storage quota exceeded")

// Storage implements storage.Store in process memory
type Storage struct {
	mu         sync.RWMutex
	values     map[string][]byte
	failWrites bool
}

// New creates an empty in-memory store
func New() *Storage {
	return &Storage{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return ErrWriteRejected
	}

	s.values[key] = append([]byte{}, value...)
	return nil
}

// Delete removes key; used by tests to reset state
func (s *Storage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// FailWrites makes every subsequent Set fail (or succeed again with false)
func (s *Storage) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// Close is a no-op
func (s *Storage) Close() error {
	return nil
}

var _ storage.Store = (*Storage)(nil)
