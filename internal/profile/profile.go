package profile

import (
	"context"
	"ecoalerta/internal/core"
	"ecoalerta/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Store persists the resident's UserConfig under storage.KeyConfig
type Store struct {
	kv     storage.Store
	logger *slog.Logger
}

// New creates a profile store on top of a key-value store
func New(kv storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		logger: logger.With("component", "profile"),
	}
}

// Load returns the saved configuration, or nil when none was saved or the
// stored value cannot be read
func (s *Store) Load(ctx context.Context) *core.UserConfig {
	data, err := s.kv.Get(ctx, storage.KeyConfig)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("Failed to load config", "error", err)
		return nil
	}

	var cfg *core.UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Error("Failed to parse stored config", "error", err)
		return nil
	}

	return cfg
}

// Save replaces the stored configuration
func (s *Store) Save(ctx context.Context, cfg core.UserConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := s.kv.Set(ctx, storage.KeyConfig, data); err != nil {
		s.logger.Error("Failed to save config", "error", err)
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

var _ core.ProfileStore = (*Store)(nil)
