package main

import (
	"fmt"
	"log/slog"

	"ecoalerta/config"
	"ecoalerta/internal/calendar"
	"ecoalerta/internal/core"
	"ecoalerta/internal/ledger"
	"ecoalerta/internal/logging"
	"ecoalerta/internal/profile"
	"ecoalerta/internal/storage"
	"ecoalerta/internal/storage/memory"
	"ecoalerta/internal/storage/redis"
	"ecoalerta/internal/storage/sqlite"
)

// app bundles the services every command works with
type app struct {
	store    storage.Store
	profiles *profile.Store
	ledger   core.ReportLedger
	calendar core.Calendar
}

// openStore selects the key-value backend named in the configuration
func openStore(sc config.StorageConfig) (storage.Store, error) {
	switch sc.Backend {
	case storage.BackendSQLite:
		db, err := sqlite.New(sc.Path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case storage.BackendRedis:
		client, err := redis.New(redis.Config{
			Addr:      sc.RedisAddr,
			Password:  sc.RedisPassword,
			DB:        sc.RedisDB,
			KeyPrefix: sc.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case storage.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	store, err := openStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	cal, err := calendar.Load(cfg.Calendar.Path)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load calendar: %w", err)
	}
	logger.Debug("Calendar loaded", "path", cfg.Calendar.Path, "neighborhoods", len(cal))

	reports := ledger.New(store, core.RealClock{}, ledger.Options{
		Language: cfg.Language(),
		Location: cfg.Location(),
	}, logger)

	return &app{
		store:    store,
		profiles: profile.New(store, logger),
		ledger:   logging.NewLedgerLogger(reports, logger),
		calendar: cal,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
