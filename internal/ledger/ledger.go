// Package ledger keeps the append-only history of filed incident reports.
package ledger

import (
	"context"
	"ecoalerta/internal/core"
	"ecoalerta/internal/idgen"
	"ecoalerta/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrPersistFailed is returned by Add when the updated ledger could not be written
var ErrPersistFailed = errors.New("failed to persist report")

// Ledger stores reports under storage.KeyReports as one JSON array
type Ledger struct {
	kv       storage.Store
	clock    core.Clock
	lang     core.Language
	location *time.Location
	logger   *slog.Logger

	// mu serializes the read-modify-write in Add
	mu sync.Mutex
}

// Options configures report formatting
type Options struct {
	Language core.Language
	Location *time.Location
}

// New creates a ledger. A nil clock uses the wall clock.
func New(kv storage.Store, clock core.Clock, opts Options, logger *slog.Logger) *Ledger {
	if clock == nil {
		clock = core.RealClock{}
	}
	if !opts.Language.Valid() {
		opts.Language = core.DefaultLanguage
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Ledger{
		kv:       kv,
		clock:    clock,
		lang:     opts.Language,
		location: opts.Location,
		logger:   logger.With("component", "ledger"),
	}
}

// Load returns every stored report in insertion order. Missing or unreadable
// data yields an empty ledger.
func (l *Ledger) Load(ctx context.Context) []core.Report {
	reports, err := l.read(ctx)
	if err != nil {
		l.logger.Error("Failed to load reports", "error", err)
		return []core.Report{}
	}
	return reports
}

// read returns the stored reports. A missing key or corrupt data yields an
// empty ledger; any other store error is returned so Add never overwrites
// reports it could not read.
func (l *Ledger) read(ctx context.Context) ([]core.Report, error) {
	data, err := l.kv.Get(ctx, storage.KeyReports)
	if errors.Is(err, storage.ErrNotFound) {
		return []core.Report{}, nil
	}
	if err != nil {
		return nil, err
	}

	var reports []core.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		l.logger.Error("Failed to parse stored reports, treating ledger as empty", "error", err)
		return []core.Report{}, nil
	}
	if reports == nil {
		return []core.Report{}, nil
	}

	return reports, nil
}

// Add files a new report and persists the whole ledger
func (l *Ledger) Add(ctx context.Context, input core.ReportInput) (core.Receipt, error) {
	ts := input.Timestamp
	if ts == 0 {
		ts = l.clock.Now().UnixMilli()
	}

	report := core.Report{
		Protocol:           idgen.NewProtocol(ts),
		Reason:             input.Reason,
		Notes:              input.Notes,
		Timestamp:          ts,
		FormattedTimestamp: core.FormatTimestamp(time.UnixMilli(ts).In(l.location), l.lang),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	reports, err := l.read(ctx)
	if err != nil {
		l.logger.Error("Failed to read reports before append", "protocol", report.Protocol, "error", err)
		return core.Receipt{Success: false}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	for _, existing := range reports {
		if existing.Protocol == report.Protocol {
			l.logger.Warn("protocol collision", "protocol", report.Protocol)
			break
		}
	}
	reports = append(reports, report)

	data, err := json.Marshal(reports)
	if err != nil {
		return core.Receipt{Success: false}, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	if err := l.kv.Set(ctx, storage.KeyReports, data); err != nil {
		l.logger.Error("Failed to save report", "protocol", report.Protocol, "error", err)
		return core.Receipt{Success: false}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	return core.Receipt{Protocol: report.Protocol, Success: true}, nil
}

var _ core.ReportLedger = (*Ledger)(nil)
