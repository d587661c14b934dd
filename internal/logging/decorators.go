package logging

import (
	"context"
	"ecoalerta/internal/core"
	"log/slog"
	"time"
)

// LedgerLogger wraps a ReportLedger and logs all method calls
type LedgerLogger struct {
	ledger core.ReportLedger
	logger *slog.Logger
}

// NewLedgerLogger creates a new logging decorator for a ReportLedger
func NewLedgerLogger(ledger core.ReportLedger, logger *slog.Logger) core.ReportLedger {
	return &LedgerLogger{
		ledger: ledger,
		logger: logger.With("interface", "ReportLedger"),
	}
}

func (l *LedgerLogger) Load(ctx context.Context) []core.Report {
	start := time.Now()
	reports := l.ledger.Load(ctx)

	l.logger.Debug("Load completed",
		"count", len(reports),
		"duration", time.Since(start))

	return reports
}

func (l *LedgerLogger) Add(ctx context.Context, input core.ReportInput) (core.Receipt, error) {
	start := time.Now()
	l.logger.Info("Add called",
		"reason", input.Reason,
		"timestamp", input.Timestamp)

	receipt, err := l.ledger.Add(ctx, input)
	duration := time.Since(start)

	if err != nil {
		l.logger.Error("Add failed",
			"reason", input.Reason,
			"duration", duration,
			"error", err)
		return receipt, err
	}

	l.logger.Info("Add completed",
		"reason", input.Reason,
		"protocol", receipt.Protocol,
		"duration", duration)

	return receipt, nil
}
