package core

import "context"

// ReportLedger defines the contract for the append-only report history
type ReportLedger interface {
	Load(ctx context.Context) []Report
	Add(ctx context.Context, input ReportInput) (Receipt, error)
}

// ProfileStore defines the contract for the resident's saved configuration
type ProfileStore interface {
	Load(ctx context.Context) *UserConfig
	Save(ctx context.Context, cfg UserConfig) error
}
