package services

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// DepreciationGeneratorSvc defines the monthly batch operation.
type DepreciationGeneratorSvc interface {
	// GenerateForPeriod depreciates every eligible asset not yet covered for
	// the period, atomically. Re-running a processed period is a no-op.
	GenerateForPeriod(ctx context.Context, year, month int) (*domain.GenerationResult, error)
}

// DepreciationReaderSvc defines read operations over depreciation records.
type DepreciationReaderSvc interface {
	// GetHistory returns all records of an asset, newest period first.
	GetHistory(ctx context.Context, assetID int64) ([]domain.DepreciationRecord, error)

	// GetVerification returns one entry for each of the 12 months of year.
	GetVerification(ctx context.Context, year int) ([]domain.MonthVerification, error)

	// GetSummary aggregates charges per period, optionally restricted to one year.
	GetSummary(ctx context.Context, year *int) ([]domain.PeriodSummary, error)
}

// DepreciationSvcFacade combines all depreciation-related service interfaces
// This is a facade for clients that need access to all operations
type DepreciationSvcFacade interface {
	DepreciationGeneratorSvc
	DepreciationReaderSvc
}
