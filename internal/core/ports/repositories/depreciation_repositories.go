package repositories

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// DepreciationReader defines read operations for depreciation records.
type DepreciationReader interface {
	// ListRecordsByAsset returns every record of an asset, newest period first.
	ListRecordsByAsset(ctx context.Context, assetID int64) ([]domain.DepreciationRecord, error)

	// CountAssetsByMonth returns, for each month of year that has records,
	// the number of distinct assets covered.
	CountAssetsByMonth(ctx context.Context, year int) (map[int]int, error)

	// SummarizeByPeriod aggregates charges per period, newest first.
	// A nil year means all years.
	SummarizeByPeriod(ctx context.Context, year *int) ([]domain.PeriodSummary, error)
}

// DepreciationTxWriter defines the depreciation record operations performed
// inside the engine's transaction.
type DepreciationTxWriter interface {
	// FindAssetIDsForPeriod returns the ids of assets that already have a record for period.
	FindAssetIDsForPeriod(ctx context.Context, period domain.Period) (map[int64]struct{}, error)

	// SaveRecords inserts new records. A record colliding with an existing
	// (asset, year, month) fails with an apperrors.KindDuplicatePeriod error.
	SaveRecords(ctx context.Context, records []domain.DepreciationRecord) error
}

// DepreciationRepositoryFacade combines the depreciation interfaces used outside a transaction.
type DepreciationRepositoryFacade interface {
	DepreciationReader
}
