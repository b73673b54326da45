package repositories

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// AssetReader defines read operations on the asset register.
type AssetReader interface {
	// FindAssetByID returns the depreciable attributes of one asset.
	FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error)
}

// AssetTxWriter defines the asset operations the depreciation engine performs
// inside its transaction.
type AssetTxWriter interface {
	// ListEligibleAssetsForUpdate returns active, depreciable assets with a
	// positive remaining value and locks their rows until the transaction ends.
	ListEligibleAssetsForUpdate(ctx context.Context) ([]domain.Asset, error)

	// UpdateDepreciationState writes the running totals of the given assets.
	// Each row is matched on its current Version, which is then incremented.
	UpdateDepreciationState(ctx context.Context, assets []domain.Asset) error
}

// AssetRepositoryFacade combines the asset interfaces used outside a transaction.
type AssetRepositoryFacade interface {
	AssetReader
}
