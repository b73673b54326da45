package services

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// AssetReaderSvc exposes the depreciable attributes of an asset to collaborators.
type AssetReaderSvc interface {
	GetDepreciationState(ctx context.Context, assetID int64) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
}
