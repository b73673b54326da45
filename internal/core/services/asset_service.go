package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
)

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates the read service used by register collaborators.
func NewAssetService(repo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: repo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) GetDepreciationState(ctx context.Context, assetID int64) (*domain.Asset, error) {
	if assetID <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid asset id %d", assetID))
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			s.LogError(ctx, err, "Failed to load asset", slog.Int64("asset_id", assetID))
		}
		return nil, asAppError(err, "failed to load asset")
	}
	return asset, nil
}
