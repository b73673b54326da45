package mapping

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		ID:                      d.ID,
		InventoryNumber:         d.InventoryNumber,
		Name:                    d.Name,
		InventoryValue:          d.InventoryValue.Decimal(),
		AccumulatedDepreciation: d.AccumulatedDepreciation.Decimal(),
		RemainingValue:          d.RemainingValue.Decimal(),
		UsefulLifeMonths:        d.UsefulLifeMonths,
		RemainingLifeMonths:     d.RemainingLifeMonths,
		State:                   string(d.State),
		IsDepreciable:           d.Depreciable,
		Version:                 d.Version,
		UpdatedAt:               d.UpdatedAt,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		ID:                      m.ID,
		InventoryNumber:         m.InventoryNumber,
		Name:                    m.Name,
		InventoryValue:          money.FromDecimal(m.InventoryValue),
		AccumulatedDepreciation: money.FromDecimal(m.AccumulatedDepreciation),
		RemainingValue:          money.FromDecimal(m.RemainingValue),
		UsefulLifeMonths:        m.UsefulLifeMonths,
		RemainingLifeMonths:     m.RemainingLifeMonths,
		State:                   domain.AssetState(m.State),
		Depreciable:             m.IsDepreciable,
		Version:                 m.Version,
		UpdatedAt:               m.UpdatedAt,
	}
}
