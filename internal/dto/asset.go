package dto

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// AssetDepreciationStateResponse is the depreciable subset of an asset.
type AssetDepreciationStateResponse struct {
	ID                int64       `json:"id"`
	NumarInventar     string      `json:"numarInventar"`
	Denumire          string      `json:"denumire"`
	ValoareInventar   money.Money `json:"valoareInventar" swaggertype:"string" example:"120000.00"`
	ValoareAmortizata money.Money `json:"valoareAmortizata" swaggertype:"string" example:"2000.00"`
	ValoareRamasa     money.Money `json:"valoareRamasa" swaggertype:"string" example:"118000.00"`
	DurataNormala     int         `json:"durataNormala"`
	DurataRamasa      int         `json:"durataRamasa"`
	Stare             string      `json:"stare"`
	EAmortizabil      bool        `json:"eAmortizabil"`
	Eligibil          bool        `json:"eligibil"`
	CotaLunara        money.Money `json:"cotaLunara" swaggertype:"string" example:"2000.00"`
}

// ToAssetDepreciationStateResponse converts a domain asset.
func ToAssetDepreciationStateResponse(a domain.Asset) AssetDepreciationStateResponse {
	quota := money.Zero()
	if a.UsefulLifeMonths > 0 {
		quota = domain.MonthlyCharge(a).Round()
	}
	return AssetDepreciationStateResponse{
		ID:                a.ID,
		NumarInventar:     a.InventoryNumber,
		Denumire:          a.Name,
		ValoareInventar:   a.InventoryValue,
		ValoareAmortizata: a.AccumulatedDepreciation,
		ValoareRamasa:     a.RemainingValue,
		DurataNormala:     a.UsefulLifeMonths,
		DurataRamasa:      a.RemainingLifeMonths,
		Stare:             string(a.State),
		EAmortizabil:      a.Depreciable,
		Eligibil:          a.IsEligible(),
		CotaLunara:        quota,
	}
}
