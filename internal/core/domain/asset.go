package domain

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// AssetState is the lifecycle state of a fixed asset.
type AssetState string

const (
	AssetActive      AssetState = "activ"
	AssetScrapped    AssetState = "casare"
	AssetDowngraded  AssetState = "declasare"
	AssetTransferred AssetState = "transfer"
)

// Asset is the depreciable subset of a fixed asset ("mijloc fix").
// AccumulatedDepreciation, RemainingValue and RemainingLifeMonths are only
// mutated by the depreciation engine.
type Asset struct {
	ID                      int64       `json:"id"`
	InventoryNumber         string      `json:"numarInventar"`
	Name                    string      `json:"denumire"`
	InventoryValue          money.Money `json:"valoareInventar"`
	AccumulatedDepreciation money.Money `json:"valoareAmortizata"`
	RemainingValue          money.Money `json:"valoareRamasa"`
	UsefulLifeMonths        int         `json:"durataNormala"`
	RemainingLifeMonths     int         `json:"durataRamasa"`
	State                   AssetState  `json:"stare"`
	Depreciable             bool        `json:"eAmortizabil"`
	Version                 int64       `json:"version"`
	UpdatedAt               time.Time   `json:"updatedAt"`
}

// IsEligible reports whether the asset takes part in a monthly depreciation run.
func (a Asset) IsEligible() bool {
	return a.State == AssetActive && a.Depreciable && a.RemainingValue.IsPositive()
}

// IsFullyDepreciated reports whether nothing is left to depreciate.
func (a Asset) IsFullyDepreciated() bool {
	return !a.RemainingValue.IsPositive()
}

// BalanceHolds checks AccumulatedDepreciation + RemainingValue == InventoryValue
// and RemainingValue >= 0.
func (a Asset) BalanceHolds() bool {
	return a.AccumulatedDepreciation.Add(a.RemainingValue).Equal(a.InventoryValue) &&
		!a.RemainingValue.IsNegative()
}
