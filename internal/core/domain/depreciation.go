package domain

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// DepreciationRecord is the immutable result of depreciating one asset for one period.
type DepreciationRecord struct {
	ID                 int64       `json:"id"`
	AssetID            int64       `json:"mijlocFixId"`
	Year               int         `json:"an"`
	Month              int         `json:"luna"`
	MonthlyCharge      money.Money `json:"valoareLunara"`
	AccumulatedAfter   money.Money `json:"valoareCumulata"`
	RemainingAfter     money.Money `json:"valoareRamasa"`
	InventoryValue     money.Money `json:"valoareInventar"`
	RemainingLifeAfter int         `json:"durataRamasa"`
	Calculated         bool        `json:"calculat"`
	CalculatedAt       *time.Time  `json:"dataCalcul,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// Period returns the record's accounting month.
func (r DepreciationRecord) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

// GenerationResult summarises one batch run.
type GenerationResult struct {
	Processed     int `json:"processed"`
	Skipped       int `json:"skipped"`
	TotalEligible int `json:"totalEligible"`
}

// MonthVerification tells whether a month of a year already has depreciation records.
type MonthVerification struct {
	Month      int  `json:"luna"`
	Processed  bool `json:"procesat"`
	AssetCount int  `json:"numarActive"`
}

// PeriodSummary aggregates the charges of one period across all assets.
type PeriodSummary struct {
	Year        int         `json:"an"`
	Month       int         `json:"luna"`
	TotalCharge money.Money `json:"totalLunar"`
	AssetCount  int         `json:"numarActive"`
}

// MonthlyCharge returns the amount to depreciate this period: the linear
// quota, clamped to what remains so the asset is never over-depreciated.
// Once the remaining life is exhausted the whole remaining value is charged,
// so a quota that rounds to zero cannot keep an asset eligible forever.
func MonthlyCharge(a Asset) money.Money {
	if a.RemainingLifeMonths <= 0 {
		return a.RemainingValue
	}
	quota := money.MonthlyDepreciation(a.InventoryValue, a.UsefulLifeMonths)
	if quota.GreaterThan(a.RemainingValue) {
		return a.RemainingValue
	}
	return quota
}

// ComputeDepreciation applies one period of straight-line depreciation to a.
// It returns the record to persist and the asset with its running totals
// advanced. Stored amounts are rounded to two decimals before the subtraction
// so the balance invariant holds exactly on the persisted values.
func ComputeDepreciation(a Asset, period Period, now time.Time) (DepreciationRecord, Asset) {
	charge := MonthlyCharge(a).Round()
	if charge.GreaterThan(a.RemainingValue) {
		charge = a.RemainingValue
	}

	accumulated := a.AccumulatedDepreciation.Add(charge)
	remaining := a.RemainingValue.Sub(charge)
	remainingLife := a.RemainingLifeMonths - 1
	if remainingLife < 0 {
		remainingLife = 0
	}

	calculatedAt := now
	record := DepreciationRecord{
		AssetID:            a.ID,
		Year:               period.Year,
		Month:              period.Month,
		MonthlyCharge:      charge,
		AccumulatedAfter:   accumulated,
		RemainingAfter:     remaining,
		InventoryValue:     a.InventoryValue,
		RemainingLifeAfter: remainingLife,
		Calculated:         true,
		CalculatedAt:       &calculatedAt,
		CreatedAt:          now,
	}

	updated := a
	updated.AccumulatedDepreciation = accumulated
	updated.RemainingValue = remaining
	updated.RemainingLifeMonths = remainingLife
	updated.UpdatedAt = now

	return record, updated
}
