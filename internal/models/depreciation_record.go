package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord is one row of depreciation_records.
type DepreciationRecord struct {
	ID                 int64           `db:"id"`
	AssetID            int64           `db:"asset_id"`
	Year               int             `db:"year"`
	Month              int             `db:"month"`
	MonthlyCharge      decimal.Decimal `db:"monthly_charge"`
	AccumulatedAfter   decimal.Decimal `db:"accumulated_after"`
	RemainingAfter     decimal.Decimal `db:"remaining_after"`
	InventoryValue     decimal.Decimal `db:"inventory_value"`
	RemainingLifeAfter int             `db:"remaining_life_after"`
	Calculated         bool            `db:"calculated"`
	CalculatedAt       *time.Time      `db:"calculated_at"`
	CreatedAt          time.Time       `db:"created_at"`
}

// PeriodSummary is a row of the per-period aggregate.
type PeriodSummary struct {
	Year        int             `db:"year"`
	Month       int             `db:"month"`
	TotalCharge decimal.Decimal `db:"total_charge"`
	AssetCount  int             `db:"asset_count"`
}
