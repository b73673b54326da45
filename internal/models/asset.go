package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the persisted depreciable subset of a fixed asset.
type Asset struct {
	ID                      int64           `db:"id"`
	InventoryNumber         string          `db:"inventory_number"`
	Name                    string          `db:"name"`
	InventoryValue          decimal.Decimal `db:"inventory_value"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	RemainingValue          decimal.Decimal `db:"remaining_value"`
	UsefulLifeMonths        int             `db:"useful_life_months"`
	RemainingLifeMonths     int             `db:"remaining_life_months"`
	State                   string          `db:"state"`
	IsDepreciable           bool            `db:"is_depreciable"`
	Version                 int64           `db:"version"`
	UpdatedAt               time.Time       `db:"updated_at"`
}
