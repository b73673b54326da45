package mapping

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// ToModelDepreciationRecord converts a domain record to its storage model.
// Amounts are rounded to the column scale here so the database never rounds
// on its own.
func ToModelDepreciationRecord(d domain.DepreciationRecord) models.DepreciationRecord {
	return models.DepreciationRecord{
		ID:                 d.ID,
		AssetID:            d.AssetID,
		Year:               d.Year,
		Month:              d.Month,
		MonthlyCharge:      d.MonthlyCharge.Round().Decimal(),
		AccumulatedAfter:   d.AccumulatedAfter.Round().Decimal(),
		RemainingAfter:     d.RemainingAfter.Round().Decimal(),
		InventoryValue:     d.InventoryValue.Round().Decimal(),
		RemainingLifeAfter: d.RemainingLifeAfter,
		Calculated:         d.Calculated,
		CalculatedAt:       d.CalculatedAt,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainDepreciationRecord converts a stored record to the domain type.
func ToDomainDepreciationRecord(m models.DepreciationRecord) domain.DepreciationRecord {
	return domain.DepreciationRecord{
		ID:                 m.ID,
		AssetID:            m.AssetID,
		Year:               m.Year,
		Month:              m.Month,
		MonthlyCharge:      money.FromDecimal(m.MonthlyCharge),
		AccumulatedAfter:   money.FromDecimal(m.AccumulatedAfter),
		RemainingAfter:     money.FromDecimal(m.RemainingAfter),
		InventoryValue:     money.FromDecimal(m.InventoryValue),
		RemainingLifeAfter: m.RemainingLifeAfter,
		Calculated:         m.Calculated,
		CalculatedAt:       m.CalculatedAt,
		CreatedAt:          m.CreatedAt,
	}
}

// ToDomainDepreciationRecords converts a slice of stored records.
func ToDomainDepreciationRecords(ms []models.DepreciationRecord) []domain.DepreciationRecord {
	out := make([]domain.DepreciationRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDepreciationRecord(m)
	}
	return out
}

// ToDomainPeriodSummary converts an aggregate row.
func ToDomainPeriodSummary(m models.PeriodSummary) domain.PeriodSummary {
	return domain.PeriodSummary{
		Year:        m.Year,
		Month:       m.Month,
		TotalCharge: money.FromDecimal(m.TotalCharge).Round(),
		AssetCount:  m.AssetCount,
	}
}
