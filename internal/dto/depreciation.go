package dto

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// GenerateDepreciationRequest is the body of POST /depreciation/generate.
type GenerateDepreciationRequest struct {
	An   int `json:"an" binding:"required,period_year" example:"2025"`
	Luna int `json:"luna" binding:"required,min=1,max=12" example:"1"`
}

// GenerateDepreciationResponse reports what one batch run did.
type GenerateDepreciationResponse struct {
	Message       string `json:"message"`
	Processed     int    `json:"processed"`
	Skipped       int    `json:"skipped"`
	TotalEligible int    `json:"totalEligible"`
}

// DepreciationRecordResponse is one row of an asset's depreciation history.
// Amounts are serialised as two-decimal strings.
type DepreciationRecordResponse struct {
	ID              int64       `json:"id"`
	AssetID         int64       `json:"mijlocFixId"`
	An              int         `json:"an"`
	Luna            int         `json:"luna"`
	ValoareLunara   money.Money `json:"valoareLunara" swaggertype:"string" example:"2000.00"`
	ValoareCumulata money.Money `json:"valoareCumulata" swaggertype:"string" example:"2000.00"`
	ValoareRamasa   money.Money `json:"valoareRamasa" swaggertype:"string" example:"118000.00"`
	ValoareInventar money.Money `json:"valoareInventar" swaggertype:"string" example:"120000.00"`
	DurataRamasa    int         `json:"durataRamasa"`
	Calculat        bool        `json:"calculat"`
	DataCalcul      *time.Time  `json:"dataCalcul,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// DepreciationHistoryResponse lists an asset's records, newest period first.
type DepreciationHistoryResponse struct {
	AssetID int64                        `json:"mijlocFixId"`
	Records []DepreciationRecordResponse `json:"amortizari"`
}

// MonthVerificationResponse tells whether one month was processed.
type MonthVerificationResponse struct {
	Luna        int  `json:"luna"`
	Procesat    bool `json:"procesat"`
	NumarActive int  `json:"numarActive"`
}

// VerificationResponse covers the 12 months of a year.
type VerificationResponse struct {
	An   int                         `json:"an"`
	Luni []MonthVerificationResponse `json:"luni"`
}

// PeriodSummaryResponse totals one period across assets.
type PeriodSummaryResponse struct {
	An          int         `json:"an"`
	Luna        int         `json:"luna"`
	TotalLunar  money.Money `json:"totalLunar" swaggertype:"string" example:"2000.00"`
	NumarActive int         `json:"numarActive"`
}

// SummaryResponse lists period totals, newest first.
type SummaryResponse struct {
	An       *int                    `json:"an,omitempty"`
	Perioade []PeriodSummaryResponse `json:"perioade"`
}

// ToGenerateDepreciationResponse converts a batch result.
func ToGenerateDepreciationResponse(r *domain.GenerationResult, period domain.Period) GenerateDepreciationResponse {
	msg := "depreciation generated for " + period.String()
	if r.Processed == 0 {
		msg = "no new depreciation for " + period.String()
	}
	return GenerateDepreciationResponse{
		Message:       msg,
		Processed:     r.Processed,
		Skipped:       r.Skipped,
		TotalEligible: r.TotalEligible,
	}
}

// ToDepreciationRecordResponse converts a domain record.
func ToDepreciationRecordResponse(r domain.DepreciationRecord) DepreciationRecordResponse {
	return DepreciationRecordResponse{
		ID:              r.ID,
		AssetID:         r.AssetID,
		An:              r.Year,
		Luna:            r.Month,
		ValoareLunara:   r.MonthlyCharge,
		ValoareCumulata: r.AccumulatedAfter,
		ValoareRamasa:   r.RemainingAfter,
		ValoareInventar: r.InventoryValue,
		DurataRamasa:    r.RemainingLifeAfter,
		Calculat:        r.Calculated,
		DataCalcul:      r.CalculatedAt,
		CreatedAt:       r.CreatedAt,
	}
}

// ToDepreciationHistoryResponse converts an asset's records.
func ToDepreciationHistoryResponse(assetID int64, records []domain.DepreciationRecord) DepreciationHistoryResponse {
	out := make([]DepreciationRecordResponse, len(records))
	for i, r := range records {
		out[i] = ToDepreciationRecordResponse(r)
	}
	return DepreciationHistoryResponse{AssetID: assetID, Records: out}
}

// ToVerificationResponse converts the per-month verification.
func ToVerificationResponse(year int, months []domain.MonthVerification) VerificationResponse {
	out := make([]MonthVerificationResponse, len(months))
	for i, m := range months {
		out[i] = MonthVerificationResponse{Luna: m.Month, Procesat: m.Processed, NumarActive: m.AssetCount}
	}
	return VerificationResponse{An: year, Luni: out}
}

// ToSummaryResponse converts the per-period summary.
func ToSummaryResponse(year *int, rows []domain.PeriodSummary) SummaryResponse {
	out := make([]PeriodSummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = PeriodSummaryResponse{An: r.Year, Luna: r.Month, TotalLunar: r.TotalCharge, NumarActive: r.AssetCount}
	}
	return SummaryResponse{An: year, Perioade: out}
}
