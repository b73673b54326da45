package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxDepreciationRepository struct {
	q Querier
}

// newPgxDepreciationRepository creates a depreciation record repository over a pool or a transaction.
func newPgxDepreciationRepository(q Querier) *PgxDepreciationRepository {
	return &PgxDepreciationRepository{q: q}
}

var (
	_ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)
	_ portsrepo.DepreciationTxWriter         = (*PgxDepreciationRepository)(nil)
)

// FindAssetIDsForPeriod returns the ids of assets already depreciated for period.
func (r *PgxDepreciationRepository) FindAssetIDsForPeriod(ctx context.Context, period domain.Period) (map[int64]struct{}, error) {
	query := `SELECT asset_id FROM depreciation_records WHERE year = $1 AND month = $2;`

	rows, err := r.q.Query(ctx, query, period.Year, period.Month)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query records for period", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to scan records for period", err)
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// SaveRecords inserts all records in one batch. A unique violation on
// (asset_id, year, month) is reported as a duplicate period.
func (r *PgxDepreciationRepository) SaveRecords(ctx context.Context, records []domain.DepreciationRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO depreciation_records (
			asset_id, year, month, monthly_charge, accumulated_after, remaining_after,
			inventory_value, remaining_life_after, calculated, calculated_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	batch := &pgx.Batch{}
	for _, rec := range records {
		m := mapping.ToModelDepreciationRecord(rec)
		batch.Queue(query,
			m.AssetID, m.Year, m.Month,
			m.MonthlyCharge, m.AccumulatedAfter, m.RemainingAfter, m.InventoryValue,
			m.RemainingLifeAfter, m.Calculated, m.CalculatedAt, m.CreatedAt,
		)
	}

	br := r.q.SendBatch(ctx, batch)
	var batchErr error
	for _, rec := range records {
		_, err := br.Exec()
		if err == nil || batchErr != nil {
			continue
		}
		if isUniqueViolation(err) {
			batchErr = apperrors.NewDuplicatePeriodError(rec.Year, rec.Month, err)
		} else {
			batchErr = apperrors.NewPersistenceError(fmt.Sprintf("failed to insert record for asset %d", rec.AssetID), err)
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicatePeriodError(records[0].Year, records[0].Month, err)
		}
		batchErr = apperrors.NewPersistenceError("failed to close record insert batch", err)
	}
	return batchErr
}

// ListRecordsByAsset returns an asset's records, newest period first.
func (r *PgxDepreciationRepository) ListRecordsByAsset(ctx context.Context, assetID int64) ([]domain.DepreciationRecord, error) {
	query := `
		SELECT id, asset_id, year, month, monthly_charge, accumulated_after, remaining_after,
			inventory_value, remaining_life_after, calculated, calculated_at, created_at
		FROM depreciation_records
		WHERE asset_id = $1
		ORDER BY year DESC, month DESC;
	`

	rows, err := r.q.Query(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("failed to query history of asset %d", assetID), err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DepreciationRecord])
	if err != nil {
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("failed to scan history of asset %d", assetID), err)
	}
	return mapping.ToDomainDepreciationRecords(ms), nil
}

// CountAssetsByMonth counts distinct depreciated assets per month of year.
func (r *PgxDepreciationRepository) CountAssetsByMonth(ctx context.Context, year int) (map[int]int, error) {
	query := `
		SELECT month, COUNT(DISTINCT asset_id)
		FROM depreciation_records
		WHERE year = $1
		GROUP BY month;
	`

	rows, err := r.q.Query(ctx, query, year)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to count records by month", err)
	}
	defer rows.Close()

	counts := make(map[int]int, 12)
	for rows.Next() {
		var month, count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan month count", err)
		}
		counts[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("failed to iterate month counts", err)
	}
	return counts, nil
}

// SummarizeByPeriod totals charges per period, newest first. A nil year
// covers every year.
func (r *PgxDepreciationRepository) SummarizeByPeriod(ctx context.Context, year *int) ([]domain.PeriodSummary, error) {
	query := `
		SELECT year, month,
			CAST(SUM(monthly_charge) AS NUMERIC(15,2)) AS total_charge,
			COUNT(DISTINCT asset_id)::int AS asset_count
		FROM depreciation_records
		WHERE ($1::int IS NULL OR year = $1)
		GROUP BY year, month
		ORDER BY year DESC, month DESC;
	`

	rows, err := r.q.Query(ctx, query, year)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query depreciation summary", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PeriodSummary])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to scan depreciation summary", err)
	}

	out := make([]domain.PeriodSummary, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainPeriodSummary(m)
	}
	return out, nil
}
