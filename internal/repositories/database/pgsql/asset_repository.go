package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const assetColumns = `
	id, inventory_number, name, inventory_value, accumulated_depreciation,
	remaining_value, useful_life_months, remaining_life_months, state,
	is_depreciable, version, updated_at`

type PgxAssetRepository struct {
	q Querier
}

// newPgxAssetRepository creates an asset repository over a pool or a transaction.
func newPgxAssetRepository(q Querier) *PgxAssetRepository {
	return &PgxAssetRepository{q: q}
}

var (
	_ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)
	_ portsrepo.AssetTxWriter         = (*PgxAssetRepository)(nil)
)

// FindAssetByID retrieves the depreciable attributes of one asset.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1;`

	rows, err := r.q.Query(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("failed to query asset %d", assetID), err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("asset %d not found", assetID))
		}
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("failed to scan asset %d", assetID), err)
	}

	asset := mapping.ToDomainAsset(m)
	return &asset, nil
}

// ListEligibleAssetsForUpdate returns active, depreciable assets with a
// positive remaining value, row-locked until the surrounding transaction ends.
func (r *PgxAssetRepository) ListEligibleAssetsForUpdate(ctx context.Context) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE state = $1 AND is_depreciable AND remaining_value > 0
		ORDER BY id
		FOR UPDATE;
	`

	rows, err := r.q.Query(ctx, query, string(domain.AssetActive))
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query eligible assets", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to scan eligible assets", err)
	}

	assets := make([]domain.Asset, len(ms))
	for i, m := range ms {
		assets[i] = mapping.ToDomainAsset(m)
	}
	return assets, nil
}

// UpdateDepreciationState writes running totals. Each update is matched on the
// version read earlier and bumps it; a row that moved on fails the whole batch.
func (r *PgxAssetRepository) UpdateDepreciationState(ctx context.Context, assets []domain.Asset) error {
	if len(assets) == 0 {
		return nil
	}

	query := `
		UPDATE assets
		SET accumulated_depreciation = $2,
			remaining_value = $3,
			remaining_life_months = $4,
			updated_at = $5,
			version = version + 1
		WHERE id = $1 AND version = $6;
	`

	batch := &pgx.Batch{}
	for _, a := range assets {
		m := mapping.ToModelAsset(a)
		batch.Queue(query, m.ID, m.AccumulatedDepreciation, m.RemainingValue, m.RemainingLifeMonths, m.UpdatedAt, m.Version)
	}

	br := r.q.SendBatch(ctx, batch)
	var batchErr error
	for _, a := range assets {
		ct, err := br.Exec()
		if batchErr != nil {
			continue
		}
		switch {
		case err != nil && isConstraintViolation(err):
			batchErr = apperrors.NewConflictError(fmt.Sprintf("asset %d violates a balance constraint", a.ID), err)
		case err != nil:
			batchErr = apperrors.NewPersistenceError(fmt.Sprintf("failed to update asset %d", a.ID), err)
		case ct.RowsAffected() == 0:
			batchErr = apperrors.NewConflictError(fmt.Sprintf("asset %d was modified concurrently", a.ID), nil)
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = apperrors.NewPersistenceError("failed to close asset update batch", err)
	}
	return batchErr
}
