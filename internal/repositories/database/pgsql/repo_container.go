package pgsql

import (
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:        newPgxAssetRepository(dbPool),
		DepreciationRepo: newPgxDepreciationRepository(dbPool),
		TxRunner:         NewTxRunner(dbPool),
	}
}
