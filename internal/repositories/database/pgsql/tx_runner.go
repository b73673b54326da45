package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	BaseRepository
}

// NewTxRunner builds the runner on top of the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TxRunner = (*TxRunner)(nil)

// WithinTx begins a transaction, hands fn a UnitOfWork bound to it and
// commits when fn returns nil. Any error or panic rolls everything back.
func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = r.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				middleware.GetLoggerFromCtx(ctx).Error("Rollback failed", slog.String("error", rbErr.Error()))
			}
		}
	}()

	if err = fn(ctx, newUnitOfWork(tx)); err != nil {
		return err
	}
	if err = r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type unitOfWork struct {
	assets        *PgxAssetRepository
	depreciations *PgxDepreciationRepository
}

func newUnitOfWork(tx pgx.Tx) *unitOfWork {
	return &unitOfWork{
		assets:        newPgxAssetRepository(tx),
		depreciations: newPgxDepreciationRepository(tx),
	}
}

func (u *unitOfWork) Assets() portsrepo.AssetTxWriter               { return u.assets }
func (u *unitOfWork) Depreciations() portsrepo.DepreciationTxWriter { return u.depreciations }
