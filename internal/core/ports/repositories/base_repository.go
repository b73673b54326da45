package repositories

import (
	"context"
)

// UnitOfWork exposes the repositories bound to one open database transaction.
// Everything done through it commits or rolls back together.
type UnitOfWork interface {
	Assets() AssetTxWriter
	Depreciations() DepreciationTxWriter
}

// TxRunner runs fn inside a scoped transaction: it begins, calls fn with a
// UnitOfWork bound to that transaction, commits if fn returns nil and rolls
// back otherwise (including when fn panics).
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
