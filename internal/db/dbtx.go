package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories run queries against. Outside a transaction it is
// the *sql.DB; inside UnitOfWork.WithinTx it is the *sql.Tx, so the same
// repository constructors serve both.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
