package testutil

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
)

// ErrInjected is returned by FailOnNthExecUoW when Err is nil.
var ErrInjected = errors.New("injected write failure")

// FailOnNthExecUoW runs transactions through the real SQLite unit of work but
// fails the FailOn-th write (counting from 1) inside each one. Service tests
// use it to check that a multi-row operation, such as importing a project
// with its tiles or reserving stock for a BOM, leaves nothing behind.
// Reads are never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	injected := u.Err
	if injected == nil {
		injected = ErrInjected
	}
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWriter{DBTX: tx, failOn: u.FailOn, err: injected})
	})
}

type failingWriter struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingWriter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
