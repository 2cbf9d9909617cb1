package testutil

import (
	"database/sql"
	"testing"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
)

// NewTestDB opens a private in-memory fabmanage database with the full
// schema (projects, tiles, calendar, stock) migrated, and closes it when the
// test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database in the production SQLite unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
