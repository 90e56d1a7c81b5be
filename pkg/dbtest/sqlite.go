package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"results_api/pkg/application/connectors"
	"results_api/schema"
)

// NewSQLite returns a per-request connector backed by a fresh SQLite file with
// the results table in place.
func NewSQLite(t testing.TB) *connectors.SQL {
	t.Helper()

	ctx := context.Background()

	sql := &connectors.SQL{
		Driver: connectors.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "results.db"),
	}

	db, err := sql.Acquire(ctx)
	if err != nil {
		t.Fatalf("sql.Acquire: %v", err)
	}
	defer sql.Release(ctx, db)

	if err = Migrate(db, schema.FS, schema.SQLite); err != nil {
		t.Fatalf("dbtest.Migrate: %v", err)
	}

	return sql
}
