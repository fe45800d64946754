package repository

import (
	"database/sql"
	"testing"

	"marketstore/database"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps the :memory: database alive for the test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db, "sqlite3"))
	t.Cleanup(func() { db.Close() })
	return db
}

func intPtr(v int) *int { return &v }
