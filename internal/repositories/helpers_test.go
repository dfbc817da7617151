package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/activity-calendar/internal/db"
	"github.com/sbilibin2017/activity-calendar/internal/migrations"
)

// setupSQLite returns a migrated in-memory store.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Connect(context.Background(), "sqlite", ":memory:", 1)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.Up(context.Background(), conn.DB, "sqlite"))
	return conn
}

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}
