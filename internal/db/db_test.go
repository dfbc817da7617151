package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	dsn := filepath.Join(dir, "activities.db")

	db, err := Connect(context.Background(), "sqlite", dsn, 8)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err)

	var fk int
	require.NoError(t, db.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)

	assert.Equal(t, "SELECT 1 WHERE a = ?", db.Rebind("SELECT 1 WHERE a = ?"))
}

func TestPrepareSQLite(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"memory", ":memory:", ":memory:?" + sqlitePragmas},
		{"with params", "file::memory:?cache=shared", "file::memory:?cache=shared&" + sqlitePragmas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prepareSQLite(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(context.Background(), "nope", "x", 1)
	assert.Error(t, err)
}
