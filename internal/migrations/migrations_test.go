package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUp_SQLite(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, "sqlite"))
	// second run is a no-op
	require.NoError(t, Up(ctx, db, "sqlite"))

	_, err := db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO activities (date, type, title, description, user_id) VALUES ('2024-03-01', 'sport', 'run', '', 1)`)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO activities (date, type, title, description, user_id) VALUES ('2024-03-01', 'holiday', 'beach', '', 1)`)
	assert.Error(t, err, "type outside the enumeration must violate the CHECK constraint")

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alice', 'y')`)
	assert.Error(t, err, "usernames are unique")
}

func TestUp_UnknownDriver(t *testing.T) {
	db := openMemory(t)
	err := Up(context.Background(), db, "mysql")
	assert.Error(t, err)
}

func TestUp_GooseError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("boom")
	}

	err := Up(context.Background(), nil, "pgx")
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, "postgres", gotDir)
}
