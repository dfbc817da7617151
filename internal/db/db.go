// Package db opens the relational store used for users and activities.
package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connect opens and pings the database for the given driver ("sqlite" or "pgx").
// For sqlite the parent directory of the database file is created when missing.
func Connect(ctx context.Context, driver, dsn string, maxOpenConns int) (*sqlx.DB, error) {
	if driver == "sqlite" {
		var err error
		if dsn, err = prepareSQLite(dsn); err != nil {
			return nil, err
		}
		// go-sqlite serializes writers anyway; one connection avoids SQLITE_BUSY
		maxOpenConns = 1
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// prepareSQLite makes sure the database directory exists and appends the
// pragmas the store relies on.
func prepareSQLite(dsn string) (string, error) {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if path != "" && !strings.Contains(path, ":memory:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas, nil
	}
	return dsn + "?" + sqlitePragmas, nil
}
