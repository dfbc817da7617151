// Package migrations embeds the schema of the users and activities tables
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// dialects maps a database/sql driver name to the goose dialect and the
// directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"sqlite": {dialect: "sqlite3", dir: "sqlite"},
	"pgx":    {dialect: "postgres", dir: "postgres"},
}

// Up creates or upgrades the schema for the given driver.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	goose.SetBaseFS(Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
