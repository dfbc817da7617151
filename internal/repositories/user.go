package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
)

// ErrUserAlreadyExists is returned when inserting a username that is taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user or nil when no such username exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT id, username, password_hash
		FROM users
		WHERE username = ?
	`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{username},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// Count returns the number of stored users.
func (r *UserReadRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int
	err := r.db.GetContext(ctx, &n, query)

	logger.Log.Debugw(
		"query", query,
		"result", n,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user. A taken username yields ErrUserAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	query := r.db.Rebind(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
	`)

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// the hash stays out of the logs
	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{username, "***"},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			err = errors.Join(ErrUserAlreadyExists, err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
