package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ActivityReadRepository reads activities, inside the request transaction when present.
type ActivityReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewActivityReadRepository(db *sqlx.DB, txGetter TxGetter) *ActivityReadRepository {
	return &ActivityReadRepository{db: db, txGetter: txGetter}
}

// ListByMonth returns the user's activities whose date starts with yearMonth + "-",
// ordered by date and then by insertion.
func (r *ActivityReadRepository) ListByMonth(ctx context.Context, userID int64, yearMonth string) ([]models.ActivityDB, error) {
	q := pick(ctx, r.db, r.txGetter)
	query := q.Rebind(`
		SELECT id, date, type, title, COALESCE(description, '') AS description, user_id
		FROM activities
		WHERE date LIKE ? ESCAPE '\' AND user_id = ?
		ORDER BY date, id
	`)
	args := []any{likeEscaper.Replace(yearMonth) + "-%", userID}

	var activities []models.ActivityDB
	err := q.SelectContext(ctx, &activities, query, args...)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", args,
		"result", len(activities),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	return activities, nil
}

// ActivityWriteRepository inserts and deletes activities.
type ActivityWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewActivityWriteRepository(db *sqlx.DB, txGetter TxGetter) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an activity owned by userID and returns its id.
func (r *ActivityWriteRepository) Save(ctx context.Context, userID int64, a models.NewActivity) (int64, error) {
	q := pick(ctx, r.db, r.txGetter)
	query := q.Rebind(`
		INSERT INTO activities (date, type, title, description, user_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	args := []any{a.Date, a.Type, a.Title, a.Description, userID}

	var id int64
	err := q.GetContext(ctx, &id, query, args...)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return id, nil
}

// Delete removes the activity with the given id. Missing ids are not an error.
func (r *ActivityWriteRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM activities WHERE id = ?`, id)
}

// DeleteOwned removes the activity only when it belongs to userID.
func (r *ActivityWriteRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	return r.exec(ctx, `DELETE FROM activities WHERE id = ? AND user_id = ?`, id, userID)
}

func (r *ActivityWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	q := pick(ctx, r.db, r.txGetter)
	query = q.Rebind(query)

	res, err := q.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}
