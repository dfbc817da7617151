package services

//go:generate mockgen -source=activity.go -destination=mock_activity.go -package=services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/metrics"
	"github.com/sbilibin2017/activity-calendar/internal/models"
)

var (
	ErrMissingFields = errors.New("missing fields")
	ErrInvalidType   = errors.New("invalid activity type")
)

// ActivityReader defines read operations for activities.
type ActivityReader interface {
	ListByMonth(ctx context.Context, userID int64, yearMonth string) ([]models.ActivityDB, error)
}

// ActivityWriter defines write operations for activities.
type ActivityWriter interface {
	Save(ctx context.Context, userID int64, a models.NewActivity) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteOwned(ctx context.Context, id, userID int64) error
}

// ActivityService implements the activity operations of an authenticated user.
type ActivityService struct {
	reader          ActivityReader
	writer          ActivityWriter
	deleteOwnerOnly bool
}

// NewActivityService creates a new ActivityService. With deleteOwnerOnly set,
// Delete only removes the caller's own activities.
func NewActivityService(reader ActivityReader, writer ActivityWriter, deleteOwnerOnly bool) *ActivityService {
	return &ActivityService{
		reader:          reader,
		writer:          writer,
		deleteOwnerOnly: deleteOwnerOnly,
	}
}

// ListByMonth groups the user's activities of the month by exact date.
// Within a date the activities keep their insertion order.
func (s *ActivityService) ListByMonth(ctx context.Context, userID int64, yearMonth string) (map[string][]models.ActivitySummary, error) {
	rows, err := s.reader.ListByMonth(ctx, userID, yearMonth)
	if err != nil {
		logger.Log.Errorw("failed to list activities", "userID", userID, "month", yearMonth, "error", err)
		return nil, err
	}

	result := make(map[string][]models.ActivitySummary)
	for _, row := range rows {
		result[row.Date] = append(result[row.Date], models.ActivitySummary{
			ID:          row.ActivityID,
			Type:        row.Type,
			Title:       row.Title,
			Description: row.Description,
		})
	}
	return result, nil
}

// Create validates and stores an activity owned by userID.
func (s *ActivityService) Create(ctx context.Context, userID int64, a models.NewActivity) (int64, error) {
	if a.Date == "" || a.Type == "" || a.Title == "" {
		return 0, ErrMissingFields
	}
	if !models.IsActivityType(a.Type) {
		return 0, ErrInvalidType
	}
	a.Description = truncate(a.Description, models.MaxDescriptionLength)

	id, err := s.writer.Save(ctx, userID, a)
	if err != nil {
		logger.Log.Errorw("failed to save activity", "userID", userID, "date", a.Date, "type", a.Type, "error", err)
		return 0, err
	}

	metrics.ActivitiesCreatedTotal.WithLabelValues(a.Type).Inc()
	logger.Log.Infow("activity created", "userID", userID, "activityID", id)
	return id, nil
}

// Delete removes the activity. Deleting an id that does not exist succeeds.
func (s *ActivityService) Delete(ctx context.Context, userID, id int64) error {
	var err error
	if s.deleteOwnerOnly {
		err = s.writer.DeleteOwned(ctx, id, userID)
	} else {
		err = s.writer.Delete(ctx, id)
	}
	if err != nil {
		logger.Log.Errorw("failed to delete activity", "userID", userID, "activityID", id, "error", err)
		return err
	}

	metrics.ActivitiesDeletedTotal.Inc()
	logger.Log.Infow("activity deleted", "userID", userID, "activityID", id)
	return nil
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
