package handlers

//go:generate mockgen -source=activity.go -destination=mock_activity.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/middlewares"
	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

// ActivityLister lists a user's activities of a month.
type ActivityLister interface {
	ListByMonth(ctx context.Context, userID int64, yearMonth string) (map[string][]models.ActivitySummary, error)
}

// ActivityCreator stores a new activity.
type ActivityCreator interface {
	Create(ctx context.Context, userID int64, a models.NewActivity) (int64, error)
}

// ActivityDeleter removes an activity.
type ActivityDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// ActivityRequest represents the JSON body of a new activity
// swagger:model ActivityRequest
type ActivityRequest struct {
	// Day of the activity, YYYY-MM-DD
	// required: true
	// default: 2024-03-05
	Date string `json:"date" validate:"required"`

	// One of meeting, event, sport, note
	// required: true
	// default: sport
	Type string `json:"type" validate:"required,oneof=meeting event sport note"`

	// required: true
	// default: Morning run
	Title string `json:"title" validate:"required"`

	// Optional, cut to 255 characters
	// default: 5k along the river
	Description string `json:"description"`
}

// NewListActivitiesHandler returns an HTTP handler listing the caller's activities of a month.
// @Summary List activities of a month
// @Description Returns the caller's activities whose date starts with year_month, grouped by date
// @Tags activities
// @Produce json
// @Param year_month path string true "Month, YYYY-MM"
// @Success 200 {object} map[string][]models.ActivitySummary
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal server error"
// @Router /api/activities/{year_month} [get]
func NewListActivitiesHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := middlewares.GetIdentityFromContext(ctx)
		if identity == nil {
			writeText(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		activities, err := svc.ListByMonth(ctx, identity.UserID, chi.URLParam(r, "year_month"))
		if err != nil {
			writeText(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, activities)
	}
}

// NewCreateActivityHandler returns an HTTP handler adding an activity for the caller.
// @Summary Create activity
// @Tags activities
// @Accept json
// @Produce plain
// @Param activityRequest body handlers.ActivityRequest true "Activity"
// @Success 201 {string} string "Created"
// @Failure 400 {string} string "Missing fields"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal server error"
// @Router /api/activities [post]
func NewCreateActivityHandler(svc ActivityCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := middlewares.GetIdentityFromContext(ctx)
		if identity == nil {
			writeText(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeText(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		switch failedTag(req) {
		case "":
		case "oneof":
			writeText(w, http.StatusBadRequest, "Invalid activity type")
			return
		default:
			writeText(w, http.StatusBadRequest, "Missing fields")
			return
		}

		_, err := svc.Create(ctx, identity.UserID, models.NewActivity{
			Date:        req.Date,
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeText(w, http.StatusBadRequest, "Missing fields")
			case errors.Is(err, services.ErrInvalidType):
				writeText(w, http.StatusBadRequest, "Invalid activity type")
			default:
				writeText(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeText(w, http.StatusCreated, "Created")
	}
}

// NewDeleteActivityHandler returns an HTTP handler deleting an activity by id.
// @Summary Delete activity
// @Description Deleting an id that does not exist still succeeds
// @Tags activities
// @Produce plain
// @Param id path int true "Activity id"
// @Success 200 {string} string "Deleted"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal server error"
// @Router /api/activities/{id} [delete]
func NewDeleteActivityHandler(svc ActivityDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := middlewares.GetIdentityFromContext(ctx)
		if identity == nil {
			writeText(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Debugw("bad activity id", "id", chi.URLParam(r, "id"))
			http.NotFound(w, r)
			return
		}

		if err := svc.Delete(ctx, identity.UserID, id); err != nil {
			writeText(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeText(w, http.StatusOK, "Deleted")
	}
}
