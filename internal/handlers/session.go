package handlers

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

// SessionReader resolves the identity behind a request's session.
type SessionReader interface {
	Current(ctx context.Context, r *http.Request) (*models.Identity, error)
}

// SessionResponse describes the caller's session
// swagger:model SessionResponse
type SessionResponse struct {
	// default: true
	LoggedIn bool `json:"logged_in"`

	// Present when logged in
	// default: demosuser
	Username string `json:"username,omitempty"`
}

// NewSessionHandler returns an HTTP handler reporting whether the caller is logged in.
// @Summary Current session
// @Description Reports whether the request carries a valid session. Never answers 401.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SessionResponse
// @Failure 500 {string} string "Internal server error"
// @Router /api/session [get]
func NewSessionHandler(sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := sessions.Current(r.Context(), r)
		if err != nil {
			if errors.Is(err, services.ErrNoSession) {
				writeJSON(w, http.StatusOK, SessionResponse{LoggedIn: false})
				return
			}
			logger.Log.Errorw("failed to read session", "error", err)
			writeText(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{LoggedIn: true, Username: identity.Username})
	}
}
