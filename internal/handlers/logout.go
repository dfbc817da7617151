package handlers

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
)

// SessionEnder revokes the session and clears its cookie.
type SessionEnder interface {
	End(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// LogoutResponse confirms the logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler ending the caller's session.
// @Summary User logout
// @Description Revokes the session, deletes the cookie and disables caching of the response
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal server error"
// @Router /api/logout [post]
func NewLogoutHandler(sessions SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.End(r.Context(), w, r); err != nil {
			logger.Log.Errorw("logout failed", "error", err)
			writeText(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}
