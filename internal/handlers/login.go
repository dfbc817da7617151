package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

// Loginer verifies credentials.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, error)
}

// SessionStarter issues the session cookie.
type SessionStarter interface {
	Start(ctx context.Context, w http.ResponseWriter, user *models.UserDB) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: demosuser
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: nobloat
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Logged in
	Message string `json:"message"`

	// default: demosuser
	User string `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session cookie set"
// @Failure 400 {string} string "Missing credentials"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 429 {string} string "Too many failed attempts. Try again later."
// @Failure 500 {string} string "Internal server error"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer, sessions SessionStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeText(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if failedTag(req) != "" {
			writeText(w, http.StatusBadRequest, "Missing credentials")
			return
		}

		user, err := svc.Login(ctx, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				writeText(w, http.StatusBadRequest, "Missing credentials")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeText(w, http.StatusUnauthorized, "Invalid credentials")
			case errors.Is(err, services.ErrRateLimited):
				writeText(w, http.StatusTooManyRequests, "Too many failed attempts. Try again later.")
			default:
				logger.Log.Errorw("login failed", "error", err)
				writeText(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		if err := sessions.Start(ctx, w, user); err != nil {
			writeText(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Message: "Logged in", User: user.Username})
	}
}
