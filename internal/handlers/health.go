package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`

	// Failed dependencies and their errors
	Errors map[string]string `json:"errors,omitempty"`
}

// NewLiveHandler returns a liveness handler.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewLiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// NewReadyHandler returns a readiness handler running every check.
// @Summary Readiness probe
// @Description Pings the database and, when configured, Redis
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health/ready [get]
func NewReadyHandler(checks map[string]Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		errs := make(map[string]string)
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Log.Warnw("readiness check failed", "check", name, "error", err)
				errs[name] = err.Error()
			}
		}

		if len(errs) > 0 {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Errors: errs})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
