package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

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

// AuthMiddleware rejects requests without a valid session with 401 and
// stores the identity of the others in the request context.
func AuthMiddleware(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := sessions.Current(ctx, r)
			if err != nil {
				if errors.Is(err, services.ErrNoSession) {
					logger.Log.Debugw("authorization failed", "uri", r.RequestURI)
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				logger.Log.Errorw("failed to read session", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentityToContext(ctx, identity)))
		})
	}
}

type identityKey struct{}

// SetIdentityToContext stores the identity of an authenticated request.
func SetIdentityToContext(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity stored by AuthMiddleware, or nil.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}
