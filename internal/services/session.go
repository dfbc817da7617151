package services

//go:generate mockgen -source=session.go -destination=mock_session.go -package=services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/activity-calendar/internal/jwt"
	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
)

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("no valid session")

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, username string, permanent bool) (string, *jwt.Claims, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionRevoker keeps track of sessions ended before their expiry.
type SessionRevoker interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name      string
	Domain    string
	Path      string
	Secure    bool
	Permanent bool          // persistent cookie instead of a browser-session cookie
	Lifetime  time.Duration // token lifetime, and Max-Age of permanent cookies
}

// SessionService maps the signed session cookie to an identity.
type SessionService struct {
	tokens  TokenIssuer
	revoker SessionRevoker
	cookie  CookieConfig
}

// NewSessionService creates a new SessionService.
func NewSessionService(tokens TokenIssuer, revoker SessionRevoker, cookie CookieConfig) *SessionService {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &SessionService{
		tokens:  tokens,
		revoker: revoker,
		cookie:  cookie,
	}
}

// Start issues a session for the user and sets the cookie on w.
func (svc *SessionService) Start(ctx context.Context, w http.ResponseWriter, user *models.UserDB) error {
	token, claims, err := svc.tokens.Generate(ctx, user.UserID, user.Username, svc.cookie.Permanent)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return err
	}

	cookie := svc.baseCookie()
	cookie.Value = token
	if svc.cookie.Permanent {
		cookie.Expires = claims.ExpiresAt.Time
		cookie.MaxAge = int(svc.cookie.Lifetime.Seconds())
	}
	http.SetCookie(w, cookie)

	logger.Log.Infow("session started", "user_id", user.UserID, "session_id", claims.ID)
	return nil
}

// Current returns the identity of the request's session.
func (svc *SessionService) Current(ctx context.Context, r *http.Request) (*models.Identity, error) {
	claims, err := svc.claims(ctx, r)
	if err != nil {
		return nil, err
	}
	return &models.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// End revokes the request's session, deletes the cookie and marks the
// response as not cacheable.
func (svc *SessionService) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	claims, err := svc.claims(ctx, r)
	switch {
	case err == nil:
		if err := svc.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			logger.Log.Errorw("failed to revoke session", "session_id", claims.ID, "err", err)
			return err
		}
		logger.Log.Infow("session ended", "user_id", claims.UserID, "session_id", claims.ID)
	case !errors.Is(err, ErrNoSession):
		return err
	}

	cookie := svc.baseCookie()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	return nil
}

func (svc *SessionService) claims(ctx context.Context, r *http.Request) (*jwt.Claims, error) {
	token, err := svc.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, ErrNoSession
	}

	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session token", "err", err)
		return nil, ErrNoSession
	}

	revoked, err := svc.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check session revocation", "session_id", claims.ID, "err", err)
		return nil, err
	}
	if revoked {
		return nil, ErrNoSession
	}
	return claims, nil
}

func (svc *SessionService) baseCookie() *http.Cookie {
	return &http.Cookie{
		Name:     svc.cookie.Name,
		Path:     svc.cookie.Path,
		Domain:   svc.cookie.Domain,
		Secure:   svc.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
