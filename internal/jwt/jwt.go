package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMissing = errors.New("session cookie missing")
	ErrTokenInvalid = errors.New("invalid session token")
)

// Claims carried by a session token.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Permanent bool   `json:"permanent"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Token expiration duration
	CookieName string        // Cookie carrying the token
}

// Option configures a JWT.
type Option func(*JWT)

func WithSecretKey(key string) Option {
	return func(j *JWT) { j.SecretKey = key }
}

func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.Exp = exp }
}

func WithCookieName(name string) Option {
	return func(j *JWT) { j.CookieName = name }
}

// New creates a new JWT instance. Defaults: 7 day expiry, cookie "session".
func New(opts ...Option) *JWT {
	j := &JWT{
		Exp:        7 * 24 * time.Hour,
		CookieName: "session",
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for the user. Every token gets a fresh id so it can
// be revoked on its own.
func (j *JWT) Generate(ctx context.Context, userID int64, username string, permanent bool) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		Permanent: permanent,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// GetClaims parses and verifies the token and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(j.SecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Validate reports whether the token is well signed and not expired.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(j.CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrTokenMissing
	}
	return cookie.Value, nil
}
