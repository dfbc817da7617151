package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/metrics"
	"github.com/sbilibin2017/activity-calendar/internal/models"
)

// Error variables
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("too many failed attempts")
)

// DefaultMaxFailures is the number of consecutive failures after which a
// username is blocked until a successful login.
const DefaultMaxFailures = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// LoginAttemptCounter tracks consecutive failed logins per username.
type LoginAttemptCounter interface {
	Get(ctx context.Context, username string) (int, error)
	Increment(ctx context.Context, username string) (int, error)
	Reset(ctx context.Context, username string) error
}

// AuthService verifies credentials and applies the per-username rate brake.
type AuthService struct {
	reader      UserReader
	counter     LoginAttemptCounter
	maxFailures int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, counter LoginAttemptCounter, maxFailures int) *AuthService {
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}
	return &AuthService{
		reader:      reader,
		counter:     counter,
		maxFailures: maxFailures,
	}
}

// Login authenticates a user and returns the stored record.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, error) {
	if username == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginMissingCredentials).Inc()
		return nil, ErrMissingCredentials
	}

	attempts, err := svc.counter.Get(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to read login failures", "username", username, "err", err)
		return nil, err
	}
	if attempts >= svc.maxFailures {
		logger.Log.Warnw("login blocked", "username", username, "failures", attempts)
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginRateLimited).Inc()
		return nil, ErrRateLimited
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		failures, err := svc.counter.Increment(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to record login failure", "username", username, "err", err)
			return nil, err
		}
		logger.Log.Infow("invalid credentials", "username", username, "failures", failures)
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		return nil, ErrInvalidCredentials
	}

	if err := svc.counter.Reset(ctx, username); err != nil {
		logger.Log.Errorw("failed to reset login failures", "username", username, "err", err)
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	return user, nil
}
