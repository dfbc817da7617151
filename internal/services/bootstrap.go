package services

//go:generate mockgen -source=bootstrap.go -destination=mock_bootstrap.go -package=services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/repositories"
)

// Demo account created on first start.
const (
	DemoUsername = "demosuser"
	DemoPassword = "nobloat"
)

// BootstrapReader defines the user lookups needed at startup.
type BootstrapReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	Count(ctx context.Context) (int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// BootstrapService creates the startup accounts that do not exist yet.
type BootstrapService struct {
	reader      BootstrapReader
	writer      UserWriter
	includeDemo bool
	cost        int
}

// NewBootstrapService creates a BootstrapService. When includeDemo is set the
// demo account is added as long as the store holds no users.
func NewBootstrapService(reader BootstrapReader, writer UserWriter, includeDemo bool) *BootstrapService {
	return &BootstrapService{
		reader:      reader,
		writer:      writer,
		includeDemo: includeDemo,
		cost:        bcrypt.DefaultCost,
	}
}

// Run creates every missing account and returns how many were created.
// Rerunning it with the same list creates nothing.
func (svc *BootstrapService) Run(ctx context.Context, users []models.BootstrapUser) (int, error) {
	if svc.includeDemo {
		n, err := svc.reader.Count(ctx)
		if err != nil {
			logger.Log.Errorw("failed to count users", "err", err)
			return 0, err
		}
		if n == 0 {
			users = append([]models.BootstrapUser{{Username: DemoUsername, Password: DemoPassword}}, users...)
		}
	}

	created := 0
	for _, u := range users {
		ok, err := svc.create(ctx, u)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (svc *BootstrapService) create(ctx context.Context, u models.BootstrapUser) (bool, error) {
	existing, err := svc.reader.GetByUsername(ctx, u.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", u.Username, "err", err)
		return false, err
	}
	if existing != nil {
		logger.Log.Debugw("bootstrap user exists, skipping", "username", u.Username)
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "username", u.Username, "err", err)
		return false, err
	}

	if err := svc.writer.Save(ctx, u.Username, string(hash)); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return false, nil
		}
		logger.Log.Errorw("failed to save user", "username", u.Username, "err", err)
		return false, err
	}

	logger.Log.Infow("bootstrap user created", "username", u.Username)
	return true, nil
}

// ParseBootstrapUsers parses a "user:pass,user:pass" list. The password is
// everything after the first colon. Malformed entries are skipped.
func ParseBootstrapUsers(list string) []models.BootstrapUser {
	var users []models.BootstrapUser
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		username, password, ok := strings.Cut(entry, ":")
		username = strings.TrimSpace(username)
		if !ok || username == "" || password == "" {
			logger.Log.Warnw("skipping malformed bootstrap user entry", "username", username)
			continue
		}
		users = append(users, models.BootstrapUser{Username: username, Password: password})
	}
	return users
}
