// Package config describes the service configuration read from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the complete service configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Login    LoginConfig

	// DomainOrigins lists the origins allowed to make credentialed CORS requests.
	DomainOrigins []string `env:"DOMAIN_ORIGINS"`
	// BootstrapUsers is a "user:pass,user:pass" list created at startup.
	BootstrapUsers string `env:"BOOTSTRAP_USERS"`
	// BootstrapDemoUser creates the demo account when the store is empty.
	BootstrapDemoUser bool `env:"BOOTSTRAP_DEMO_USER, default=true"`
	// DeleteOwnerOnly restricts activity deletion to the caller's own rows.
	DeleteOwnerOnly bool `env:"ACTIVITY_DELETE_OWNER_ONLY, default=false"`
	// StaticDir holds index.html and the frontend assets.
	StaticDir string `env:"STATIC_DIR, default=static"`
}

type AppConfig struct {
	Host      string `env:"APP_HOST, default=0.0.0.0"`
	Port      string `env:"APP_PORT, default=5000"`
	LogLevel  string `env:"APP_LOG_LEVEL, default=info"`
	LogFormat string `env:"APP_LOG_FORMAT, default=json"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" for the local file store or "pgx" for PostgreSQL.
	Driver       string `env:"DATABASE_DRIVER, default=sqlite"`
	DSN          string `env:"DATABASE_DSN, default=data/activities.db"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS, default=8"`
}

// RedisConfig enables the shared login counter and revocation set when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type SessionConfig struct {
	SecretKey    string        `env:"SECRET_KEY, default=dev-secret"`
	Lifetime     time.Duration `env:"SESSION_LIFETIME, default=168h"`
	Permanent    bool          `env:"SESSION_PERMANENT, default=true"`
	CookieName   string        `env:"COOKIE_NAME, default=session"`
	CookieDomain string        `env:"COOKIE_DOMAIN"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=true"`
}

type LoginConfig struct {
	// MaxFailures is the number of consecutive failures that blocks a username.
	MaxFailures int     `env:"LOGIN_MAX_FAILURES, default=10"`
	RateRPS     float64 `env:"LOGIN_RATE_RPS, default=5"`
	RateBurst   int     `env:"LOGIN_RATE_BURST, default=20"`
}

// Load reads the optional dotenv file at path and then the process environment.
// Variables already present in the environment win over the file.
func Load(ctx context.Context, path string) (*Config, error) {
	_ = godotenv.Load(path)
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith fills a Config from the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Session.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Session.Lifetime <= 0 {
		return errors.New("SESSION_LIFETIME must be positive")
	}
	if c.Login.MaxFailures <= 0 {
		return errors.New("LOGIN_MAX_FAILURES must be positive")
	}
	return nil
}
