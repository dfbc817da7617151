package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/activity-calendar/docs"
	"github.com/sbilibin2017/activity-calendar/internal/config"
	"github.com/sbilibin2017/activity-calendar/internal/db"
	"github.com/sbilibin2017/activity-calendar/internal/handlers"
	"github.com/sbilibin2017/activity-calendar/internal/jwt"
	"github.com/sbilibin2017/activity-calendar/internal/logger"
	"github.com/sbilibin2017/activity-calendar/internal/middlewares"
	"github.com/sbilibin2017/activity-calendar/internal/migrations"
	"github.com/sbilibin2017/activity-calendar/internal/repositories"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title activity-calendar API
// @version 1.0.0
// @description Personal activity calendar with cookie sessions
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	ctx := context.Background()

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, the store and the optional Redis connection,
// then serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel, "format", cfg.App.LogFormat)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger.Log.Infow("connecting to database", "driver", cfg.Database.Driver)
	sqlDB, err := db.Connect(ctx, cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxOpenConns)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Up(ctx, sqlDB.DB, cfg.Database.Driver); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		logger.Log.Infow("redis connected", "addr", cfg.Redis.Addr)
	}

	router, err := newRouter(ctxShutdown, cfg, sqlDB, rdb)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter creates the startup accounts, wires repositories, services and
// handlers, and returns the HTTP routes. A nil rdb selects the in-process
// login counter and revocation set.
func newRouter(ctx context.Context, cfg *config.Config, sqlDB *sqlx.DB, rdb *redis.Client) (http.Handler, error) {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(sqlDB)
	userWriteRepo := repositories.NewUserWriteRepository(sqlDB)
	activityReadRepo := repositories.NewActivityReadRepository(sqlDB, middlewares.GetTxFromContext)
	activityWriteRepo := repositories.NewActivityWriteRepository(sqlDB, middlewares.GetTxFromContext)

	var (
		attempts   services.LoginAttemptCounter
		revocation services.SessionRevoker
	)
	if rdb != nil {
		attempts = repositories.NewLoginAttemptRedisRepository(rdb)
		revocation = repositories.NewSessionRevocationRedisRepository(rdb)
	} else {
		attempts = repositories.NewLoginAttemptMemoryRepository()
		revocation = repositories.NewSessionRevocationMemoryRepository()
	}

	// Create startup accounts
	bootstrapService := services.NewBootstrapService(userReadRepo, userWriteRepo, cfg.BootstrapDemoUser)
	created, err := bootstrapService.Run(ctx, services.ParseBootstrapUsers(cfg.BootstrapUsers))
	if err != nil {
		return nil, fmt.Errorf("bootstrap users: %w", err)
	}
	logger.Log.Infow("bootstrap finished", "created", created)

	// Initialize services
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.Session.SecretKey),
		jwt.WithExpiration(cfg.Session.Lifetime),
		jwt.WithCookieName(cfg.Session.CookieName),
	)
	authService := services.NewAuthService(userReadRepo, attempts, cfg.Login.MaxFailures)
	sessionService := services.NewSessionService(tokens, revocation, services.CookieConfig{
		Name:      cfg.Session.CookieName,
		Domain:    cfg.Session.CookieDomain,
		Secure:    cfg.Session.CookieSecure,
		Permanent: cfg.Session.Permanent,
		Lifetime:  cfg.Session.Lifetime,
	})
	activityService := services.NewActivityService(activityReadRepo, activityWriteRepo, cfg.DeleteOwnerOnly)

	limiter := middlewares.NewRateLimiter(cfg.Login.RateRPS, cfg.Login.RateBurst)
	go limiter.Run(ctx, time.Minute)

	checks := map[string]handlers.Checker{"database": sqlDB.PingContext}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	// an empty origin list would make cors allow every origin
	if len(cfg.DomainOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.DomainOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/session", handlers.NewSessionHandler(sessionService))
		r.With(middlewares.ThrottleMiddleware(limiter)).
			Post("/login", handlers.NewLoginHandler(authService, sessionService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(sessionService))
			r.Post("/logout", handlers.NewLogoutHandler(sessionService))
			r.Get("/activities/{year_month}", handlers.NewListActivitiesHandler(activityService))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(sqlDB))
				r.Post("/activities", handlers.NewCreateActivityHandler(activityService))
				r.Delete("/activities/{id}", handlers.NewDeleteActivityHandler(activityService))
			})
		})
	})

	r.Get("/health", handlers.NewLiveHandler())
	r.Get("/health/ready", handlers.NewReadyHandler(checks))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	static := handlers.NewStaticHandler(cfg.StaticDir)
	r.Get("/", static)
	r.Get("/*", static)

	return r, nil
}
