package routes

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/regdesk/regdesk/internal/auth"
	"github.com/regdesk/regdesk/internal/config"
	"github.com/regdesk/regdesk/internal/dashboard"
	"github.com/regdesk/regdesk/internal/logging"
	"github.com/regdesk/regdesk/internal/middleware"
	"github.com/regdesk/regdesk/internal/notification"
	"github.com/regdesk/regdesk/internal/users"
)

// Deps aggregates shared dependencies required to wire routes. DB and SQL are
// the same pool seen through pgx and database/sql.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	SQL    *sql.DB
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.SQL == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key, X-Request-ID",
	}))

	RegisterHealthRoutes(app, d)
	RegisterLandingRoute(app, d.Cfg)

	// Services and handlers
	var userRepo users.Repository
	if d.SQL != nil {
		userRepo = users.NewPostgresRepository(d.SQL)
	} else {
		d.Logger.Warn("DATABASE_URL not set, registrations are kept in memory")
		userRepo = users.NewMemoryRepository()
	}
	var sessions auth.SessionStore
	if d.Cache != nil {
		sessions = auth.NewRedisSessionStore(d.Cache)
	} else {
		d.Logger.Warn("REDIS_URL not set, admin sessions are kept in memory")
		sessions = auth.NewMemorySessionStore()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	userSvc := users.NewService(userRepo, notifier, d.Logger)
	authSvc, err := auth.NewService(d.Cfg, sessions)
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}
	dashSvc := dashboard.NewService(userRepo)

	var idempotency fiber.Handler
	if d.Cache != nil {
		idempotency = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	requireSession := middleware.RequireSession(authSvc)

	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFrom(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterRegistrationRoutes(api, users.NewHandler(userSvc, d.Logger), idempotency)
	RegisterAuthRoutes(api, auth.NewHandler(authSvc, d.Logger), middleware.LoginRateLimit(d.Cache, d.Cfg.LoginAttempts), requireSession)

	// Protected routes
	RegisterDashboardRoutes(api, dashboard.NewHandler(dashSvc, d.Logger), requireSession)

	return nil
}
