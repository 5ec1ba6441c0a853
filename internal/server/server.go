package server

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/regdesk/regdesk/internal/config"
	"github.com/regdesk/regdesk/internal/routes"
)

const msgInternalError = "Internal server error"

// Server wraps the Fiber application and shared dependencies.
type Server struct {
	app *fiber.App
	cfg config.Config
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
// db, sqlDB and cache may be nil in development.
func New(cfg config.Config, db *pgxpool.Pool, sqlDB *sql.DB, cache *redis.Client, logger *slog.Logger) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})

	if err := routes.Setup(app, routes.Deps{Cfg: cfg, DB: db, SQL: sqlDB, Cache: cache, Logger: logger}); err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg}, nil
}

// errorHandler renders every error as {"error": msg}. Server faults never
// expose their message.
func errorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	msg := msgInternalError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < http.StatusInternalServerError {
			msg = fe.Message
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
