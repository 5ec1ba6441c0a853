package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const msgInvalidCredentials = "Invalid username or password."

// Handler exposes login/logout/session endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler builds the auth HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Login validates credentials and returns a bearer token for a new session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req Credentials
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid login payload")
	}
	token, session, err := h.svc.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msgInvalidCredentials})
		}
		if h.logger != nil {
			h.logger.Error("login failed", slog.Any("error", err))
		}
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}
	if h.logger != nil {
		h.logger.Info("admin session opened",
			slog.String("session_id", session.ID),
			slog.Time("expires_at", session.ExpiresAt),
		)
	}
	return c.Status(http.StatusOK).JSON(token)
}

// Logout ends the caller's session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	session, ok := SessionFromContext(c.UserContext())
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	if err := h.svc.Logout(c.UserContext(), session.ID); err != nil {
		if h.logger != nil {
			h.logger.Error("logout failed", slog.String("session_id", session.ID), slog.Any("error", err))
		}
		return fiber.NewError(http.StatusInternalServerError, "logout failed")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}

// Session reports the caller's current session.
func (h *Handler) Session(c *fiber.Ctx) error {
	session, ok := SessionFromContext(c.UserContext())
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"session":       session,
	})
}
