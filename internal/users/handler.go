package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const (
	msgEmailExists   = "Email already exists"
	msgInternalError = "Internal server error"
	msgNotFound      = "Registration not found"
)

// Handler exposes registration endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a registration HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register creates a record from the posted fields. Only the store decides
// whether the record is acceptable.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req Registration
	// Content-Type is not required; the body is always read as JSON.
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.logFailure(c, "decode registration", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}

	user, err := h.service.Register(c.UserContext(), req)
	switch {
	case err == nil:
		if h.logger != nil {
			h.logger.Info("register completed",
				slog.String("user_id", user.ID),
				slog.Int("status", http.StatusOK),
			)
		}
		return c.Status(http.StatusOK).JSON(user)
	case errors.Is(err, ErrEmailExists):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": msgEmailExists})
	default:
		h.logFailure(c, "register", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
}

// Confirmation returns the thank-you page model for a created record.
func (h *Handler) Confirmation(c *fiber.Ctx) error {
	conf, err := h.service.Confirmation(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": msgNotFound})
		}
		h.logFailure(c, "confirmation", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
	return c.Status(http.StatusOK).JSON(conf)
}

func (h *Handler) logFailure(c *fiber.Ctx, op string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error(op+" failed",
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
}
