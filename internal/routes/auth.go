package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/auth"
)

// RegisterAuthRoutes wires the admin login gate.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter, requireSession fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/logout", requireSession, h.Logout)
	group.Get("/session", requireSession, h.Session)
}
