package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/dashboard"
)

// RegisterDashboardRoutes wires the admin dashboard behind requireSession.
func RegisterDashboardRoutes(r fiber.Router, h *dashboard.Handler, requireSession fiber.Handler) {
	group := r.Group("/dashboard", requireSession)
	group.Get("/", h.Overview)
	group.Get("/users", h.Users)
}
