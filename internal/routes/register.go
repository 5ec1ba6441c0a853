package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/users"
)

// RegisterRegistrationRoutes wires the public registration endpoints.
// idempotency may be nil.
func RegisterRegistrationRoutes(r fiber.Router, h *users.Handler, idempotency fiber.Handler) {
	if idempotency != nil {
		r.Post("/register", idempotency, h.Register)
	} else {
		r.Post("/register", h.Register)
	}
	r.Get("/confirmation/:id", h.Confirmation)
}
