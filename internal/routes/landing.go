package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/config"
)

// RegisterLandingRoute serves the public landing document.
func RegisterLandingRoute(app *fiber.App, cfg config.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"name": cfg.AppName,
			"links": fiber.Map{
				"register":  "/api/register",
				"login":     "/api/auth/login",
				"dashboard": "/api/dashboard",
			},
		})
	})
}
