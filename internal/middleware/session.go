package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/auth"
)

const sessionLocalsKey = "session_id"

// Authenticator resolves a bearer token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Session, error)
}

// RequireSession rejects requests without a valid bearer token and attaches
// the resolved session to the request context.
func RequireSession(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if len(authz) < len("Bearer ") || !strings.EqualFold(authz[:len("Bearer ")], "bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		token := strings.TrimSpace(authz[len("Bearer "):])

		session, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			msg := "invalid token"
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				msg = "session expired"
			case errors.Is(err, auth.ErrSessionNotFound):
				msg = "session ended"
			case !errors.Is(err, auth.ErrInvalidToken):
				return fiber.NewError(http.StatusInternalServerError, "session lookup failed")
			}
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}

		c.Locals(sessionLocalsKey, session.ID)
		c.SetUserContext(auth.WithSession(c.UserContext(), session))
		return c.Next()
	}
}
