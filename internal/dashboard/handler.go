package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the dashboard endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler builds the dashboard HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Overview returns every registered user and the registration stats.
func (h *Handler) Overview(c *fiber.Ctx) error {
	snap, err := h.svc.Load(c.UserContext())
	if err != nil {
		h.logFailure("dashboard load", err)
		return fiber.NewError(http.StatusInternalServerError, "dashboard load failed")
	}
	return c.Status(http.StatusOK).JSON(snap)
}

// Users returns one page of users matching ?search=, at ?page= (default 1).
func (h *Handler) Users(c *fiber.Ctx) error {
	page, err := h.svc.Search(c.UserContext(), c.Query("search"), c.QueryInt("page", 1))
	if err != nil {
		h.logFailure("dashboard search", err)
		return fiber.NewError(http.StatusInternalServerError, "dashboard search failed")
	}
	return c.Status(http.StatusOK).JSON(page)
}

func (h *Handler) logFailure(op string, err error) {
	if h.logger != nil {
		h.logger.Error(op+" failed", slog.Any("error", err))
	}
}
