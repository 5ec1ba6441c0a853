package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/regdesk/regdesk/internal/logging"
)

func TestLoginHandler(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, logging.Discard())
	app := fiber.New()
	app.Post("/login", h.Login)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"admin","password":"admin123"}`, fiber.StatusOK},
		{"wrong password", `{"username":"admin","password":"wrong"}`, fiber.StatusUnauthorized},
		{"bad json", `{"username":`, fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(tc.body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.status, resp.StatusCode)
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		switch tc.status {
		case fiber.StatusOK:
			var tok Token
			if err := json.Unmarshal(raw, &tok); err != nil || tok.AccessToken == "" {
				t.Fatalf("%s: expected token, got %s", tc.name, raw)
			}
		case fiber.StatusUnauthorized:
			if !strings.Contains(string(raw), "Invalid username or password.") {
				t.Fatalf("%s: unexpected body %s", tc.name, raw)
			}
		}
	}
}

func TestSessionAndLogoutHandlers(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, logging.Discard())

	_, session, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if c.Get("X-Test-Session") == "yes" {
			c.SetUserContext(WithSession(c.UserContext(), session))
		}
		return c.Next()
	})
	app.Get("/session", h.Session)
	app.Post("/logout", h.Logout)

	req := httptest.NewRequest(fiber.MethodGet, "/session", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/session", nil)
	req.Header.Set("X-Test-Session", "yes")
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with session, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodPost, "/logout", nil)
	req.Header.Set("X-Test-Session", "yes")
	resp, _ = app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", resp.StatusCode)
	}
	if _, err := svc.sessions.Get(context.Background(), session.ID); err == nil {
		t.Fatalf("expected session to be removed after logout")
	}
}
