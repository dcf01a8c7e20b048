package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board/internal/pkg/jwt"
	"job-board/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubRevoker struct {
	revoked map[string]bool
}

func (s stubRevoker) IsRevoked(_ context.Context, tokenID string) bool {
	return s.revoked[tokenID]
}

func newAuthTestApp(jwtSvc jwt.Service, revoker TokenRevoker) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())

	mw := NewAuthMiddleware(jwtSvc, revoker)
	app.Get("/employee-only", mw.RequireRole(jwt.RoleEmployee), func(c fiber.Ctx) error {
		id, _ := c.Locals(CtxSubjectIDKey).(uuid.UUID)
		return response.Success(c, fiber.StatusOK, response.MessageOK, id.String())
	})

	return app
}

func doRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/employee-only", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: cookie})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	app := newAuthTestApp(jwt.NewHMACService("secret", time.Hour), nil)

	resp := doRequest(t, app, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newAuthTestApp(jwt.NewHMACService("secret", time.Hour), nil)

	resp := doRequest(t, app, "garbage")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidEmployeeToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("secret", time.Hour)
	app := newAuthTestApp(jwtSvc, nil)

	tok, err := jwtSvc.GenerateAccessToken(uuid.New(), jwt.RoleEmployee)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	resp := doRequest(t, app, tok)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_WrongRoleIsForbidden(t *testing.T) {
	jwtSvc := jwt.NewHMACService("secret", time.Hour)
	app := newAuthTestApp(jwtSvc, nil)

	tok, err := jwtSvc.GenerateAccessToken(uuid.New(), jwt.RoleRecruiter)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	resp := doRequest(t, app, tok)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("recruiter token on employee route: expected 403, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("secret", time.Hour)

	tok, err := jwtSvc.GenerateAccessToken(uuid.New(), jwt.RoleEmployee)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := jwtSvc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	app := newAuthTestApp(jwtSvc, stubRevoker{revoked: map[string]bool{claims.ID: true}})

	resp := doRequest(t, app, tok)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("revoked token: expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("secret", time.Nanosecond)
	app := newAuthTestApp(jwtSvc, nil)

	tok, err := jwtSvc.GenerateAccessToken(uuid.New(), jwt.RoleEmployee)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	resp := doRequest(t, app, tok)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", resp.StatusCode)
	}
}
