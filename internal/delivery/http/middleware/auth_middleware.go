package middleware

import (
	"context"
	"errors"

	"job-board/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	// AccessTokenCookie carries the bearer credential. The token lives in
	// an HTTP-only cookie, not the Authorization header.
	AccessTokenCookie = "access_token"

	CtxSubjectIDKey = "subject_id"
	CtxRoleKey      = "role"
)

// TokenRevoker reports whether a token id was denylisted at logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) bool
}

type AuthMiddleware struct {
	jwt     jwt.Service
	revoked TokenRevoker
}

func NewAuthMiddleware(jwtSvc jwt.Service, revoked TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, revoked: revoked}
}

// RequireRole authenticates the cookie credential and checks the token's
// role claim. A valid token of the wrong role is Forbidden, not
// Unauthorized: identity is proven, access is not.
func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(AccessTokenCookie)
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Access denied", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if m.revoked != nil && m.revoked.IsRevoked(c.Context(), claims.ID) {
			return NewAppError(fiber.StatusUnauthorized, "Token revoked", nil, nil)
		}

		if claims.Role != role {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}

		c.Locals(CtxSubjectIDKey, claims.SubjectID)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}
