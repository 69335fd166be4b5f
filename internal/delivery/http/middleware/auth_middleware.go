package middleware

import (
	"strings"

	"job-seeker/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	// CookieName is the conventional slot the credential travels in.
	CookieName = "token"

	CtxEmailKey = "email"
)

// AuthMiddleware is the gate in front of the ownership-checked routes. It
// validates the cookie credential and attaches the decoded email to the
// request context. Token contents are never logged.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := strings.TrimSpace(c.Cookies(CookieName))
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, MessageUnauthorized, nil)
		}

		claims, err := m.jwt.Verify(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, MessageUnauthorized, err)
		}

		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// EmailFromCtx returns the identity the auth gate attached, or "" on
// unprotected routes.
func EmailFromCtx(c fiber.Ctx) string {
	if v, ok := c.Locals(CtxEmailKey).(string); ok {
		return v
	}
	return ""
}
