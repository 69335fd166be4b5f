package handler

import (
	"time"

	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	jwt jwt.Service
}

type tokenRequest struct {
	Email string `json:"email"`
}

func NewAuthHandler(jwtSvc jwt.Service) *AuthHandler {
	return &AuthHandler{jwt: jwtSvc}
}

// IssueToken signs a credential for the posted identity and sets it as the
// token cookie. The cookie is session-scoped: no Max-Age on issue.
func (h *AuthHandler) IssueToken(c fiber.Ctx) error {
	var req tokenRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, middleware.MessageBadRequest, err)
	}

	token, err := h.jwt.Issue(req.Email)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Logout expires the token cookie. The attributes must match the ones used on
// issue or browsers will not clear a cross-site cookie.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{"success": true})
}
