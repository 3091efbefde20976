package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/client-registry/internal/api/dto"
	"github.com/spec-kit/client-registry/internal/service"
	"github.com/spec-kit/client-registry/internal/session"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// AuthHandler exposes login, logout and session inspection endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Login handles POST /login-client.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.ClientLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	marker, err := h.auth.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, expiresAt, err := h.sessions.Issue(c.UserContext(), *marker)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "login successful",
		"session": marker,
	})
}

// Logout handles POST /logout-client.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := session.TokenFromRequest(c); token != "" {
		_ = h.sessions.Revoke(c.UserContext(), token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.StatusResponse{Status: "ok", Message: "logged out"})
}

// Session handles GET /client-session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	marker, ok := session.MarkerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing session")
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"session": marker,
	})
}
