package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/client-registry/internal/domain"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_token"

const markerKey = "session_marker"

// Middleware validates the session token from the cookie or Authorization
// header and loads the marker for protected routes.
type Middleware struct {
	manager *Manager
}

// NewMiddleware constructs middleware.
func NewMiddleware(manager *Manager) *Middleware {
	return &Middleware{manager: manager}
}

// Handle enforces an authenticated session.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := TokenFromRequest(c)
	if token == "" {
		return apperrors.NewUnauthorized("missing session")
	}

	marker, err := m.manager.Verify(c.UserContext(), token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid session")
	}

	c.Locals(markerKey, marker)
	return c.Next()
}

// TokenFromRequest extracts the session token from the cookie or a bearer
// Authorization header.
func TokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// MarkerFromContext retrieves the authenticated session marker.
func MarkerFromContext(c *fiber.Ctx) (*domain.SessionMarker, bool) {
	val := c.Locals(markerKey)
	if val == nil {
		return nil, false
	}
	marker, ok := val.(*domain.SessionMarker)
	return marker, ok
}
