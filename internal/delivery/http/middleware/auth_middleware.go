package middleware

import (
	"ladle/config"
	"ladle/internal/delivery/http/response"
	"ladle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID       = "userID"
	ContextKeySessionToken = "sessionToken"
)

// AuthMiddleware guards routes behind an authenticated session cookie.
type AuthMiddleware struct {
	sessions service.SessionManager
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionManager, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cfg: cfg}
}

// Authenticate resolves the session cookie to a user id. Requests without
// a live session get the canonical 401 body and never reach the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c)
		}

		userID, ok := m.sessions.Get(cookie.Value)
		if !ok {
			return response.Unauthorized(c)
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeySessionToken, cookie.Value)

		return next(c)
	}
}

// CurrentUserID extracts the authenticated user id set by Authenticate.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// CurrentSessionToken extracts the session token set by Authenticate.
func CurrentSessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(ContextKeySessionToken).(string)

	return token, ok
}
