package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/surfjournal/backend/internal/db"
	"github.com/surfjournal/backend/internal/mockdata"
)

const (
	sessionHeader = "X-Session-Token"
	roleKey       = "role"
	userIDKey     = "userId"
)

// sessionToken reads the credential from X-Session-Token or a bearer
// Authorization header.
func sessionToken(c echo.Context) string {
	if token := c.Request().Header.Get(sessionHeader); token != "" {
		return token
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}

// requireSession gates mutating routes. It resolves the token against the
// store, or against the mock sessions when the store is absent, and rejects
// before any data access happens.
func (h *NewsHandler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return respondError(c, http.StatusUnauthorized, "session required")
		}

		if h.useMock() {
			session := mockdata.SessionByToken(token)
			if session == nil {
				return respondError(c, http.StatusUnauthorized, "invalid session")
			}
			c.Set(roleKey, session.Role)
			c.Set(userIDKey, 0)
			return next(c)
		}

		user, err := h.news.UserByToken(c.Request().Context(), token)
		if err != nil {
			h.log.Error("session lookup failed", "error", err)
			return respondError(c, http.StatusUnauthorized, "invalid session")
		}
		if user == nil {
			return respondError(c, http.StatusUnauthorized, "invalid session")
		}

		c.Set(roleKey, user.Role)
		c.Set(userIDKey, user.ID)
		return next(c)
	}
}

// requireAdmin restricts a route to admin sessions. Runs after requireSession.
func (h *NewsHandler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(roleKey).(string)
		if role != db.RoleAdmin {
			return respondError(c, http.StatusUnauthorized, "admin role required")
		}
		return next(c)
	}
}

func authorID(c echo.Context) int {
	id, _ := c.Get(userIDKey).(int)
	return id
}
