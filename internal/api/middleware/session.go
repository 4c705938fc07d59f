package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anything2image/gallery-api/internal/core/ports"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "session"
	// ContextKeyUser is the echo context key holding the resolved *domain.User.
	ContextKeyUser = "current_user"
	// ContextKeyToken is the echo context key holding the raw session token.
	ContextKeyToken = "session_token"
)

// Session resolves the caller's session token and injects the
// authenticated user into the request context. The token is read from the
// session cookie first, then from an Authorization bearer header. Requests
// without a resolvable identity are rejected with 401.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			user, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the cookie or the
// Authorization header, returning "" when neither is present.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
