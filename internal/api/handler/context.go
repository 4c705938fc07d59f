package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anything2image/gallery-api/internal/api/middleware"
	"github.com/anything2image/gallery-api/internal/core/domain"
)

// currentUser extracts the user injected by the Session middleware. Its
// presence proves the middleware ran; a route wired without it fails
// closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
