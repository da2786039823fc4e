package users

import (
	"github.com/labstack/echo/v4"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the public registration route.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authService *auth.Service) {
	h := &handler{
		userService: NewService(db),
		authService: authService,
	}

	e.POST("/register", h.register)
}
