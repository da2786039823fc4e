package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the auth routes and returns the auth service so
// other route groups can build middleware from it.
func RegisterRoutes(e *echo.Echo, db *bun.DB, jwtSecret string) *Service {
	authService := NewService(db, jwtSecret)
	authMiddleware := NewMiddleware(authService)
	h := &handler{authService: authService}

	e.POST("/login", h.login)
	e.POST("/logout", h.logout, authMiddleware.Authenticate)
	e.POST("/refresh", h.refresh, authMiddleware.Authenticate)
	e.GET("/me", h.me, authMiddleware.Authenticate)

	return authService
}
