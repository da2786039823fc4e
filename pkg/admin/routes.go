package admin

import (
	"github.com/labstack/echo/v4"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/users"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the admin aggregation routes. Catalog management
// routes live in pkg/books.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		adminService: NewService(db),
		userService:  users.NewService(db),
	}

	g := e.Group("/admin", authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	g.GET("/dashboard", h.dashboard)
	g.GET("/download-stats", h.downloadStats)
	g.GET("/users", h.listUsers)
}
