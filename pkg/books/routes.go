package books

import (
	"github.com/labstack/echo/v4"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/blobstore"
	"github.com/tulisify/tulisify/pkg/downloads"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the public catalog routes and the admin catalog
// management routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB, blobs *blobstore.Store, authMiddleware *auth.Middleware) {
	h := &handler{
		bookService:     NewService(db, blobs),
		downloadService: downloads.NewService(db),
	}

	public := e.Group("/books")
	public.GET("", h.list)
	public.GET("/categories/list", h.categories)
	public.GET("/age-categories/list", h.ageCategories)
	public.GET("/:id", h.retrieve)
	public.GET("/:id/cover", h.cover)
	public.GET("/:id/download", h.download, authMiddleware.Authenticate)

	admin := e.Group("/admin/books", authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	admin.GET("", h.adminList)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.destroy)
}
