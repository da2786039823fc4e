package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/respond"
	"github.com/tulisify/tulisify/pkg/users"
)

const downloadStatsLimit = 10

type handler struct {
	adminService *Service
	userService  *users.Service
}

// dashboard returns the admin dashboard summary.
func (h *handler) dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.adminService.Dashboard(ctx)
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, stats)
}

// downloadStats returns the most downloaded books.
func (h *handler) downloadStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.adminService.DownloadStats(ctx, downloadStatsLimit)
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, stats)
}

// listUsers returns the paginated reader listing with download counts.
func (h *handler) listUsers(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListUsersQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	readers, total, err := h.userService.ListReaders(ctx, users.ListReadersOptions{
		Search: params.Search,
		Limit:  params.PerPage,
		Offset: (params.Page - 1) * params.PerPage,
	})
	if err != nil {
		return err
	}

	return respond.Data(c, http.StatusOK, respond.NewPage(readers, total, params.Page, params.PerPage))
}
