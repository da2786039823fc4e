package admin

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
)

const recentLimit = 5

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalBooks     int            `json:"total_books"`
	ActiveBooks    int            `json:"active_books"`
	TotalUsers     int            `json:"total_users"`
	TotalDownloads int            `json:"total_downloads"`
	RecentBooks    []*models.Book `json:"recent_books"`
	RecentUsers    []*models.User `json:"recent_users"`
}

// DownloadStat is one row of the most-downloaded-books report.
type DownloadStat struct {
	BookID        int    `json:"book_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	DownloadCount int    `json:"download_count"`
}

// Service aggregates catalog and download data for the admin panel.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// Dashboard assembles the admin dashboard summary. Soft-deleted books are
// excluded from every count.
func (svc *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		RecentBooks: []*models.Book{},
		RecentUsers: []*models.User{},
	}

	var err error

	stats.TotalBooks, err = svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats.ActiveBooks, err = svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.is_active = ?", true).
		Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats.TotalUsers, err = svc.db.
		NewSelect().
		Model((*models.User)(nil)).
		Where("u.role = ?", models.RoleUser).
		Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats.TotalDownloads, err = svc.db.
		NewSelect().
		Model((*models.BookDownload)(nil)).
		Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = svc.db.
		NewSelect().
		Model(&stats.RecentBooks).
		Order("b.created_at DESC").
		Limit(recentLimit).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = svc.db.
		NewSelect().
		Model(&stats.RecentUsers).
		Where("u.role = ?", models.RoleUser).
		Order("u.created_at DESC").
		Limit(recentLimit).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return stats, nil
}

// DownloadStats returns the most downloaded books, highest count first.
func (svc *Service) DownloadStats(ctx context.Context, limit int) ([]*DownloadStat, error) {
	stats := []*DownloadStat{}

	err := svc.db.
		NewSelect().
		Model((*models.BookDownload)(nil)).
		ColumnExpr("b.id AS book_id").
		ColumnExpr("b.title").
		ColumnExpr("b.author").
		ColumnExpr("COUNT(*) AS download_count").
		Join("JOIN books AS b ON b.id = bd.book_id").
		GroupExpr("b.id, b.title, b.author").
		OrderExpr("download_count DESC").
		Limit(limit).
		Scan(ctx, &stats)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return stats, nil
}
