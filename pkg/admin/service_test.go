package admin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulisify/tulisify/pkg/migrations"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createBook(ctx context.Context, t *testing.T, db *bun.DB, title string, active bool, createdAt time.Time) *models.Book {
	t.Helper()

	book := &models.Book{
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		Title:       title,
		Author:      "Author",
		Description: "Description",
		Category:    "Fiction",
		AgeCategory: models.AgeCategoryAll,
		PDFFile:     "books/test.pdf",
		Language:    "Indonesian",
		IsActive:    active,
	}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	return book
}

func createUser(ctx context.Context, t *testing.T, db *bun.DB, email, role string, createdAt time.Time) *models.User {
	t.Helper()

	user := &models.User{
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
	_, err := db.NewInsert().Model(user).Exec(ctx)
	require.NoError(t, err)

	return user
}

func recordDownload(ctx context.Context, t *testing.T, db *bun.DB, userID, bookID int) {
	t.Helper()

	download := &models.BookDownload{CreatedAt: time.Now(), UserID: userID, BookID: bookID}
	_, err := db.NewInsert().Model(download).Exec(ctx)
	require.NoError(t, err)
}

func TestServiceDashboard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	now := time.Now()
	active := createBook(ctx, t, db, "Active", true, now.Add(-2*time.Minute))
	createBook(ctx, t, db, "Inactive", false, now.Add(-time.Minute))
	newest := createBook(ctx, t, db, "Newest", true, now)

	reader := createUser(ctx, t, db, "reader@example.com", models.RoleUser, now.Add(-time.Minute))
	createUser(ctx, t, db, "admin@example.com", models.RoleAdmin, now)

	recordDownload(ctx, t, db, reader.ID, active.ID)
	recordDownload(ctx, t, db, reader.ID, newest.ID)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 2, stats.ActiveBooks)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalDownloads)

	require.Len(t, stats.RecentBooks, 3)
	assert.Equal(t, "Newest", stats.RecentBooks[0].Title)

	require.Len(t, stats.RecentUsers, 1)
	assert.Equal(t, reader.ID, stats.RecentUsers[0].ID)
}

func TestServiceDownloadStats_OrdersByCount(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	now := time.Now()
	popular := createBook(ctx, t, db, "Popular", true, now)
	niche := createBook(ctx, t, db, "Niche", true, now)
	createBook(ctx, t, db, "Untouched", true, now)

	readerA := createUser(ctx, t, db, "a@example.com", models.RoleUser, now)
	readerB := createUser(ctx, t, db, "b@example.com", models.RoleUser, now)

	recordDownload(ctx, t, db, readerA.ID, popular.ID)
	recordDownload(ctx, t, db, readerB.ID, popular.ID)
	recordDownload(ctx, t, db, readerA.ID, niche.ID)

	stats, err := svc.DownloadStats(ctx, 10)
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, popular.ID, stats[0].BookID)
	assert.Equal(t, "Popular", stats[0].Title)
	assert.Equal(t, 2, stats[0].DownloadCount)
	assert.Equal(t, niche.ID, stats[1].BookID)
	assert.Equal(t, 1, stats[1].DownloadCount)
}

func TestServiceDownloadStats_RespectsLimit(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	now := time.Now()
	reader := createUser(ctx, t, db, "reader@example.com", models.RoleUser, now)
	for _, title := range []string{"A", "B", "C"} {
		book := createBook(ctx, t, db, title, true, now)
		recordDownload(ctx, t, db, reader.ID, book.ID)
	}

	stats, err := svc.DownloadStats(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}
