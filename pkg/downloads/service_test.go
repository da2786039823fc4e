package downloads

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

func createFixtures(ctx context.Context, t *testing.T, db *bun.DB) (userID, bookID int) {
	t.Helper()

	now := time.Now()
	user := &models.User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         "Reader",
		Email:        "reader@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	}
	_, err := db.NewInsert().Model(user).Exec(ctx)
	require.NoError(t, err)

	book := &models.Book{
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       "X",
		Author:      "Y",
		Description: "Z",
		Category:    "Fiction",
		AgeCategory: models.AgeCategoryAll,
		PDFFile:     "books/test.pdf",
		Language:    "Indonesian",
		IsActive:    true,
	}
	_, err = db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	return user.ID, book.ID
}

func TestServiceRecord_IsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	userID, bookID := createFixtures(ctx, t, db)

	require.NoError(t, svc.Record(ctx, userID, bookID))
	require.NoError(t, svc.Record(ctx, userID, bookID))
	require.NoError(t, svc.Record(ctx, userID, bookID))

	count, err := svc.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServiceCountForBook(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	userID, bookID := createFixtures(ctx, t, db)

	// A second reader.
	now := time.Now()
	other := &models.User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         "Other",
		Email:        "other@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	}
	_, err := db.NewInsert().Model(other).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Record(ctx, userID, bookID))
	require.NoError(t, svc.Record(ctx, other.ID, bookID))

	count, err := svc.CountForBook(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
