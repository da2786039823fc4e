package users

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/errcodes"
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

func TestServiceCreate_HashesPassword(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, auth.CheckPassword("password123", user.PasswordHash))
}

func TestServiceCreate_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserOptions{
		Name:     "Imposter",
		Email:    "Reader@Example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
	assert.Equal(t, []string{"Email has already been taken"}, codeErr.Fields["email"])
}

func TestServiceListReaders_ExcludesAdminsAndCountsDownloads(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	reader, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserOptions{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	now := time.Now()
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

	download := &models.BookDownload{CreatedAt: now, UserID: reader.ID, BookID: book.ID}
	_, err = db.NewInsert().Model(download).Exec(ctx)
	require.NoError(t, err)

	readers, total, err := svc.ListReaders(ctx, ListReadersOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, readers, 1)
	assert.Equal(t, reader.ID, readers[0].ID)
	assert.Equal(t, 1, readers[0].DownloadCount)
}

func TestServiceListReaders_SearchMatchesNameOrEmail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserOptions{
		Name:     "Siti Rahma",
		Email:    "siti@example.com",
		Password: "password123",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)

	search := "BUDI"
	readers, total, err := svc.ListReaders(ctx, ListReadersOptions{Search: &search})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, readers, 1)
	assert.Equal(t, "Budi Santoso", readers[0].Name)

	search = "siti@example"
	readers, _, err = svc.ListReaders(ctx, ListReadersOptions{Search: &search})
	require.NoError(t, err)
	require.Len(t, readers, 1)
	assert.Equal(t, "Siti Rahma", readers[0].Name)
}
