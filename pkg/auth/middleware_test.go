package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/models"
)

func newAuthTestContext(t *testing.T, token string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestMiddlewareAuthenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	m := NewMiddleware(NewService(db, "test-secret"))

	err := m.Authenticate(okHandler)(newAuthTestContext(t, ""))
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnauthorized, codeErr.HTTPCode)
}

func TestMiddlewareAuthenticate_SetsUserOnContext(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db, "test-secret")
	m := NewMiddleware(svc)
	ctx := context.Background()

	user := createTestUser(ctx, t, db, "reader@example.com", "password123", models.RoleUser)
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	c := newAuthTestContext(t, token)
	err = m.Authenticate(okHandler)(c)
	require.NoError(t, err)

	got, ok := UserFromContext(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}

func TestMiddlewareAuthenticate_DeletedUserIsRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db, "test-secret")
	m := NewMiddleware(svc)
	ctx := context.Background()

	user := createTestUser(ctx, t, db, "reader@example.com", "password123", models.RoleUser)
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = db.NewDelete().Model(user).WherePK().Exec(ctx)
	require.NoError(t, err)

	err = m.Authenticate(okHandler)(newAuthTestContext(t, token))
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnauthorized, codeErr.HTTPCode)
}

func TestMiddlewareRequireAdmin(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	m := NewMiddleware(NewService(db, "test-secret"))

	c := newAuthTestContext(t, "")
	c.Set("user", &models.User{ID: 1, Role: models.RoleUser})

	err := m.RequireAdmin(okHandler)(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusForbidden, codeErr.HTTPCode)

	c = newAuthTestContext(t, "")
	c.Set("user", &models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, m.RequireAdmin(okHandler)(c))
}
