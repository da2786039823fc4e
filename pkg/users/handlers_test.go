package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/binder"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/models"
)

func newUsersTestContext(t *testing.T, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerRegister_CreatesReaderAndReturnsToken(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	authService := auth.NewService(db, "test-secret")
	h := &handler{userService: NewService(db), authService: authService}

	c, rr := newUsersTestContext(t, `{"name":"Reader","email":"reader@example.com","password":"password123"}`)

	err := h.register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string       `json:"token"`
			User  *models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
	require.NotNil(t, resp.Data.User)
	assert.Equal(t, models.RoleUser, resp.Data.User.Role)

	claims, err := authService.ValidateToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Data.User.ID, claims.UserID)
}

func TestHandlerRegister_ShortPasswordFailsValidation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{userService: NewService(db), authService: auth.NewService(db, "test-secret")}

	c, _ := newUsersTestContext(t, `{"name":"Reader","email":"reader@example.com","password":"short"}`)

	err := h.register(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
	assert.Contains(t, codeErr.Fields, "password")
}
