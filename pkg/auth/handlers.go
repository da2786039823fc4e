package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/respond"
)

type handler struct {
	authService *Service
}

// login exchanges email/password credentials for a bearer token.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.Data(c, http.StatusOK, TokenResponse{Token: token, User: user})
}

// logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
func (h *handler) logout(c echo.Context) error {
	return respond.Message(c, http.StatusOK, "Logged out successfully")
}

// refresh issues a fresh token for the authenticated user.
func (h *handler) refresh(c echo.Context) error {
	user, ok := UserFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.Data(c, http.StatusOK, TokenResponse{Token: token, User: user})
}

// me returns the current authenticated user.
func (h *handler) me(c echo.Context) error {
	user, ok := UserFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Authentication required")
	}

	return respond.Data(c, http.StatusOK, user)
}
