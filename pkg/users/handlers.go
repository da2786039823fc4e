package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/tulisify/tulisify/pkg/respond"
)

type handler struct {
	userService *Service
	authService *auth.Service
}

// register creates a reader account and logs it in.
func (h *handler) register(c echo.Context) error {
	ctx := c.Request().Context()

	params := RegisterPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Create(ctx, CreateUserOptions{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	return respond.DataMessage(c, http.StatusCreated, "Registered successfully", auth.TokenResponse{
		Token: token,
		User:  user,
	})
}
