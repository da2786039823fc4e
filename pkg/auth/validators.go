package auth

import "github.com/tulisify/tulisify/pkg/models"

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
