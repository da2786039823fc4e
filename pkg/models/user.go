package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User roles. There are exactly two: admins manage the catalog, users read it.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int       `bun:",pk,nullzero" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `bun:",nullzero" json:"name"`
	Email        string    `bun:",nullzero" json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash
	Role         string    `bun:",nullzero" json:"role"`

	// DownloadCount is populated by the admin user listing.
	DownloadCount int `bun:",scanonly" json:"download_count,omitempty"`
}

// IsAdmin reports whether the user can manage the catalog.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
