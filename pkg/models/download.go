package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BookDownload marks that a user has downloaded a book at least once.
// At most one row exists per (user, book) pair; it is not an event log.
type BookDownload struct {
	bun.BaseModel `bun:"table:book_downloads,alias:bd"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int       `json:"user_id"`
	BookID    int       `json:"book_id"`
}
