package downloads

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
)

// Service tracks which users have downloaded which books.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// Record marks that the user has downloaded the book. Idempotent: the unique
// (user_id, book_id) index absorbs repeat downloads, including two concurrent
// first downloads, so at most one row ever exists per pair.
func (svc *Service) Record(ctx context.Context, userID, bookID int) error {
	download := &models.BookDownload{
		CreatedAt: time.Now(),
		UserID:    userID,
		BookID:    bookID,
	}

	_, err := svc.db.
		NewInsert().
		Model(download).
		On("CONFLICT (user_id, book_id) DO NOTHING").
		Exec(ctx)
	return errors.WithStack(err)
}

// CountAll returns the total number of download records.
func (svc *Service) CountAll(ctx context.Context) (int, error) {
	count, err := svc.db.
		NewSelect().
		Model((*models.BookDownload)(nil)).
		Count(ctx)
	return count, errors.WithStack(err)
}

// CountForBook returns how many distinct users have downloaded the book.
func (svc *Service) CountForBook(ctx context.Context, bookID int) (int, error) {
	count, err := svc.db.
		NewSelect().
		Model((*models.BookDownload)(nil)).
		Where("bd.book_id = ?", bookID).
		Count(ctx)
	return count, errors.WithStack(err)
}
